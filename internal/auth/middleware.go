package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUserID      ctxKey = "usuarioID"
	CtxFuncao      ctxKey = "funcao"
	CtxConsultorID ctxKey = "consultorID"
)

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxFuncao, claims.Funcao)
		if claims.ConsultorID != nil {
			ctx = context.WithValue(ctx, CtxConsultorID, *claims.ConsultorID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin restringe a rota a usuários com função Admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		funcao, _ := r.Context().Value(CtxFuncao).(string)
		if funcao != FuncaoAdmin {
			http.Error(w, "Acesso restrito a administradores", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// FuncaoDoContexto devolve a função do usuário autenticado.
func FuncaoDoContexto(ctx context.Context) string {
	funcao, _ := ctx.Value(CtxFuncao).(string)
	return funcao
}

// ConsultorDoContexto devolve o consultor vinculado, se houver.
func ConsultorDoContexto(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(CtxConsultorID).(uint)
	return id, ok
}
