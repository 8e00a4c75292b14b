package proposta

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JEFConsultoria/api-gestao/internal/auth"
	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// POST /api/propostas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var p Proposta
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if p.NumeroProposta == "" || p.EmpresaID == 0 {
		http.Error(w, "Número da proposta e empresaId são obrigatórios", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(&p); err != nil {
		if errors.Is(err, erros.ErrConflito) {
			http.Error(w, "Número de proposta já existe", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao salvar proposta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /api/propostas
//
// Usuários com função Consultor só enxergam as próprias propostas.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filtro{Status: q.Get("status")}
	f.Skip, _ = strconv.Atoi(q.Get("skip"))
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}
	if s := q.Get("consultor_id"); s != "" {
		if id, err := strconv.Atoi(s); err == nil {
			cid := uint(id)
			f.ConsultorID = &cid
		}
	}
	if auth.FuncaoDoContexto(r.Context()) == auth.FuncaoConsultor {
		if cid, ok := auth.ConsultorDoContexto(r.Context()); ok {
			f.ConsultorID = &cid
		}
	}

	propostas, err := h.Repository.Listar(f)
	if err != nil {
		http.Error(w, "Erro ao listar propostas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(propostas)
}

// GET /api/propostas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Proposta não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// PUT /api/propostas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dados PropostaUpdate
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repository.Atualizar(uint(id), &dados)
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Proposta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar proposta", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// DELETE /api/propostas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Proposta não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir proposta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
