package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/JEFConsultoria/api-gestao/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginResponse struct {
	Token   string   `json:"token"`
	Usuario *Usuario `json:"usuario"`
}

// POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	var usuario Usuario
	err := h.DB.Where("email = ? AND ativo = ?", req.Email, true).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !utils.VerificarSenha(usuario.SenhaHash, req.Senha)) {
		http.Error(w, "Email ou senha incorretos", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao autenticar", http.StatusInternalServerError)
		return
	}

	token, err := GerarToken(&usuario)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(loginResponse{Token: token, Usuario: &usuario})
}

// GET /api/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(CtxUserID).(uint)
	var usuario Usuario
	if err := h.DB.First(&usuario, userID).Error; err != nil {
		http.Error(w, "Usuário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(usuario)
}

// SeedAdmin garante o usuário administrador inicial.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Usuario{}).Where("email = ?", "admin@sistema.com").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := utils.HashSenha("admin123")
	if err != nil {
		return err
	}
	admin := Usuario{
		Nome:      "Administrador",
		Email:     "admin@sistema.com",
		SenhaHash: hash,
		Funcao:    FuncaoAdmin,
		Ativo:     true,
	}
	return db.Create(&admin).Error
}
