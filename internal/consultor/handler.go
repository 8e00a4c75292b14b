package consultor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /api/consultores
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Consultor
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" {
		http.Error(w, "Nome é obrigatório", http.StatusBadRequest)
		return
	}
	c.Ativo = true
	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		if errors.Is(err, erros.ErrConflito) {
			http.Error(w, "Email já cadastrado", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao salvar consultor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /api/consultores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	consultores, err := h.Repository.ListarAtivos(h.DB, skip, limit)
	if err != nil {
		http.Error(w, "Erro ao listar consultores", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(consultores)
}

// GET /api/consultores/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Consultor não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /api/consultores/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dados Consultor
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.Atualizar(h.DB, uint(id), &dados)
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Consultor não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar consultor", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// DELETE /api/consultores/{id} — desativa, não remove.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Desativar(h.DB, uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Consultor não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao desativar consultor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
