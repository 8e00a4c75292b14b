package empresa

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
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// POST /api/empresas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var e Empresa
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if e.CNPJ == "" || e.Nome == "" {
		http.Error(w, "CNPJ e nome são obrigatórios", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(&e); err != nil {
		if errors.Is(err, erros.ErrConflito) {
			http.Error(w, "CNPJ já cadastrado", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao salvar empresa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// GET /api/empresas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	empresas, err := h.Repository.ListarTodas(skip, limit)
	if err != nil {
		http.Error(w, "Erro ao listar empresas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(empresas)
}

// GET /api/empresas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	e, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(e)
}

// PUT /api/empresas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dados Empresa
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Repository.Atualizar(uint(id), &dados)
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Empresa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar empresa", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(e)
}

// DELETE /api/empresas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Empresa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir empresa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
