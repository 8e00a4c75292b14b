package contato

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

// GET /api/contatos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filtro{
		Busca:    q.Get("search"),
		Empresa:  q.Get("empresa"),
		Porte:    q.Get("porte"),
		ER:       q.Get("er"),
		Carteira: q.Get("carteira"),
	}
	f.Skip, _ = strconv.Atoi(q.Get("skip"))
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}

	contatos, err := h.Repository.Listar(f)
	if err != nil {
		http.Error(w, "Erro ao listar contatos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(contatos)
}

// GET /api/contatos/filtros
func (h *Handler) Filtros(w http.ResponseWriter, r *http.Request) {
	valores, err := h.Repository.ListarValoresFiltro()
	if err != nil {
		http.Error(w, "Erro ao listar filtros", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(valores)
}

// GET /api/contatos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Contato não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// POST /api/contatos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Contato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(&c); err != nil {
		http.Error(w, "Erro ao salvar contato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// PUT /api/contatos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dados ContatoUpdate
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.Atualizar(uint(id), &dados)
	if err != nil {
		switch {
		case errors.Is(err, erros.ErrNaoEncontrado):
			http.Error(w, "Contato não encontrado", http.StatusNotFound)
		case errors.Is(err, erros.ErrProibido):
			http.Error(w, "Dados iniciais não podem ser modificados", http.StatusForbidden)
		default:
			http.Error(w, "Erro ao atualizar contato", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(c)
}

// DELETE /api/contatos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(uint(id)); err != nil {
		switch {
		case errors.Is(err, erros.ErrNaoEncontrado):
			http.Error(w, "Contato não encontrado", http.StatusNotFound)
		case errors.Is(err, erros.ErrProibido):
			http.Error(w, "Dados iniciais não podem ser deletados", http.StatusForbidden)
		default:
			http.Error(w, "Erro ao excluir contato", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Contato deletado com sucesso"})
}
