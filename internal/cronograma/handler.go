package cronograma

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
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

// POST /api/cronogramas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Cronograma
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.PropostaID == 0 {
		http.Error(w, "propostaId é obrigatório", http.StatusBadRequest)
		return
	}
	if c.Status == "" {
		c.Status = DerivarStatus(&c, tipos.Hoje())
	}
	if err := h.Repository.Criar(&c); err != nil {
		http.Error(w, "Erro ao salvar cronograma", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /api/cronogramas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	cronogramas, err := h.Repository.ListarTodos(skip, limit)
	if err != nil {
		http.Error(w, "Erro ao listar cronogramas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(cronogramas)
}

// GET /api/cronogramas/alertas
func (h *Handler) Alertas(w http.ResponseWriter, r *http.Request) {
	cronogramas, err := h.Repository.AlertasJanela(tipos.Hoje())
	if err != nil {
		http.Error(w, "Erro ao listar alertas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(cronogramas)
}

// GET /api/cronogramas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Cronograma não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /api/cronogramas/{id} — atualização parcial.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dados CronogramaUpdate
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.AtualizarParcial(uint(id), &dados, tipos.Hoje())
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Cronograma não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar cronograma", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// POST /api/cronogramas/{id}/calcular-progresso
func (h *Handler) CalcularProgresso(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	progresso, err := h.Repository.CalcularProgresso(uint(id), tipos.Hoje())
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Cronograma não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao calcular progresso", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(progresso)
}

// DELETE /api/cronogramas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Cronograma não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir cronograma", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/cronogramas/{id}/tarefas
func (h *Handler) AdicionarTarefa(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var t Tarefa
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if t.Descricao == "" {
		http.Error(w, "Descrição é obrigatória", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AdicionarTarefa(uint(id), &t, tipos.Hoje()); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Cronograma não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao salvar tarefa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// GET /api/cronogramas/{id}/tarefas
func (h *Handler) ListarTarefas(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	tarefas, err := h.Repository.ListarTarefas(uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar tarefas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(tarefas)
}
