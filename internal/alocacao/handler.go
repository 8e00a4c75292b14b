package alocacao

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

func filtroDaQuery(r *http.Request) (Filtro, error) {
	q := r.URL.Query()
	var f Filtro
	if s := q.Get("data_inicio"); s != "" {
		d, err := tipos.ParseData(s)
		if err != nil {
			return f, err
		}
		f.DataInicio = &d
	}
	if s := q.Get("data_fim"); s != "" {
		d, err := tipos.ParseData(s)
		if err != nil {
			return f, err
		}
		f.DataFim = &d
	}
	if s := q.Get("consultor_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			return f, err
		}
		cid := uint(id)
		f.ConsultorID = &cid
	}
	return f, nil
}

// itemLista achata a alocação com o nome do consultor, como a grade é
// exibida.
type itemLista struct {
	ID            uint   `json:"id"`
	ConsultorID   uint   `json:"consultor_id"`
	ConsultorNome string `json:"consultor_nome"`
	NIF           string `json:"nif"`
	Data          string `json:"data"`
	Periodo       string `json:"periodo"`
	CodigoProjeto string `json:"codigo_projeto"`
	Observacao    string `json:"observacao"`
}

// GET /api/cronogramas/alocacoes/listar
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	f, err := filtroDaQuery(r)
	if err != nil {
		http.Error(w, "Parâmetros inválidos", http.StatusBadRequest)
		return
	}
	alocacoes, err := h.Repository.Listar(f)
	if err != nil {
		http.Error(w, "Erro ao listar alocações", http.StatusInternalServerError)
		return
	}

	resultado := make([]itemLista, 0, len(alocacoes))
	for _, a := range alocacoes {
		resultado = append(resultado, itemLista{
			ID:            a.ID,
			ConsultorID:   a.ConsultorID,
			ConsultorNome: a.Consultor.Nome,
			NIF:           a.NIF,
			Data:          a.Data.String(),
			Periodo:       a.Periodo,
			CodigoProjeto: a.CodigoProjeto,
			Observacao:    a.Observacao,
		})
	}
	json.NewEncoder(w).Encode(resultado)
}

// GET /api/cronogramas/alocacoes/gantt
func (h *Handler) Gantt(w http.ResponseWriter, r *http.Request) {
	f, err := filtroDaQuery(r)
	if err != nil {
		http.Error(w, "Parâmetros inválidos", http.StatusBadRequest)
		return
	}
	itens, err := h.Repository.Gantt(f)
	if err != nil {
		http.Error(w, "Erro ao montar gantt", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(itens)
}

// GET /api/cronogramas/alocacoes/estatisticas
func (h *Handler) Estatisticas(w http.ResponseWriter, r *http.Request) {
	f, err := filtroDaQuery(r)
	if err != nil {
		http.Error(w, "Parâmetros inválidos", http.StatusBadRequest)
		return
	}
	est, err := h.Repository.CalcularEstatisticas(f)
	if err != nil {
		http.Error(w, "Erro ao calcular estatísticas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(est)
}

// POST /api/cronogramas/alocacoes/criar
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var n NovaAlocacao
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.Criar(&n)
	if err != nil {
		switch {
		case errors.Is(err, erros.ErrNaoEncontrado):
			http.Error(w, "Consultor não encontrado", http.StatusNotFound)
		case errors.Is(err, erros.ErrConflito):
			http.Error(w, "Já existe alocação para este consultor, data e período", http.StatusConflict)
		case errors.Is(err, erros.ErrValidacao):
			http.Error(w, "Período deve ser M ou T", http.StatusBadRequest)
		default:
			http.Error(w, "Erro ao salvar alocação", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(itemLista{
		ID:            a.ID,
		ConsultorID:   a.ConsultorID,
		ConsultorNome: a.Consultor.Nome,
		NIF:           a.NIF,
		Data:          a.Data.String(),
		Periodo:       a.Periodo,
		CodigoProjeto: a.CodigoProjeto,
		Observacao:    a.Observacao,
	})
}

// PUT /api/cronogramas/alocacoes/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dados AlocacaoUpdate
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.Atualizar(uint(id), &dados)
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Alocação não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar alocação", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Alocação atualizada com sucesso",
		"id":      a.ID,
	})
}

// DELETE /api/cronogramas/alocacoes/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Alocação não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir alocação", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Alocação deletada com sucesso"})
}
