package contrato

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

// POST /api/contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.NumeroContrato == "" || c.PropostaID == 0 {
		http.Error(w, "Número do contrato e propostaId são obrigatórios", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Criar(&c); err != nil {
		if errors.Is(err, erros.ErrConflito) {
			http.Error(w, "Número de contrato já existe", http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /api/contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filtro{StatusPagamento: q.Get("status_pagamento")}
	f.Skip, _ = strconv.Atoi(q.Get("skip"))
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}
	if s := q.Get("data_inicio"); s != "" {
		d, err := tipos.ParseData(s)
		if err != nil {
			http.Error(w, "data_inicio inválida", http.StatusBadRequest)
			return
		}
		f.DataInicio = &d
	}
	if s := q.Get("data_fim"); s != "" {
		d, err := tipos.ParseData(s)
		if err != nil {
			http.Error(w, "data_fim inválida", http.StatusBadRequest)
			return
		}
		f.DataFim = &d
	}

	contratos, err := h.Repository.Listar(f)
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(contratos)
}

// GET /api/contratos/faturamento
func (h *Handler) Faturamento(w http.ResponseWriter, r *http.Request) {
	ano, _ := strconv.Atoi(r.URL.Query().Get("ano"))
	mes, _ := strconv.Atoi(r.URL.Query().Get("mes"))
	f, err := h.Repository.CalcularFaturamento(ano, mes)
	if err != nil {
		http.Error(w, "Erro ao calcular faturamento", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(f)
}

// GET /api/contratos/alertas
//
// Leitura com efeito colateral: antes de responder, os contratos
// Pendentes já vencidos são virados para Vencido via
// ReconciliarVencidos e devolvidos junto com os que vencem na semana.
func (h *Handler) Alertas(w http.ResponseWriter, r *http.Request) {
	hoje := tipos.Hoje()

	vencidos, err := h.Repository.ReconciliarVencidos(hoje)
	if err != nil {
		http.Error(w, "Erro ao reconciliar contratos vencidos", http.StatusInternalServerError)
		return
	}
	vencendo, err := h.Repository.VencendoJanela(hoje)
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(append(vencendo, vencidos...))
}

// GET /api/contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	c, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /api/contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var dados ContratoUpdate
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.Atualizar(uint(id), &dados)
	if err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// DELETE /api/contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(uint(id)); err != nil {
		if errors.Is(err, erros.ErrNaoEncontrado) {
			http.Error(w, "Contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
