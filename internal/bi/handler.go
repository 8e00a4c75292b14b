package bi

import (
	"encoding/json"
	"net/http"

	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"gorm.io/gorm"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// GET /api/bi/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	painel, err := h.Service.MontarDashboard(tipos.Hoje())
	if err != nil {
		http.Error(w, "Erro ao montar dashboard", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(painel)
}

// GET /api/bi/propostas-por-status
func (h *Handler) PropostasPorStatus(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.Service.PropostasPorStatus()
	if err != nil {
		http.Error(w, "Erro ao agrupar propostas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resultado)
}

// GET /api/bi/propostas-por-consultor
func (h *Handler) PropostasPorConsultor(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.Service.PropostasPorConsultor()
	if err != nil {
		http.Error(w, "Erro ao agrupar propostas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resultado)
}

// GET /api/bi/receita-mensal
func (h *Handler) ReceitaMensal(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.Service.ReceitaMensal()
	if err != nil {
		http.Error(w, "Erro ao calcular receita", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resultado)
}

// GET /api/bi/produtividade-consultores
func (h *Handler) ProdutividadeConsultores(w http.ResponseWriter, r *http.Request) {
	resultado, err := h.Service.ProdutividadeConsultores()
	if err != nil {
		http.Error(w, "Erro ao calcular produtividade", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resultado)
}
