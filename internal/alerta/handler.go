package alerta

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

// GET /api/alertas/todos
func (h *Handler) Todos(w http.ResponseWriter, r *http.Request) {
	alertas, err := h.Service.Coletar(tipos.Hoje())
	if err != nil {
		http.Error(w, "Erro ao coletar alertas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(alertas)
}

// GET /api/alertas/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.Service.Resumir(tipos.Hoje())
	if err != nil {
		http.Error(w, "Erro ao resumir alertas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resumo)
}
