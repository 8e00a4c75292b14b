package chatbot

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

type pergunta struct {
	Mensagem string `json:"mensagem"`
}

// POST /api/chatbot/perguntar
func (h *Handler) Perguntar(w http.ResponseWriter, r *http.Request) {
	var p pergunta
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	resposta, err := h.Service.Perguntar(p.Mensagem, tipos.Hoje())
	if err != nil {
		http.Error(w, "Erro ao responder pergunta", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(resposta)
}
