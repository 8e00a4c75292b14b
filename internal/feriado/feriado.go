// Package feriado expõe o calendário de feriados usado pelo
// planejamento de alocações. A tabela é carga de referência: a API só
// lê.
package feriado

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"gorm.io/gorm"
)

// Feriado é um dia sem alocação de consultores. Tipo distingue
// Nacional, Estadual e Municipal.
type Feriado struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Data      tipos.Data `gorm:"uniqueIndex;not null" json:"data"`
	Descricao string     `gorm:"size:255" json:"descricao"`
	Tipo      string     `gorm:"size:50" json:"tipo"`
}

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// GET /api/feriados
//
// Aceita ?ano= para restringir ao ano civil.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	query := h.DB.Model(&Feriado{}).Order("data")
	if s := r.URL.Query().Get("ano"); s != "" {
		ano, err := strconv.Atoi(s)
		if err != nil {
			http.Error(w, "Ano inválido", http.StatusBadRequest)
			return
		}
		inicio := tipos.DataDe(ano, 1, 1)
		fim := tipos.DataDe(ano, 12, 31)
		query = query.Where("data >= ? AND data <= ?", inicio.Time, fim.Time)
	}

	var feriados []Feriado
	if err := query.Find(&feriados).Error; err != nil {
		http.Error(w, "Erro ao listar feriados", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(feriados)
}
