package alocacao

import (
	"time"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
)

// Períodos de meio dia aceitos na grade.
const (
	PeriodoManha = "M"
	PeriodoTarde = "T"
)

// SemProjeto é o marcador usado quando a alocação não tem código de
// projeto.
const SemProjeto = "Sem projeto"

// Alocacao ocupa um slot (consultor, data, período) da grade. A tripla
// é a chave natural: cada slot aceita uma única alocação e o trio não
// muda depois de criado — só código de projeto e observação são
// editáveis.
type Alocacao struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ConsultorID   uint       `gorm:"not null;uniqueIndex:idx_alocacao_slot" json:"consultorId"`
	Data          tipos.Data `gorm:"not null;uniqueIndex:idx_alocacao_slot;index" json:"data"`
	Periodo       string     `gorm:"size:10;not null;uniqueIndex:idx_alocacao_slot" json:"periodo"`
	CodigoProjeto string     `gorm:"size:100" json:"codigoProjeto"`
	NIF           string     `gorm:"size:50" json:"nif"`
	Observacao    string     `gorm:"type:text" json:"observacao"`

	Consultor consultor.Consultor `gorm:"foreignKey:ConsultorID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PeriodoValido reconhece os marcadores de meio dia da planilha.
func PeriodoValido(p string) bool {
	return p == PeriodoManha || p == PeriodoTarde
}
