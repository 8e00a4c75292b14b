package proposta

import (
	"time"

	"github.com/JEFConsultoria/api-gestao/internal/contrato"
	"github.com/JEFConsultoria/api-gestao/internal/cronograma"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status aceitos para uma proposta.
const (
	StatusEmAndamento = "Em andamento"
	StatusFechado     = "Fechado"
	StatusPerdido     = "Perdido"
)

// Proposta é uma oportunidade comercial aberta para uma empresa. O
// número da proposta é a chave natural usada na importação.
type Proposta struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	NumeroProposta string          `gorm:"size:50;uniqueIndex;not null" json:"numeroProposta"`
	EmpresaID      uint            `gorm:"not null;index" json:"empresaId"`
	ConsultorID    *uint           `gorm:"index" json:"consultorId,omitempty"`
	Solucao        string          `gorm:"size:255" json:"solucao"`
	DataContato    *tipos.Data     `json:"dataContato,omitempty"`
	DataProposta   *tipos.Data     `json:"dataProposta,omitempty"`
	ValorProposta  decimal.Decimal `gorm:"type:numeric(12,2)" json:"valorProposta"`
	DataFechamento *tipos.Data     `json:"dataFechamento,omitempty"`
	Status         string          `gorm:"size:50" json:"status"`
	Resultado      string          `gorm:"size:100" json:"resultado"`
	Observacoes    string          `gorm:"type:text" json:"observacoes"`

	Cronogramas []cronograma.Cronograma `gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE" json:"cronogramas,omitempty"`
	Contratos   []contrato.Contrato     `gorm:"foreignKey:PropostaID;constraint:OnDelete:CASCADE" json:"contratos,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
