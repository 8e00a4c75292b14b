package contrato

import (
	"time"

	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status de pagamento de um contrato.
const (
	StatusPendente  = "Pendente"
	StatusPago      = "Pago"
	StatusVencido   = "Vencido"
	StatusCancelado = "Cancelado"
)

// Contrato formaliza uma proposta fechada. O número do contrato é a
// chave natural, única em todo o sistema.
type Contrato struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	PropostaID      uint            `gorm:"not null;index" json:"propostaId"`
	NumeroContrato  string          `gorm:"size:50;uniqueIndex;not null" json:"numeroContrato"`
	DataAssinatura  *tipos.Data     `json:"dataAssinatura,omitempty"`
	DataVencimento  *tipos.Data     `json:"dataVencimento,omitempty"`
	Valor           decimal.Decimal `gorm:"type:numeric(12,2)" json:"valor"`
	StatusPagamento string          `gorm:"size:50" json:"statusPagamento"`
	Observacao      string          `gorm:"type:text" json:"observacao"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}
