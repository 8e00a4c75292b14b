package contrato

import (
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
)

// ContratoUpdate carrega uma atualização parcial de contrato.
type ContratoUpdate struct {
	DataAssinatura  *tipos.Data      `json:"dataAssinatura"`
	DataVencimento  *tipos.Data      `json:"dataVencimento"`
	Valor           *decimal.Decimal `json:"valor"`
	StatusPagamento *string          `json:"statusPagamento"`
	Observacao      *string          `json:"observacao"`
}
