package proposta

import (
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
)

// PropostaUpdate carrega uma atualização parcial: só os campos
// presentes no payload são alterados. O número da proposta e a empresa
// são imutáveis depois do cadastro.
type PropostaUpdate struct {
	ConsultorID    *uint            `json:"consultorId"`
	Solucao        *string          `json:"solucao"`
	DataContato    *tipos.Data      `json:"dataContato"`
	DataProposta   *tipos.Data      `json:"dataProposta"`
	ValorProposta  *decimal.Decimal `json:"valorProposta"`
	DataFechamento *tipos.Data      `json:"dataFechamento"`
	Status         *string          `json:"status"`
	Resultado      *string          `json:"resultado"`
	Observacoes    *string          `json:"observacoes"`
}
