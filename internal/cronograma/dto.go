package cronograma

import (
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
)

// CronogramaUpdate carrega uma atualização parcial: só os campos
// presentes no payload são alterados.
type CronogramaUpdate struct {
	DataInicio          *tipos.Data      `json:"dataInicio"`
	DataTermino         *tipos.Data      `json:"dataTermino"`
	HorasPrevistas      *decimal.Decimal `json:"horasPrevistas"`
	HorasExecutadas     *decimal.Decimal `json:"horasExecutadas"`
	PercentualConclusao *decimal.Decimal `json:"percentualConclusao"`
	Observacoes         *string          `json:"observacoes"`
}
