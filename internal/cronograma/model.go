package cronograma

import (
	"time"

	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status derivados de um cronograma.
const (
	StatusNaoIniciado = "Não iniciado"
	StatusEmAndamento = "Em andamento"
	StatusConcluido   = "Concluído"
	StatusAtrasado    = "Atrasado"
)

// Cronograma é o plano de execução de uma proposta. Status e
// percentual de conclusão são derivados das tarefas e das datas, nunca
// gravados de forma independente quando existem tarefas.
type Cronograma struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	PropostaID          uint            `gorm:"not null;index" json:"propostaId"`
	DataInicio          *tipos.Data     `json:"dataInicio,omitempty"`
	DataTermino         *tipos.Data     `json:"dataTermino,omitempty"`
	HorasPrevistas      decimal.Decimal `gorm:"type:numeric(8,2)" json:"horasPrevistas"`
	HorasExecutadas     decimal.Decimal `gorm:"type:numeric(8,2)" json:"horasExecutadas"`
	PercentualConclusao decimal.Decimal `gorm:"type:numeric(5,2)" json:"percentualConclusao"`
	Status              string          `gorm:"size:50" json:"status"`
	Observacoes         string          `gorm:"type:text" json:"observacoes"`

	Tarefas []Tarefa `gorm:"foreignKey:CronogramaID;constraint:OnDelete:CASCADE" json:"tarefas,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Tarefa pertence a exatamente um cronograma durante toda a vida.
// Ordem define a sequência; empates seguem a ordem de inserção.
type Tarefa struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	CronogramaID   uint        `gorm:"not null;index" json:"cronogramaId"`
	Descricao      string      `gorm:"size:500;not null" json:"descricao"`
	DataVencimento *tipos.Data `json:"dataVencimento,omitempty"`
	Concluida      bool        `gorm:"default:false" json:"concluida"`
	Ordem          int         `json:"ordem"`
	CreatedAt      time.Time   `json:"createdAt"`
}
