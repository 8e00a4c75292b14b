package cronograma

import (
	"errors"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Cronograma e Tarefa
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(c *Cronograma) error {
	return r.DB.Create(c).Error
}

func (r *Repository) BuscarPorID(id uint) (*Cronograma, error) {
	var c Cronograma
	if err := r.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListarTodos(skip, limit int) ([]Cronograma, error) {
	var cronogramas []Cronograma
	err := r.DB.Offset(skip).Limit(limit).Find(&cronogramas).Error
	return cronogramas, err
}

func (r *Repository) ListarPorProposta(propostaID uint) ([]Cronograma, error) {
	var cronogramas []Cronograma
	err := r.DB.Where("proposta_id = ?", propostaID).Find(&cronogramas).Error
	return cronogramas, err
}

// AtualizarParcial grava apenas os campos presentes no update e
// rederiva o status em seguida.
func (r *Repository) AtualizarParcial(id uint, dados *CronogramaUpdate, hoje tipos.Data) (*Cronograma, error) {
	c, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	if dados.DataInicio != nil {
		c.DataInicio = dados.DataInicio
	}
	if dados.DataTermino != nil {
		c.DataTermino = dados.DataTermino
	}
	if dados.HorasPrevistas != nil {
		c.HorasPrevistas = *dados.HorasPrevistas
	}
	if dados.HorasExecutadas != nil {
		c.HorasExecutadas = *dados.HorasExecutadas
	}
	if dados.PercentualConclusao != nil {
		c.PercentualConclusao = *dados.PercentualConclusao
	}
	if dados.Observacoes != nil {
		c.Observacoes = *dados.Observacoes
	}

	AtualizarStatus(c, hoje)

	if err := r.DB.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// Progresso é o resultado do recálculo de conclusão.
type Progresso struct {
	CronogramaID        uint            `json:"cronograma_id"`
	PercentualConclusao decimal.Decimal `json:"percentual_conclusao"`
	Status              string          `json:"status"`
	TotalTarefas        int             `json:"total_tarefas"`
	TarefasConcluidas   int             `json:"tarefas_concluidas"`
}

// CalcularProgresso rederiva percentual e status a partir das tarefas.
func (r *Repository) CalcularProgresso(id uint, hoje tipos.Data) (*Progresso, error) {
	c, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	tarefas, err := r.ListarTarefas(id)
	if err != nil {
		return nil, err
	}

	RecalcularConclusao(c, tarefas)
	AtualizarStatus(c, hoje)

	if err := r.DB.Save(c).Error; err != nil {
		return nil, err
	}

	concluidas := 0
	for _, t := range tarefas {
		if t.Concluida {
			concluidas++
		}
	}
	return &Progresso{
		CronogramaID:        c.ID,
		PercentualConclusao: c.PercentualConclusao,
		Status:              c.Status,
		TotalTarefas:        len(tarefas),
		TarefasConcluidas:   concluidas,
	}, nil
}

// Deletar remove o cronograma e as tarefas em cascata, numa única
// transação.
func (r *Repository) Deletar(id uint) error {
	if _, err := r.BuscarPorID(id); err != nil {
		return err
	}
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cronograma_id = ?", id).Delete(&Tarefa{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Cronograma{}, id).Error
	})
}

// AdicionarTarefa insere a tarefa e rederiva percentual e status do
// cronograma dono.
func (r *Repository) AdicionarTarefa(cronogramaID uint, t *Tarefa, hoje tipos.Data) error {
	c, err := r.BuscarPorID(cronogramaID)
	if err != nil {
		return err
	}
	t.CronogramaID = cronogramaID
	if err := r.DB.Create(t).Error; err != nil {
		return err
	}

	tarefas, err := r.ListarTarefas(cronogramaID)
	if err != nil {
		return err
	}
	RecalcularConclusao(c, tarefas)
	AtualizarStatus(c, hoje)
	return r.DB.Save(c).Error
}

// ListarTarefas devolve as tarefas na ordem definida, com empates
// resolvidos pela ordem de inserção.
func (r *Repository) ListarTarefas(cronogramaID uint) ([]Tarefa, error) {
	var tarefas []Tarefa
	err := r.DB.Where("cronograma_id = ?", cronogramaID).
		Order("ordem").Order("id").
		Find(&tarefas).Error
	return tarefas, err
}

// AlertasJanela lista cronogramas não concluídos vencendo nos próximos
// sete dias seguidos dos já atrasados.
func (r *Repository) AlertasJanela(hoje tipos.Data) ([]Cronograma, error) {
	seteDias := hoje.AddDias(7)

	var vencendo []Cronograma
	if err := r.DB.Where("data_termino <= ? AND data_termino >= ? AND status <> ?",
		seteDias.Time, hoje.Time, StatusConcluido).Find(&vencendo).Error; err != nil {
		return nil, err
	}

	var atrasados []Cronograma
	if err := r.DB.Where("data_termino < ? AND status <> ?",
		hoje.Time, StatusConcluido).Find(&atrasados).Error; err != nil {
		return nil, err
	}

	return append(vencendo, atrasados...), nil
}
