package cronograma

import (
	"testing"

	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dataPtr(d tipos.Data) *tipos.Data {
	return &d
}

func TestDerivarStatus(t *testing.T) {
	hoje := tipos.DataDe(2025, 6, 15)
	ontem := hoje.AddDias(-1)
	amanha := hoje.AddDias(1)
	semanaPassada := hoje.AddDias(-7)

	casos := []struct {
		nome       string
		cronograma Cronograma
		esperado   string
	}{
		{
			nome: "cem por cento é concluído independente das datas",
			cronograma: Cronograma{
				PercentualConclusao: decimal.NewFromInt(100),
				DataInicio:          dataPtr(semanaPassada),
				DataTermino:         dataPtr(ontem),
			},
			esperado: StatusConcluido,
		},
		{
			nome: "acima de cem também é concluído",
			cronograma: Cronograma{
				PercentualConclusao: decimal.NewFromFloat(100.01),
			},
			esperado: StatusConcluido,
		},
		{
			nome: "término ontem com 50 por cento é atrasado",
			cronograma: Cronograma{
				PercentualConclusao: decimal.NewFromInt(50),
				DataInicio:          dataPtr(semanaPassada),
				DataTermino:         dataPtr(ontem),
			},
			esperado: StatusAtrasado,
		},
		{
			nome: "início hoje sem atraso é em andamento",
			cronograma: Cronograma{
				PercentualConclusao: decimal.NewFromInt(10),
				DataInicio:          dataPtr(hoje),
				DataTermino:         dataPtr(amanha),
			},
			esperado: StatusEmAndamento,
		},
		{
			nome: "início no passado e término no futuro é em andamento",
			cronograma: Cronograma{
				PercentualConclusao: decimal.Zero,
				DataInicio:          dataPtr(semanaPassada),
				DataTermino:         dataPtr(amanha),
			},
			esperado: StatusEmAndamento,
		},
		{
			nome: "sem datas e sem progresso é não iniciado",
			cronograma: Cronograma{
				PercentualConclusao: decimal.Zero,
			},
			esperado: StatusNaoIniciado,
		},
		{
			nome: "início no futuro é não iniciado",
			cronograma: Cronograma{
				PercentualConclusao: decimal.Zero,
				DataInicio:          dataPtr(amanha),
			},
			esperado: StatusNaoIniciado,
		},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			assert.Equal(t, caso.esperado, DerivarStatus(&caso.cronograma, hoje))
		})
	}
}

func TestDerivarStatusIdempotente(t *testing.T) {
	hoje := tipos.DataDe(2025, 6, 15)
	c := Cronograma{
		PercentualConclusao: decimal.NewFromInt(50),
		DataInicio:          dataPtr(hoje.AddDias(-10)),
		DataTermino:         dataPtr(hoje.AddDias(-1)),
	}

	AtualizarStatus(&c, hoje)
	primeiro := c.Status
	AtualizarStatus(&c, hoje)
	assert.Equal(t, primeiro, c.Status)
}

func TestRecalcularConclusao(t *testing.T) {
	t.Run("percentual é cem vezes concluídas sobre total", func(t *testing.T) {
		c := Cronograma{}
		tarefas := []Tarefa{
			{Concluida: true},
			{Concluida: true},
			{Concluida: false},
		}
		RecalcularConclusao(&c, tarefas)
		assert.True(t, c.PercentualConclusao.Equal(decimal.NewFromFloat(66.67)),
			"esperava 66.67, veio %s", c.PercentualConclusao)
	})

	t.Run("todas concluídas dá cem", func(t *testing.T) {
		c := Cronograma{}
		RecalcularConclusao(&c, []Tarefa{{Concluida: true}, {Concluida: true}})
		assert.True(t, c.PercentualConclusao.Equal(decimal.NewFromInt(100)))
	})

	t.Run("sem tarefas o percentual não muda", func(t *testing.T) {
		c := Cronograma{PercentualConclusao: decimal.NewFromInt(42)}
		RecalcularConclusao(&c, nil)
		assert.True(t, c.PercentualConclusao.Equal(decimal.NewFromInt(42)))
	})
}
