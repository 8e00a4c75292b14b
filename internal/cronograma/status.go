package cronograma

import (
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// RecalcularConclusao deriva o percentual de conclusão da proporção de
// tarefas concluídas, arredondado a 2 casas. Um cronograma sem tarefas
// mantém o percentual lançado manualmente.
func RecalcularConclusao(c *Cronograma, tarefas []Tarefa) {
	if len(tarefas) == 0 {
		return
	}
	concluidas := 0
	for _, t := range tarefas {
		if t.Concluida {
			concluidas++
		}
	}
	c.PercentualConclusao = decimal.NewFromInt(int64(concluidas)).
		Div(decimal.NewFromInt(int64(len(tarefas)))).
		Mul(cem).
		Round(2)
}

// DerivarStatus calcula o status a partir do percentual e das datas.
// As regras são avaliadas em ordem estrita; a primeira que casar vence:
//
//  1. percentual >= 100                          -> Concluído
//  2. data de término no passado e percentual<100 -> Atrasado
//  3. data de início já alcançada                 -> Em andamento
//  4. caso contrário                              -> Não iniciado
//
// Sem data de início e de término, um cronograma abaixo de 100% é
// sempre Não iniciado, mesmo com tarefas em curso.
func DerivarStatus(c *Cronograma, hoje tipos.Data) string {
	switch {
	case c.PercentualConclusao.GreaterThanOrEqual(cem):
		return StatusConcluido
	case c.DataTermino != nil && c.DataTermino.Time.Before(hoje.Time):
		return StatusAtrasado
	case c.DataInicio != nil && !c.DataInicio.Time.After(hoje.Time):
		return StatusEmAndamento
	default:
		return StatusNaoIniciado
	}
}

// AtualizarStatus aplica DerivarStatus no próprio cronograma. Deve ser
// chamado depois de qualquer mudança em datas, percentual ou tarefas.
func AtualizarStatus(c *Cronograma, hoje tipos.Data) {
	c.Status = DerivarStatus(c, hoje)
}
