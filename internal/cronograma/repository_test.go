package cronograma

import (
	"testing"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Cronograma{}, &Tarefa{}))
	return db
}

func TestAdicionarTarefaRecalculaProgresso(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	hoje := tipos.DataDe(2025, 6, 15)

	c := Cronograma{PropostaID: 1, Status: StatusNaoIniciado}
	require.NoError(t, repo.Criar(&c))

	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "levantamento", Concluida: true, Ordem: 1}, hoje))
	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "execução", Ordem: 2}, hoje))

	depois, err := repo.BuscarPorID(c.ID)
	require.NoError(t, err)
	assert.True(t, depois.PercentualConclusao.Equal(decimal.NewFromInt(50)),
		"esperava 50, veio %s", depois.PercentualConclusao)
}

func TestCalcularProgressoTodasConcluidas(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	hoje := tipos.DataDe(2025, 6, 15)

	c := Cronograma{PropostaID: 1, Status: StatusEmAndamento}
	require.NoError(t, repo.Criar(&c))
	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "a", Concluida: true}, hoje))
	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "b", Concluida: true}, hoje))

	progresso, err := repo.CalcularProgresso(c.ID, hoje)
	require.NoError(t, err)
	assert.Equal(t, 2, progresso.TotalTarefas)
	assert.Equal(t, 2, progresso.TarefasConcluidas)
	assert.True(t, progresso.PercentualConclusao.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, StatusConcluido, progresso.Status)
}

func TestListarTarefasOrdenadas(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	hoje := tipos.DataDe(2025, 6, 15)

	c := Cronograma{PropostaID: 1}
	require.NoError(t, repo.Criar(&c))
	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "terceira", Ordem: 3}, hoje))
	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "primeira", Ordem: 1}, hoje))
	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "empate inserida antes", Ordem: 2}, hoje))
	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "empate inserida depois", Ordem: 2}, hoje))

	tarefas, err := repo.ListarTarefas(c.ID)
	require.NoError(t, err)
	require.Len(t, tarefas, 4)
	assert.Equal(t, "primeira", tarefas[0].Descricao)
	assert.Equal(t, "empate inserida antes", tarefas[1].Descricao)
	assert.Equal(t, "empate inserida depois", tarefas[2].Descricao)
	assert.Equal(t, "terceira", tarefas[3].Descricao)
}

func TestAtualizarParcialRederivaStatus(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	hoje := tipos.DataDe(2025, 6, 15)
	ontem := hoje.AddDias(-1)

	c := Cronograma{PropostaID: 1, Status: StatusNaoIniciado}
	require.NoError(t, repo.Criar(&c))

	atualizado, err := repo.AtualizarParcial(c.ID, &CronogramaUpdate{DataTermino: &ontem}, hoje)
	require.NoError(t, err)
	assert.Equal(t, StatusAtrasado, atualizado.Status)
}

func TestDeletarRemoveTarefasEmCascata(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	hoje := tipos.DataDe(2025, 6, 15)

	c := Cronograma{PropostaID: 1}
	require.NoError(t, repo.Criar(&c))
	require.NoError(t, repo.AdicionarTarefa(c.ID, &Tarefa{Descricao: "única"}, hoje))

	require.NoError(t, repo.Deletar(c.ID))

	_, err := repo.BuscarPorID(c.ID)
	assert.ErrorIs(t, err, erros.ErrNaoEncontrado)

	var tarefas int64
	require.NoError(t, db.Model(&Tarefa{}).Where("cronograma_id = ?", c.ID).Count(&tarefas).Error)
	assert.Zero(t, tarefas)
}

func TestAlertasJanela(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	hoje := tipos.DataDe(2025, 6, 15)

	vencendo := Cronograma{PropostaID: 1, DataTermino: dataPtr(hoje.AddDias(6)), Status: StatusEmAndamento}
	atrasado := Cronograma{PropostaID: 1, DataTermino: dataPtr(hoje.AddDias(-1)), Status: StatusAtrasado}
	concluido := Cronograma{PropostaID: 1, DataTermino: dataPtr(hoje.AddDias(-1)), Status: StatusConcluido}
	longe := Cronograma{PropostaID: 1, DataTermino: dataPtr(hoje.AddDias(30)), Status: StatusEmAndamento}
	for _, c := range []*Cronograma{&vencendo, &atrasado, &concluido, &longe} {
		require.NoError(t, repo.Criar(c))
	}

	alertas, err := repo.AlertasJanela(hoje)
	require.NoError(t, err)
	require.Len(t, alertas, 2)
	assert.Equal(t, vencendo.ID, alertas[0].ID)
	assert.Equal(t, atrasado.ID, alertas[1].ID)
}
