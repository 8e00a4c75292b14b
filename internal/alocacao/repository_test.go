package alocacao

import (
	"fmt"
	"testing"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&consultor.Consultor{}, &Alocacao{}))
	return db
}

func criarConsultor(t *testing.T, db *gorm.DB, nome, nif string) *consultor.Consultor {
	t.Helper()
	c := &consultor.Consultor{Nome: nome, NIF: nif, Email: nif + "@teste.com", Ativo: true}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestCriarAlocacao(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	c := criarConsultor(t, db, "Ana", "A-1")
	data := tipos.DataDe(2025, 6, 10)

	t.Run("cria e copia o NIF do consultor", func(t *testing.T) {
		a, err := repo.Criar(&NovaAlocacao{
			ConsultorID:   c.ID,
			Data:          data,
			Periodo:       PeriodoManha,
			CodigoProjeto: "C-PRODMEC",
		})
		require.NoError(t, err)
		assert.Equal(t, "A-1", a.NIF)
		assert.Equal(t, "C-PRODMEC", a.CodigoProjeto)
	})

	t.Run("slot ocupado responde conflito", func(t *testing.T) {
		_, err := repo.Criar(&NovaAlocacao{ConsultorID: c.ID, Data: data, Periodo: PeriodoManha})
		assert.ErrorIs(t, err, erros.ErrConflito)
	})

	t.Run("mesmo dia em outro período é aceito", func(t *testing.T) {
		_, err := repo.Criar(&NovaAlocacao{ConsultorID: c.ID, Data: data, Periodo: PeriodoTarde})
		assert.NoError(t, err)
	})

	t.Run("consultor inexistente responde não encontrado", func(t *testing.T) {
		_, err := repo.Criar(&NovaAlocacao{ConsultorID: 9999, Data: data, Periodo: PeriodoManha})
		assert.ErrorIs(t, err, erros.ErrNaoEncontrado)
	})

	t.Run("período fora de M e T é inválido", func(t *testing.T) {
		_, err := repo.Criar(&NovaAlocacao{ConsultorID: c.ID, Data: data, Periodo: "X"})
		assert.ErrorIs(t, err, erros.ErrValidacao)
	})
}

func TestAtualizarSoMudaCamposMutaveis(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	c := criarConsultor(t, db, "Bia", "B-1")

	a, err := repo.Criar(&NovaAlocacao{
		ConsultorID:   c.ID,
		Data:          tipos.DataDe(2025, 6, 10),
		Periodo:       PeriodoManha,
		CodigoProjeto: "K-KAMAPRI2",
	})
	require.NoError(t, err)

	codigo := "C-OUTRO"
	obs := "remanejado"
	atualizado, err := repo.Atualizar(a.ID, &AlocacaoUpdate{CodigoProjeto: &codigo, Observacao: &obs})
	require.NoError(t, err)
	assert.Equal(t, "C-OUTRO", atualizado.CodigoProjeto)
	assert.Equal(t, "remanejado", atualizado.Observacao)
	assert.Equal(t, a.Data.String(), atualizado.Data.String())
	assert.Equal(t, a.Periodo, atualizado.Periodo)
}

func TestListarOrdenaPorDataEPeriodo(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	c := criarConsultor(t, db, "Caio", "C-1")

	dia10 := tipos.DataDe(2025, 6, 10)
	dia11 := tipos.DataDe(2025, 6, 11)
	for _, slot := range []NovaAlocacao{
		{ConsultorID: c.ID, Data: dia11, Periodo: PeriodoTarde},
		{ConsultorID: c.ID, Data: dia10, Periodo: PeriodoTarde},
		{ConsultorID: c.ID, Data: dia11, Periodo: PeriodoManha},
		{ConsultorID: c.ID, Data: dia10, Periodo: PeriodoManha},
	} {
		_, err := repo.Criar(&slot)
		require.NoError(t, err)
	}

	alocacoes, err := repo.Listar(Filtro{})
	require.NoError(t, err)
	require.Len(t, alocacoes, 4)

	assert.Equal(t, dia10.String(), alocacoes[0].Data.String())
	assert.Equal(t, PeriodoManha, alocacoes[0].Periodo)
	assert.Equal(t, dia10.String(), alocacoes[1].Data.String())
	assert.Equal(t, PeriodoTarde, alocacoes[1].Periodo)
	assert.Equal(t, dia11.String(), alocacoes[2].Data.String())
	assert.Equal(t, PeriodoManha, alocacoes[2].Periodo)
}

func TestEstatisticasTopDezProjetos(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	c := criarConsultor(t, db, "Dora", "D-1")

	// 15 projetos com contagens 15, 14, ..., 1: cada projeto PROJ-NN
	// recebe NN alocações espalhadas por dias distintos.
	dia := tipos.DataDe(2025, 1, 1)
	for projeto := 1; projeto <= 15; projeto++ {
		for ocorrencia := 0; ocorrencia < projeto; ocorrencia++ {
			_, err := repo.Criar(&NovaAlocacao{
				ConsultorID:   c.ID,
				Data:          dia,
				Periodo:       PeriodoManha,
				CodigoProjeto: fmt.Sprintf("PROJ-%02d", projeto),
			})
			require.NoError(t, err)
			dia = dia.AddDias(1)
		}
	}

	est, err := repo.CalcularEstatisticas(Filtro{})
	require.NoError(t, err)

	assert.Equal(t, 120, est.TotalAlocacoes)
	require.Len(t, est.TopProjetos, 10)
	assert.Equal(t, "PROJ-15", est.TopProjetos[0].Projeto)
	assert.Equal(t, 15, est.TopProjetos[0].Total)
	assert.Equal(t, "PROJ-06", est.TopProjetos[9].Projeto)
	assert.Equal(t, 6, est.TopProjetos[9].Total)

	require.Len(t, est.PorConsultor, 1)
	assert.Equal(t, "Dora", est.PorConsultor[0].Nome)
	assert.Equal(t, 120, est.PorConsultor[0].Total)
}

func TestEstatisticasIgnoraProjetoVazio(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	c := criarConsultor(t, db, "Eva", "E-1")

	_, err := repo.Criar(&NovaAlocacao{
		ConsultorID: c.ID,
		Data:        tipos.DataDe(2025, 6, 10),
		Periodo:     PeriodoManha,
	})
	require.NoError(t, err)

	est, err := repo.CalcularEstatisticas(Filtro{})
	require.NoError(t, err)
	assert.Equal(t, 1, est.TotalAlocacoes)
	assert.Empty(t, est.TopProjetos)
}
