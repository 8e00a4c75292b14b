package empresa

import (
	"testing"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Empresa{}))
	return db
}

func TestCriarEmpresa(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	t.Run("cria com cnpj novo", func(t *testing.T) {
		e := Empresa{CNPJ: "11.111.111/0001-11", Nome: "Alfa"}
		require.NoError(t, repo.Criar(&e))
		assert.NotZero(t, e.ID)
	})

	t.Run("cnpj duplicado responde conflito", func(t *testing.T) {
		e := Empresa{CNPJ: "11.111.111/0001-11", Nome: "Outra"}
		assert.ErrorIs(t, repo.Criar(&e), erros.ErrConflito)
	})
}

func TestAtualizarNaoMudaCNPJ(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	e := Empresa{CNPJ: "22.222.222/0001-22", Nome: "Beta", Regiao: "Sul"}
	require.NoError(t, repo.Criar(&e))

	atualizada, err := repo.Atualizar(e.ID, &Empresa{
		CNPJ:   "99.999.999/0001-99",
		Nome:   "Beta Renomeada",
		Regiao: "Sul",
	})
	require.NoError(t, err)

	assert.Equal(t, "Beta Renomeada", atualizada.Nome)
	assert.Equal(t, "22.222.222/0001-22", atualizada.CNPJ)
}

func TestBuscarPorIDInexistente(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	_, err := repo.BuscarPorID(404)
	assert.ErrorIs(t, err, erros.ErrNaoEncontrado)
}
