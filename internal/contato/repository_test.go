package contato

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
	require.NoError(t, db.AutoMigrate(&Contato{}))
	return db
}

func TestCriarNuncaMarcaDadosIniciais(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	c := Contato{Empresa: "Alfa", DadosIniciais: true}
	require.NoError(t, repo.Criar(&c))
	assert.False(t, c.DadosIniciais)
}

func TestDadosIniciaisSaoImutaveis(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	seed := Contato{Empresa: "Carga Inicial SA", DadosIniciais: true}
	require.NoError(t, db.Create(&seed).Error)

	t.Run("atualização responde proibido", func(t *testing.T) {
		nome := "Novo Nome"
		_, err := repo.Atualizar(seed.ID, &ContatoUpdate{Empresa: &nome})
		assert.ErrorIs(t, err, erros.ErrProibido)
	})

	t.Run("exclusão responde proibido", func(t *testing.T) {
		assert.ErrorIs(t, repo.Deletar(seed.ID), erros.ErrProibido)
	})

	t.Run("registro manual segue editável", func(t *testing.T) {
		manual := Contato{Empresa: "Manual Ltda"}
		require.NoError(t, repo.Criar(&manual))

		nome := "Manual Atualizada"
		atualizado, err := repo.Atualizar(manual.ID, &ContatoUpdate{Empresa: &nome})
		require.NoError(t, err)
		assert.Equal(t, "Manual Atualizada", atualizado.Empresa)
		assert.NoError(t, repo.Deletar(manual.ID))
	})
}

func TestListarComFiltros(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	registros := []Contato{
		{Empresa: "Zeta Metal", CNPJ: "11.111.111/0001-11", Porte: "Grande", ER: "Sul", Carteira: "A"},
		{Empresa: "Alfa Papel", CNPJ: "22.222.222/0001-22", Porte: "Pequeno", ER: "Norte", Carteira: "B"},
		{Empresa: "Beta Metal", CNPJ: "33.333.333/0001-33", Porte: "Grande", ER: "Sul", Carteira: "A"},
	}
	for i := range registros {
		require.NoError(t, db.Create(&registros[i]).Error)
	}

	t.Run("ordena por empresa", func(t *testing.T) {
		contatos, err := repo.Listar(Filtro{})
		require.NoError(t, err)
		require.Len(t, contatos, 3)
		assert.Equal(t, "Alfa Papel", contatos[0].Empresa)
		assert.Equal(t, "Zeta Metal", contatos[2].Empresa)
	})

	t.Run("busca parcial ignora caixa", func(t *testing.T) {
		contatos, err := repo.Listar(Filtro{Busca: "metal"})
		require.NoError(t, err)
		assert.Len(t, contatos, 2)
	})

	t.Run("filtros exatos combinam", func(t *testing.T) {
		contatos, err := repo.Listar(Filtro{Porte: "Grande", ER: "Sul"})
		require.NoError(t, err)
		assert.Len(t, contatos, 2)
	})

	t.Run("valores de filtro distintos e ordenados", func(t *testing.T) {
		valores, err := repo.ListarValoresFiltro()
		require.NoError(t, err)
		assert.Equal(t, []string{"Grande", "Pequeno"}, valores.Portes)
		assert.Equal(t, []string{"Norte", "Sul"}, valores.ERs)
		assert.Equal(t, []string{"A", "B"}, valores.Carteiras)
	})
}
