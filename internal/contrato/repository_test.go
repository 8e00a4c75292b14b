package contrato

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
	require.NoError(t, db.AutoMigrate(&Contrato{}))
	return db
}

func dataPtr(d tipos.Data) *tipos.Data {
	return &d
}

func TestCriarContrato(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	t.Run("status padrão é pendente", func(t *testing.T) {
		c := Contrato{PropostaID: 1, NumeroContrato: "C-001", Valor: decimal.NewFromInt(1000)}
		require.NoError(t, repo.Criar(&c))
		assert.Equal(t, StatusPendente, c.StatusPagamento)
	})

	t.Run("número duplicado responde conflito", func(t *testing.T) {
		c := Contrato{PropostaID: 2, NumeroContrato: "C-001"}
		assert.ErrorIs(t, repo.Criar(&c), erros.ErrConflito)
	})
}

func TestReconciliarVencidos(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	hoje := tipos.DataDe(2025, 6, 15)

	vencido := Contrato{PropostaID: 1, NumeroContrato: "C-010",
		DataVencimento: dataPtr(hoje.AddDias(-3)), StatusPagamento: StatusPendente}
	aindaNoPrazo := Contrato{PropostaID: 1, NumeroContrato: "C-011",
		DataVencimento: dataPtr(hoje.AddDias(3)), StatusPagamento: StatusPendente}
	pago := Contrato{PropostaID: 1, NumeroContrato: "C-012",
		DataVencimento: dataPtr(hoje.AddDias(-3)), StatusPagamento: StatusPago}
	require.NoError(t, repo.Criar(&vencido))
	require.NoError(t, repo.Criar(&aindaNoPrazo))
	require.NoError(t, repo.Criar(&pago))

	alterados, err := repo.ReconciliarVencidos(hoje)
	require.NoError(t, err)
	require.Len(t, alterados, 1)
	assert.Equal(t, "C-010", alterados[0].NumeroContrato)
	assert.Equal(t, StatusVencido, alterados[0].StatusPagamento)

	var depois Contrato
	require.NoError(t, db.First(&depois, vencido.ID).Error)
	assert.Equal(t, StatusVencido, depois.StatusPagamento)

	// Segunda chamada não encontra mais Pendentes no passado; o
	// Vencido já reconciliado fica como está.
	alterados, err = repo.ReconciliarVencidos(hoje)
	require.NoError(t, err)
	assert.Empty(t, alterados)
}

func TestVencendoJanela(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)
	hoje := tipos.DataDe(2025, 6, 15)

	dentro := Contrato{PropostaID: 1, NumeroContrato: "C-020",
		DataVencimento: dataPtr(hoje.AddDias(7)), StatusPagamento: StatusPendente}
	fora := Contrato{PropostaID: 1, NumeroContrato: "C-021",
		DataVencimento: dataPtr(hoje.AddDias(8)), StatusPagamento: StatusPendente}
	cancelado := Contrato{PropostaID: 1, NumeroContrato: "C-022",
		DataVencimento: dataPtr(hoje.AddDias(2)), StatusPagamento: StatusCancelado}
	require.NoError(t, repo.Criar(&dentro))
	require.NoError(t, repo.Criar(&fora))
	require.NoError(t, repo.Criar(&cancelado))

	contratos, err := repo.VencendoJanela(hoje)
	require.NoError(t, err)
	require.Len(t, contratos, 1)
	assert.Equal(t, "C-020", contratos[0].NumeroContrato)
}

func TestCalcularFaturamento(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	assinadoEmMaio := tipos.DataDe(2025, 5, 10)
	assinadoEmJunho := tipos.DataDe(2025, 6, 2)

	require.NoError(t, repo.Criar(&Contrato{PropostaID: 1, NumeroContrato: "C-030",
		DataAssinatura: dataPtr(assinadoEmMaio), Valor: decimal.NewFromInt(1000),
		StatusPagamento: StatusPago}))
	require.NoError(t, repo.Criar(&Contrato{PropostaID: 1, NumeroContrato: "C-031",
		DataAssinatura: dataPtr(assinadoEmMaio), Valor: decimal.NewFromInt(500),
		StatusPagamento: StatusPendente}))
	require.NoError(t, repo.Criar(&Contrato{PropostaID: 1, NumeroContrato: "C-032",
		DataAssinatura: dataPtr(assinadoEmJunho), Valor: decimal.NewFromInt(700),
		StatusPagamento: StatusPago}))

	t.Run("total geral", func(t *testing.T) {
		f, err := repo.CalcularFaturamento(0, 0)
		require.NoError(t, err)
		assert.Equal(t, "Total", f.Periodo)
		assert.Equal(t, 3, f.TotalContratos)
		assert.True(t, f.ValorTotal.Equal(decimal.NewFromInt(2200)))
		assert.True(t, f.ValorPago.Equal(decimal.NewFromInt(1700)))
		assert.True(t, f.ValorPendente.Equal(decimal.NewFromInt(500)))
	})

	t.Run("recorte por mês de assinatura", func(t *testing.T) {
		f, err := repo.CalcularFaturamento(2025, 5)
		require.NoError(t, err)
		assert.Equal(t, "2025/05", f.Periodo)
		assert.Equal(t, 2, f.TotalContratos)
		assert.Equal(t, 1, f.ContratosPagos)
		assert.True(t, f.TaxaPagamento.Equal(decimal.NewFromInt(50)))
	})
}
