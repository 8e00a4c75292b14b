package importacao

import (
	"testing"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/contrato"
	"github.com/JEFConsultoria/api-gestao/internal/cronograma"
	"github.com/JEFConsultoria/api-gestao/internal/empresa"
	"github.com/JEFConsultoria/api-gestao/internal/proposta"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&empresa.Empresa{},
		&consultor.Consultor{},
		&proposta.Proposta{},
		&cronograma.Cronograma{},
		&cronograma.Tarefa{},
		&contrato.Contrato{},
	))
	return db
}

func novoService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := abrirBanco(t)
	return NewService(db, zap.NewNop()), db
}

func TestImportarEmpresas(t *testing.T) {
	service, db := novoService(t)

	tabela := &Tabela{
		Cabecalho: []string{"CNPJ", "EMPRESA", "SEGMENTO", "REGIAO"},
		Linhas: [][]string{
			{"11.111.111/0001-11", "Metalúrgica Alfa", "Metalurgia", "Sul"},
			{"", "Sem CNPJ Ltda"},
			{"nan", "CNPJ ausente"},
			{"11.111.111/0001-11", "Duplicada"},
		},
	}

	resultado, err := service.ImportarEmpresas(tabela)
	require.NoError(t, err)
	assert.True(t, resultado.Sucesso)
	assert.Equal(t, 1, resultado.RegistrosImportados)
	assert.Empty(t, resultado.Erros)

	var total int64
	require.NoError(t, db.Model(&empresa.Empresa{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)

	var e empresa.Empresa
	require.NoError(t, db.Where("cnpj = ?", "11.111.111/0001-11").First(&e).Error)
	assert.Equal(t, "Metalúrgica Alfa", e.Nome)
	assert.Equal(t, "Sul", e.Regiao)
}

func TestImportarPropostasCriaEmpresaAusente(t *testing.T) {
	service, db := novoService(t)

	tabela := &Tabela{
		Cabecalho: []string{"Nº PROPOSTA", "CNPJ", "EMPRESA", "STATUS", "VALOR_PROPOSTA"},
		Linhas: [][]string{
			{"P-100", "22.222.222/0001-22", "Indústria Beta", "Em andamento", "15000.50"},
		},
	}

	resultado, err := service.ImportarPropostas(tabela)
	require.NoError(t, err)
	assert.Equal(t, 1, resultado.RegistrosImportados)

	var e empresa.Empresa
	require.NoError(t, db.Where("cnpj = ?", "22.222.222/0001-22").First(&e).Error)
	assert.Equal(t, "Indústria Beta", e.Nome)

	var p proposta.Proposta
	require.NoError(t, db.Where("numero_proposta = ?", "P-100").First(&p).Error)
	assert.Equal(t, e.ID, p.EmpresaID)
	assert.True(t, p.ValorProposta.Equal(decimal.NewFromFloat(15000.50)))

	// Reimportar a mesma linha não cria nem empresa nem proposta.
	resultado, err = service.ImportarPropostas(tabela)
	require.NoError(t, err)
	assert.Equal(t, 0, resultado.RegistrosImportados)

	var empresas, propostas int64
	require.NoError(t, db.Model(&empresa.Empresa{}).Count(&empresas).Error)
	require.NoError(t, db.Model(&proposta.Proposta{}).Count(&propostas).Error)
	assert.EqualValues(t, 1, empresas)
	assert.EqualValues(t, 1, propostas)
}

func TestImportarPropostasResolveConsultorPorNome(t *testing.T) {
	service, db := novoService(t)
	c := consultor.Consultor{Nome: "Maria", Email: "maria@teste.com", Ativo: true}
	require.NoError(t, db.Create(&c).Error)

	tabela := &Tabela{
		Cabecalho: []string{"NUMERO_PROPOSTA", "CNPJ", "EMPRESA", "CONSULTOR"},
		Linhas: [][]string{
			{"P-200", "33.333.333/0001-33", "Gama SA", "Maria"},
			{"P-201", "33.333.333/0001-33", "Gama SA", "Desconhecido"},
		},
	}

	resultado, err := service.ImportarPropostas(tabela)
	require.NoError(t, err)
	assert.Equal(t, 2, resultado.RegistrosImportados)

	var comConsultor proposta.Proposta
	require.NoError(t, db.Where("numero_proposta = ?", "P-200").First(&comConsultor).Error)
	require.NotNil(t, comConsultor.ConsultorID)
	assert.Equal(t, c.ID, *comConsultor.ConsultorID)

	var semConsultor proposta.Proposta
	require.NoError(t, db.Where("numero_proposta = ?", "P-201").First(&semConsultor).Error)
	assert.Nil(t, semConsultor.ConsultorID)
}

func TestImportarCronogramasExigeProposta(t *testing.T) {
	service, db := novoService(t)

	e := empresa.Empresa{CNPJ: "44.444.444/0001-44", Nome: "Delta"}
	require.NoError(t, db.Create(&e).Error)
	p := proposta.Proposta{NumeroProposta: "P-300", EmpresaID: e.ID, Status: proposta.StatusEmAndamento}
	require.NoError(t, db.Create(&p).Error)

	tabela := &Tabela{
		Cabecalho: []string{"Nº PROPOSTA", "DATA_INICIO", "DATA_TERMINO", "HORAS_PREVISTAS"},
		Linhas: [][]string{
			{"P-300", "2025-03-01", "2025-05-30", "120"},
			{"P-999", "2025-03-01", "2025-05-30", "80"},
		},
	}

	resultado, err := service.ImportarCronogramas(tabela)
	require.NoError(t, err)
	assert.Equal(t, 1, resultado.RegistrosImportados)
	require.Len(t, resultado.Erros, 1)
	assert.Equal(t, "Linha 3: Proposta P-999 não encontrada", resultado.Erros[0])

	var c cronograma.Cronograma
	require.NoError(t, db.Where("proposta_id = ?", p.ID).First(&c).Error)
	assert.Equal(t, "2025-03-01", c.DataInicio.String())
	assert.Equal(t, "2025-05-30", c.DataTermino.String())
	assert.True(t, c.HorasPrevistas.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, cronograma.StatusNaoIniciado, c.Status)
}

func TestResolverColunasUsaPrimeiroCandidato(t *testing.T) {
	colunas := ResolverColunas(
		[]string{"NUMERO_PROPOSTA", "Nº PROPOSTA", "CNPJ"},
		map[string][]string{
			"numero": {"Nº PROPOSTA", "NUMERO_PROPOSTA"},
			"cnpj":   {"CNPJ"},
			"valor":  {"VALOR_PROPOSTA"},
		})

	linha := []string{"antigo", "novo", "55.555.555/0001-55"}
	assert.Equal(t, "novo", colunas.Valor(linha, "numero"))
	assert.Equal(t, "55.555.555/0001-55", colunas.Valor(linha, "cnpj"))
	assert.Equal(t, "", colunas.Valor(linha, "valor"))
}

func TestValorTrataMarcadoresDeAusencia(t *testing.T) {
	colunas := ResolverColunas([]string{"CNPJ"}, map[string][]string{"cnpj": {"CNPJ"}})

	assert.Equal(t, "", colunas.Valor([]string{"nan"}, "cnpj"))
	assert.Equal(t, "", colunas.Valor([]string{"None"}, "cnpj"))
	assert.Equal(t, "", colunas.Valor([]string{"  "}, "cnpj"))
	assert.Equal(t, "", colunas.Valor([]string{}, "cnpj"))
	assert.Equal(t, "x", colunas.Valor([]string{" x "}, "cnpj"))
}

func TestLerArquivoCSV(t *testing.T) {
	conteudo := []byte("CNPJ,EMPRESA\n11.111.111/0001-11,Alfa\n")
	tabela, err := LerArquivo("empresas.csv", conteudo)
	require.NoError(t, err)
	assert.Equal(t, []string{"CNPJ", "EMPRESA"}, tabela.Cabecalho)
	require.Len(t, tabela.Linhas, 1)
	assert.Equal(t, "Alfa", tabela.Linhas[0][1])
}

func TestLerArquivoRejeitaExtensao(t *testing.T) {
	_, err := LerArquivo("dados.txt", []byte("x"))
	assert.Error(t, err)
}
