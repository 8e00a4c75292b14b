package alocacao

import (
	"testing"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matrizMinima monta uma planilha com a linha de datas na posição
// esperada e uma única linha de consultor.
func matrizMinima(nome, nif, periodo string, datas []string, codigos []string) [][]string {
	matriz := make([][]string, linhaPrimeiroCon+1)
	for i := range matriz {
		matriz[i] = []string{}
	}

	linhaDeDatas := make([]string, colPrimeiraData+len(datas))
	copy(linhaDeDatas[colPrimeiraData:], datas)
	matriz[linhaDatas] = linhaDeDatas

	linhaConsultor := make([]string, colPrimeiraData+len(codigos))
	linhaConsultor[colNome] = nome
	linhaConsultor[colNIF] = nif
	linhaConsultor[colPeriodo] = periodo
	copy(linhaConsultor[colPrimeiraData:], codigos)
	matriz[linhaPrimeiroCon] = linhaConsultor

	return matriz
}

func TestImportarGradeCriaConsultorEAlocacao(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	matriz := matrizMinima("Fulano", "X-1", "M",
		[]string{"2025-06-10"}, []string{"PROJ-A"})

	resultado, err := repo.ImportarGrade(matriz)
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.DatasEncontradas)
	assert.Equal(t, 1, resultado.ConsultoresCriados)
	assert.Equal(t, 1, resultado.AlocacoesCriadas)

	var alocacoes []Alocacao
	require.NoError(t, db.Find(&alocacoes).Error)
	require.Len(t, alocacoes, 1)
	assert.Equal(t, "PROJ-A", alocacoes[0].CodigoProjeto)
	assert.Equal(t, "X-1", alocacoes[0].NIF)
	assert.Equal(t, "M", alocacoes[0].Periodo)
	assert.Equal(t, "2025-06-10", alocacoes[0].Data.String())

	var criado consultor.Consultor
	require.NoError(t, db.Where("nif = ?", "X-1").First(&criado).Error)
	assert.Equal(t, "Fulano", criado.Nome)
	assert.Equal(t, "x1@sistema.com", criado.Email)
	assert.True(t, criado.Ativo)
}

func TestImportarGradeReimportacaoReproduzAGrade(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	matriz := matrizMinima("Fulano", "X-1", "M",
		[]string{"2025-06-10"}, []string{"PROJ-A"})

	_, err := repo.ImportarGrade(matriz)
	require.NoError(t, err)

	resultado, err := repo.ImportarGrade(matriz)
	require.NoError(t, err)

	// A reimportação zera e reconstrói: uma alocação, nenhum consultor
	// novo.
	assert.Equal(t, 1, resultado.AlocacoesCriadas)
	assert.Equal(t, 0, resultado.ConsultoresCriados)

	var total int64
	require.NoError(t, db.Model(&Alocacao{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)

	var consultores int64
	require.NoError(t, db.Model(&consultor.Consultor{}).Count(&consultores).Error)
	assert.EqualValues(t, 1, consultores)
}

func TestImportarGradeIgnoraLinhaDeCabecalhoECelulasVazias(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	matriz := matrizMinima("Fulano", "X-1", "M",
		[]string{"2025-06-10", "2025-06-11"}, []string{"", "PROJ-B"})
	matriz = append(matriz, []string{"", rotuloCabecalho})
	linhaTarde := make([]string, colPrimeiraData+2)
	linhaTarde[colNome] = "Fulano"
	linhaTarde[colNIF] = "X-1"
	linhaTarde[colPeriodo] = "T"
	linhaTarde[colPrimeiraData] = "PROJ-C"
	matriz = append(matriz, linhaTarde)

	resultado, err := repo.ImportarGrade(matriz)
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.DatasEncontradas)
	assert.Equal(t, 1, resultado.ConsultoresCriados)
	assert.Equal(t, 2, resultado.AlocacoesCriadas)

	alocacoes, err := repo.Listar(Filtro{})
	require.NoError(t, err)
	require.Len(t, alocacoes, 2)
	assert.Equal(t, "PROJ-C", alocacoes[0].CodigoProjeto)
	assert.Equal(t, "T", alocacoes[0].Periodo)
	assert.Equal(t, "PROJ-B", alocacoes[1].CodigoProjeto)
}

func TestImportarGradeSemLinhaDeDatasFalha(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	_, err := repo.ImportarGrade([][]string{{"só uma linha"}})
	assert.Error(t, err)
}

func TestImportarGradeDatasBrasileirasESerial(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository(db)

	// 45819 é 2025-06-11 no serial do Excel.
	matriz := matrizMinima("Fulano", "X-1", "M",
		[]string{"10/06/2025", "45819"}, []string{"PROJ-A", "PROJ-B"})

	resultado, err := repo.ImportarGrade(matriz)
	require.NoError(t, err)
	assert.Equal(t, 2, resultado.DatasEncontradas)

	alocacoes, err := repo.Listar(Filtro{})
	require.NoError(t, err)
	require.Len(t, alocacoes, 2)
	assert.Equal(t, "2025-06-10", alocacoes[0].Data.String())
	assert.Equal(t, "2025-06-11", alocacoes[1].Data.String())
}
