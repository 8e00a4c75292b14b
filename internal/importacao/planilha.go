package importacao

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/xuri/excelize/v2"
)

// Tabela é uma planilha normalizada: cabeçalho e linhas com as células
// já aparadas.
type Tabela struct {
	Cabecalho []string
	Linhas    [][]string
}

// LerArquivo interpreta o upload conforme a extensão. CSV usa a
// primeira linha como cabeçalho; xlsx/xls usa a primeira aba.
func LerArquivo(nome string, conteudo []byte) (*Tabela, error) {
	switch {
	case strings.HasSuffix(nome, ".csv"):
		return lerCSV(conteudo)
	case strings.HasSuffix(nome, ".xlsx"), strings.HasSuffix(nome, ".xls"):
		return lerExcel(conteudo)
	default:
		return nil, fmt.Errorf("formato de arquivo inválido: use .xlsx, .xls ou .csv")
	}
}

// LerMatriz devolve a primeira aba crua, sem separar cabeçalho. É o
// formato que a grade de alocações espera.
func LerMatriz(nome string, conteudo []byte) ([][]string, error) {
	t, err := LerArquivo(nome, conteudo)
	if err != nil {
		return nil, err
	}
	return append([][]string{t.Cabecalho}, t.Linhas...), nil
}

func lerCSV(conteudo []byte) (*Tabela, error) {
	reader := csv.NewReader(bytes.NewReader(conteudo))
	reader.FieldsPerRecord = -1
	registros, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler CSV: %w", err)
	}
	if len(registros) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}
	return &Tabela{Cabecalho: apararLinha(registros[0]), Linhas: apararLinhas(registros[1:])}, nil
}

func lerExcel(conteudo []byte) (*Tabela, error) {
	f, err := excelize.OpenReader(bytes.NewReader(conteudo))
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir planilha: %w", err)
	}
	defer f.Close()

	abas := f.GetSheetList()
	if len(abas) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}
	linhas, err := f.GetRows(abas[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler aba %q: %w", abas[0], err)
	}
	if len(linhas) == 0 {
		return nil, fmt.Errorf("arquivo vazio")
	}
	return &Tabela{Cabecalho: apararLinha(linhas[0]), Linhas: apararLinhas(linhas[1:])}, nil
}

func apararLinha(linha []string) []string {
	saida := make([]string, len(linha))
	for i, c := range linha {
		saida[i] = strings.TrimSpace(c)
	}
	return saida
}

func apararLinhas(linhas [][]string) [][]string {
	saida := make([][]string, len(linhas))
	for i, l := range linhas {
		saida[i] = apararLinha(l)
	}
	return saida
}

// Colunas resolve, uma única vez por importação, o índice de cada campo
// alvo a partir de uma lista ordenada de nomes candidatos no cabeçalho.
// Planilhas antigas e novas usam nomes diferentes para a mesma coluna;
// o primeiro candidato presente vence.
type Colunas struct {
	indices map[string]int
}

func ResolverColunas(cabecalho []string, candidatos map[string][]string) Colunas {
	posicao := map[string]int{}
	for i, nome := range cabecalho {
		chave := strings.ToUpper(strings.TrimSpace(nome))
		if _, ok := posicao[chave]; !ok {
			posicao[chave] = i
		}
	}

	c := Colunas{indices: map[string]int{}}
	for campo, nomes := range candidatos {
		for _, nome := range nomes {
			if idx, ok := posicao[strings.ToUpper(nome)]; ok {
				c.indices[campo] = idx
				break
			}
		}
	}
	return c
}

// Valor lê a célula do campo na linha. Devolve vazio quando a coluna
// não existe, a célula está fora da linha ou contém um marcador de
// ausência ("nan", "none").
func (c Colunas) Valor(linha []string, campo string) string {
	idx, ok := c.indices[campo]
	if !ok || idx >= len(linha) {
		return ""
	}
	v := strings.TrimSpace(linha[idx])
	switch strings.ToLower(v) {
	case "nan", "none", "null":
		return ""
	}
	return v
}

// parseData aceita os formatos de data que as planilhas da operação
// produzem, inclusive o serial numérico do Excel.
func parseData(s string) (tipos.Data, error) {
	layouts := []string{"2006-01-02", "02/01/2006", "02/01/06", "2006-01-02 15:04:05", "2/1/2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return tipos.NovaData(t), nil
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		base := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
		return tipos.NovaData(base.AddDate(0, 0, int(serial))), nil
	}
	return tipos.Data{}, fmt.Errorf("data inválida: %q", s)
}
