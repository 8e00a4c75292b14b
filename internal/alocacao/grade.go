package alocacao

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"gorm.io/gorm"
)

// Layout fixo da planilha de cronograma: datas na linha 7 a partir da
// coluna E; consultores a partir da linha 13, com nome na coluna B,
// NIF na coluna C e período (M/T) na coluna D. Os índices abaixo são
// zero-based sobre a matriz extraída da planilha.
const (
	linhaDatas       = 6
	colPrimeiraData  = 4
	linhaPrimeiroCon = 12
	colNome          = 1
	colNIF           = 2
	colPeriodo       = 3

	rotuloCabecalho = "CONSULTORES"
)

// ResultadoGrade resume uma importação da grade.
type ResultadoGrade struct {
	DatasEncontradas   int `json:"datas_encontradas"`
	ConsultoresCriados int `json:"consultores_criados"`
	AlocacoesCriadas   int `json:"alocacoes_criadas"`
}

// ImportarGrade recarrega a grade inteira a partir da matriz da
// planilha.
//
// ATENÇÃO: a reimportação é destrutiva — todas as alocações atuais são
// removidas e a grade é reconstruída do zero a partir da planilha.
// Clear e reload rodam dentro de uma única transação: se qualquer
// linha falhar, a grade anterior permanece intacta.
//
// Consultores ausentes são criados na hora, com email sintetizado do
// NIF. Dentro da planilha a importação é aditiva: um slot repetido é
// ignorado, nunca sobrescrito.
func (r *Repository) ImportarGrade(matriz [][]string) (*ResultadoGrade, error) {
	if len(matriz) <= linhaDatas {
		return nil, fmt.Errorf("planilha sem a linha de datas (linha %d)", linhaDatas+1)
	}

	datas, err := extrairDatas(matriz[linhaDatas])
	if err != nil {
		return nil, err
	}
	if len(datas) == 0 {
		return nil, fmt.Errorf("nenhuma data encontrada no cabeçalho da grade")
	}

	resultado := &ResultadoGrade{DatasEncontradas: len(datas)}

	err = r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&Alocacao{}).Error; err != nil {
			return err
		}

		conhecidos := map[string]*consultor.Consultor{}
		ocupados := map[string]bool{}

		for i := linhaPrimeiroCon; i < len(matriz); i++ {
			linha := matriz[i]
			nome := celula(linha, colNome)
			nif := celula(linha, colNIF)
			periodo := celula(linha, colPeriodo)

			if nome == "" || nome == rotuloCabecalho {
				continue
			}
			if nif == "" || !PeriodoValido(periodo) {
				continue
			}

			c, ok := conhecidos[nif]
			if !ok {
				c, err = r.Consultores.BuscarPorNIF(tx, nif)
				if err != nil && !errors.Is(err, erros.ErrNaoEncontrado) {
					return err
				}
				if err != nil {
					c = &consultor.Consultor{
						Nome:  nome,
						NIF:   nif,
						Email: emailDoNIF(nif),
						Ativo: true,
					}
					if err := tx.Create(c).Error; err != nil {
						return err
					}
					resultado.ConsultoresCriados++
				}
				conhecidos[nif] = c
			}

			for idx, data := range datas {
				codigo := celula(linha, colPrimeiraData+idx)
				if codigo == "" {
					continue
				}
				chave := fmt.Sprintf("%d|%s|%s", c.ID, data.String(), periodo)
				if ocupados[chave] {
					continue
				}
				a := Alocacao{
					ConsultorID:   c.ID,
					Data:          data,
					Periodo:       periodo,
					CodigoProjeto: codigo,
					NIF:           nif,
				}
				if err := tx.Create(&a).Error; err != nil {
					return err
				}
				ocupados[chave] = true
				resultado.AlocacoesCriadas++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// extrairDatas lê o cabeçalho de datas da grade, parando na primeira
// célula vazia.
func extrairDatas(linha []string) ([]tipos.Data, error) {
	var datas []tipos.Data
	for col := colPrimeiraData; col < len(linha); col++ {
		bruto := strings.TrimSpace(linha[col])
		if bruto == "" {
			break
		}
		data, err := parseDataCelula(bruto)
		if err != nil {
			return nil, fmt.Errorf("coluna %d: %w", col+1, err)
		}
		datas = append(datas, data)
	}
	return datas, nil
}

// parseDataCelula aceita os formatos de data que o Excel produz para a
// mesma célula: ISO, formatos brasileiros e o serial numérico.
func parseDataCelula(s string) (tipos.Data, error) {
	layouts := []string{"2006-01-02", "02/01/2006", "02/01/06", "01-02-06", "2/1/2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return tipos.NovaData(t), nil
		}
	}
	// Serial do Excel: dias corridos desde 30/12/1899.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		base := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
		return tipos.NovaData(base.AddDate(0, 0, int(serial))), nil
	}
	return tipos.Data{}, fmt.Errorf("célula de data inválida: %q", s)
}

func celula(linha []string, col int) string {
	if col >= len(linha) {
		return ""
	}
	return strings.TrimSpace(linha[col])
}

// emailDoNIF sintetiza o contato de consultores criados pela grade.
func emailDoNIF(nif string) string {
	return strings.ToLower(strings.ReplaceAll(nif, "-", "")) + "@sistema.com"
}
