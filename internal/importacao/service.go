// Package importacao concilia planilhas com o grafo de entidades:
// linhas novas entram, duplicadas (pela chave natural) são puladas e
// pais ausentes são criados na hora. Nenhum erro de linha aborta o
// lote; cada um é registrado com o número da linha e a importação
// segue.
package importacao

import (
	"fmt"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/cronograma"
	"github.com/JEFConsultoria/api-gestao/internal/empresa"
	"github.com/JEFConsultoria/api-gestao/internal/proposta"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{DB: db, Logger: logger}
}

// Resultado resume um lote importado.
type Resultado struct {
	Sucesso             bool     `json:"sucesso"`
	RegistrosImportados int      `json:"registros_importados"`
	Erros               []string `json:"erros"`
}

func novoResultado() *Resultado {
	return &Resultado{Sucesso: true, Erros: []string{}}
}

// Os mapeamentos abaixo traduzem cabeçalhos de planilha para campos.
// Cada campo lista os nomes candidatos em ordem de preferência, porque
// as planilhas da operação mudaram de nomenclatura ao longo do tempo.
var (
	colunasEmpresa = map[string][]string{
		"cnpj":     {"CNPJ"},
		"nome":     {"EMPRESA", "NOME"},
		"segmento": {"SEGMENTO"},
		"regiao":   {"REGIAO", "REGIÃO"},
		"er":       {"ER"},
	}

	colunasProposta = map[string][]string{
		"numero":    {"Nº PROPOSTA", "NUMERO_PROPOSTA"},
		"cnpj":      {"CNPJ"},
		"empresa":   {"EMPRESA"},
		"consultor": {"CONSULTOR"},
		"solucao":   {"SOLUÇÃO", "SOLUCAO"},
		"status":    {"STATUS"},
		"data":      {"DATA_PROPOSTA"},
		"valor":     {"VALOR_PROPOSTA"},
	}

	colunasCronograma = map[string][]string{
		"numero":           {"Nº PROPOSTA", "NUMERO_PROPOSTA"},
		"status":           {"STATUS"},
		"data_inicio":      {"DATA_INÍCIO", "DATA_INICIO"},
		"data_termino":     {"DATA_TÉRMINO", "DATA_TERMINO"},
		"horas_previstas":  {"HORAS_PREVISTAS"},
		"horas_executadas": {"HORAS_EXECUTADAS"},
	}
)

// linhaPlanilha converte o índice da matriz para o número exibido na
// planilha: uma linha de cabeçalho mais a contagem começando em 1.
func linhaPlanilha(i int) int {
	return i + 2
}

// ImportarEmpresas insere empresas novas pela chave CNPJ. Linhas sem
// CNPJ e CNPJs já cadastrados são pulados sem registrar erro.
func (s *Service) ImportarEmpresas(t *Tabela) (*Resultado, error) {
	colunas := ResolverColunas(t.Cabecalho, colunasEmpresa)
	resultado := novoResultado()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for i, linha := range t.Linhas {
			cnpj := colunas.Valor(linha, "cnpj")
			if cnpj == "" {
				continue
			}

			var count int64
			if err := tx.Model(&empresa.Empresa{}).Where("cnpj = ?", cnpj).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			e := empresa.Empresa{
				CNPJ:     cnpj,
				Nome:     colunas.Valor(linha, "nome"),
				Segmento: colunas.Valor(linha, "segmento"),
				Regiao:   colunas.Valor(linha, "regiao"),
				ER:       colunas.Valor(linha, "er"),
			}
			if err := tx.Create(&e).Error; err != nil {
				resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: %v", linhaPlanilha(i), err))
				continue
			}
			resultado.RegistrosImportados++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("importação de empresas concluída",
		zap.Int("importados", resultado.RegistrosImportados),
		zap.Int("erros", len(resultado.Erros)))
	return resultado, nil
}

// ImportarPropostas insere propostas novas pelo número. A empresa da
// linha é criada com os campos disponíveis quando o CNPJ ainda não
// existe; o consultor é resolvido pelo nome e fica vazio se não houver
// cadastro.
func (s *Service) ImportarPropostas(t *Tabela) (*Resultado, error) {
	colunas := ResolverColunas(t.Cabecalho, colunasProposta)
	resultado := novoResultado()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for i, linha := range t.Linhas {
			numero := colunas.Valor(linha, "numero")
			if numero == "" {
				continue
			}

			var count int64
			if err := tx.Model(&proposta.Proposta{}).Where("numero_proposta = ?", numero).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			cnpj := colunas.Valor(linha, "cnpj")
			var emp empresa.Empresa
			if err := tx.Where("cnpj = ?", cnpj).First(&emp).Error; err != nil {
				emp = empresa.Empresa{CNPJ: cnpj, Nome: colunas.Valor(linha, "empresa")}
				if err := tx.Create(&emp).Error; err != nil {
					resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: %v", linhaPlanilha(i), err))
					continue
				}
			}

			p := proposta.Proposta{
				NumeroProposta: numero,
				EmpresaID:      emp.ID,
				Solucao:        colunas.Valor(linha, "solucao"),
				Status:         proposta.StatusEmAndamento,
			}
			if status := colunas.Valor(linha, "status"); status != "" {
				p.Status = status
			}
			if nome := colunas.Valor(linha, "consultor"); nome != "" {
				var c consultor.Consultor
				if err := tx.Where("nome = ?", nome).First(&c).Error; err == nil {
					p.ConsultorID = &c.ID
				}
			}
			if bruto := colunas.Valor(linha, "data"); bruto != "" {
				data, err := parseData(bruto)
				if err != nil {
					resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: %v", linhaPlanilha(i), err))
					continue
				}
				p.DataProposta = &data
			}
			if bruto := colunas.Valor(linha, "valor"); bruto != "" {
				valor, err := decimal.NewFromString(bruto)
				if err != nil {
					resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: valor inválido %q", linhaPlanilha(i), bruto))
					continue
				}
				p.ValorProposta = valor
			}

			if err := tx.Create(&p).Error; err != nil {
				resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: %v", linhaPlanilha(i), err))
				continue
			}
			resultado.RegistrosImportados++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("importação de propostas concluída",
		zap.Int("importados", resultado.RegistrosImportados),
		zap.Int("erros", len(resultado.Erros)))
	return resultado, nil
}

// ImportarCronogramas anexa cronogramas às propostas pelo número.
// Diferente dos outros lotes, proposta ausente é um erro de linha: não
// há como criar o pai sem os campos obrigatórios.
func (s *Service) ImportarCronogramas(t *Tabela) (*Resultado, error) {
	colunas := ResolverColunas(t.Cabecalho, colunasCronograma)
	resultado := novoResultado()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for i, linha := range t.Linhas {
			numero := colunas.Valor(linha, "numero")
			if numero == "" {
				continue
			}

			var p proposta.Proposta
			if err := tx.Where("numero_proposta = ?", numero).First(&p).Error; err != nil {
				resultado.Erros = append(resultado.Erros,
					fmt.Sprintf("Linha %d: Proposta %s não encontrada", linhaPlanilha(i), numero))
				continue
			}

			c := cronograma.Cronograma{
				PropostaID: p.ID,
				Status:     cronograma.StatusNaoIniciado,
			}
			if status := colunas.Valor(linha, "status"); status != "" {
				c.Status = status
			}
			if bruto := colunas.Valor(linha, "data_inicio"); bruto != "" {
				data, err := parseData(bruto)
				if err != nil {
					resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: %v", linhaPlanilha(i), err))
					continue
				}
				c.DataInicio = &data
			}
			if bruto := colunas.Valor(linha, "data_termino"); bruto != "" {
				data, err := parseData(bruto)
				if err != nil {
					resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: %v", linhaPlanilha(i), err))
					continue
				}
				c.DataTermino = &data
			}
			if bruto := colunas.Valor(linha, "horas_previstas"); bruto != "" {
				horas, err := decimal.NewFromString(bruto)
				if err != nil {
					resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: horas inválidas %q", linhaPlanilha(i), bruto))
					continue
				}
				c.HorasPrevistas = horas
			}
			if bruto := colunas.Valor(linha, "horas_executadas"); bruto != "" {
				horas, err := decimal.NewFromString(bruto)
				if err != nil {
					resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: horas inválidas %q", linhaPlanilha(i), bruto))
					continue
				}
				c.HorasExecutadas = horas
			}

			if err := tx.Create(&c).Error; err != nil {
				resultado.Erros = append(resultado.Erros, fmt.Sprintf("Linha %d: %v", linhaPlanilha(i), err))
				continue
			}
			resultado.RegistrosImportados++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info("importação de cronogramas concluída",
		zap.Int("importados", resultado.RegistrosImportados),
		zap.Int("erros", len(resultado.Erros)))
	return resultado, nil
}
