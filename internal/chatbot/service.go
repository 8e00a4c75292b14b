// Package chatbot responde perguntas operacionais por palavras-chave.
// Não há modelo de linguagem envolvido: a mensagem é classificada por
// combinações fixas de termos e a resposta vem de consultas diretas.
package chatbot

import (
	"fmt"
	"strings"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/contrato"
	"github.com/JEFConsultoria/api-gestao/internal/cronograma"
	"github.com/JEFConsultoria/api-gestao/internal/empresa"
	"github.com/JEFConsultoria/api-gestao/internal/proposta"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const respostaPadrao = "Desculpe, não entendi sua pergunta. Tente perguntar sobre: " +
	"contratos vencendo, projetos ativos, propostas paradas ou receita."

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Resposta é o retorno do chatbot: um texto e os dados que o suportam.
type Resposta struct {
	Resposta string                 `json:"resposta"`
	Dados    map[string]interface{} `json:"dados"`
}

func contemAlgum(mensagem string, termos ...string) bool {
	for _, t := range termos {
		if strings.Contains(mensagem, t) {
			return true
		}
	}
	return false
}

// Perguntar roteia a mensagem para a consulta correspondente.
func (s *Service) Perguntar(mensagem string, hoje tipos.Data) (*Resposta, error) {
	mensagem = strings.ToLower(mensagem)

	switch {
	case strings.Contains(mensagem, "contrato") && contemAlgum(mensagem, "venc", "próximo", "proximo", "semana"):
		return s.contratosVencendo(hoje)
	case strings.Contains(mensagem, "projeto") && contemAlgum(mensagem, "ativo", "andamento"):
		return s.projetosAtivos()
	case strings.Contains(mensagem, "proposta") && contemAlgum(mensagem, "parada", "pendente"):
		return s.propostasParadas(hoje)
	case contemAlgum(mensagem, "receita", "faturamento"):
		return s.receita(hoje)
	default:
		return &Resposta{Resposta: respostaPadrao, Dados: map[string]interface{}{}}, nil
	}
}

func (s *Service) contratosVencendo(hoje tipos.Data) (*Resposta, error) {
	seteDias := hoje.AddDias(7)
	var contratos []contrato.Contrato
	if err := s.DB.Where("data_vencimento <= ? AND data_vencimento >= ? AND status_pagamento IN ?",
		seteDias.Time, hoje.Time, []string{contrato.StatusPendente, contrato.StatusVencido}).
		Find(&contratos).Error; err != nil {
		return nil, err
	}

	if len(contratos) == 0 {
		return &Resposta{
			Resposta: "Não há contratos vencendo nos próximos 7 dias.",
			Dados:    map[string]interface{}{"contratos": []interface{}{}},
		}, nil
	}

	lista := make([]map[string]interface{}, 0, len(contratos))
	for _, c := range contratos {
		lista = append(lista, map[string]interface{}{
			"numero":     c.NumeroContrato,
			"empresa":    s.nomeDaEmpresaDaProposta(c.PropostaID),
			"vencimento": c.DataVencimento.String(),
			"valor":      c.Valor,
		})
	}
	return &Resposta{
		Resposta: fmt.Sprintf("Encontrei %d contrato(s) vencendo nos próximos 7 dias.", len(contratos)),
		Dados:    map[string]interface{}{"contratos": lista},
	}, nil
}

func (s *Service) projetosAtivos() (*Resposta, error) {
	var cronogramas []cronograma.Cronograma
	if err := s.DB.Where("status = ?", cronograma.StatusEmAndamento).Find(&cronogramas).Error; err != nil {
		return nil, err
	}

	lista := make([]map[string]interface{}, 0, len(cronogramas))
	for _, cr := range cronogramas {
		numero := "N/A"
		empresaNome := "N/A"
		var p proposta.Proposta
		if err := s.DB.First(&p, cr.PropostaID).Error; err == nil {
			numero = p.NumeroProposta
			empresaNome = s.nomeDaEmpresa(p.EmpresaID)
		}
		termino := "N/A"
		if cr.DataTermino != nil {
			termino = cr.DataTermino.String()
		}
		lista = append(lista, map[string]interface{}{
			"numero_proposta":  numero,
			"empresa":          empresaNome,
			"percentual":       cr.PercentualConclusao,
			"termino_previsto": termino,
		})
	}
	return &Resposta{
		Resposta: fmt.Sprintf("Há %d projeto(s) em andamento.", len(cronogramas)),
		Dados:    map[string]interface{}{"projetos": lista},
	}, nil
}

func (s *Service) propostasParadas(hoje tipos.Data) (*Resposta, error) {
	trintaDias := hoje.AddDias(-30)
	var propostas []proposta.Proposta
	if err := s.DB.Where("status = ? AND data_proposta <= ?",
		proposta.StatusEmAndamento, trintaDias.Time).Find(&propostas).Error; err != nil {
		return nil, err
	}

	lista := make([]map[string]interface{}, 0, len(propostas))
	for _, p := range propostas {
		consultorNome := "N/A"
		if p.ConsultorID != nil {
			var c consultor.Consultor
			if err := s.DB.First(&c, *p.ConsultorID).Error; err == nil {
				consultorNome = c.Nome
			}
		}
		diasParada := 0
		if p.DataProposta != nil {
			diasParada = p.DataProposta.DiasAte(hoje)
		}
		lista = append(lista, map[string]interface{}{
			"numero":      p.NumeroProposta,
			"empresa":     s.nomeDaEmpresa(p.EmpresaID),
			"consultor":   consultorNome,
			"dias_parada": diasParada,
		})
	}
	return &Resposta{
		Resposta: fmt.Sprintf("Encontrei %d proposta(s) parada(s) há mais de 30 dias.", len(propostas)),
		Dados:    map[string]interface{}{"propostas": lista},
	}, nil
}

func (s *Service) receita(hoje tipos.Data) (*Resposta, error) {
	var contratos []contrato.Contrato
	if err := s.DB.Where("status_pagamento = ?", contrato.StatusPago).Find(&contratos).Error; err != nil {
		return nil, err
	}

	receitaTotal := decimal.Zero
	receitaMes := decimal.Zero
	for _, c := range contratos {
		receitaTotal = receitaTotal.Add(c.Valor)
		if c.DataAssinatura != nil &&
			c.DataAssinatura.Month() == hoje.Month() && c.DataAssinatura.Year() == hoje.Year() {
			receitaMes = receitaMes.Add(c.Valor)
		}
	}
	return &Resposta{
		Resposta: fmt.Sprintf("Receita total: R$ %s | Receita este mês: R$ %s",
			receitaTotal.StringFixed(2), receitaMes.StringFixed(2)),
		Dados: map[string]interface{}{
			"receita_total": receitaTotal,
			"receita_mes":   receitaMes,
		},
	}, nil
}

func (s *Service) nomeDaEmpresa(id uint) string {
	var e empresa.Empresa
	if err := s.DB.First(&e, id).Error; err != nil {
		return "N/A"
	}
	return e.Nome
}

func (s *Service) nomeDaEmpresaDaProposta(propostaID uint) string {
	var p proposta.Proposta
	if err := s.DB.First(&p, propostaID).Error; err != nil {
		return "N/A"
	}
	return s.nomeDaEmpresa(p.EmpresaID)
}
