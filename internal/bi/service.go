// Package bi agrega os indicadores do painel gerencial. As somas de
// dinheiro e horas usam aritmética decimal, nunca float.
package bi

import (
	"fmt"
	"sort"
	"time"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/contrato"
	"github.com/JEFConsultoria/api-gestao/internal/cronograma"
	"github.com/JEFConsultoria/api-gestao/internal/proposta"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Dashboard reúne os contadores principais do painel.
type Dashboard struct {
	TotalPropostas        int64           `json:"total_propostas"`
	PropostasAtivas       int64           `json:"propostas_ativas"`
	PropostasFechadasMes  int64           `json:"propostas_fechadas_mes"`
	ProjetosConcluidosMes int64           `json:"projetos_concluidos_mes"`
	TotalHorasExecutadas  decimal.Decimal `json:"total_horas_executadas"`
	ReceitaTotal          decimal.Decimal `json:"receita_total"`
	ReceitaMes            decimal.Decimal `json:"receita_mes"`
	TaxaConversao         decimal.Decimal `json:"taxa_conversao"`
	ContratosVencidos     int64           `json:"contratos_vencidos"`
}

// MontarDashboard calcula os indicadores relativos ao mês de hoje.
func (s *Service) MontarDashboard(hoje tipos.Data) (*Dashboard, error) {
	mesAtual := hoje.Month()
	anoAtual := hoje.Year()

	d := &Dashboard{
		TotalHorasExecutadas: decimal.Zero,
		ReceitaTotal:         decimal.Zero,
		ReceitaMes:           decimal.Zero,
		TaxaConversao:        decimal.Zero,
	}

	var propostas []proposta.Proposta
	if err := s.DB.Find(&propostas).Error; err != nil {
		return nil, err
	}
	var fechadas int64
	for _, p := range propostas {
		d.TotalPropostas++
		switch p.Status {
		case proposta.StatusEmAndamento:
			d.PropostasAtivas++
		case proposta.StatusFechado:
			fechadas++
			if p.DataFechamento != nil &&
				p.DataFechamento.Month() == mesAtual && p.DataFechamento.Year() == anoAtual {
				d.PropostasFechadasMes++
			}
		}
	}
	if d.TotalPropostas > 0 {
		d.TaxaConversao = decimal.NewFromInt(fechadas).
			Div(decimal.NewFromInt(d.TotalPropostas)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	var cronogramas []cronograma.Cronograma
	if err := s.DB.Find(&cronogramas).Error; err != nil {
		return nil, err
	}
	for _, c := range cronogramas {
		d.TotalHorasExecutadas = d.TotalHorasExecutadas.Add(c.HorasExecutadas)
		if c.Status == cronograma.StatusConcluido &&
			c.UpdatedAt.Month() == mesAtual && c.UpdatedAt.Year() == anoAtual {
			d.ProjetosConcluidosMes++
		}
	}

	var contratos []contrato.Contrato
	if err := s.DB.Find(&contratos).Error; err != nil {
		return nil, err
	}
	for _, c := range contratos {
		switch c.StatusPagamento {
		case contrato.StatusPago:
			d.ReceitaTotal = d.ReceitaTotal.Add(c.Valor)
			if c.DataAssinatura != nil &&
				c.DataAssinatura.Month() == mesAtual && c.DataAssinatura.Year() == anoAtual {
				d.ReceitaMes = d.ReceitaMes.Add(c.Valor)
			}
		case contrato.StatusPendente, contrato.StatusVencido:
			if c.DataVencimento != nil && c.DataVencimento.Time.Before(hoje.Time) {
				d.ContratosVencidos++
			}
		}
	}

	return d, nil
}

// TotalStatus conta propostas por status.
type TotalStatus struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

func (s *Service) PropostasPorStatus() ([]TotalStatus, error) {
	var propostas []proposta.Proposta
	if err := s.DB.Find(&propostas).Error; err != nil {
		return nil, err
	}
	porStatus := map[string]int{}
	for _, p := range propostas {
		porStatus[p.Status]++
	}
	resultado := make([]TotalStatus, 0, len(porStatus))
	for status, total := range porStatus {
		resultado = append(resultado, TotalStatus{Status: status, Total: total})
	}
	sort.Slice(resultado, func(i, j int) bool { return resultado[i].Status < resultado[j].Status })
	return resultado, nil
}

// TotalPorConsultor conta propostas atribuídas a cada consultor.
type TotalPorConsultor struct {
	Consultor string `json:"consultor"`
	Total     int    `json:"total"`
}

func (s *Service) PropostasPorConsultor() ([]TotalPorConsultor, error) {
	nomes, err := s.nomesDeConsultores()
	if err != nil {
		return nil, err
	}

	var propostas []proposta.Proposta
	if err := s.DB.Where("consultor_id IS NOT NULL").Find(&propostas).Error; err != nil {
		return nil, err
	}
	porNome := map[string]int{}
	for _, p := range propostas {
		if nome, ok := nomes[*p.ConsultorID]; ok {
			porNome[nome]++
		}
	}
	resultado := make([]TotalPorConsultor, 0, len(porNome))
	for nome, total := range porNome {
		resultado = append(resultado, TotalPorConsultor{Consultor: nome, Total: total})
	}
	sort.Slice(resultado, func(i, j int) bool { return resultado[i].Consultor < resultado[j].Consultor })
	return resultado, nil
}

// ReceitaMes é a receita paga num mês de assinatura.
type ReceitaMes struct {
	Mes     string          `json:"mes"`
	Receita decimal.Decimal `json:"receita"`
}

var abreviacaoMes = map[time.Month]string{
	time.January: "Jan", time.February: "Fev", time.March: "Mar",
	time.April: "Abr", time.May: "Mai", time.June: "Jun",
	time.July: "Jul", time.August: "Ago", time.September: "Set",
	time.October: "Out", time.November: "Nov", time.December: "Dez",
}

// ReceitaMensal soma contratos pagos por mês de assinatura, nos doze
// meses mais antigos com receita.
func (s *Service) ReceitaMensal() ([]ReceitaMes, error) {
	var contratos []contrato.Contrato
	if err := s.DB.Where("status_pagamento = ?", contrato.StatusPago).Find(&contratos).Error; err != nil {
		return nil, err
	}

	type chaveMes struct {
		ano int
		mes time.Month
	}
	porMes := map[chaveMes]decimal.Decimal{}
	for _, c := range contratos {
		if c.DataAssinatura == nil {
			continue
		}
		chave := chaveMes{c.DataAssinatura.Year(), c.DataAssinatura.Month()}
		porMes[chave] = porMes[chave].Add(c.Valor)
	}

	chaves := make([]chaveMes, 0, len(porMes))
	for chave := range porMes {
		chaves = append(chaves, chave)
	}
	sort.Slice(chaves, func(i, j int) bool {
		if chaves[i].ano != chaves[j].ano {
			return chaves[i].ano < chaves[j].ano
		}
		return chaves[i].mes < chaves[j].mes
	})
	if len(chaves) > 12 {
		chaves = chaves[:12]
	}

	resultado := make([]ReceitaMes, 0, len(chaves))
	for _, chave := range chaves {
		resultado = append(resultado, ReceitaMes{
			Mes:     fmt.Sprintf("%s/%d", abreviacaoMes[chave.mes], chave.ano),
			Receita: porMes[chave],
		})
	}
	return resultado, nil
}

// Produtividade soma as horas executadas nos cronogramas das propostas
// de cada consultor.
type Produtividade struct {
	Consultor string          `json:"consultor"`
	Horas     decimal.Decimal `json:"horas"`
}

func (s *Service) ProdutividadeConsultores() ([]Produtividade, error) {
	nomes, err := s.nomesDeConsultores()
	if err != nil {
		return nil, err
	}

	var propostas []proposta.Proposta
	if err := s.DB.Where("consultor_id IS NOT NULL").Find(&propostas).Error; err != nil {
		return nil, err
	}
	donoDaProposta := map[uint]string{}
	for _, p := range propostas {
		if nome, ok := nomes[*p.ConsultorID]; ok {
			donoDaProposta[p.ID] = nome
		}
	}

	var cronogramas []cronograma.Cronograma
	if err := s.DB.Find(&cronogramas).Error; err != nil {
		return nil, err
	}
	horasPorNome := map[string]decimal.Decimal{}
	for _, c := range cronogramas {
		nome, ok := donoDaProposta[c.PropostaID]
		if !ok {
			continue
		}
		horasPorNome[nome] = horasPorNome[nome].Add(c.HorasExecutadas)
	}

	resultado := make([]Produtividade, 0, len(horasPorNome))
	for nome, horas := range horasPorNome {
		resultado = append(resultado, Produtividade{Consultor: nome, Horas: horas})
	}
	sort.Slice(resultado, func(i, j int) bool { return resultado[i].Consultor < resultado[j].Consultor })
	return resultado, nil
}

func (s *Service) nomesDeConsultores() (map[uint]string, error) {
	var consultores []consultor.Consultor
	if err := s.DB.Find(&consultores).Error; err != nil {
		return nil, err
	}
	nomes := make(map[uint]string, len(consultores))
	for _, c := range consultores {
		nomes[c.ID] = c.Nome
	}
	return nomes, nil
}
