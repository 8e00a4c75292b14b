// Package alerta classifica contratos, cronogramas e propostas em
// faixas de severidade relativas a uma data de avaliação. A data nunca
// vem de relógio ambiente: todos os cálculos recebem hoje como
// parâmetro.
package alerta

import (
	"fmt"

	"github.com/JEFConsultoria/api-gestao/internal/contrato"
	"github.com/JEFConsultoria/api-gestao/internal/cronograma"
	"github.com/JEFConsultoria/api-gestao/internal/proposta"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de alerta, do mais ao menos grave.
const (
	TipoCritico = "CRÍTICO"
	TipoUrgente = "URGENTE"
	TipoAtencao = "ATENÇÃO"
	TipoAviso   = "AVISO"
)

var limiarCritico = decimal.NewFromInt(30)

type Service struct {
	DB        *gorm.DB
	Contratos *contrato.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db, Contratos: contrato.NewRepository(db)}
}

// AlertaContrato é a mensagem gerada para um contrato vencido ou
// próximo do vencimento.
type AlertaContrato struct {
	ID             uint            `json:"id"`
	Numero         string          `json:"numero"`
	DataVencimento string          `json:"data_vencimento"`
	Valor          decimal.Decimal `json:"valor"`
	Status         string          `json:"status"`
	TipoAlerta     string          `json:"tipo_alerta"`
	Mensagem       string          `json:"mensagem"`
}

// AlertaCronograma é a mensagem gerada para um cronograma atrasado,
// vencendo ou crítico.
type AlertaCronograma struct {
	ID                  uint            `json:"id"`
	PropostaID          uint            `json:"proposta_id"`
	DataTermino         string          `json:"data_termino"`
	PercentualConclusao decimal.Decimal `json:"percentual_conclusao"`
	Status              string          `json:"status"`
	TipoAlerta          string          `json:"tipo_alerta"`
	Mensagem            string          `json:"mensagem"`
}

// AlertaProposta é a mensagem gerada para uma proposta parada.
type AlertaProposta struct {
	ID                uint   `json:"id"`
	Numero            string `json:"numero"`
	UltimaAtualizacao string `json:"ultima_atualizacao"`
	DiasParado        int    `json:"dias_parado"`
	Status            string `json:"status"`
	TipoAlerta        string `json:"tipo_alerta"`
	Mensagem          string `json:"mensagem"`
}

// Resumo agrega os contadores por faixa.
type Resumo struct {
	TotalAlertas        int `json:"total_alertas"`
	ContratosCriticos   int `json:"contratos_criticos"`
	CronogramasCriticos int `json:"cronogramas_criticos"`
	PropostasParadas    int `json:"propostas_paradas"`
	TarefasCriticas     int `json:"tarefas_criticas"`
}

type FaixasContrato struct {
	Vencidos []AlertaContrato `json:"vencidos"`
	Vencendo []AlertaContrato `json:"vencendo"`
}

type FaixasCronograma struct {
	Atrasados []AlertaCronograma `json:"atrasados"`
	Vencendo  []AlertaCronograma `json:"vencendo"`
}

type FaixasProposta struct {
	Paradas []AlertaProposta `json:"paradas"`
}

// Todos é o painel completo de alertas.
type Todos struct {
	Resumo          Resumo             `json:"resumo"`
	Contratos       FaixasContrato     `json:"contratos"`
	Cronogramas     FaixasCronograma   `json:"cronogramas"`
	Propostas       FaixasProposta     `json:"propostas"`
	TarefasCriticas []AlertaCronograma `json:"tarefas_criticas"`
}

// Coletar monta o painel completo relativo a hoje.
//
// A coleta começa reconciliando contratos: todo Pendente com vencimento
// no passado vira Vencido antes da classificação. É a única escrita que
// a leitura de alertas dispara.
func (s *Service) Coletar(hoje tipos.Data) (*Todos, error) {
	if _, err := s.Contratos.ReconciliarVencidos(hoje); err != nil {
		return nil, err
	}

	seteDias := hoje.AddDias(7)
	trintaDiasAtras := hoje.AddDias(-30)

	var contratosVencidos []contrato.Contrato
	if err := s.DB.Where("data_vencimento < ? AND status_pagamento IN ?",
		hoje.Time, []string{contrato.StatusPendente, contrato.StatusVencido}).
		Find(&contratosVencidos).Error; err != nil {
		return nil, err
	}

	var contratosVencendo []contrato.Contrato
	if err := s.DB.Where("data_vencimento <= ? AND data_vencimento >= ? AND status_pagamento = ?",
		seteDias.Time, hoje.Time, contrato.StatusPendente).
		Find(&contratosVencendo).Error; err != nil {
		return nil, err
	}

	var cronogramasAtrasados []cronograma.Cronograma
	if err := s.DB.Where("data_termino < ? AND status <> ?",
		hoje.Time, cronograma.StatusConcluido).
		Find(&cronogramasAtrasados).Error; err != nil {
		return nil, err
	}

	var cronogramasVencendo []cronograma.Cronograma
	if err := s.DB.Where("data_termino <= ? AND data_termino >= ? AND status <> ?",
		seteDias.Time, hoje.Time, cronograma.StatusConcluido).
		Find(&cronogramasVencendo).Error; err != nil {
		return nil, err
	}

	var propostasParadas []proposta.Proposta
	if err := s.DB.Where("status = ? AND updated_at < ?",
		proposta.StatusEmAndamento, trintaDiasAtras.Time).
		Find(&propostasParadas).Error; err != nil {
		return nil, err
	}

	// O percentual é comparado em Go: a coluna é decimal e o recorte
	// de 30% precisa da mesma aritmética exata do resto do sistema.
	var candidatas []cronograma.Cronograma
	if err := s.DB.Where("data_termino <= ? AND status <> ?",
		seteDias.Time, cronograma.StatusConcluido).
		Find(&candidatas).Error; err != nil {
		return nil, err
	}
	var tarefasCriticas []cronograma.Cronograma
	for _, c := range candidatas {
		if c.PercentualConclusao.LessThan(limiarCritico) {
			tarefasCriticas = append(tarefasCriticas, c)
		}
	}

	t := &Todos{
		Contratos: FaixasContrato{
			Vencidos: make([]AlertaContrato, 0, len(contratosVencidos)),
			Vencendo: make([]AlertaContrato, 0, len(contratosVencendo)),
		},
		Cronogramas: FaixasCronograma{
			Atrasados: make([]AlertaCronograma, 0, len(cronogramasAtrasados)),
			Vencendo:  make([]AlertaCronograma, 0, len(cronogramasVencendo)),
		},
		Propostas:       FaixasProposta{Paradas: make([]AlertaProposta, 0, len(propostasParadas))},
		TarefasCriticas: make([]AlertaCronograma, 0, len(tarefasCriticas)),
	}

	for _, c := range contratosVencidos {
		dias := c.DataVencimento.DiasAte(hoje)
		t.Contratos.Vencidos = append(t.Contratos.Vencidos, AlertaContrato{
			ID:             c.ID,
			Numero:         c.NumeroContrato,
			DataVencimento: c.DataVencimento.String(),
			Valor:          c.Valor,
			Status:         c.StatusPagamento,
			TipoAlerta:     TipoCritico,
			Mensagem:       fmt.Sprintf("Contrato %s vencido há %d dias", c.NumeroContrato, dias),
		})
	}
	for _, c := range contratosVencendo {
		dias := hoje.DiasAte(*c.DataVencimento)
		t.Contratos.Vencendo = append(t.Contratos.Vencendo, AlertaContrato{
			ID:             c.ID,
			Numero:         c.NumeroContrato,
			DataVencimento: c.DataVencimento.String(),
			Valor:          c.Valor,
			Status:         c.StatusPagamento,
			TipoAlerta:     TipoAtencao,
			Mensagem:       fmt.Sprintf("Contrato %s vence em %d dias", c.NumeroContrato, dias),
		})
	}
	for _, cr := range cronogramasAtrasados {
		dias := cr.DataTermino.DiasAte(hoje)
		t.Cronogramas.Atrasados = append(t.Cronogramas.Atrasados, AlertaCronograma{
			ID:                  cr.ID,
			PropostaID:          cr.PropostaID,
			DataTermino:         cr.DataTermino.String(),
			PercentualConclusao: cr.PercentualConclusao,
			Status:              cr.Status,
			TipoAlerta:          TipoCritico,
			Mensagem: fmt.Sprintf("Projeto atrasado há %d dias - %s%% concluído",
				dias, cr.PercentualConclusao.String()),
		})
	}
	for _, cr := range cronogramasVencendo {
		dias := hoje.DiasAte(*cr.DataTermino)
		t.Cronogramas.Vencendo = append(t.Cronogramas.Vencendo, AlertaCronograma{
			ID:                  cr.ID,
			PropostaID:          cr.PropostaID,
			DataTermino:         cr.DataTermino.String(),
			PercentualConclusao: cr.PercentualConclusao,
			Status:              cr.Status,
			TipoAlerta:          TipoAtencao,
			Mensagem: fmt.Sprintf("Projeto vence em %d dias - %s%% concluído",
				dias, cr.PercentualConclusao.String()),
		})
	}
	for _, p := range propostasParadas {
		dias := tipos.NovaData(p.UpdatedAt).DiasAte(hoje)
		t.Propostas.Paradas = append(t.Propostas.Paradas, AlertaProposta{
			ID:                p.ID,
			Numero:            p.NumeroProposta,
			UltimaAtualizacao: p.UpdatedAt.Format("2006-01-02 15:04:05"),
			DiasParado:        dias,
			Status:            p.Status,
			TipoAlerta:        TipoAviso,
			Mensagem:          fmt.Sprintf("Proposta %s sem atualização há %d dias", p.NumeroProposta, dias),
		})
	}
	for _, cr := range tarefasCriticas {
		t.TarefasCriticas = append(t.TarefasCriticas, AlertaCronograma{
			ID:                  cr.ID,
			PropostaID:          cr.PropostaID,
			DataTermino:         cr.DataTermino.String(),
			PercentualConclusao: cr.PercentualConclusao,
			Status:              cr.Status,
			TipoAlerta:          TipoUrgente,
			Mensagem: fmt.Sprintf("Projeto crítico com apenas %s%% concluído e vencimento próximo",
				cr.PercentualConclusao.String()),
		})
	}

	t.Resumo = Resumo{
		TotalAlertas: len(t.Contratos.Vencidos) + len(t.Contratos.Vencendo) +
			len(t.Cronogramas.Atrasados) + len(t.Cronogramas.Vencendo) +
			len(t.Propostas.Paradas) + len(t.TarefasCriticas),
		ContratosCriticos:   len(t.Contratos.Vencidos) + len(t.Contratos.Vencendo),
		CronogramasCriticos: len(t.Cronogramas.Atrasados) + len(t.Cronogramas.Vencendo),
		PropostasParadas:    len(t.Propostas.Paradas),
		TarefasCriticas:     len(t.TarefasCriticas),
	}
	return t, nil
}

// ResumoRapido é a resposta do endpoint de resumo: só contadores.
type ResumoRapido struct {
	TotalAlertasCriticos int  `json:"total_alertas_criticos"`
	ContratosVencidos    int  `json:"contratos_vencidos"`
	ProjetosAtrasados    int  `json:"projetos_atrasados"`
	PropostasParadas     int  `json:"propostas_paradas"`
	RequerAtencao        bool `json:"requer_atencao"`
}

// Resumir conta as faixas críticas sem montar as mensagens.
func (s *Service) Resumir(hoje tipos.Data) (*ResumoRapido, error) {
	trintaDiasAtras := hoje.AddDias(-30)

	var contratosVencidos int64
	if err := s.DB.Model(&contrato.Contrato{}).
		Where("data_vencimento < ? AND status_pagamento IN ?",
			hoje.Time, []string{contrato.StatusPendente, contrato.StatusVencido}).
		Count(&contratosVencidos).Error; err != nil {
		return nil, err
	}

	var cronogramasAtrasados int64
	if err := s.DB.Model(&cronograma.Cronograma{}).
		Where("data_termino < ? AND status <> ?", hoje.Time, cronograma.StatusConcluido).
		Count(&cronogramasAtrasados).Error; err != nil {
		return nil, err
	}

	var propostasParadas int64
	if err := s.DB.Model(&proposta.Proposta{}).
		Where("status = ? AND updated_at < ?", proposta.StatusEmAndamento, trintaDiasAtras.Time).
		Count(&propostasParadas).Error; err != nil {
		return nil, err
	}

	return &ResumoRapido{
		TotalAlertasCriticos: int(contratosVencidos + cronogramasAtrasados),
		ContratosVencidos:    int(contratosVencidos),
		ProjetosAtrasados:    int(cronogramasAtrasados),
		PropostasParadas:     int(propostasParadas),
		RequerAtencao:        contratosVencidos+cronogramasAtrasados+propostasParadas > 0,
	}, nil
}
