package contrato

import (
	"errors"
	"fmt"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Contrato
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um contrato, recusando número duplicado antes do insert.
func (r *Repository) Criar(c *Contrato) error {
	var count int64
	if err := r.DB.Model(&Contrato{}).Where("numero_contrato = ?", c.NumeroContrato).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return erros.ErrConflito
	}
	if c.StatusPagamento == "" {
		c.StatusPagamento = StatusPendente
	}
	return r.DB.Create(c).Error
}

func (r *Repository) BuscarPorID(id uint) (*Contrato, error) {
	var c Contrato
	if err := r.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) BuscarPorNumero(numero string) (*Contrato, error) {
	var c Contrato
	if err := r.DB.Where("numero_contrato = ?", numero).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

// Filtro restringe a listagem de contratos.
type Filtro struct {
	StatusPagamento string
	DataInicio      *tipos.Data
	DataFim         *tipos.Data
	Skip            int
	Limit           int
}

func (r *Repository) Listar(f Filtro) ([]Contrato, error) {
	query := r.DB.Model(&Contrato{})
	if f.StatusPagamento != "" {
		query = query.Where("status_pagamento = ?", f.StatusPagamento)
	}
	if f.DataInicio != nil {
		query = query.Where("data_vencimento >= ?", f.DataInicio.Time)
	}
	if f.DataFim != nil {
		query = query.Where("data_vencimento <= ?", f.DataFim.Time)
	}
	if f.Limit <= 0 {
		f.Limit = 100
	}
	var contratos []Contrato
	err := query.Offset(f.Skip).Limit(f.Limit).Find(&contratos).Error
	return contratos, err
}

func (r *Repository) Atualizar(id uint, dados *ContratoUpdate) (*Contrato, error) {
	c, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if dados.DataAssinatura != nil {
		c.DataAssinatura = dados.DataAssinatura
	}
	if dados.DataVencimento != nil {
		c.DataVencimento = dados.DataVencimento
	}
	if dados.Valor != nil {
		c.Valor = *dados.Valor
	}
	if dados.StatusPagamento != nil {
		c.StatusPagamento = *dados.StatusPagamento
	}
	if dados.Observacao != nil {
		c.Observacao = *dados.Observacao
	}
	if err := r.DB.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repository) Deletar(id uint) error {
	result := r.DB.Delete(&Contrato{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}

// ReconciliarVencidos vira para Vencido todo contrato Pendente com a
// data de vencimento no passado e devolve os contratos alterados. É a
// mutação que a listagem de alertas dispara; chamadores precisam saber
// que listar alertas de contrato grava estado.
func (r *Repository) ReconciliarVencidos(hoje tipos.Data) ([]Contrato, error) {
	var vencidos []Contrato
	if err := r.DB.Where("data_vencimento < ? AND status_pagamento = ?",
		hoje.Time, StatusPendente).Find(&vencidos).Error; err != nil {
		return nil, err
	}
	for i := range vencidos {
		vencidos[i].StatusPagamento = StatusVencido
		if err := r.DB.Save(&vencidos[i]).Error; err != nil {
			return nil, err
		}
	}
	return vencidos, nil
}

// VencendoJanela lista contratos Pendentes ou Vencidos com vencimento
// nos próximos sete dias.
func (r *Repository) VencendoJanela(hoje tipos.Data) ([]Contrato, error) {
	seteDias := hoje.AddDias(7)
	var contratos []Contrato
	err := r.DB.Where("data_vencimento <= ? AND data_vencimento >= ? AND status_pagamento IN ?",
		seteDias.Time, hoje.Time, []string{StatusPendente, StatusVencido}).
		Find(&contratos).Error
	return contratos, err
}

// Faturamento agrega contratos por período de assinatura.
type Faturamento struct {
	Periodo            string          `json:"periodo"`
	TotalContratos     int             `json:"total_contratos"`
	ContratosPagos     int             `json:"contratos_pagos"`
	ContratosPendentes int             `json:"contratos_pendentes"`
	ContratosVencidos  int             `json:"contratos_vencidos"`
	ValorTotal         decimal.Decimal `json:"valor_total"`
	ValorPago          decimal.Decimal `json:"valor_pago"`
	ValorPendente      decimal.Decimal `json:"valor_pendente"`
	TaxaPagamento      decimal.Decimal `json:"taxa_pagamento"`
}

// CalcularFaturamento soma valores por status de pagamento, filtrando
// pela data de assinatura quando ano/mês são informados.
func (r *Repository) CalcularFaturamento(ano, mes int) (*Faturamento, error) {
	var contratos []Contrato
	if err := r.DB.Find(&contratos).Error; err != nil {
		return nil, err
	}

	f := &Faturamento{
		Periodo:       "Total",
		ValorTotal:    decimal.Zero,
		ValorPago:     decimal.Zero,
		ValorPendente: decimal.Zero,
	}
	if ano > 0 && mes > 0 {
		f.Periodo = fmt.Sprintf("%d/%02d", ano, mes)
	} else if ano > 0 {
		f.Periodo = fmt.Sprintf("%d", ano)
	}

	for _, c := range contratos {
		if ano > 0 {
			if c.DataAssinatura == nil || c.DataAssinatura.Year() != ano {
				continue
			}
			if mes > 0 && int(c.DataAssinatura.Month()) != mes {
				continue
			}
		}
		f.TotalContratos++
		f.ValorTotal = f.ValorTotal.Add(c.Valor)
		switch c.StatusPagamento {
		case StatusPago:
			f.ContratosPagos++
			f.ValorPago = f.ValorPago.Add(c.Valor)
		case StatusPendente:
			f.ContratosPendentes++
			f.ValorPendente = f.ValorPendente.Add(c.Valor)
		case StatusVencido:
			f.ContratosVencidos++
			f.ValorPendente = f.ValorPendente.Add(c.Valor)
		}
	}

	if f.TotalContratos > 0 {
		f.TaxaPagamento = decimal.NewFromInt(int64(f.ContratosPagos)).
			Div(decimal.NewFromInt(int64(f.TotalContratos))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	} else {
		f.TaxaPagamento = decimal.Zero
	}
	return f, nil
}
