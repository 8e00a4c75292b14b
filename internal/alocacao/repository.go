package alocacao

import (
	"errors"
	"sort"
	"strings"

	"github.com/JEFConsultoria/api-gestao/internal/consultor"
	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"gorm.io/gorm"
)

// Repository encapsula a grade de alocações
type Repository struct {
	DB          *gorm.DB
	Consultores consultor.Repository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db, Consultores: consultor.NewRepository()}
}

// NovaAlocacao é o payload de criação de um slot.
type NovaAlocacao struct {
	ConsultorID   uint       `json:"consultor_id"`
	Data          tipos.Data `json:"data"`
	Periodo       string     `json:"periodo"`
	CodigoProjeto string     `json:"codigo_projeto"`
	Observacao    string     `json:"observacao"`
}

// Criar ocupa um slot da grade. Falha com ErrNaoEncontrado se o
// consultor não existe e com ErrConflito se o slot já está ocupado.
func (r *Repository) Criar(n *NovaAlocacao) (*Alocacao, error) {
	if !PeriodoValido(n.Periodo) {
		return nil, erros.ErrValidacao
	}
	c, err := r.Consultores.BuscarPorID(r.DB, n.ConsultorID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.DB.Model(&Alocacao{}).
		Where("consultor_id = ? AND data = ? AND periodo = ?", n.ConsultorID, n.Data.Time, n.Periodo).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, erros.ErrConflito
	}

	a := &Alocacao{
		ConsultorID:   n.ConsultorID,
		Data:          n.Data,
		Periodo:       n.Periodo,
		CodigoProjeto: strings.TrimSpace(n.CodigoProjeto),
		NIF:           c.NIF,
		Observacao:    n.Observacao,
	}
	if err := r.DB.Create(a).Error; err != nil {
		return nil, err
	}
	a.Consultor = *c
	return a, nil
}

func (r *Repository) BuscarPorID(id uint) (*Alocacao, error) {
	var a Alocacao
	if err := r.DB.Preload("Consultor").First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &a, nil
}

// AlocacaoUpdate altera apenas os campos mutáveis de um slot.
type AlocacaoUpdate struct {
	CodigoProjeto *string `json:"codigo_projeto"`
	Observacao    *string `json:"observacao"`
}

func (r *Repository) Atualizar(id uint, dados *AlocacaoUpdate) (*Alocacao, error) {
	a, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if dados.CodigoProjeto != nil {
		a.CodigoProjeto = strings.TrimSpace(*dados.CodigoProjeto)
	}
	if dados.Observacao != nil {
		a.Observacao = *dados.Observacao
	}
	if err := r.DB.Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) Deletar(id uint) error {
	result := r.DB.Delete(&Alocacao{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}

// Filtro restringe consultas à grade por janela de datas e consultor.
type Filtro struct {
	DataInicio  *tipos.Data
	DataFim     *tipos.Data
	ConsultorID *uint
}

func (f Filtro) aplicar(query *gorm.DB) *gorm.DB {
	if f.DataInicio != nil {
		query = query.Where("data >= ?", f.DataInicio.Time)
	}
	if f.DataFim != nil {
		query = query.Where("data <= ?", f.DataFim.Time)
	}
	if f.ConsultorID != nil {
		query = query.Where("consultor_id = ?", *f.ConsultorID)
	}
	return query
}

// Listar devolve as alocações ordenadas por (data, período), manhã
// antes de tarde.
func (r *Repository) Listar(f Filtro) ([]Alocacao, error) {
	var alocacoes []Alocacao
	err := f.aplicar(r.DB.Preload("Consultor")).
		Order("data").Order("periodo").
		Find(&alocacoes).Error
	return alocacoes, err
}

// ItemGantt é uma linha da visualização de Gantt: um ponto por
// alocação, com o código do projeto como recurso.
type ItemGantt struct {
	Task      string `json:"Task"`
	Start     string `json:"Start"`
	Finish    string `json:"Finish"`
	Resource  string `json:"Resource"`
	Consultor string `json:"Consultor"`
	Periodo   string `json:"Periodo"`
}

func (r *Repository) Gantt(f Filtro) ([]ItemGantt, error) {
	alocacoes, err := r.Listar(f)
	if err != nil {
		return nil, err
	}
	// A visualização agrupa por consultor antes de ordenar por data.
	sort.SliceStable(alocacoes, func(i, j int) bool {
		if alocacoes[i].Consultor.Nome != alocacoes[j].Consultor.Nome {
			return alocacoes[i].Consultor.Nome < alocacoes[j].Consultor.Nome
		}
		return alocacoes[i].Data.Time.Before(alocacoes[j].Data.Time)
	})

	itens := make([]ItemGantt, 0, len(alocacoes))
	for _, a := range alocacoes {
		recurso := a.CodigoProjeto
		if recurso == "" {
			recurso = SemProjeto
		}
		itens = append(itens, ItemGantt{
			Task:      a.Consultor.Nome + " - " + a.Periodo,
			Start:     a.Data.String(),
			Finish:    a.Data.String(),
			Resource:  recurso,
			Consultor: a.Consultor.Nome,
			Periodo:   a.Periodo,
		})
	}
	return itens, nil
}

// Estatisticas agrega a grade por consultor e por projeto.
type Estatisticas struct {
	TotalAlocacoes int              `json:"total_alocacoes"`
	PorConsultor   []TotalConsultor `json:"por_consultor"`
	TopProjetos    []TotalProjeto   `json:"top_projetos"`
}

type TotalConsultor struct {
	Nome  string `json:"nome"`
	Total int    `json:"total"`
}

type TotalProjeto struct {
	Projeto string `json:"projeto"`
	Total   int    `json:"total"`
}

// CalcularEstatisticas conta alocações no filtro, agrupa por nome de
// consultor e ranqueia os 10 projetos mais alocados. Alocações sem
// código de projeto ficam fora do ranking; empates de contagem são
// desfeitos pela ordem lexical do código.
func (r *Repository) CalcularEstatisticas(f Filtro) (*Estatisticas, error) {
	alocacoes, err := r.Listar(f)
	if err != nil {
		return nil, err
	}

	porConsultor := map[string]int{}
	porProjeto := map[string]int{}
	for _, a := range alocacoes {
		porConsultor[a.Consultor.Nome]++
		if a.CodigoProjeto != "" {
			porProjeto[a.CodigoProjeto]++
		}
	}

	est := &Estatisticas{
		TotalAlocacoes: len(alocacoes),
		PorConsultor:   make([]TotalConsultor, 0, len(porConsultor)),
		TopProjetos:    make([]TotalProjeto, 0, len(porProjeto)),
	}
	for nome, total := range porConsultor {
		est.PorConsultor = append(est.PorConsultor, TotalConsultor{Nome: nome, Total: total})
	}
	sort.Slice(est.PorConsultor, func(i, j int) bool {
		return est.PorConsultor[i].Nome < est.PorConsultor[j].Nome
	})

	for codigo, total := range porProjeto {
		est.TopProjetos = append(est.TopProjetos, TotalProjeto{Projeto: codigo, Total: total})
	}
	sort.Slice(est.TopProjetos, func(i, j int) bool {
		if est.TopProjetos[i].Total != est.TopProjetos[j].Total {
			return est.TopProjetos[i].Total > est.TopProjetos[j].Total
		}
		return est.TopProjetos[i].Projeto < est.TopProjetos[j].Projeto
	})
	if len(est.TopProjetos) > 10 {
		est.TopProjetos = est.TopProjetos[:10]
	}
	return est, nil
}
