package proposta

import (
	"errors"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Proposta
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere uma proposta, recusando número duplicado antes do
// insert para responder conflito de domínio.
func (r *Repository) Criar(p *Proposta) error {
	var count int64
	if err := r.DB.Model(&Proposta{}).Where("numero_proposta = ?", p.NumeroProposta).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return erros.ErrConflito
	}
	if p.Status == "" {
		p.Status = StatusEmAndamento
	}
	return r.DB.Create(p).Error
}

func (r *Repository) BuscarPorID(id uint) (*Proposta, error) {
	var p Proposta
	err := r.DB.Preload("Cronogramas").Preload("Contratos").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) BuscarPorNumero(numero string) (*Proposta, error) {
	var p Proposta
	if err := r.DB.Where("numero_proposta = ?", numero).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &p, nil
}

// Filtro restringe a listagem de propostas.
type Filtro struct {
	Status      string
	ConsultorID *uint
	Skip        int
	Limit       int
}

func (r *Repository) Listar(f Filtro) ([]Proposta, error) {
	query := r.DB.Model(&Proposta{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.ConsultorID != nil {
		query = query.Where("consultor_id = ?", *f.ConsultorID)
	}
	if f.Limit <= 0 {
		f.Limit = 100
	}
	var propostas []Proposta
	err := query.Offset(f.Skip).Limit(f.Limit).Find(&propostas).Error
	return propostas, err
}

func (r *Repository) Atualizar(id uint, dados *PropostaUpdate) (*Proposta, error) {
	var p Proposta
	if err := r.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}

	if dados.ConsultorID != nil {
		p.ConsultorID = dados.ConsultorID
	}
	if dados.Solucao != nil {
		p.Solucao = *dados.Solucao
	}
	if dados.DataContato != nil {
		p.DataContato = dados.DataContato
	}
	if dados.DataProposta != nil {
		p.DataProposta = dados.DataProposta
	}
	if dados.ValorProposta != nil {
		p.ValorProposta = *dados.ValorProposta
	}
	if dados.DataFechamento != nil {
		p.DataFechamento = dados.DataFechamento
	}
	if dados.Status != nil {
		p.Status = *dados.Status
	}
	if dados.Resultado != nil {
		p.Resultado = *dados.Resultado
	}
	if dados.Observacoes != nil {
		p.Observacoes = *dados.Observacoes
	}

	if err := r.DB.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Deletar(id uint) error {
	result := r.DB.Delete(&Proposta{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}
