package empresa

import (
	"errors"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Empresa
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere uma nova empresa. Verifica o CNPJ antes do insert para
// devolver um conflito de domínio em vez de erro de constraint.
func (r *Repository) Criar(e *Empresa) error {
	var count int64
	if err := r.DB.Model(&Empresa{}).Where("cnpj = ?", e.CNPJ).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return erros.ErrConflito
	}
	return r.DB.Create(e).Error
}

func (r *Repository) BuscarPorID(id uint) (*Empresa, error) {
	var e Empresa
	if err := r.DB.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) BuscarPorCNPJ(cnpj string) (*Empresa, error) {
	var e Empresa
	if err := r.DB.Where("cnpj = ?", cnpj).First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repository) ListarTodas(skip, limit int) ([]Empresa, error) {
	var empresas []Empresa
	err := r.DB.Offset(skip).Limit(limit).Find(&empresas).Error
	return empresas, err
}

// Atualizar grava os novos dados. O CNPJ é imutável e permanece o da
// empresa já cadastrada.
func (r *Repository) Atualizar(id uint, novosDados *Empresa) (*Empresa, error) {
	existente, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	existente.Nome = novosDados.Nome
	existente.Sigla = novosDados.Sigla
	existente.Porte = novosDados.Porte
	existente.ER = novosDados.ER
	existente.Carteira = novosDados.Carteira
	existente.Municipio = novosDados.Municipio
	existente.Estado = novosDados.Estado
	existente.Segmento = novosDados.Segmento
	existente.Regiao = novosDados.Regiao
	existente.TipoEmpresa = novosDados.TipoEmpresa
	existente.NumFuncionarios = novosDados.NumFuncionarios
	existente.Observacao = novosDados.Observacao

	if err := r.DB.Save(existente).Error; err != nil {
		return nil, err
	}
	return existente, nil
}

func (r *Repository) Deletar(id uint) error {
	result := r.DB.Delete(&Empresa{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return erros.ErrNaoEncontrado
	}
	return nil
}
