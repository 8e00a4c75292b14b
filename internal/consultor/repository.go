package consultor

import (
	"errors"
	"strings"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, c *Consultor) error
	BuscarPorID(db *gorm.DB, id uint) (*Consultor, error)
	BuscarPorNIF(db *gorm.DB, nif string) (*Consultor, error)
	BuscarPorNome(db *gorm.DB, nome string) (*Consultor, error)
	ListarAtivos(db *gorm.DB, skip, limit int) ([]Consultor, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Consultor) (*Consultor, error)
	Desativar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// Salvar insere um consultor, recusando email duplicado.
func (r *repositoryImpl) Salvar(db *gorm.DB, c *Consultor) error {
	if c.Email != "" {
		var count int64
		if err := db.Model(&Consultor{}).Where("email = ?", c.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return erros.ErrConflito
		}
	}
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Consultor, error) {
	var c Consultor
	if err := db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorNIF(db *gorm.DB, nif string) (*Consultor, error) {
	var c Consultor
	if err := db.Where("nif = ?", nif).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorNome(db *gorm.DB, nome string) (*Consultor, error) {
	var c Consultor
	if err := db.Where("nome = ?", strings.TrimSpace(nome)).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) ListarAtivos(db *gorm.DB, skip, limit int) ([]Consultor, error) {
	var consultores []Consultor
	err := db.Where("ativo = ?", true).Offset(skip).Limit(limit).Find(&consultores).Error
	return consultores, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Consultor) (*Consultor, error) {
	existente, err := r.BuscarPorID(db, id)
	if err != nil {
		return nil, err
	}

	existente.Nome = novosDados.Nome
	existente.Email = novosDados.Email
	existente.NIF = novosDados.NIF
	existente.Cargo = novosDados.Cargo
	existente.Ativo = novosDados.Ativo

	if err := db.Save(existente).Error; err != nil {
		return nil, err
	}
	return existente, nil
}

// Desativar marca o consultor como inativo em vez de remover o
// registro, preservando o histórico de propostas e alocações.
func (r *repositoryImpl) Desativar(db *gorm.DB, id uint) error {
	existente, err := r.BuscarPorID(db, id)
	if err != nil {
		return err
	}
	existente.Ativo = false
	return db.Save(existente).Error
}
