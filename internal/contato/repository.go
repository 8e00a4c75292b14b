package contato

import (
	"errors"
	"strings"

	"github.com/JEFConsultoria/api-gestao/internal/erros"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Contato
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um contato manual. O marcador de dados iniciais nunca
// vem do chamador.
func (r *Repository) Criar(c *Contato) error {
	c.DadosIniciais = false
	return r.DB.Create(c).Error
}

func (r *Repository) BuscarPorID(id uint) (*Contato, error) {
	var c Contato
	if err := r.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, erros.ErrNaoEncontrado
		}
		return nil, err
	}
	return &c, nil
}

// Filtro restringe a listagem de contatos.
type Filtro struct {
	Busca    string
	Empresa  string
	Porte    string
	ER       string
	Carteira string
	Skip     int
	Limit    int
}

func (r *Repository) Listar(f Filtro) ([]Contato, error) {
	query := r.DB.Model(&Contato{})
	if f.Busca != "" {
		padrao := "%" + strings.ToLower(f.Busca) + "%"
		query = query.Where(
			"LOWER(empresa) LIKE ? OR LOWER(cnpj) LIKE ? OR LOWER(contato) LIKE ? OR LOWER(email) LIKE ?",
			padrao, padrao, padrao, padrao)
	}
	if f.Empresa != "" {
		query = query.Where("LOWER(empresa) LIKE ?", "%"+strings.ToLower(f.Empresa)+"%")
	}
	if f.Porte != "" {
		query = query.Where("porte = ?", f.Porte)
	}
	if f.ER != "" {
		query = query.Where("er = ?", f.ER)
	}
	if f.Carteira != "" {
		query = query.Where("carteira = ?", f.Carteira)
	}
	if f.Limit <= 0 {
		f.Limit = 100
	}
	var contatos []Contato
	err := query.Order("empresa").Offset(f.Skip).Limit(f.Limit).Find(&contatos).Error
	return contatos, err
}

// ValoresFiltro lista os valores distintos usados nos filtros da
// carteira.
type ValoresFiltro struct {
	Portes    []string `json:"portes"`
	ERs       []string `json:"ers"`
	Carteiras []string `json:"carteiras"`
}

func (r *Repository) ListarValoresFiltro() (*ValoresFiltro, error) {
	v := &ValoresFiltro{Portes: []string{}, ERs: []string{}, Carteiras: []string{}}

	colunas := []struct {
		nome    string
		destino *[]string
	}{
		{"porte", &v.Portes},
		{"er", &v.ERs},
		{"carteira", &v.Carteiras},
	}
	for _, c := range colunas {
		err := r.DB.Model(&Contato{}).
			Distinct(c.nome).
			Where(c.nome+" IS NOT NULL AND "+c.nome+" <> ''").
			Order(c.nome).
			Pluck(c.nome, c.destino).Error
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ContatoUpdate aplica alteração parcial; só campos presentes mudam.
type ContatoUpdate struct {
	Empresa           *string `json:"empresa"`
	CNPJ              *string `json:"cnpj"`
	Carteira          *string `json:"carteira"`
	Porte             *string `json:"porte"`
	ER                *string `json:"er"`
	Contato           *string `json:"contato"`
	PontoFocal        *string `json:"pontoFocal"`
	Cargo             *string `json:"cargo"`
	ProprietarioSocio *string `json:"proprietarioSocio"`
	TelefoneFixo      *string `json:"telefoneFixo"`
	Celular           *string `json:"celular"`
	Celular2          *string `json:"celular2"`
	Email             *string `json:"email"`
	EmailsVoltaram    *string `json:"emailsVoltaram"`
	Observacoes       *string `json:"observacoes"`
}

// Atualizar recusa alteração de registros da carga inicial com
// ErrProibido.
func (r *Repository) Atualizar(id uint, dados *ContatoUpdate) (*Contato, error) {
	c, err := r.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if c.DadosIniciais {
		return nil, erros.ErrProibido
	}

	aplicar := func(destino *string, origem *string) {
		if origem != nil {
			*destino = *origem
		}
	}
	aplicar(&c.Empresa, dados.Empresa)
	aplicar(&c.CNPJ, dados.CNPJ)
	aplicar(&c.Carteira, dados.Carteira)
	aplicar(&c.Porte, dados.Porte)
	aplicar(&c.ER, dados.ER)
	aplicar(&c.Contato, dados.Contato)
	aplicar(&c.PontoFocal, dados.PontoFocal)
	aplicar(&c.Cargo, dados.Cargo)
	aplicar(&c.ProprietarioSocio, dados.ProprietarioSocio)
	aplicar(&c.TelefoneFixo, dados.TelefoneFixo)
	aplicar(&c.Celular, dados.Celular)
	aplicar(&c.Celular2, dados.Celular2)
	aplicar(&c.Email, dados.Email)
	aplicar(&c.EmailsVoltaram, dados.EmailsVoltaram)
	aplicar(&c.Observacoes, dados.Observacoes)

	if err := r.DB.Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// Deletar recusa exclusão de registros da carga inicial com
// ErrProibido.
func (r *Repository) Deletar(id uint) error {
	c, err := r.BuscarPorID(id)
	if err != nil {
		return err
	}
	if c.DadosIniciais {
		return erros.ErrProibido
	}
	return r.DB.Delete(c).Error
}
