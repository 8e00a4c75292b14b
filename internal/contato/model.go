package contato

import (
	"time"

	"github.com/JEFConsultoria/api-gestao/internal/tipos"
	"gorm.io/gorm"
)

// Contato é um registro da carteira de relacionamento. Registros com
// DadosIniciais vieram da carga de referência e são imutáveis: edição
// e exclusão são recusadas.
type Contato struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Empresa           string         `gorm:"size:255;index" json:"empresa"`
	CNPJ              string         `gorm:"size:18;index" json:"cnpj"`
	Carteira          string         `gorm:"size:100" json:"carteira"`
	Porte             string         `gorm:"size:50" json:"porte"`
	ER                string         `gorm:"size:100" json:"er"`
	Contato           string         `gorm:"size:255" json:"contato"`
	PontoFocal        string         `gorm:"size:255" json:"pontoFocal"`
	Cargo             string         `gorm:"size:100" json:"cargo"`
	ProprietarioSocio string         `gorm:"size:255" json:"proprietarioSocio"`
	TelefoneFixo      string         `gorm:"size:20" json:"telefoneFixo"`
	Celular           string         `gorm:"size:20" json:"celular"`
	Celular2          string         `gorm:"size:20" json:"celular2"`
	Email             string         `gorm:"size:255" json:"email"`
	EmailsVoltaram    string         `gorm:"size:255" json:"emailsVoltaram"`
	Observacoes       string         `gorm:"type:text" json:"observacoes"`
	Atualizacao       *tipos.Data    `json:"atualizacao,omitempty"`
	DadosIniciais     bool           `gorm:"default:false" json:"dadosIniciais"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
