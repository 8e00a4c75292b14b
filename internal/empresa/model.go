package empresa

import (
	"time"

	"gorm.io/gorm"
)

// Empresa é uma companhia prospectada ou atendida. O CNPJ é a chave
// natural e não muda depois do cadastro.
type Empresa struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CNPJ            string         `gorm:"size:18;uniqueIndex;not null" json:"cnpj"`
	Nome            string         `gorm:"size:255;not null" json:"nome"`
	Sigla           string         `gorm:"size:50" json:"sigla"`
	Porte           string         `gorm:"size:50" json:"porte"`
	ER              string         `gorm:"size:100" json:"er"`
	Carteira        string         `gorm:"size:100" json:"carteira"`
	Municipio       string         `gorm:"size:100" json:"municipio"`
	Estado          string         `gorm:"size:2" json:"estado"`
	Segmento        string         `gorm:"size:255" json:"segmento"`
	Regiao          string         `gorm:"size:100" json:"regiao"`
	TipoEmpresa     string         `gorm:"size:100" json:"tipoEmpresa"`
	NumFuncionarios int            `json:"numFuncionarios"`
	Observacao      string         `gorm:"type:text" json:"observacao"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
