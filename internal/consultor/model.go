package consultor

import (
	"time"

	"gorm.io/gorm"
)

// Consultor presta os serviços vendidos nas propostas. O NIF identifica
// o consultor nas planilhas de alocação e pode estar ausente em
// cadastros manuais.
type Consultor struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Nome      string         `gorm:"size:255;not null" json:"nome"`
	Email     string         `gorm:"size:255;uniqueIndex" json:"email"`
	NIF       string         `gorm:"size:50;index" json:"nif"`
	Cargo     string         `gorm:"size:100" json:"cargo"`
	Ativo     bool           `gorm:"default:true" json:"ativo"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
