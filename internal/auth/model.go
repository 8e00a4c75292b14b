package auth

import (
	"time"

	"gorm.io/gorm"
)

// Funções de usuário aceitas pelo sistema.
const (
	FuncaoAdmin      = "Admin"
	FuncaoConsultor  = "Consultor"
	FuncaoFinanceiro = "Financeiro"
)

// Usuario é a conta de acesso ao sistema. Pode estar vinculada a um
// consultor (função Consultor) para restringir a visão de propostas.
type Usuario struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Nome        string         `gorm:"size:255;not null" json:"nome"`
	Email       string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	SenhaHash   string         `gorm:"size:255;not null" json:"-"`
	Funcao      string         `gorm:"size:50;not null" json:"funcao"`
	ConsultorID *uint          `json:"consultorId,omitempty"`
	Ativo       bool           `gorm:"default:true" json:"ativo"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
