package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profissional de saúde dono dos hospitais, plantões e recebimentos.
type Professional struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name         string `gorm:"size:150;not null" json:"name"`
	Email        string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CPF            string `gorm:"size:14" json:"cpf"`
	ClassCouncil   string `gorm:"size:20" json:"class_council"`
	RegistryNumber string `gorm:"size:30" json:"registry_number"`
	Specialty      string `gorm:"size:100" json:"specialty"`
	Phone          string `gorm:"size:20" json:"phone"`
	Address        string `gorm:"size:255" json:"address"`
	Active         bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
