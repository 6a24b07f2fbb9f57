package model

import (
	"time"

	"github.com/google/uuid"
)

type Coordinador struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Nombre    string    `gorm:"type:varchar(100)" json:"nombre"`
	Apellido  string    `gorm:"type:varchar(100)" json:"apellido"`
	Email     string    `gorm:"type:varchar(120)" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Coordinador) TableName() string {
	return "coordinadores"
}

func (c *Coordinador) NombreCompleto() string {
	if c.Nombre == "" {
		return c.Apellido
	}
	if c.Apellido == "" {
		return c.Nombre
	}
	return c.Nombre + " " + c.Apellido
}
