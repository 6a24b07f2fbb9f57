package model

import (
	"time"

	"github.com/google/uuid"
)

type Empresa struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RazonSocial string    `gorm:"type:varchar(100)" json:"razon_social"`
	Direccion   string    `gorm:"type:varchar(200)" json:"direccion"`
	JefeDirecto string    `gorm:"type:varchar(100)" json:"jefe_directo"`
	Cargo       string    `gorm:"type:varchar(100)" json:"cargo"`
	Telefono    string    `gorm:"type:varchar(50)" json:"telefono"`
	Email       string    `gorm:"type:varchar(120)" json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e *Empresa) TableName() string {
	return "empresas"
}
