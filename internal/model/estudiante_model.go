package model

import (
	"time"

	"github.com/google/uuid"
)

type Estudiante struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Nombre    string    `gorm:"type:varchar(100)" json:"nombre"`
	Apellido  string    `gorm:"type:varchar(100)" json:"apellido"`
	Email     string    `gorm:"type:varchar(120)" json:"email"`
	Telefono  string    `gorm:"type:varchar(50)" json:"telefono"`
	Carrera   string    `gorm:"type:varchar(100)" json:"carrera"`
	Sede      string    `gorm:"type:varchar(100)" json:"sede"`
	Semestre  string    `gorm:"type:varchar(10)" json:"semestre"`
	Rut       string    `gorm:"type:varchar(50)" json:"rut"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Estudiante) TableName() string {
	return "estudiantes"
}

// NombreCompleto une nombre y apellido para las plantillas de correo.
func (e *Estudiante) NombreCompleto() string {
	if e.Nombre == "" {
		return e.Apellido
	}
	if e.Apellido == "" {
		return e.Nombre
	}
	return e.Nombre + " " + e.Apellido
}
