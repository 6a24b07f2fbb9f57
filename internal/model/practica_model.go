package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados posibles de una práctica. "pendiente" es el estado inicial; las
// decisiones del coordinador la mueven a "aprobada" o "rechazada".
const (
	EstadoPendiente  = "pendiente"
	EstadoAprobada   = "aprobada"
	EstadoRechazada  = "rechazada"
	EstadoEnRevision = "en_revision"
	EstadoEnProgreso = "en_progreso"
	EstadoCompletada = "completada"
	EstadoFinalizada = "finalizada"
)

const (
	TipoPractica1 = "practica_1"
	TipoPractica2 = "practica_2"
)

type Practica struct {
	ID                  uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EstudianteID        uuid.UUID   `gorm:"type:uuid;index" json:"estudiante_id"`
	EmpresaID           uuid.UUID   `gorm:"type:uuid;index" json:"empresa_id"`
	TipoPractica        string      `gorm:"type:varchar(20);default:practica_1" json:"tipo_practica"`
	FechaInicio         string      `gorm:"type:date" json:"fecha_inicio"`
	FechaTermino        string      `gorm:"type:date" json:"fecha_termino"`
	HorarioTrabajo      string      `gorm:"type:varchar(100)" json:"horario_trabajo"`
	Colacion            string      `gorm:"type:varchar(100)" json:"colacion"`
	CargoPorDesarrollar string      `gorm:"type:varchar(100)" json:"cargo_por_desarrollar"`
	Departamento        string      `gorm:"type:varchar(100)" json:"departamento"`
	Actividades         string      `gorm:"type:text" json:"actividades"`
	Estado              string      `gorm:"type:varchar(20);default:pendiente" json:"estado"`
	Comentarios         string      `gorm:"type:text" json:"comentarios"`
	Estudiante          *Estudiante `gorm:"foreignKey:EstudianteID" json:"estudiante,omitempty"`
	Empresa             *Empresa    `gorm:"foreignKey:EmpresaID" json:"empresa,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

func (p *Practica) TableName() string {
	return "practicas"
}

// EstadoValido reconoce los estados que el flujo puede asignar.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoAprobada, EstadoRechazada, EstadoEnRevision,
		EstadoEnProgreso, EstadoCompletada, EstadoFinalizada:
		return true
	}
	return false
}
