package dto

import (
	"time"

	"github.com/google/uuid"
)

type PracticaCreateRequest struct {
	EstudianteID        string `json:"estudiante_id"`
	EmpresaID           string `json:"empresa_id"`
	TipoPractica        string `json:"tipo_practica"`
	FechaInicio         string `json:"fecha_inicio"`
	FechaTermino        string `json:"fecha_termino"`
	HorarioTrabajo      string `json:"horario_trabajo"`
	Colacion            string `json:"colacion"`
	CargoPorDesarrollar string `json:"cargo_por_desarrollar"`
	Departamento        string `json:"departamento"`
	Actividades         string `json:"actividades"`
}

type DecisionRequest struct {
	Accion string `json:"accion"` // "aprobada" | "rechazada"
}

type PracticaDTO struct {
	ID           uuid.UUID `json:"id"`
	EstudianteID uuid.UUID `json:"estudiante_id"`
	EmpresaID    uuid.UUID `json:"empresa_id"`
	TipoPractica string    `json:"tipo_practica"`
	FechaInicio  string    `json:"fecha_inicio"`
	FechaTermino string    `json:"fecha_termino"`
	Estado       string    `json:"estado"`
	Avance       int       `json:"avance"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ResultadoAccion acompaña cada mutación que dispara correos: la acción
// principal más el estado (secundario) de la notificación.
type ResultadoAccion struct {
	Practica     any    `json:"practica,omitempty"`
	Notificacion string `json:"notificacion"`
}
