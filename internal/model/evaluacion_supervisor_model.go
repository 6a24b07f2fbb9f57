package model

import (
	"time"

	"github.com/google/uuid"
)

// EvaluacionSupervisor es el formulario público que responde el supervisor de
// la empresa a través de un enlace con token firmado. El token expira a los 30
// días y queda inutilizado al primer envío.
type EvaluacionSupervisor struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PracticaID   uuid.UUID `gorm:"type:uuid;index" json:"practica_id"`
	EstudianteID uuid.UUID `gorm:"type:uuid" json:"estudiante_id"`
	EmpresaID    uuid.UUID `gorm:"type:uuid" json:"empresa_id"`

	Token          string     `gorm:"type:text;uniqueIndex" json:"-"`
	TokenExpiraEn  time.Time  `json:"token_expira_en"`
	Respondido     bool       `gorm:"default:false" json:"respondido"`
	TokenUsado     bool       `gorm:"default:false" json:"token_usado"`
	FechaRespuesta *time.Time `json:"fecha_respuesta"`

	NombreSupervisor   string `gorm:"type:varchar(100)" json:"nombre_supervisor"`
	CargoSupervisor    string `gorm:"type:varchar(100)" json:"cargo_supervisor"`
	EmailSupervisor    string `gorm:"type:varchar(120)" json:"email_supervisor"`
	TelefonoSupervisor string `gorm:"type:varchar(50)" json:"telefono_supervisor"`

	// Aspectos técnicos
	CalidadTrabajo             int    `json:"calidad_trabajo"`
	EfectividadTrabajo         int    `json:"efectividad_trabajo"`
	ConocimientosProfesionales int    `json:"conocimientos_profesionales"`
	AdaptabilidadCambios       int    `json:"adaptabilidad_cambios"`
	OrganizacionTrabajo        int    `json:"organizacion_trabajo"`
	ObservacionesTecnicas      string `gorm:"type:text" json:"observaciones_tecnicas"`

	// Aspectos personales
	InteresTrabajo   int `json:"interes_trabajo"`
	Responsabilidad  int `json:"responsabilidad"`
	Cooperacion      int `json:"cooperacion"`
	Creatividad      int `json:"creatividad"`
	Iniciativa       int `json:"iniciativa"`
	IntegracionGrupo int `json:"integracion_grupo"`

	ConsideraPositivoRecibirAlumnos string `gorm:"type:varchar(2)" json:"considera_positivo_recibir_alumnos"`
	EspecialidadRequerida           string `gorm:"type:varchar(200)" json:"especialidad_requerida"`
	ComentariosAdicionales          string `gorm:"type:text" json:"comentarios_adicionales"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *EvaluacionSupervisor) TableName() string {
	return "evaluaciones_supervisor"
}
