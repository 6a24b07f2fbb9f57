package model

import (
	"time"

	"github.com/google/uuid"
)

type Informe struct {
	ID            uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PracticaID    uuid.UUID `gorm:"type:uuid;index" json:"practica_id"`
	NombreArchivo string    `gorm:"type:varchar(255)" json:"nombre_archivo"`
	Nota          *float64  `gorm:"type:float" json:"nota"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (i *Informe) TableName() string {
	return "informes"
}

// RubricaInformeFinal guarda los 20 puntajes (0-3) de la rúbrica aplicada a un
// informe. Hay a lo más una fila por informe; recalificar sobreescribe.
type RubricaInformeFinal struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	InformeID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"informe_id"`

	// I. Contenido del documento
	C1PortadaIndice          int `gorm:"column:c1_portada_indice" json:"c1_portada_indice"`
	C2Introduccion           int `gorm:"column:c2_introduccion" json:"c2_introduccion"`
	C3ObjetivoGeneral        int `gorm:"column:c3_objetivo_general" json:"c3_objetivo_general"`
	C4ObjetivosEspecificos   int `gorm:"column:c4_objetivos_especificos" json:"c4_objetivos_especificos"`
	C5CaracterizacionEmpresa int `gorm:"column:c5_caracterizacion_empresa" json:"c5_caracterizacion_empresa"`
	C6DatosSupervisor        int `gorm:"column:c6_datos_supervisor" json:"c6_datos_supervisor"`
	C7DesarrolloPractica     int `gorm:"column:c7_desarrollo_practica" json:"c7_desarrollo_practica"`
	C8Recomendaciones        int `gorm:"column:c8_recomendaciones" json:"c8_recomendaciones"`
	C9Conclusiones           int `gorm:"column:c9_conclusiones" json:"c9_conclusiones"`
	C10Anexos                int `gorm:"column:c10_anexos" json:"c10_anexos"`

	// II. Forma del documento
	C11Formato        int `gorm:"column:c11_formato" json:"c11_formato"`
	C12TerceraPersona int `gorm:"column:c12_tercera_persona" json:"c12_tercera_persona"`
	C13CitasFuentes   int `gorm:"column:c13_citas_fuentes" json:"c13_citas_fuentes"`
	C14Extension      int `gorm:"column:c14_extension" json:"c14_extension"`
	C15TablasGraficos int `gorm:"column:c15_tablas_graficos" json:"c15_tablas_graficos"`
	C16Ortografia     int `gorm:"column:c16_ortografia" json:"c16_ortografia"`

	// III. Pertinencia del documento
	C17CohesionCoherencia  int `gorm:"column:c17_cohesion_coherencia" json:"c17_cohesion_coherencia"`
	C18DesarrolloIdeas     int `gorm:"column:c18_desarrollo_ideas" json:"c18_desarrollo_ideas"`
	C19IdentificacionRoles int `gorm:"column:c19_identificacion_roles" json:"c19_identificacion_roles"`
	C20RiquezaLinguistica  int `gorm:"column:c20_riqueza_linguistica" json:"c20_riqueza_linguistica"`

	PuntajeTotal int       `gorm:"column:puntaje_total" json:"puntaje_total"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *RubricaInformeFinal) TableName() string {
	return "rubrica_informe_final"
}
