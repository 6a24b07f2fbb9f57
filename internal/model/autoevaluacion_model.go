package model

import (
	"time"

	"github.com/google/uuid"
)

// Autoevaluacion guarda las 11 respuestas del estudiante (5 de gestión, 6 de
// aspectos personales) como etiquetas de la escala Siempre/Frecuentemente/
// A veces/Nunca. NotaAutoevaluacion es la nota ponderada (nota × 0.1); null
// significa que el coordinador todavía no califica. Una vez escrita no se
// vuelve a modificar.
type Autoevaluacion struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PracticaID         uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"practica_id"`
	Gestion0           string    `gorm:"column:gestion_0;type:varchar(20)" json:"gestion_0"`
	Gestion1           string    `gorm:"column:gestion_1;type:varchar(20)" json:"gestion_1"`
	Gestion2           string    `gorm:"column:gestion_2;type:varchar(20)" json:"gestion_2"`
	Gestion3           string    `gorm:"column:gestion_3;type:varchar(20)" json:"gestion_3"`
	Gestion4           string    `gorm:"column:gestion_4;type:varchar(20)" json:"gestion_4"`
	Personales0        string    `gorm:"column:personales_0;type:varchar(20)" json:"personales_0"`
	Personales1        string    `gorm:"column:personales_1;type:varchar(20)" json:"personales_1"`
	Personales2        string    `gorm:"column:personales_2;type:varchar(20)" json:"personales_2"`
	Personales3        string    `gorm:"column:personales_3;type:varchar(20)" json:"personales_3"`
	Personales4        string    `gorm:"column:personales_4;type:varchar(20)" json:"personales_4"`
	Personales5        string    `gorm:"column:personales_5;type:varchar(20)" json:"personales_5"`
	NotaAutoevaluacion *float64  `gorm:"type:float" json:"nota_autoevaluacion"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (a *Autoevaluacion) TableName() string {
	return "autoevaluaciones"
}

// Respuestas expone las 11 respuestas con las claves de criterio que usa la
// calculadora de notas.
func (a *Autoevaluacion) Respuestas() map[string]string {
	return map[string]string{
		"gestion_0":    a.Gestion0,
		"gestion_1":    a.Gestion1,
		"gestion_2":    a.Gestion2,
		"gestion_3":    a.Gestion3,
		"gestion_4":    a.Gestion4,
		"personales_0": a.Personales0,
		"personales_1": a.Personales1,
		"personales_2": a.Personales2,
		"personales_3": a.Personales3,
		"personales_4": a.Personales4,
		"personales_5": a.Personales5,
	}
}

// Calificada indica si la nota ya fue persistida (transición irreversible).
func (a *Autoevaluacion) Calificada() bool {
	return a.NotaAutoevaluacion != nil
}
