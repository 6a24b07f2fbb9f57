package repository

import (
	"errors"

	"github.com/UserBastianProboste/practicas-api/internal/model"
	"gorm.io/gorm"
)

// ErrYaCalificada se devuelve cuando se intenta calificar una autoevaluación
// que ya tiene nota: la transición sin nota → con nota es de ida solamente.
var ErrYaCalificada = errors.New("la autoevaluación ya fue calificada")

type AutoevaluacionRepository struct {
	db *gorm.DB
}

func NewAutoevaluacionRepository(db *gorm.DB) *AutoevaluacionRepository {
	return &AutoevaluacionRepository{db}
}

func (r *AutoevaluacionRepository) Create(autoevaluacion *model.Autoevaluacion) error {
	return r.db.Create(autoevaluacion).Error
}

func (r *AutoevaluacionRepository) FindByID(id string) (*model.Autoevaluacion, error) {
	var autoevaluacion model.Autoevaluacion
	err := r.db.First(&autoevaluacion, "id = ?", id).Error
	return &autoevaluacion, err
}

func (r *AutoevaluacionRepository) FindByPracticaID(practicaID string) (*model.Autoevaluacion, error) {
	var autoevaluacion model.Autoevaluacion
	err := r.db.First(&autoevaluacion, "practica_id = ?", practicaID).Error
	return &autoevaluacion, err
}

// GuardarNota persiste la nota ponderada solo si la fila sigue sin calificar.
// La guarda va en la misma sentencia (WHERE nota IS NULL) para que la nota
// no pueda sobrescribirse ante envíos concurrentes o repetidos.
func (r *AutoevaluacionRepository) GuardarNota(id string, notaPonderada float64) error {
	resultado := r.db.Model(&model.Autoevaluacion{}).
		Where("id = ? AND nota_autoevaluacion IS NULL", id).
		Update("nota_autoevaluacion", notaPonderada)
	if resultado.Error != nil {
		return resultado.Error
	}
	if resultado.RowsAffected == 0 {
		return ErrYaCalificada
	}
	return nil
}
