package repository

import (
	"time"

	"github.com/UserBastianProboste/practicas-api/internal/model"
	"gorm.io/gorm"
)

type EvaluacionSupervisorRepository struct {
	db *gorm.DB
}

func NewEvaluacionSupervisorRepository(db *gorm.DB) *EvaluacionSupervisorRepository {
	return &EvaluacionSupervisorRepository{db}
}

func (r *EvaluacionSupervisorRepository) Create(evaluacion *model.EvaluacionSupervisor) error {
	return r.db.Create(evaluacion).Error
}

func (r *EvaluacionSupervisorRepository) FindByID(id string) (*model.EvaluacionSupervisor, error) {
	var evaluacion model.EvaluacionSupervisor
	err := r.db.First(&evaluacion, "id = ?", id).Error
	return &evaluacion, err
}

func (r *EvaluacionSupervisorRepository) FindByPracticaID(practicaID string) (*model.EvaluacionSupervisor, error) {
	var evaluacion model.EvaluacionSupervisor
	err := r.db.First(&evaluacion, "practica_id = ?", practicaID).Error
	return &evaluacion, err
}

// GuardarRespuesta persiste las respuestas del supervisor y quema el token en
// la misma operación.
func (r *EvaluacionSupervisorRepository) GuardarRespuesta(evaluacion *model.EvaluacionSupervisor) error {
	ahora := time.Now()
	evaluacion.Respondido = true
	evaluacion.TokenUsado = true
	evaluacion.FechaRespuesta = &ahora
	return r.db.Save(evaluacion).Error
}
