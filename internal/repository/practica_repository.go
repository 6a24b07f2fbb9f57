package repository

import (
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"gorm.io/gorm"
)

type PracticaRepository struct {
	db *gorm.DB
}

func NewPracticaRepository(db *gorm.DB) *PracticaRepository {
	return &PracticaRepository{db}
}

func (r *PracticaRepository) Create(practica *model.Practica) error {
	return r.db.Create(practica).Error
}

func (r *PracticaRepository) FindByID(id string) (*model.Practica, error) {
	var practica model.Practica
	err := r.db.Preload("Estudiante").Preload("Empresa").First(&practica, "id = ?", id).Error
	return &practica, err
}

func (r *PracticaRepository) List(estado string, page, limit int) ([]model.Practica, int64, error) {
	var practicas []model.Practica
	var total int64

	query := r.db.Model(&model.Practica{})
	if estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Estudiante").
		Preload("Empresa").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&practicas).Error
	return practicas, total, err
}

// UpdateEstado cambia el estado de la práctica y devuelve la fila actualizada.
func (r *PracticaRepository) UpdateEstado(id, estado string) (*model.Practica, error) {
	if err := r.db.Model(&model.Practica{}).Where("id = ?", id).Update("estado", estado).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
