package repository

import (
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InformeRepository struct {
	db *gorm.DB
}

func NewInformeRepository(db *gorm.DB) *InformeRepository {
	return &InformeRepository{db}
}

func (r *InformeRepository) Create(informe *model.Informe) error {
	return r.db.Create(informe).Error
}

func (r *InformeRepository) FindByID(id string) (*model.Informe, error) {
	var informe model.Informe
	err := r.db.First(&informe, "id = ?", id).Error
	return &informe, err
}

// UpsertRubrica escribe la rúbrica del informe. La fila está indexada por
// informe_id: volver a calificar sobreescribe en lugar de duplicar.
func (r *InformeRepository) UpsertRubrica(rubrica *model.RubricaInformeFinal) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "informe_id"}},
		UpdateAll: true,
	}).Create(rubrica).Error
}

func (r *InformeRepository) FindRubrica(informeID string) (*model.RubricaInformeFinal, error) {
	var rubrica model.RubricaInformeFinal
	err := r.db.First(&rubrica, "informe_id = ?", informeID).Error
	return &rubrica, err
}

// UpdateNota escribe la nota final en la fila del informe. Se actualiza por
// separado de la rúbrica, después de que esta quedó guardada.
func (r *InformeRepository) UpdateNota(id string, nota float64) error {
	return r.db.Model(&model.Informe{}).Where("id = ?", id).Update("nota", nota).Error
}
