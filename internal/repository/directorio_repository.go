package repository

import (
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"gorm.io/gorm"
)

// DirectorioRepository resuelve los contactos del flujo: estudiantes, empresas
// y la nómina de coordinadores a la que se difunden las inscripciones.
type DirectorioRepository struct {
	db *gorm.DB
}

func NewDirectorioRepository(db *gorm.DB) *DirectorioRepository {
	return &DirectorioRepository{db}
}

func (r *DirectorioRepository) FindEstudiante(id string) (*model.Estudiante, error) {
	var estudiante model.Estudiante
	err := r.db.First(&estudiante, "id = ?", id).Error
	return &estudiante, err
}

func (r *DirectorioRepository) FindEmpresa(id string) (*model.Empresa, error) {
	var empresa model.Empresa
	err := r.db.First(&empresa, "id = ?", id).Error
	return &empresa, err
}

func (r *DirectorioRepository) ListCoordinadores() ([]model.Coordinador, error) {
	var coordinadores []model.Coordinador
	err := r.db.Find(&coordinadores).Error
	return coordinadores, err
}
