package repository

import (
	"context"

	"github.com/UserBastianProboste/practicas-api/internal/model"
	"gorm.io/gorm"
)

// NotificacionRepository persiste y lee la bitácora de notificaciones no
// entregadas. Las filas no se actualizan ni se borran desde este servicio.
type NotificacionRepository struct {
	db *gorm.DB
}

func NewNotificacionRepository(db *gorm.DB) *NotificacionRepository {
	return &NotificacionRepository{db}
}

func (r *NotificacionRepository) Crear(ctx context.Context, notificacion *model.Notificacion) error {
	return r.db.WithContext(ctx).Create(notificacion).Error
}

func (r *NotificacionRepository) ListPendientes() ([]model.Notificacion, error) {
	var notificaciones []model.Notificacion
	err := r.db.Where("estado = ?", model.NotificacionEstadoPendiente).
		Order("created_at DESC").
		Find(&notificaciones).Error
	return notificaciones, err
}
