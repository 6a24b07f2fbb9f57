package model

import (
	"time"

	"github.com/google/uuid"
)

const NotificacionEstadoPendiente = "pendiente"

// Notificacion es el registro de respaldo que se persiste cuando un correo no
// pudo entregarse tras agotar los reintentos. Cuerpo guarda el payload completo
// que se intentó enviar. Las filas nunca se borran ni se reintentan desde este
// servicio; son una bitácora para seguimiento manual.
type Notificacion struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Destinatario string    `gorm:"type:varchar(120)" json:"destinatario"`
	Asunto       string    `gorm:"type:varchar(255)" json:"asunto"`
	Cuerpo       string    `gorm:"type:jsonb" json:"cuerpo"`
	Estado       string    `gorm:"type:varchar(20);default:pendiente" json:"estado"`
	Error        *string   `gorm:"type:text" json:"error"`
	CreatedAt    time.Time `json:"created_at"`
}

func (n *Notificacion) TableName() string {
	return "notificaciones"
}
