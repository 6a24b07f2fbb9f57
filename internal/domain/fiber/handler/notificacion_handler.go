package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/util"
)

// BandejaNotificaciones lee la bitácora de notificaciones no entregadas.
type BandejaNotificaciones interface {
	ListPendientes() ([]model.Notificacion, error)
}

// NotificacionHandler expone la bitácora de respaldo para seguimiento manual
// por parte del operador.
type NotificacionHandler struct {
	bandeja BandejaNotificaciones
}

func NewNotificacionHandler(bandeja BandejaNotificaciones) *NotificacionHandler {
	return &NotificacionHandler{bandeja: bandeja}
}

func (h *NotificacionHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/notificaciones/pendientes", h.ListarPendientes)
}

func (h *NotificacionHandler) ListarPendientes(c *fiber.Ctx) error {
	notificaciones, err := h.bandeja.ListPendientes()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "No se pudo leer la bitácora de notificaciones",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Notificaciones pendientes",
		Data:    notificaciones,
		Meta:    fiber.Map{"total": len(notificaciones)},
	})
}
