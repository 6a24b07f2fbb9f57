package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/middleware"
	"github.com/UserBastianProboste/practicas-api/internal/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/util"
)

type EvaluacionSupervisorHandler struct {
	uc *usecase.EvaluacionSupervisorUsecase
}

func NewEvaluacionSupervisorHandler(uc *usecase.EvaluacionSupervisorUsecase) *EvaluacionSupervisorHandler {
	return &EvaluacionSupervisorHandler{uc: uc}
}

func (h *EvaluacionSupervisorHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/evaluaciones-supervisor", h.GenerarInvitacion)
	// Endpoints públicos: el token firmado es la única credencial.
	app.Get("/evaluaciones-supervisor/:token", h.Validar)
	app.Post("/evaluaciones-supervisor/:token", middleware.RateLimiter(5, 1*time.Minute), h.Responder)
}

func (h *EvaluacionSupervisorHandler) GenerarInvitacion(c *fiber.Ctx) error {
	var req dto.InvitacionSupervisorRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cuerpo de la solicitud inválido",
		}, err)
	}

	invitacion, err := h.uc.GenerarInvitacion(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "No se pudo generar la invitación",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Invitación enviada al supervisor",
		Data: fiber.Map{
			"evaluacion": invitacion.Evaluacion,
			"enlace":     invitacion.Enlace,
		},
		Meta: fiber.Map{"notificacion": invitacion.Resumen.String()},
	})
}

func (h *EvaluacionSupervisorHandler) Validar(c *fiber.Ctx) error {
	evaluacion, err := h.uc.ValidarToken(c.Params("token"))
	if err != nil {
		return errorToken(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Token válido",
		Data:    evaluacion,
	})
}

func (h *EvaluacionSupervisorHandler) Responder(c *fiber.Ctx) error {
	var req dto.RespuestaSupervisorRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cuerpo de la solicitud inválido",
		}, err)
	}

	resultado, err := h.uc.Responder(c.UserContext(), c.Params("token"), req)
	if err != nil {
		return errorToken(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Evaluación registrada, gracias por su tiempo",
		Data:    resultado.Evaluacion,
		Meta:    fiber.Map{"notificacion": resultado.Resumen.String()},
	})
}

func errorToken(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrTokenExpirado):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusGone,
			Message: "El enlace de evaluación expiró",
		}, err)
	case errors.Is(err, usecase.ErrTokenUsado), errors.Is(err, usecase.ErrYaRespondida):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusConflict,
			Message: "La evaluación ya fue respondida",
		}, err)
	case errors.Is(err, usecase.ErrTokenInvalido):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusUnauthorized,
			Message: "Token de evaluación inválido",
		}, err)
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    codigoPara(err),
		Message: "No se pudo procesar la evaluación",
	}, err)
}
