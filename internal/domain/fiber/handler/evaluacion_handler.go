package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/middleware"
	"github.com/UserBastianProboste/practicas-api/internal/repository"
	"github.com/UserBastianProboste/practicas-api/internal/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/util"
)

type AutoevaluacionHandler struct {
	uc *usecase.AutoevaluacionUsecase
}

func NewAutoevaluacionHandler(uc *usecase.AutoevaluacionUsecase) *AutoevaluacionHandler {
	return &AutoevaluacionHandler{uc: uc}
}

func (h *AutoevaluacionHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/autoevaluaciones", middleware.RateLimiter(10, 1*time.Minute), h.Registrar)
	app.Get("/autoevaluaciones/:id/nota", h.Previsualizar)
	app.Post("/autoevaluaciones/:id/nota", h.Calificar)
}

func (h *AutoevaluacionHandler) Registrar(c *fiber.Ctx) error {
	var req dto.AutoevaluacionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cuerpo de la solicitud inválido",
		}, err)
	}

	autoevaluacion, err := h.uc.Registrar(req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "No se pudo registrar la autoevaluación",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Autoevaluación registrada",
		Data:    autoevaluacion,
	})
}

// Previsualizar calcula la nota sin escribirla, para revisión del coordinador.
func (h *AutoevaluacionHandler) Previsualizar(c *fiber.Ctx) error {
	resultado, err := h.uc.Previsualizar(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "No se pudo calcular la nota",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Vista previa de la nota",
		Data:    resultado,
		Meta:    fiber.Map{"completa": resultado.Completa()},
	})
}

func (h *AutoevaluacionHandler) Calificar(c *fiber.Ctx) error {
	resultado, err := h.uc.Calificar(c.UserContext(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrYaCalificada):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "La autoevaluación ya fue calificada",
			}, err)
		case errors.Is(err, usecase.ErrAutoevaluacionIncompleta):
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "La autoevaluación está incompleta",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "No se pudo calificar la autoevaluación",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Autoevaluación calificada",
		Data:    resultado.Resultado,
		Meta:    fiber.Map{"notificacion": resultado.Resumen.String()},
	})
}
