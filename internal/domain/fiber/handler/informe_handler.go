package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/grade"
	"github.com/UserBastianProboste/practicas-api/internal/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/util"
)

type InformeHandler struct {
	uc *usecase.InformeUsecase
}

func NewInformeHandler(uc *usecase.InformeUsecase) *InformeHandler {
	return &InformeHandler{uc: uc}
}

func (h *InformeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/informes", h.Subir)
	app.Put("/informes/:id/rubrica", h.CalificarRubrica)
	app.Get("/informes/:id/rubrica", h.ObtenerRubrica)
}

func (h *InformeHandler) Subir(c *fiber.Ctx) error {
	var req dto.InformeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cuerpo de la solicitud inválido",
		}, err)
	}

	informe, err := h.uc.Subir(req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "No se pudo registrar el informe",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Informe registrado",
		Data:    informe,
	})
}

func (h *InformeHandler) CalificarRubrica(c *fiber.Ctx) error {
	var req dto.RubricaRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cuerpo de la solicitud inválido",
		}, err)
	}

	resultado, err := h.uc.CalificarRubrica(c.UserContext(), c.Params("id"), req)
	if err != nil {
		var incompleta *grade.ErrRubricaIncompleta
		if errors.As(err, &incompleta) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnprocessableEntity,
				Message: "La rúbrica tiene criterios faltantes o fuera de rango",
				Details: fiber.Map{"criterios": incompleta.Criterios},
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "No se pudo calificar el informe",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Informe calificado",
		Data: fiber.Map{
			"puntaje_total": resultado.PuntajeTotal,
			"nota":          resultado.Nota,
		},
		Meta: fiber.Map{"notificacion": resultado.Resumen.String()},
	})
}

func (h *InformeHandler) ObtenerRubrica(c *fiber.Ctx) error {
	rubrica, err := h.uc.ObtenerRubrica(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "Rúbrica no encontrada",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Rúbrica encontrada",
		Data:    rubrica,
	})
}
