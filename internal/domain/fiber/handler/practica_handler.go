package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/middleware"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/response"
	"github.com/UserBastianProboste/practicas-api/internal/usecase"
	"github.com/UserBastianProboste/practicas-api/internal/util"
)

type PracticaHandler struct {
	uc *usecase.PracticaUsecase
}

func NewPracticaHandler(uc *usecase.PracticaUsecase) *PracticaHandler {
	return &PracticaHandler{uc: uc}
}

func (h *PracticaHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/practicas", middleware.RateLimiter(10, 1*time.Minute), h.Crear)
	app.Get("/practicas", h.Listar)
	app.Get("/practicas/:id", h.Obtener)
	app.Patch("/practicas/:id/estado", h.Decidir)
}

func (h *PracticaHandler) Crear(c *fiber.Ctx) error {
	var req dto.PracticaCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cuerpo de la solicitud inválido",
		}, err)
	}

	resultado, err := h.uc.Crear(c.UserContext(), req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "No se pudo registrar la ficha de práctica",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Ficha de práctica registrada",
		Data: dto.ResultadoAccion{
			Practica:     practicaADTO(resultado.Practica),
			Notificacion: resultado.Resumen.String(),
		},
	})
}

func (h *PracticaHandler) Listar(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	estado := c.Query("estado")

	practicas, total, err := h.uc.Listar(estado, page, limit)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "No se pudo listar las prácticas",
		}, err)
	}

	items := make([]dto.PracticaDTO, 0, len(practicas))
	for i := range practicas {
		items = append(items, practicaADTO(&practicas[i]))
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:       fiber.StatusOK,
		Message:    "Prácticas listadas",
		Data:       items,
		Pagination: response.NewPagination(page, limit, total, len(items)),
	})
}

func (h *PracticaHandler) Obtener(c *fiber.Ctx) error {
	practica, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "Práctica no encontrada",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Práctica encontrada",
		Data:    practica,
		Meta:    fiber.Map{"avance": util.AvancePorTiempo(practica.FechaInicio, practica.FechaTermino, time.Now())},
	})
}

func (h *PracticaHandler) Decidir(c *fiber.Ctx) error {
	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "Cuerpo de la solicitud inválido",
		}, err)
	}

	resultado, err := h.uc.Decidir(c.UserContext(), c.Params("id"), req.Accion)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    codigoPara(err),
			Message: "No se pudo aplicar la decisión",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Decisión aplicada",
		Data: dto.ResultadoAccion{
			Practica:     practicaADTO(resultado.Practica),
			Notificacion: resultado.Resumen.String(),
		},
	})
}

func practicaADTO(p *model.Practica) dto.PracticaDTO {
	return dto.PracticaDTO{
		ID:           p.ID,
		EstudianteID: p.EstudianteID,
		EmpresaID:    p.EmpresaID,
		TipoPractica: p.TipoPractica,
		FechaInicio:  p.FechaInicio,
		FechaTermino: p.FechaTermino,
		Estado:       p.Estado,
		Avance:       util.AvancePorTiempo(p.FechaInicio, p.FechaTermino, time.Now()),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// codigoPara traduce los errores del dominio a códigos HTTP.
func codigoPara(err error) int {
	var formErr *util.FormError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrAccionInvalida):
		return fiber.StatusBadRequest
	case errors.As(err, &formErr):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
