package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UserBastianProboste/practicas-api/internal/model"
)

type bandejaEnMemoria struct {
	pendientes []model.Notificacion
	err        error
}

func (f *bandejaEnMemoria) ListPendientes() ([]model.Notificacion, error) {
	return f.pendientes, f.err
}

func appDeNotificaciones(bandeja *bandejaEnMemoria) *fiber.App {
	app := fiber.New()
	NewNotificacionHandler(bandeja).RegisterRoutes(app)
	return app
}

func TestGetNotificacionesPendientes(t *testing.T) {
	mensajeError := "fallo el envio del correo (HTTP 503)"
	app := appDeNotificaciones(&bandejaEnMemoria{pendientes: []model.Notificacion{
		{Destinatario: "ana@uautonoma.cl", Asunto: "Cambio de estado", Estado: model.NotificacionEstadoPendiente, Error: &mensajeError},
		{Destinatario: "maria@uautonoma.cl", Asunto: "Nueva inscripción", Estado: model.NotificacionEstadoPendiente},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notificaciones/pendientes", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cuerpo := decodificar(t, resp)
	assert.Equal(t, true, cuerpo["success"])
	datos, ok := cuerpo["data"].([]any)
	require.True(t, ok)
	assert.Len(t, datos, 2)
	meta := cuerpo["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["total"])
}

func TestGetNotificacionesPendientes_ErrorDeLectura(t *testing.T) {
	app := appDeNotificaciones(&bandejaEnMemoria{err: errors.New("conexión perdida")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notificaciones/pendientes", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
