package mail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatearFecha(t *testing.T) {
	casos := []struct {
		entrada string
		salida  string
	}{
		{"2024-03-15", "15 de marzo de 2024"},
		{"2024-12-01", "01 de diciembre de 2024"},
		{"2024-03-15T10:30:00Z", "15 de marzo de 2024"},
		{"", "No especificada"},
		{"   ", "No especificada"},
		{"no-es-fecha", "no-es-fecha"},
	}
	for _, caso := range casos {
		assert.Equal(t, caso.salida, FormatearFecha(caso.entrada), "entrada %q", caso.entrada)
	}
}

func TestRenderFichaRecibida(t *testing.T) {
	correo := RenderFichaRecibida(Datos{
		EstudianteNombre:   "Ana",
		EstudianteApellido: "Rojas",
		TipoPractica:       "practica_1",
		Empresa:            "ACME Ltda.",
		FechaInicio:        "2024-03-01",
		FechaTermino:       "2024-06-30",
	})

	assert.Contains(t, correo.Subject, "Ficha de Práctica Recibida")
	assert.Contains(t, correo.HTML, "Ana Rojas")
	assert.Contains(t, correo.HTML, "ACME Ltda.")
	assert.Contains(t, correo.HTML, "01 de marzo de 2024")
	assert.Contains(t, correo.HTML, "Universidad Autónoma de Chile")
}

func TestRenderFichaRecibida_SinDatosUsaAlternos(t *testing.T) {
	correo := RenderFichaRecibida(Datos{})

	assert.Contains(t, correo.HTML, "Estudiante")
	assert.Contains(t, correo.HTML, "No especificada")
	assert.Contains(t, correo.Subject, "Práctica Profesional")
}

func TestRenderNuevaInscripcion_PersonalizaCoordinador(t *testing.T) {
	correo := RenderNuevaInscripcion(Datos{
		EstudianteNombre: "Pedro",
		CoordinatorName:  "María Soto",
		TipoPractica:     "practica_2",
	})

	assert.Contains(t, correo.HTML, "María Soto")
	assert.Contains(t, correo.Subject, "Nueva Inscripción")
	assert.Contains(t, correo.Subject, "Pedro")
}

func TestRenderCambioEstado_EstadoEnMayusculasEnAsunto(t *testing.T) {
	correo := RenderCambioEstado(Datos{
		EstudianteNombre: "Ana",
		Estado:           "aprobada",
		TipoPractica:     "practica_1",
	})

	assert.Contains(t, correo.Subject, "APROBADA")
	assert.Contains(t, correo.HTML, "Felicidades")
}

func TestRenderCambioEstado_EstadoConGuionBajo(t *testing.T) {
	correo := RenderCambioEstado(Datos{Estado: "en_revision"})

	assert.Contains(t, correo.Subject, "EN REVISION")
	assert.NotContains(t, correo.Subject, "en_revision")
}

func TestRenderCambioEstado_EstadoDesconocidoUsaEstiloNeutro(t *testing.T) {
	correo := RenderCambioEstado(Datos{Estado: "algo_raro"})

	assert.Contains(t, correo.Subject, "ALGO RARO")
	assert.Contains(t, correo.HTML, "#616161")
}

func TestRenderGenerico_EnvuelveMensajeSimple(t *testing.T) {
	correo := RenderGenerico(Datos{
		Subject:     "Aviso",
		MensajeHTML: "<p>hola</p>",
	})

	assert.Equal(t, "Aviso", correo.Subject)
	assert.Contains(t, correo.HTML, "<p>hola</p>")
	assert.Contains(t, correo.HTML, "Universidad Autónoma de Chile")
}

func TestRenderGenerico_DocumentoCompletoPasaIntacto(t *testing.T) {
	documento := "<!DOCTYPE html><html><body><p>ya armado</p></body></html>"
	correo := RenderGenerico(Datos{MensajeHTML: documento})

	assert.Equal(t, documento, correo.HTML)
	assert.Equal(t, "Notificación del Sistema de Prácticas", correo.Subject)
}

func TestRender_TipoDesconocidoCaeEnGenerico(t *testing.T) {
	correo := Render(Tipo("inexistente"), Datos{MensajeHTML: "<p>x</p>"})

	assert.Equal(t, "Notificación del Sistema de Prácticas", correo.Subject)
	assert.Contains(t, correo.HTML, "<p>x</p>")
}

func TestMensajeInvitacionSupervisor(t *testing.T) {
	mensaje := MensajeInvitacionSupervisor("Juan Pérez", "Ana Rojas", "ACME Ltda.", "practica_1", "Coordinación de Prácticas", "https://portal.example/evaluacion?token=abc")

	assert.Contains(t, mensaje, "Juan Pérez")
	assert.Contains(t, mensaje, "Ana Rojas")
	assert.Contains(t, mensaje, "ACME Ltda.")
	assert.Contains(t, mensaje, `href="https://portal.example/evaluacion?token=abc"`)
	assert.Contains(t, mensaje, "30 días")
	assert.True(t, strings.Contains(mensaje, "Coordinación de Prácticas"))
}
