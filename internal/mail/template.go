// Package mail contiene las plantillas HTML de correo del sistema de
// prácticas y el cliente hacia la función de envío. Las plantillas están
// optimizadas para pasar los filtros de Microsoft 365/Outlook.
package mail

import (
	"fmt"
	"strings"
	"time"
)

// Tipo selecciona la plantilla a renderizar.
type Tipo string

const (
	TipoFichaRecibida    Tipo = "ficha_recibida"
	TipoNuevaInscripcion Tipo = "nueva_inscripcion"
	TipoCambioEstado     Tipo = "cambio_estado"
	TipoGenerico         Tipo = "generico"
)

// Datos es el payload que interpolan las plantillas. Los campos ausentes se
// reemplazan por textos neutros ("No especificada", "Estudiante", etc.).
type Datos struct {
	EstudianteNombre   string
	EstudianteApellido string
	CoordinatorName    string
	TipoPractica       string
	Empresa            string
	FechaInicio        string
	FechaTermino       string
	Estado             string
	PracticaID         string
	Subject            string
	MensajeHTML        string
}

// Correo es el resultado de renderizar una plantilla.
type Correo struct {
	Subject string
	HTML    string
}

// estiloEstado define el tratamiento visual de cada estado en los correos de
// cambio de estado. Un estado desconocido usa el arco neutro: la notificación
// nunca se bloquea por un estado que la tabla no conoce.
type estiloEstado struct {
	Emoji       string
	Color       string
	BgColor     string
	BorderColor string
}

var estilosEstado = map[string]estiloEstado{
	"aprobada":    {Emoji: "✅", Color: "#2e7d32", BgColor: "#e8f5e9", BorderColor: "#4caf50"},
	"rechazada":   {Emoji: "❌", Color: "#da291c", BgColor: "#ffebee", BorderColor: "#f75b50"},
	"pendiente":   {Emoji: "⏳", Color: "#f57c00", BgColor: "#fff3e0", BorderColor: "#ff9800"},
	"en_revision": {Emoji: "👀", Color: "#da291c", BgColor: "#fff5f5", BorderColor: "#f75b50"},
	"en_progreso": {Emoji: "🔄", Color: "#1976d2", BgColor: "#e3f2fd", BorderColor: "#42a5f5"},
	"completada":  {Emoji: "🎓", Color: "#6a1b9a", BgColor: "#f3e5f5", BorderColor: "#9c27b0"},
	"finalizada":  {Emoji: "🎓", Color: "#6a1b9a", BgColor: "#f3e5f5", BorderColor: "#9c27b0"},
}

var estiloNeutro = estiloEstado{Emoji: "📝", Color: "#616161", BgColor: "#f5f5f5", BorderColor: "#9e9e9e"}

func estiloPara(estado string) estiloEstado {
	if e, ok := estilosEstado[strings.ToLower(estado)]; ok {
		return e
	}
	return estiloNeutro
}

var mesesES = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatearFecha renderiza una fecha ISO como "15 de enero de 2024". Una
// fecha vacía o que no se puede interpretar devuelve "No especificada" o el
// texto original, nunca un string vacío.
func FormatearFecha(fecha string) string {
	if strings.TrimSpace(fecha) == "" {
		return "No especificada"
	}
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, fecha); err != nil {
			return fecha
		}
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), mesesES[t.Month()-1], t.Year())
}

func nombreCompleto(nombre, apellido string) string {
	full := strings.TrimSpace(strings.TrimSpace(nombre) + " " + strings.TrimSpace(apellido))
	if full == "" {
		return "Estudiante"
	}
	return full
}

func oTexto(v, alterno string) string {
	if strings.TrimSpace(v) == "" {
		return alterno
	}
	return v
}

// layout envuelve el contenido en el marco institucional (header con el
// degradado rojo, footer con datos de contacto).
func layout(contenido string) string {
	anio := time.Now().Year()
	return strings.TrimSpace(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Universidad Autónoma de Chile</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Roboto', 'Helvetica', Arial, sans-serif; background-color: #f5f5f5;">
    <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="background-color: #f5f5f5; padding: 20px 0;">
        <tr>
            <td align="center">
                <table width="600" cellpadding="0" cellspacing="0" border="0" style="background-color: #ffffff; max-width: 600px; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.08);">
                    <tr>
                        <td style="background: linear-gradient(135deg, #da291c 0%%, #f75b50 100%%); padding: 35px 25px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 26px; font-weight: 600; letter-spacing: 0.5px;">
                                Universidad Autónoma de Chile
                            </h1>
                            <p style="color: rgba(255,255,255,0.95); margin: 10px 0 0 0; font-size: 15px; font-weight: 400;">
                                Sistema de Gestión de Prácticas Profesionales
                            </p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 35px 30px;">
                            %s
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #fafafa; padding: 30px 25px; border-top: 2px solid #da291c;">
                            <p style="margin: 0; color: #333333; font-size: 14px; font-weight: 600; line-height: 1.5;">
                                Coordinación de Prácticas Profesionales
                            </p>
                            <p style="margin: 4px 0 0 0; color: #666666; font-size: 13px; line-height: 1.4;">
                                Universidad Autónoma de Chile
                            </p>
                            <p style="margin: 15px 0 0 0; font-size: 12px; color: #888888; line-height: 1.5;">
                                Este es un correo automático del Sistema de Gestión de Prácticas Profesionales.<br>
                                Para consultas, contacta a: <a href="mailto:practicas@uautonoma.cl" style="color: #da291c; text-decoration: none; font-weight: 500;">practicas@uautonoma.cl</a>
                            </p>
                            <p style="margin: 15px 0 0 0; font-size: 11px; color: #aaaaaa; line-height: 1.4;">
                                Universidad Autónoma de Chile<br>
                                Av. Pedro de Valdivia 425, Providencia, Santiago<br>
                                © %d Universidad Autónoma de Chile. Todos los derechos reservados.
                            </p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`, contenido, anio))
}

func filaDato(etiqueta, valor string) string {
	return fmt.Sprintf(`
                    <tr style="border-top: 1px solid #f0f0f0;">
                        <td width="40%%" style="color: #666666; font-size: 14px; padding: 8px 0; font-weight: 500;">%s</td>
                        <td style="color: #333333; font-size: 14px; padding: 8px 0; font-weight: 600;">%s</td>
                    </tr>`, etiqueta, valor)
}

// RenderFichaRecibida confirma al estudiante la recepción de su ficha.
func RenderFichaRecibida(d Datos) Correo {
	nombre := nombreCompleto(d.EstudianteNombre, d.EstudianteApellido)
	contenido := fmt.Sprintf(`
    <h2 style="color: #4CAF50; margin: 0 0 25px 0; font-size: 24px; font-weight: 600;">
        ✅ Ficha de Práctica Recibida
    </h2>
    <p style="margin: 0 0 16px 0; color: #333333; font-size: 16px; line-height: 1.7;">
        Hola <strong style="color: #da291c;">%s</strong>,
    </p>
    <p style="margin: 0 0 20px 0; color: #555555; font-size: 15px; line-height: 1.7;">
        Hemos recibido exitosamente tu ficha de práctica profesional con los siguientes datos:
    </p>
    <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="background: linear-gradient(135deg, #f9f9f9 0%%, #ffffff 100%%); border-radius: 8px; margin: 25px 0; border: 2px solid #e8e8e8;">
        <tr>
            <td style="padding: 25px;">
                <table width="100%%" cellpadding="8" cellspacing="0" border="0">%s%s%s%s
                </table>
            </td>
        </tr>
    </table>
    <p style="margin: 25px 0 16px 0; color: #555555; font-size: 15px; line-height: 1.7;">
        La Coordinación de Prácticas revisará tu información y te notificaremos sobre cualquier actualización o requerimiento adicional.
    </p>
    <p style="margin: 16px 0 0 0; color: #555555; font-size: 15px; line-height: 1.7;">
        Te deseamos mucho éxito en esta etapa de tu formación profesional. 🎓
    </p>
    <p style="margin: 30px 0 0 0; color: #666666; font-size: 14px; line-height: 1.6;">
        Atentamente,<br>
        <strong style="color: #333333;">Coordinación de Prácticas Profesionales</strong>
    </p>`,
		nombre,
		filaDato("📚 Tipo de Práctica:", oTexto(d.TipoPractica, "No especificado")),
		filaDato("🏢 Empresa:", oTexto(d.Empresa, "No especificada")),
		filaDato("📅 Fecha Inicio:", FormatearFecha(d.FechaInicio)),
		filaDato("📅 Fecha Término:", FormatearFecha(d.FechaTermino)),
	)

	return Correo{
		Subject: fmt.Sprintf("✅ Ficha de Práctica Recibida - %s", oTexto(d.TipoPractica, "Práctica Profesional")),
		HTML:    layout(contenido),
	}
}

// RenderNuevaInscripcion avisa a un coordinador que entró una inscripción.
func RenderNuevaInscripcion(d Datos) Correo {
	nombreEstudiante := nombreCompleto(d.EstudianteNombre, d.EstudianteApellido)
	nombreCoordinador := oTexto(d.CoordinatorName, "Coordinador/a")

	filaID := ""
	if d.PracticaID != "" {
		filaID = filaDato("🔢 ID Práctica:", d.PracticaID)
	}

	contenido := fmt.Sprintf(`
    <h2 style="color: #da291c; margin: 0 0 25px 0; font-size: 24px; font-weight: 600;">
        📋 Nueva Inscripción de Práctica
    </h2>
    <p style="margin: 0 0 16px 0; color: #333333; font-size: 16px; line-height: 1.7;">
        Estimado/a <strong style="color: #da291c;">%s</strong>,
    </p>
    <p style="margin: 0 0 20px 0; color: #555555; font-size: 15px; line-height: 1.7;">
        Se ha registrado una nueva inscripción de práctica profesional en el sistema:
    </p>
    <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="background: linear-gradient(135deg, #fff5f5 0%%, #ffffff 100%%); border-radius: 8px; margin: 25px 0; border-left: 5px solid #da291c;">
        <tr>
            <td style="padding: 25px;">
                <table width="100%%" cellpadding="8" cellspacing="0" border="0">%s%s%s%s%s
                </table>
            </td>
        </tr>
    </table>
    <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="background-color: #f9f9f9; border-radius: 8px; margin: 25px 0; padding: 20px;">
        <tr>
            <td>
                <p style="margin: 0; color: #555555; font-size: 14px; line-height: 1.7;">
                    <strong style="color: #da291c;">⚡ Acción requerida:</strong><br>
                    Por favor, revisa esta solicitud en el sistema de gestión de prácticas para aprobarla o solicitar información adicional.
                </p>
            </td>
        </tr>
    </table>
    <p style="margin: 25px 0 0 0; color: #666666; font-size: 14px; line-height: 1.6;">
        Atentamente,<br>
        <strong style="color: #333333;">Sistema de Gestión de Prácticas</strong>
    </p>`,
		nombreCoordinador,
		filaDato("👤 Estudiante:", nombreEstudiante),
		filaDato("📚 Tipo de Práctica:", oTexto(d.TipoPractica, "No especificado")),
		filaDato("🏢 Empresa:", oTexto(d.Empresa, "No especificada")),
		filaDato("📅 Periodo:", FormatearFecha(d.FechaInicio)+" - "+FormatearFecha(d.FechaTermino)),
		filaID,
	)

	return Correo{
		Subject: fmt.Sprintf("📋 Nueva Inscripción: %s - %s", nombreEstudiante, oTexto(d.TipoPractica, "Práctica")),
		HTML:    layout(contenido),
	}
}

// RenderCambioEstado notifica al estudiante una decisión sobre su práctica.
func RenderCambioEstado(d Datos) Correo {
	nombre := nombreCompleto(d.EstudianteNombre, d.EstudianteApellido)
	coordinador := oTexto(d.CoordinatorName, "Coordinación de Prácticas")
	estado := oTexto(d.Estado, "actualizado")
	estilo := estiloPara(estado)
	estadoLegible := strings.ReplaceAll(estado, "_", " ")

	var mensajeEstado string
	switch strings.ToLower(estado) {
	case "aprobada":
		mensajeEstado = `
    <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background: linear-gradient(135deg, #e8f5e9 0%, #f1f8f4 100%); border-radius: 8px; margin: 25px 0; padding: 20px;">
        <tr>
            <td>
                <p style="margin: 0; color: #2e7d32; font-size: 15px; line-height: 1.7;">
                    <strong>🎉 ¡Felicidades!</strong><br>
                    Tu práctica ha sido aprobada. Puedes comenzar con las actividades planificadas. Te deseamos mucho éxito en esta experiencia profesional.
                </p>
            </td>
        </tr>
    </table>`
	case "rechazada":
		mensajeEstado = `
    <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background: linear-gradient(135deg, #ffebee 0%, #fff5f5 100%); border-radius: 8px; margin: 25px 0; padding: 20px;">
        <tr>
            <td>
                <p style="margin: 0; color: #da291c; font-size: 15px; line-height: 1.7;">
                    <strong>⚠️ Atención requerida</strong><br>
                    Tu práctica requiere ajustes. Por favor, contacta a la Coordinación de Prácticas para más información sobre los cambios necesarios.
                </p>
            </td>
        </tr>
    </table>`
	default:
		mensajeEstado = `
    <table width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: #f9f9f9; border-radius: 8px; margin: 25px 0; padding: 20px;">
        <tr>
            <td>
                <p style="margin: 0; color: #555555; font-size: 14px; line-height: 1.7;">
                    <strong>ℹ️ Información:</strong><br>
                    Para más información sobre este cambio, por favor contacta a la Coordinación de Prácticas.
                </p>
            </td>
        </tr>
    </table>`
	}

	filaID := ""
	if d.PracticaID != "" {
		filaID = filaDato("ID:", d.PracticaID)
	}

	contenido := fmt.Sprintf(`
    <h2 style="color: %s; margin: 0 0 25px 0; font-size: 24px; font-weight: 600;">
        %s Actualización de Práctica Profesional
    </h2>
    <p style="margin: 0 0 16px 0; color: #333333; font-size: 16px; line-height: 1.7;">
        Hola <strong style="color: #da291c;">%s</strong>,
    </p>
    <p style="margin: 0 0 25px 0; color: #555555; font-size: 15px; line-height: 1.7;">
        Tu práctica profesional <strong>%s</strong> en <strong>%s</strong> ha sido actualizada.
    </p>
    <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="background-color: %s; border-radius: 12px; margin: 30px 0; border-left: 5px solid %s;">
        <tr>
            <td style="padding: 30px; text-align: center;">
                <p style="margin: 0; color: %s; font-size: 20px; font-weight: 700; letter-spacing: 0.5px; text-transform: uppercase;">
                    %s Estado: %s
                </p>
            </td>
        </tr>
    </table>
    %s
    <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="background-color: #fafafa; border-radius: 8px; margin: 25px 0; border: 1px solid #e8e8e8;">
        <tr>
            <td style="padding: 20px;">
                <p style="margin: 0 0 12px 0; color: #666666; font-size: 13px; font-weight: 600; text-transform: uppercase; letter-spacing: 0.5px;">
                    📄 Información de tu práctica
                </p>
                <table width="100%%" cellpadding="6" cellspacing="0" border="0">%s%s%s
                </table>
            </td>
        </tr>
    </table>
    <p style="margin: 30px 0 0 0; color: #666666; font-size: 14px; line-height: 1.6;">
        Atentamente,<br>
        <strong style="color: #333333;">%s</strong><br>
        <span style="color: #999999;">Coordinación de Prácticas Profesionales</span>
    </p>`,
		estilo.Color, estilo.Emoji, nombre, d.TipoPractica, d.Empresa,
		estilo.BgColor, estilo.BorderColor, estilo.Color, estilo.Emoji, estadoLegible,
		mensajeEstado,
		filaDato("Tipo:", oTexto(d.TipoPractica, "No especificado")),
		filaDato("Empresa:", oTexto(d.Empresa, "No especificada")),
		filaID,
		coordinador,
	)

	return Correo{
		Subject: fmt.Sprintf("%s Actualización de Práctica: %s - %s",
			estilo.Emoji, strings.ToUpper(estadoLegible), oTexto(d.TipoPractica, "Práctica Profesional")),
		HTML: layout(contenido),
	}
}

// RenderGenerico envuelve un mensaje arbitrario en el marco institucional. Si
// el mensaje ya es un documento HTML completo se devuelve sin tocar: el
// llamador controla la presentación y envolverlo de nuevo lo rompería.
func RenderGenerico(d Datos) Correo {
	subject := oTexto(d.Subject, "Notificación del Sistema de Prácticas")
	mensaje := oTexto(d.MensajeHTML, "<p>Se ha generado una notificación en el sistema.</p>")

	if strings.Contains(mensaje, "<!DOCTYPE") || strings.Contains(mensaje, "<html") {
		return Correo{Subject: subject, HTML: mensaje}
	}
	return Correo{Subject: subject, HTML: layout(mensaje)}
}

// Render despacha al renderizador según el tipo. Un tipo desconocido cae en
// la plantilla genérica.
func Render(tipo Tipo, d Datos) Correo {
	switch tipo {
	case TipoFichaRecibida:
		return RenderFichaRecibida(d)
	case TipoNuevaInscripcion:
		return RenderNuevaInscripcion(d)
	case TipoCambioEstado:
		return RenderCambioEstado(d)
	default:
		return RenderGenerico(d)
	}
}

// MensajeInvitacionSupervisor arma el cuerpo del correo que invita al
// supervisor de la empresa a responder la evaluación pública del estudiante.
func MensajeInvitacionSupervisor(supervisorNombre, estudianteNombre, empresaNombre, tipoPractica, coordinatorName, enlace string) string {
	return fmt.Sprintf(`
    <h2 style="color: #1976d2; margin-bottom: 20px;">Evaluación de Práctica Profesional</h2>
    <p>Estimado/a <strong>%s</strong>,</p>
    <p>Le escribimos desde la <strong>Coordinación de Prácticas Profesionales</strong> para solicitarle la evaluación del estudiante:</p>
    <div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0;">
      <p style="margin: 5px 0;"><strong>Estudiante:</strong> %s</p>
      <p style="margin: 5px 0;"><strong>Empresa:</strong> %s</p>
      <p style="margin: 5px 0;"><strong>Tipo de práctica:</strong> %s</p>
    </div>
    <p>Para completar la evaluación, por favor haga clic en el siguiente enlace:</p>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s" style="display: inline-block; padding: 15px 30px; background-color: #1976d2; color: #ffffff; text-decoration: none; border-radius: 5px; font-weight: bold;">
        Completar Evaluación
      </a>
    </div>
    <div style="background-color: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0;">
      <p style="margin: 0; color: #856404;">
        <strong>⏱️ Importante:</strong> Este enlace es válido por <strong>30 días</strong>.
        La evaluación tomará aproximadamente 10 minutos.
      </p>
    </div>
    <p>Si tiene alguna consulta, no dude en contactarnos.</p>
    <p style="margin-top: 30px;">
      Saludos cordiales,<br>
      <strong>%s</strong><br>
      Coordinación de Prácticas Profesionales
    </p>
    <p style="font-size: 12px; color: #757575; text-align: center;">
      Si el botón no funciona, copie y pegue el siguiente enlace en su navegador:<br>
      <a href="%s" style="color: #1976d2; word-break: break-all;">%s</a>
    </p>`,
		supervisorNombre, estudianteNombre, empresaNombre, tipoPractica, enlace, coordinatorName, enlace, enlace)
}
