// Package notify difunde los correos del flujo de prácticas a una lista
// explícita de destinatarios y agrega los resultados en un resumen para el
// operador. Cada envío es independiente: el fallo de uno no cancela los demás.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/UserBastianProboste/practicas-api/internal/mail"
	"github.com/UserBastianProboste/practicas-api/internal/model"
)

// Destinatario es un receptor resuelto por el flujo (estudiante, coordinador
// o supervisor). Un email vacío se cuenta como "sin correo" y no genera envío.
type Destinatario struct {
	Email  string
	Nombre string
}

// Enviador es el contrato mínimo hacia el cliente de correo.
type Enviador interface {
	Enviar(ctx context.Context, payload mail.Payload, opts mail.Opciones) (*mail.Respuesta, error)
}

// RegistroNotificaciones persiste el respaldo de una notificación no
// entregada. La implementación real escribe en la tabla notificaciones.
type RegistroNotificaciones interface {
	Crear(ctx context.Context, n *model.Notificacion) error
}

// Resumen agrega los resultados de una difusión.
type Resumen struct {
	OK              int
	Fallidos        int
	SinCorreo       int
	ErroresRegistro int
	Detalles        []string
}

// Exitoso indica que ningún destinatario con correo quedó sin notificar.
func (r Resumen) Exitoso() bool {
	return r.Fallidos == 0 && r.ErroresRegistro == 0
}

// Sumar combina dos resúmenes de difusiones distintas del mismo flujo.
func (r Resumen) Sumar(otro Resumen) Resumen {
	return Resumen{
		OK:              r.OK + otro.OK,
		Fallidos:        r.Fallidos + otro.Fallidos,
		SinCorreo:       r.SinCorreo + otro.SinCorreo,
		ErroresRegistro: r.ErroresRegistro + otro.ErroresRegistro,
		Detalles:        append(append([]string{}, r.Detalles...), otro.Detalles...),
	}
}

// String produce la línea de estado que ve el operador.
func (r Resumen) String() string {
	partes := []string{
		fmt.Sprintf("ok: %d", r.OK),
		fmt.Sprintf("fallos: %d", r.Fallidos),
	}
	if r.SinCorreo > 0 {
		partes = append(partes, fmt.Sprintf("sin correo: %d", r.SinCorreo))
	}
	if r.ErroresRegistro > 0 {
		partes = append(partes, fmt.Sprintf("errores de registro: %d", r.ErroresRegistro))
	}
	return strings.Join(partes, ", ")
}

type Dispatcher struct {
	enviador Enviador
	registro RegistroNotificaciones
	opts     mail.Opciones
}

func NewDispatcher(enviador Enviador, registro RegistroNotificaciones, opts mail.Opciones) *Dispatcher {
	return &Dispatcher{enviador: enviador, registro: registro, opts: opts}
}

type resultadoEnvio struct {
	email         string
	ok            bool
	sinCorreo     bool
	errorRegistro bool
	detalle       string
}

// Difundir renderiza la plantilla por destinatario y despacha los envíos en
// paralelo. Cuando un envío agota sus reintentos se persiste el registro de
// respaldo con estado "pendiente"; si también falla esa escritura, se registra
// en el log y se cuenta aparte, sin reemplazar el error de entrega original.
func (d *Dispatcher) Difundir(ctx context.Context, destinatarios []Destinatario, tipo mail.Tipo, datos mail.Datos, base mail.Payload) Resumen {
	resultados := make([]resultadoEnvio, len(destinatarios))
	var wg sync.WaitGroup

	for i, destinatario := range destinatarios {
		if strings.TrimSpace(destinatario.Email) == "" {
			resultados[i] = resultadoEnvio{sinCorreo: true, detalle: "sin_correo"}
			continue
		}
		wg.Add(1)
		go func(i int, destinatario Destinatario) {
			defer wg.Done()
			resultados[i] = d.enviarUno(ctx, destinatario, tipo, datos, base)
		}(i, destinatario)
	}
	wg.Wait()

	var resumen Resumen
	for _, r := range resultados {
		switch {
		case r.sinCorreo:
			resumen.SinCorreo++
		case r.ok:
			resumen.OK++
		default:
			resumen.Fallidos++
		}
		if r.errorRegistro {
			resumen.ErroresRegistro++
		}
		if r.detalle != "" {
			resumen.Detalles = append(resumen.Detalles, fmt.Sprintf("%s:%s", r.email, r.detalle))
		}
	}
	return resumen
}

func (d *Dispatcher) enviarUno(ctx context.Context, destinatario Destinatario, tipo mail.Tipo, datos mail.Datos, base mail.Payload) resultadoEnvio {
	if tipo == mail.TipoNuevaInscripcion {
		datos.CoordinatorName = destinatario.Nombre
	}
	correo := mail.Render(tipo, datos)

	payload := base
	payload.To = []string{destinatario.Email}
	payload.Subject = correo.Subject
	payload.MensajeHTML = correo.HTML
	if payload.CoordinatorName == "" {
		payload.CoordinatorName = datos.CoordinatorName
	}

	if _, err := d.enviador.Enviar(ctx, payload, d.opts); err != nil {
		log.Printf("[notify] Entrega fallida para %s: %v", destinatario.Email, err)
		resultado := resultadoEnvio{email: destinatario.Email, detalle: "fail"}
		if errReg := d.respaldar(ctx, destinatario.Email, payload, err); errReg != nil {
			log.Printf("[notify] Tampoco se pudo registrar el respaldo para %s: %v", destinatario.Email, errReg)
			resultado.errorRegistro = true
			resultado.detalle = "fail+registro"
		}
		return resultado
	}
	return resultadoEnvio{email: destinatario.Email, ok: true, detalle: "ok"}
}

// respaldar escribe la fila de notificación pendiente con el payload completo
// que se intentó entregar y el último error observado.
func (d *Dispatcher) respaldar(ctx context.Context, destinatario string, payload mail.Payload, errEnvio error) error {
	cuerpo, errJSON := json.Marshal(payload)
	if errJSON != nil {
		return errJSON
	}
	mensajeError := errEnvio.Error()
	registro := &model.Notificacion{
		Destinatario: destinatario,
		Asunto:       payload.Subject,
		Cuerpo:       string(cuerpo),
		Estado:       model.NotificacionEstadoPendiente,
		Error:        &mensajeError,
	}
	return d.registro.Crear(ctx, registro)
}
