package mail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/UserBastianProboste/practicas-api/internal/config"
	"github.com/UserBastianProboste/practicas-api/internal/retry"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmailValido valida el formato local@dominio.tld de un destinatario.
func EmailValido(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

const asuntoPorDefecto = "Notificación del Sistema de Prácticas"

// Payload es el cuerpo JSON que espera la función de envío de correos.
// Los campos de plantilla viajan junto al mensaje para que la función pueda
// reconstruir el correo si mensaje_html viene vacío.
type Payload struct {
	To                 []string `json:"to"`
	Subject            string   `json:"subject,omitempty"`
	MensajeHTML        string   `json:"mensaje_html,omitempty"`
	CoordinatorName    string   `json:"coordinator_name,omitempty"`
	EstudianteNombre   string   `json:"estudiante_nombre,omitempty"`
	EstudianteApellido string   `json:"estudiante_apellido,omitempty"`
	TipoPractica       string   `json:"tipo_practica,omitempty"`
	PracticaID         string   `json:"practica_id,omitempty"`
	Empresa            string   `json:"empresa,omitempty"`
	FechaInicio        string   `json:"fecha_inicio,omitempty"`
	FechaTermino       string   `json:"fecha_termino,omitempty"`
	Estado             string   `json:"estado,omitempty"`
}

// Clasificación de un fallo de entrega.
const (
	FalloConfiguracion = "configuracion"
	FalloDestinatarios = "destinatarios_invalidos"
	FalloCliente       = "error_cliente"
	FalloServidor      = "error_servidor"
	FalloRed           = "error_red"
	FalloTimeout       = "timeout"
)

// EmailError es el error estructurado del despacho de correos: mensaje legible,
// detalle opcional, código HTTP cuando lo hubo y cuántos intentos se hicieron.
type EmailError struct {
	Mensaje    string
	Detalle    any
	StatusCode int
	Tipo       string
	Intentos   int
}

func (e *EmailError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (HTTP %d)", e.Mensaje, e.StatusCode)
	}
	return e.Mensaje
}

// Retryable reporta si el fallo admite otro intento: errores de servidor, de
// red y timeouts sí; 4xx, destinatarios y configuración no.
func (e *EmailError) Retryable() bool {
	switch e.Tipo {
	case FalloServidor, FalloRed, FalloTimeout:
		return true
	}
	return false
}

// Respuesta es el resultado de una entrega exitosa.
type Respuesta struct {
	OK       bool
	Cuerpo   string
	Intentos int
}

// Opciones controla el envío. Los ceros toman los valores por defecto del
// contrato: 30s de timeout por intento y 2 reintentos (3 intentos en total).
// Reintentos negativo desactiva los reintentos.
type Opciones struct {
	Timeout    time.Duration
	Reintentos int
	// Backoff reemplaza la curva exponencial por defecto; lo usan los tests.
	Backoff func(attempt int) time.Duration
}

const (
	timeoutPorDefecto    = 30 * time.Second
	reintentosPorDefecto = 2
	backoffBase          = time.Second
	backoffMax           = 5 * time.Second
)

// Cliente envía correos a través de la función HTTP de correo saliente.
type Cliente struct {
	cfg   *config.MailerConfig
	http  *resty.Client
	token string
}

// NewCliente construye el cliente con la configuración de entorno. token es el
// bearer de sesión; vacío omite el header Authorization.
func NewCliente(cfg *config.MailerConfig, token string) *Cliente {
	return &Cliente{cfg: cfg, http: resty.New(), token: token}
}

// sanitizar filtra destinatarios inválidos (se registran, no son fatales) y
// normaliza asunto y mensaje. Si no queda ningún destinatario el envío falla
// de inmediato, sin tocar la red.
func sanitizar(p Payload) (Payload, *EmailError) {
	validos := make([]string, 0, len(p.To))
	for _, destinatario := range p.To {
		trimmed := strings.TrimSpace(destinatario)
		if !EmailValido(trimmed) {
			log.Printf("Email inválido ignorado: %s", destinatario)
			continue
		}
		validos = append(validos, trimmed)
	}
	if len(validos) == 0 {
		return p, &EmailError{
			Mensaje: "No hay destinatarios válidos",
			Detalle: p.To,
			Tipo:    FalloDestinatarios,
		}
	}
	p.To = validos
	p.MensajeHTML = strings.TrimSpace(p.MensajeHTML)
	if strings.TrimSpace(p.Subject) == "" {
		p.Subject = asuntoPorDefecto
	}
	return p, nil
}

// Enviar despacha el payload con reintentos acotados. Errores 4xx son
// terminales; 5xx, fallos de red y timeouts se reintentan con espera
// exponencial min(1s × 2^(n-1), 5s). Exactamente una llamada de red por
// intento; el registro de respaldo es responsabilidad del llamador.
func (c *Cliente) Enviar(ctx context.Context, payload Payload, opts Opciones) (*Respuesta, error) {
	if c.cfg.BaseURL == "" || c.cfg.APIKey == "" {
		return nil, &EmailError{
			Mensaje: "Configuración del servicio de correo incompleta",
			Detalle: map[string]bool{"hasUrl": c.cfg.BaseURL != "", "hasKey": c.cfg.APIKey != ""},
			Tipo:    FalloConfiguracion,
		}
	}

	sanitizado, errSan := sanitizar(payload)
	if errSan != nil {
		return nil, errSan
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = timeoutPorDefecto
	}
	reintentos := opts.Reintentos
	switch {
	case reintentos == 0:
		reintentos = reintentosPorDefecto
	case reintentos < 0:
		reintentos = 0
	}
	backoff := opts.Backoff
	if backoff == nil {
		backoff = retry.ExponentialBackoff(backoffBase, backoffMax)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + c.cfg.FunctionPath

	politica := retry.Policy{
		MaxAttempts: reintentos + 1,
		Backoff:     backoff,
		Retryable: func(err error) bool {
			var ee *EmailError
			return errors.As(err, &ee) && ee.Retryable()
		},
	}

	var respuesta *Respuesta
	intentos := 0
	err := politica.Do(ctx, func(ctx context.Context, attempt int) error {
		intentos = attempt
		log.Printf("[mail] Intento %d/%d - Enviando a: %v", attempt, reintentos+1, sanitizado.To)

		resp, errIntento := c.intentar(ctx, endpoint, sanitizado, timeout)
		if errIntento != nil {
			errIntento.Intentos = attempt
			return errIntento
		}
		respuesta = resp
		respuesta.Intentos = attempt
		return nil
	})
	if err != nil {
		var ee *EmailError
		if errors.As(err, &ee) {
			ee.Intentos = intentos
			log.Printf("[mail] Envío fallido tras %d intento(s): %v", intentos, ee)
			return nil, ee
		}
		// cancelación de contexto durante la espera
		return nil, &EmailError{Mensaje: "Envío cancelado: " + err.Error(), Tipo: FalloTimeout, Intentos: intentos}
	}

	log.Printf("[mail] Email enviado exitosamente a %v", sanitizado.To)
	return respuesta, nil
}

func (c *Cliente) intentar(ctx context.Context, endpoint string, payload Payload, timeout time.Duration) (*Respuesta, *EmailError) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := c.http.R().
		SetContext(attemptCtx).
		SetHeader("Content-Type", "application/json; charset=utf-8").
		SetHeader("apikey", c.cfg.APIKey).
		SetBody(payload)
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}

	resp, err := req.Post(endpoint)
	if err != nil {
		if attemptCtx.Err() == context.DeadlineExceeded {
			return nil, &EmailError{
				Mensaje: fmt.Sprintf("Timeout: la petición tardó más de %s", timeout),
				Tipo:    FalloTimeout,
			}
		}
		return nil, &EmailError{
			Mensaje: "Error de red: " + err.Error(),
			Tipo:    FalloRed,
		}
	}

	cuerpo := resp.String()
	// un cuerpo que no es JSON se conserva como texto crudo, no es fatal
	detalle := any(cuerpo)
	if gjson.Valid(cuerpo) {
		detalle = gjson.Parse(cuerpo).Value()
	}

	if resp.IsError() {
		mensaje := gjson.Get(cuerpo, "error.message").String()
		if mensaje == "" {
			mensaje = gjson.Get(cuerpo, "error").String()
		}
		if mensaje == "" {
			mensaje = fmt.Sprintf("HTTP %d", resp.StatusCode())
		}

		tipo := FalloServidor
		prefijo := "Error del servidor"
		if resp.StatusCode() >= 400 && resp.StatusCode() < 500 {
			tipo = FalloCliente
			prefijo = "Error del cliente"
		}
		return nil, &EmailError{
			Mensaje:    fmt.Sprintf("%s: %s", prefijo, mensaje),
			Detalle:    detalle,
			StatusCode: resp.StatusCode(),
			Tipo:       tipo,
		}
	}

	return &Respuesta{OK: true, Cuerpo: cuerpo}, nil
}
