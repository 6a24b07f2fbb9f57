package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/UserBastianProboste/practicas-api/internal/config"
	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/mail"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/notify"
)

// Vigencia del enlace que recibe el supervisor.
const VigenciaTokenSupervisor = 30 * 24 * time.Hour

var (
	ErrTokenInvalido  = errors.New("token de evaluación inválido")
	ErrTokenExpirado  = errors.New("el enlace de evaluación expiró")
	ErrTokenUsado     = errors.New("el enlace de evaluación ya fue utilizado")
	ErrYaRespondida   = errors.New("la evaluación ya fue respondida")
	ErrSinTokenSecret = errors.New("TOKEN_SECRET no está configurado")
)

type EvaluacionSupervisorRepo interface {
	Create(evaluacion *model.EvaluacionSupervisor) error
	FindByID(id string) (*model.EvaluacionSupervisor, error)
	FindByPracticaID(practicaID string) (*model.EvaluacionSupervisor, error)
	GuardarRespuesta(evaluacion *model.EvaluacionSupervisor) error
}

type EvaluacionSupervisorUsecase struct {
	evaluaciones EvaluacionSupervisorRepo
	practicas    PracticaRepo
	directorio   Directorio
	notificador  Notificador
	auth         *config.AuthConfig
	portalURL    string
}

func NewEvaluacionSupervisorUsecase(evaluaciones EvaluacionSupervisorRepo, practicas PracticaRepo, directorio Directorio, notificador Notificador, auth *config.AuthConfig, portalURL string) *EvaluacionSupervisorUsecase {
	return &EvaluacionSupervisorUsecase{
		evaluaciones: evaluaciones,
		practicas:    practicas,
		directorio:   directorio,
		notificador:  notificador,
		auth:         auth,
		portalURL:    portalURL,
	}
}

// Invitacion es el resultado de generar el enlace: la fila creada, la URL
// pública y el estado del correo al supervisor.
type Invitacion struct {
	Evaluacion *model.EvaluacionSupervisor
	Enlace     string
	Resumen    notify.Resumen
}

// GenerarInvitacion crea la evaluación con un token HS256 de 30 días y envía
// el enlace al supervisor. El token viaja firmado pero la última palabra la
// tiene la fila: expiración, respondido y usado se verifican contra la base.
func (uc *EvaluacionSupervisorUsecase) GenerarInvitacion(ctx context.Context, req dto.InvitacionSupervisorRequest) (*Invitacion, error) {
	if uc.auth == nil || uc.auth.TokenSecret == "" {
		return nil, ErrSinTokenSecret
	}

	practica, err := uc.practicas.FindByID(req.PracticaID)
	if err != nil {
		return nil, fmt.Errorf("práctica no encontrada: %w", err)
	}

	evaluacion := &model.EvaluacionSupervisor{
		ID:                 uuid.New(),
		PracticaID:         practica.ID,
		EstudianteID:       practica.EstudianteID,
		EmpresaID:          practica.EmpresaID,
		TokenExpiraEn:      time.Now().Add(VigenciaTokenSupervisor),
		NombreSupervisor:   req.NombreSupervisor,
		CargoSupervisor:    req.CargoSupervisor,
		EmailSupervisor:    req.EmailSupervisor,
		TelefonoSupervisor: req.TelefonoSupervisor,
	}

	token, err := uc.firmarToken(evaluacion)
	if err != nil {
		return nil, err
	}
	evaluacion.Token = token

	if err := uc.evaluaciones.Create(evaluacion); err != nil {
		return nil, err
	}

	enlace := fmt.Sprintf("%s/evaluacion-supervisor?token=%s", uc.portalURL, token)

	estudianteNombre := ""
	empresaNombre := ""
	if practica.Estudiante != nil {
		estudianteNombre = practica.Estudiante.NombreCompleto()
	}
	if practica.Empresa != nil {
		empresaNombre = practica.Empresa.RazonSocial
	}
	coordinadorNombre := "Coordinación de Prácticas"
	if coordinadores, errCoord := uc.directorio.ListCoordinadores(); errCoord == nil && len(coordinadores) > 0 {
		coordinadorNombre = coordinadores[0].NombreCompleto()
	}

	mensaje := mail.MensajeInvitacionSupervisor(req.NombreSupervisor, estudianteNombre, empresaNombre, practica.TipoPractica, coordinadorNombre, enlace)
	resumen := uc.notificador.Difundir(ctx,
		[]notify.Destinatario{{Email: req.EmailSupervisor, Nombre: req.NombreSupervisor}},
		mail.TipoGenerico,
		mail.Datos{
			Subject:     fmt.Sprintf("Evaluación de Práctica Profesional - %s", estudianteNombre),
			MensajeHTML: mensaje,
		},
		mail.Payload{PracticaID: practica.ID.String(), TipoPractica: practica.TipoPractica})

	return &Invitacion{Evaluacion: evaluacion, Enlace: enlace, Resumen: resumen}, nil
}

// ValidarToken verifica firma y expiración del token y luego el estado de la
// fila. Devuelve la evaluación lista para mostrar el formulario.
func (uc *EvaluacionSupervisorUsecase) ValidarToken(token string) (*model.EvaluacionSupervisor, error) {
	id, err := uc.parsearToken(token)
	if err != nil {
		return nil, err
	}

	evaluacion, err := uc.evaluaciones.FindByID(id)
	if err != nil {
		return nil, ErrTokenInvalido
	}
	if evaluacion.Token != token {
		return nil, ErrTokenInvalido
	}
	if time.Now().After(evaluacion.TokenExpiraEn) {
		return nil, ErrTokenExpirado
	}
	if evaluacion.TokenUsado {
		return nil, ErrTokenUsado
	}
	if evaluacion.Respondido {
		return nil, ErrYaRespondida
	}
	return evaluacion, nil
}

// Responder registra el formulario del supervisor, inutiliza el token y avisa
// a los coordinadores que hay una evaluación nueva.
func (uc *EvaluacionSupervisorUsecase) Responder(ctx context.Context, token string, req dto.RespuestaSupervisorRequest) (*Invitacion, error) {
	evaluacion, err := uc.ValidarToken(token)
	if err != nil {
		return nil, err
	}

	evaluacion.CalidadTrabajo = req.CalidadTrabajo
	evaluacion.EfectividadTrabajo = req.EfectividadTrabajo
	evaluacion.ConocimientosProfesionales = req.ConocimientosProfesionales
	evaluacion.AdaptabilidadCambios = req.AdaptabilidadCambios
	evaluacion.OrganizacionTrabajo = req.OrganizacionTrabajo
	evaluacion.ObservacionesTecnicas = req.ObservacionesTecnicas
	evaluacion.InteresTrabajo = req.InteresTrabajo
	evaluacion.Responsabilidad = req.Responsabilidad
	evaluacion.Cooperacion = req.Cooperacion
	evaluacion.Creatividad = req.Creatividad
	evaluacion.Iniciativa = req.Iniciativa
	evaluacion.IntegracionGrupo = req.IntegracionGrupo
	evaluacion.ConsideraPositivoRecibirAlumnos = req.ConsideraPositivoRecibirAlumnos
	evaluacion.EspecialidadRequerida = req.EspecialidadRequerida
	evaluacion.ComentariosAdicionales = req.ComentariosAdicionales

	if err := uc.evaluaciones.GuardarRespuesta(evaluacion); err != nil {
		return nil, err
	}

	var destinatarios []notify.Destinatario
	if coordinadores, errCoord := uc.directorio.ListCoordinadores(); errCoord == nil {
		for _, c := range coordinadores {
			destinatarios = append(destinatarios, notify.Destinatario{Email: c.Email, Nombre: c.NombreCompleto()})
		}
	}
	resumen := uc.notificador.Difundir(ctx, destinatarios, mail.TipoGenerico,
		mail.Datos{
			Subject: "Evaluación de supervisor recibida",
			MensajeHTML: fmt.Sprintf(`<p>El supervisor <strong>%s</strong> (%s) completó la evaluación de práctica.</p>
<p>Puede revisarla en el portal de prácticas.</p>`, evaluacion.NombreSupervisor, evaluacion.CargoSupervisor),
		},
		mail.Payload{PracticaID: evaluacion.PracticaID.String()})

	return &Invitacion{Evaluacion: evaluacion, Resumen: resumen}, nil
}

func (uc *EvaluacionSupervisorUsecase) firmarToken(evaluacion *model.EvaluacionSupervisor) (string, error) {
	claims := jwt.MapClaims{
		"sub":         evaluacion.ID.String(),
		"practica_id": evaluacion.PracticaID.String(),
		"exp":         evaluacion.TokenExpiraEn.Unix(),
		"iat":         time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.auth.TokenSecret))
}

func (uc *EvaluacionSupervisorUsecase) parsearToken(token string) (string, error) {
	if uc.auth == nil || uc.auth.TokenSecret == "" {
		return "", ErrSinTokenSecret
	}
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(uc.auth.TokenSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpirado
		}
		return "", ErrTokenInvalido
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalido
	}
	id, err := claims.GetSubject()
	if err != nil || id == "" {
		return "", ErrTokenInvalido
	}
	return id, nil
}
