package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/grade"
	"github.com/UserBastianProboste/practicas-api/internal/mail"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/notify"
)

var ErrAutoevaluacionIncompleta = errors.New("la autoevaluación tiene respuestas faltantes o no reconocidas: no se puede calificar")

type AutoevaluacionRepo interface {
	Create(autoevaluacion *model.Autoevaluacion) error
	FindByID(id string) (*model.Autoevaluacion, error)
	FindByPracticaID(practicaID string) (*model.Autoevaluacion, error)
	GuardarNota(id string, notaPonderada float64) error
}

type AutoevaluacionUsecase struct {
	autoevaluaciones AutoevaluacionRepo
	practicas        PracticaRepo
	notificador      Notificador
}

func NewAutoevaluacionUsecase(autoevaluaciones AutoevaluacionRepo, practicas PracticaRepo, notificador Notificador) *AutoevaluacionUsecase {
	return &AutoevaluacionUsecase{autoevaluaciones: autoevaluaciones, practicas: practicas, notificador: notificador}
}

// Registrar guarda las respuestas tal como llegan. Las etiquetas se validan
// recién al calificar; el envío del estudiante nunca se rechaza por una
// etiqueta desconocida.
func (uc *AutoevaluacionUsecase) Registrar(req dto.AutoevaluacionCreateRequest) (*model.Autoevaluacion, error) {
	practicaID, err := uuid.Parse(req.PracticaID)
	if err != nil {
		return nil, fmt.Errorf("practica_id inválido: %w", err)
	}

	autoevaluacion := &model.Autoevaluacion{
		PracticaID:  practicaID,
		Gestion0:    req.Respuestas["gestion_0"],
		Gestion1:    req.Respuestas["gestion_1"],
		Gestion2:    req.Respuestas["gestion_2"],
		Gestion3:    req.Respuestas["gestion_3"],
		Gestion4:    req.Respuestas["gestion_4"],
		Personales0: req.Respuestas["personales_0"],
		Personales1: req.Respuestas["personales_1"],
		Personales2: req.Respuestas["personales_2"],
		Personales3: req.Respuestas["personales_3"],
		Personales4: req.Respuestas["personales_4"],
		Personales5: req.Respuestas["personales_5"],
	}
	if err := uc.autoevaluaciones.Create(autoevaluacion); err != nil {
		return nil, err
	}
	return autoevaluacion, nil
}

func (uc *AutoevaluacionUsecase) Obtener(id string) (*model.Autoevaluacion, error) {
	return uc.autoevaluaciones.FindByID(id)
}

// Previsualizar calcula la nota sin persistirla. Sirve para que el coordinador
// revise el resultado antes de confirmarlo, incluso con respuestas parciales.
func (uc *AutoevaluacionUsecase) Previsualizar(id string) (grade.ResultadoAutoevaluacion, error) {
	autoevaluacion, err := uc.autoevaluaciones.FindByID(id)
	if err != nil {
		return grade.ResultadoAutoevaluacion{}, err
	}
	return grade.CalcularNotaAutoevaluacion(autoevaluacion.Respuestas()), nil
}

// ResultadoCalificacion es la nota confirmada más el estado del aviso enviado
// al estudiante.
type ResultadoCalificacion struct {
	Resultado grade.ResultadoAutoevaluacion
	Resumen   notify.Resumen
}

// Calificar confirma la nota de una autoevaluación completa. La escritura es
// irreversible: una segunda calificación devuelve el error de ya calificada.
// El aviso al estudiante sale después de persistir y no afecta el resultado.
func (uc *AutoevaluacionUsecase) Calificar(ctx context.Context, id string) (*ResultadoCalificacion, error) {
	autoevaluacion, err := uc.autoevaluaciones.FindByID(id)
	if err != nil {
		return nil, err
	}

	resultado := grade.CalcularNotaAutoevaluacion(autoevaluacion.Respuestas())
	if !resultado.Completa() {
		return nil, ErrAutoevaluacionIncompleta
	}
	if err := uc.autoevaluaciones.GuardarNota(id, resultado.NotaPonderada); err != nil {
		return nil, err
	}

	resumen := avisarEstudiante(ctx, uc.practicas, uc.notificador, autoevaluacion.PracticaID.String(),
		"Autoevaluación calificada",
		fmt.Sprintf(`<p>Tu autoevaluación de práctica fue calificada.</p>
<p><strong>Nota:</strong> %.2f (ponderación al 10%%: %.2f)</p>
<p>Puedes revisar el detalle en el portal de prácticas.</p>`, resultado.Nota, resultado.NotaPonderada))

	return &ResultadoCalificacion{Resultado: resultado, Resumen: resumen}, nil
}

// avisarEstudiante resuelve el estudiante de la práctica y le envía un correo
// genérico. Si la práctica no carga, el aviso se reporta como destinatario sin
// correo en lugar de fallar la operación principal.
func avisarEstudiante(ctx context.Context, practicas PracticaRepo, notificador Notificador, practicaID, asunto, mensajeHTML string) notify.Resumen {
	destinatario := notify.Destinatario{}
	datos := mail.Datos{Subject: asunto, MensajeHTML: mensajeHTML}

	practica, err := practicas.FindByID(practicaID)
	if err == nil && practica.Estudiante != nil {
		destinatario = notify.Destinatario{
			Email:  practica.Estudiante.Email,
			Nombre: practica.Estudiante.NombreCompleto(),
		}
		datos.EstudianteNombre = practica.Estudiante.Nombre
		datos.EstudianteApellido = practica.Estudiante.Apellido
	}

	return notificador.Difundir(ctx, []notify.Destinatario{destinatario}, mail.TipoGenerico, datos, mail.Payload{
		PracticaID: practicaID,
	})
}
