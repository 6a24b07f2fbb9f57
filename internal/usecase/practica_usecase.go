package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/mail"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/notify"
	"github.com/UserBastianProboste/practicas-api/internal/util"
)

var ErrAccionInvalida = errors.New("acción inválida: debe ser aprobada o rechazada")

type PracticaRepo interface {
	Create(practica *model.Practica) error
	FindByID(id string) (*model.Practica, error)
	List(estado string, page, limit int) ([]model.Practica, int64, error)
	UpdateEstado(id, estado string) (*model.Practica, error)
}

type Directorio interface {
	FindEstudiante(id string) (*model.Estudiante, error)
	FindEmpresa(id string) (*model.Empresa, error)
	ListCoordinadores() ([]model.Coordinador, error)
}

// Notificador difunde un correo a una lista de destinatarios y devuelve el
// resumen agregado. La entrega es un efecto secundario de mejor esfuerzo.
type Notificador interface {
	Difundir(ctx context.Context, destinatarios []notify.Destinatario, tipo mail.Tipo, datos mail.Datos, base mail.Payload) notify.Resumen
}

type PracticaUsecase struct {
	practicas   PracticaRepo
	directorio  Directorio
	notificador Notificador
}

func NewPracticaUsecase(practicas PracticaRepo, directorio Directorio, notificador Notificador) *PracticaUsecase {
	return &PracticaUsecase{practicas: practicas, directorio: directorio, notificador: notificador}
}

// ResultadoPractica empaqueta la mutación principal con el estado secundario
// de las notificaciones.
type ResultadoPractica struct {
	Practica *model.Practica
	Resumen  notify.Resumen
}

// Crear registra la ficha con estado pendiente. Antes de insertar exige
// fechas válidas y un registro de estudiante completo. Solo después de que la
// inserción quedó confirmada, notifica: confirmación al estudiante y aviso de
// nueva inscripción a cada coordinador del directorio. Los fallos de correo
// nunca revierten la inserción.
func (uc *PracticaUsecase) Crear(ctx context.Context, req dto.PracticaCreateRequest) (*ResultadoPractica, error) {
	if err := util.ValidarRangoFechas(req.FechaInicio, req.FechaTermino); err != nil {
		return nil, util.NewFormError(err.Error(), map[string]string{"fechas": err.Error()})
	}

	estudiante, err := uc.directorio.FindEstudiante(req.EstudianteID)
	if err != nil {
		return nil, fmt.Errorf("estudiante no encontrado: %w", err)
	}
	if !util.EstudianteCompleto(util.DatosEstudiante{
		Nombre:   estudiante.Nombre,
		Apellido: estudiante.Apellido,
		Email:    estudiante.Email,
		Telefono: estudiante.Telefono,
		Carrera:  estudiante.Carrera,
		Sede:     estudiante.Sede,
		Semestre: estudiante.Semestre,
	}) {
		return nil, util.NewFormError("la ficha del estudiante está incompleta",
			map[string]string{"estudiante": "faltan datos de contacto o la sede/semestre no está en el catálogo"})
	}
	empresa, err := uc.directorio.FindEmpresa(req.EmpresaID)
	if err != nil {
		return nil, fmt.Errorf("empresa no encontrada: %w", err)
	}

	practica := &model.Practica{
		EstudianteID:        estudiante.ID,
		EmpresaID:           empresa.ID,
		TipoPractica:        req.TipoPractica,
		FechaInicio:         req.FechaInicio,
		FechaTermino:        req.FechaTermino,
		HorarioTrabajo:      req.HorarioTrabajo,
		Colacion:            req.Colacion,
		CargoPorDesarrollar: req.CargoPorDesarrollar,
		Departamento:        req.Departamento,
		Actividades:         req.Actividades,
		Estado:              model.EstadoPendiente,
	}
	if err := uc.practicas.Create(practica); err != nil {
		return nil, err
	}

	datos := mail.Datos{
		EstudianteNombre:   estudiante.Nombre,
		EstudianteApellido: estudiante.Apellido,
		TipoPractica:       practica.TipoPractica,
		Empresa:            empresa.RazonSocial,
		FechaInicio:        practica.FechaInicio,
		FechaTermino:       practica.FechaTermino,
		PracticaID:         practica.ID.String(),
	}
	base := mail.Payload{
		EstudianteNombre:   estudiante.Nombre,
		EstudianteApellido: estudiante.Apellido,
		TipoPractica:       practica.TipoPractica,
		PracticaID:         practica.ID.String(),
		Empresa:            empresa.RazonSocial,
		FechaInicio:        practica.FechaInicio,
		FechaTermino:       practica.FechaTermino,
	}

	resumen := uc.notificador.Difundir(ctx,
		[]notify.Destinatario{{Email: estudiante.Email, Nombre: estudiante.NombreCompleto()}},
		mail.TipoFichaRecibida, datos, base)

	coordinadores, err := uc.directorio.ListCoordinadores()
	if err != nil {
		log.Printf("No se pudo cargar el directorio de coordinadores: %v", err)
	} else {
		destinatarios := make([]notify.Destinatario, 0, len(coordinadores))
		for _, c := range coordinadores {
			destinatarios = append(destinatarios, notify.Destinatario{Email: c.Email, Nombre: c.NombreCompleto()})
		}
		resumen = resumen.Sumar(uc.notificador.Difundir(ctx, destinatarios, mail.TipoNuevaInscripcion, datos, base))
	}

	return &ResultadoPractica{Practica: practica, Resumen: resumen}, nil
}

func (uc *PracticaUsecase) Listar(estado string, page, limit int) ([]model.Practica, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return uc.practicas.List(estado, page, limit)
}

func (uc *PracticaUsecase) Obtener(id string) (*model.Practica, error) {
	return uc.practicas.FindByID(id)
}

// Decidir aplica la decisión del coordinador y notifica al estudiante el
// cambio de estado. La acción se reporta exitosa si la mutación quedó
// persistida; el resumen de correo es informativo.
func (uc *PracticaUsecase) Decidir(ctx context.Context, id, accion string) (*ResultadoPractica, error) {
	if accion != model.EstadoAprobada && accion != model.EstadoRechazada {
		return nil, ErrAccionInvalida
	}

	practica, err := uc.practicas.UpdateEstado(id, accion)
	if err != nil {
		return nil, err
	}

	var destinatarios []notify.Destinatario
	datos := mail.Datos{
		TipoPractica: practica.TipoPractica,
		Estado:       accion,
		PracticaID:   practica.ID.String(),
		FechaInicio:  practica.FechaInicio,
		FechaTermino: practica.FechaTermino,
	}
	base := mail.Payload{
		TipoPractica: practica.TipoPractica,
		PracticaID:   practica.ID.String(),
		Estado:       accion,
		FechaInicio:  practica.FechaInicio,
		FechaTermino: practica.FechaTermino,
	}
	if practica.Estudiante != nil {
		datos.EstudianteNombre = practica.Estudiante.Nombre
		datos.EstudianteApellido = practica.Estudiante.Apellido
		base.EstudianteNombre = practica.Estudiante.Nombre
		base.EstudianteApellido = practica.Estudiante.Apellido
		destinatarios = append(destinatarios, notify.Destinatario{
			Email:  practica.Estudiante.Email,
			Nombre: practica.Estudiante.NombreCompleto(),
		})
	} else {
		destinatarios = append(destinatarios, notify.Destinatario{})
	}
	if practica.Empresa != nil {
		datos.Empresa = practica.Empresa.RazonSocial
		base.Empresa = practica.Empresa.RazonSocial
	}

	resumen := uc.notificador.Difundir(ctx, destinatarios, mail.TipoCambioEstado, datos, base)
	return &ResultadoPractica{Practica: practica, Resumen: resumen}, nil
}
