package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/mail"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/notify"
	"github.com/UserBastianProboste/practicas-api/internal/util"
)

func setupPracticaUsecase() (*PracticaUsecase, *fakePracticaRepo, *fakeDirectorio, *notificadorFalso) {
	practicas := newFakePracticaRepo()
	directorio := newFakeDirectorio()
	notificador := &notificadorFalso{}

	estudiante := &model.Estudiante{
		ID:       uuid.New(),
		Nombre:   "Ana",
		Apellido: "Rojas",
		Email:    "ana@uautonoma.cl",
		Telefono: "+56911112222",
		Carrera:  "Ingeniería Informática",
		Sede:     "Sede Providencia",
		Semestre: "8",
	}
	empresa := &model.Empresa{ID: uuid.New(), RazonSocial: "ACME Ltda.", Email: "contacto@acme.cl"}
	directorio.estudiantes[estudiante.ID.String()] = estudiante
	directorio.empresas[empresa.ID.String()] = empresa
	directorio.coordinadores = []model.Coordinador{
		{ID: uuid.New(), Nombre: "María", Apellido: "Soto", Email: "maria@uautonoma.cl"},
		{ID: uuid.New(), Nombre: "Luis", Apellido: "Pérez", Email: "luis@uautonoma.cl"},
	}

	return NewPracticaUsecase(practicas, directorio, notificador), practicas, directorio, notificador
}

func requestCrear(directorio *fakeDirectorio) dto.PracticaCreateRequest {
	var estudianteID, empresaID string
	for id := range directorio.estudiantes {
		estudianteID = id
	}
	for id := range directorio.empresas {
		empresaID = id
	}
	return dto.PracticaCreateRequest{
		EstudianteID: estudianteID,
		EmpresaID:    empresaID,
		TipoPractica: model.TipoPractica1,
		FechaInicio:  "2024-03-01",
		FechaTermino: "2024-06-30",
	}
}

func TestPracticaCrear_NotificaEstudianteYCoordinadores(t *testing.T) {
	uc, practicas, directorio, notificador := setupPracticaUsecase()

	resultado, err := uc.Crear(context.Background(), requestCrear(directorio))
	require.NoError(t, err)

	assert.Equal(t, model.EstadoPendiente, resultado.Practica.Estado)
	_, ok := practicas.practicas[resultado.Practica.ID.String()]
	assert.True(t, ok, "la práctica debe quedar persistida")

	// una difusión al estudiante y otra al directorio de coordinadores
	require.Len(t, notificador.difusiones, 2)
	assert.Equal(t, mail.TipoFichaRecibida, notificador.difusiones[0].Tipo)
	assert.Equal(t, "ana@uautonoma.cl", notificador.difusiones[0].Destinatarios[0].Email)
	assert.Equal(t, mail.TipoNuevaInscripcion, notificador.difusiones[1].Tipo)
	assert.Len(t, notificador.difusiones[1].Destinatarios, 2)

	assert.Equal(t, 3, resultado.Resumen.OK)
}

func TestPracticaCrear_RangoDeFechasInvalido(t *testing.T) {
	uc, _, directorio, notificador := setupPracticaUsecase()

	req := requestCrear(directorio)
	req.FechaInicio = "2024-06-30"
	req.FechaTermino = "2024-03-01"

	_, err := uc.Crear(context.Background(), req)

	var formErr *util.FormError
	require.True(t, errors.As(err, &formErr))
	assert.Empty(t, notificador.difusiones, "no debe notificar si la validación falla")
}

func TestPracticaCrear_EstudianteIncompleto(t *testing.T) {
	uc, practicas, directorio, notificador := setupPracticaUsecase()
	for _, e := range directorio.estudiantes {
		e.Sede = "Sede Marte"
	}

	_, err := uc.Crear(context.Background(), requestCrear(directorio))

	var formErr *util.FormError
	require.True(t, errors.As(err, &formErr))
	assert.Empty(t, practicas.practicas, "no debe insertar con la ficha del estudiante incompleta")
	assert.Empty(t, notificador.difusiones)
}

func TestPracticaCrear_EstudianteInexistente(t *testing.T) {
	uc, practicas, directorio, _ := setupPracticaUsecase()

	req := requestCrear(directorio)
	req.EstudianteID = uuid.New().String()

	_, err := uc.Crear(context.Background(), req)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, practicas.practicas)
}

func TestPracticaCrear_FalloDeCorreoNoRevierte(t *testing.T) {
	uc, practicas, directorio, notificador := setupPracticaUsecase()
	notificador.resumen = func(destinatarios []notify.Destinatario) notify.Resumen {
		return notify.Resumen{Fallidos: len(destinatarios)}
	}

	resultado, err := uc.Crear(context.Background(), requestCrear(directorio))

	require.NoError(t, err, "el fallo de correo no puede revertir la inserción")
	assert.Len(t, practicas.practicas, 1)
	assert.Equal(t, 3, resultado.Resumen.Fallidos)
	assert.False(t, resultado.Resumen.Exitoso())
}

func TestPracticaCrear_SinCoordinadoresSigueAdelante(t *testing.T) {
	uc, _, directorio, notificador := setupPracticaUsecase()
	directorio.errListar = errors.New("directorio caído")

	resultado, err := uc.Crear(context.Background(), requestCrear(directorio))

	require.NoError(t, err)
	// solo la difusión al estudiante
	require.Len(t, notificador.difusiones, 1)
	assert.Equal(t, mail.TipoFichaRecibida, notificador.difusiones[0].Tipo)
	assert.Equal(t, 1, resultado.Resumen.OK)
}

func TestPracticaDecidir_Aprobada(t *testing.T) {
	uc, practicas, directorio, notificador := setupPracticaUsecase()

	creada, err := uc.Crear(context.Background(), requestCrear(directorio))
	require.NoError(t, err)
	notificador.difusiones = nil

	id := creada.Practica.ID.String()
	resultado, err := uc.Decidir(context.Background(), id, model.EstadoAprobada)
	require.NoError(t, err)

	assert.Equal(t, model.EstadoAprobada, resultado.Practica.Estado)
	assert.Equal(t, model.EstadoAprobada, practicas.practicas[id].Estado)

	require.Len(t, notificador.difusiones, 1)
	assert.Equal(t, mail.TipoCambioEstado, notificador.difusiones[0].Tipo)
	assert.Equal(t, model.EstadoAprobada, notificador.difusiones[0].Datos.Estado)
}

func TestPracticaDecidir_AccionInvalida(t *testing.T) {
	uc, _, _, notificador := setupPracticaUsecase()

	_, err := uc.Decidir(context.Background(), uuid.New().String(), "archivada")

	assert.ErrorIs(t, err, ErrAccionInvalida)
	assert.Empty(t, notificador.difusiones)
}

func TestPracticaDecidir_NoEncontrada(t *testing.T) {
	uc, _, _, _ := setupPracticaUsecase()

	_, err := uc.Decidir(context.Background(), uuid.New().String(), model.EstadoRechazada)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPracticaListar_FiltraPorEstado(t *testing.T) {
	uc, _, directorio, _ := setupPracticaUsecase()

	primera, err := uc.Crear(context.Background(), requestCrear(directorio))
	require.NoError(t, err)
	_, err = uc.Crear(context.Background(), requestCrear(directorio))
	require.NoError(t, err)

	_, err = uc.Decidir(context.Background(), primera.Practica.ID.String(), model.EstadoAprobada)
	require.NoError(t, err)

	aprobadas, total, err := uc.Listar(model.EstadoAprobada, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, aprobadas, 1)
	assert.Equal(t, model.EstadoAprobada, aprobadas[0].Estado)
}
