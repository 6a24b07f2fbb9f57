package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/grade"
	"github.com/UserBastianProboste/practicas-api/internal/model"
)

func puntajesRubrica(valor int) map[string]int {
	puntajes := make(map[string]int)
	for _, criterio := range grade.CriteriosRubrica() {
		puntajes[criterio] = valor
	}
	return puntajes
}

func setupInformeUsecase() (*InformeUsecase, *fakeInformeRepo, *fakePracticaRepo, *notificadorFalso) {
	informes := newFakeInformeRepo()
	practicas := newFakePracticaRepo()
	notificador := &notificadorFalso{}
	return NewInformeUsecase(informes, practicas, notificador), informes, practicas, notificador
}

func TestInformeSubir(t *testing.T) {
	uc, repo, _, _ := setupInformeUsecase()

	practicaID := uuid.New()
	informe, err := uc.Subir(dto.InformeCreateRequest{
		PracticaID:    practicaID.String(),
		NombreArchivo: "informe_final.pdf",
	})
	require.NoError(t, err)

	guardado := repo.informes[informe.ID.String()]
	require.NotNil(t, guardado)
	assert.Equal(t, practicaID, guardado.PracticaID)
	assert.Nil(t, guardado.Nota)
}

func TestInformeCalificarRubrica_PersisteNotaYPuntaje(t *testing.T) {
	uc, repo, practicas, notificador := setupInformeUsecase()

	practica := &model.Practica{
		Estudiante: &model.Estudiante{Nombre: "Ana", Email: "ana@uautonoma.cl"},
	}
	require.NoError(t, practicas.Create(practica))
	informe, err := uc.Subir(dto.InformeCreateRequest{PracticaID: practica.ID.String(), NombreArchivo: "a.pdf"})
	require.NoError(t, err)

	resultado, err := uc.CalificarRubrica(context.Background(), informe.ID.String(), dto.RubricaRequest{
		Puntajes: puntajesRubrica(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 60, resultado.PuntajeTotal)
	assert.Equal(t, 7.0, resultado.Nota)

	rubrica := repo.rubricas[informe.ID.String()]
	require.NotNil(t, rubrica)
	assert.Equal(t, 60, rubrica.PuntajeTotal)
	assert.Equal(t, 3, rubrica.C20RiquezaLinguistica)

	require.NotNil(t, repo.informes[informe.ID.String()].Nota)
	assert.Equal(t, 7.0, *repo.informes[informe.ID.String()].Nota)

	require.Len(t, notificador.difusiones, 1)
	assert.Equal(t, "Informe de práctica calificado", notificador.difusiones[0].Datos.Subject)
}

func TestInformeCalificarRubrica_RecalificarSobreescribe(t *testing.T) {
	uc, repo, practicas, _ := setupInformeUsecase()

	practica := &model.Practica{}
	require.NoError(t, practicas.Create(practica))
	informe, err := uc.Subir(dto.InformeCreateRequest{PracticaID: practica.ID.String()})
	require.NoError(t, err)

	_, err = uc.CalificarRubrica(context.Background(), informe.ID.String(), dto.RubricaRequest{Puntajes: puntajesRubrica(1)})
	require.NoError(t, err)
	resultado, err := uc.CalificarRubrica(context.Background(), informe.ID.String(), dto.RubricaRequest{Puntajes: puntajesRubrica(2)})
	require.NoError(t, err)

	assert.Equal(t, 40, resultado.PuntajeTotal)
	assert.Equal(t, 5.0, resultado.Nota)
	assert.Equal(t, 40, repo.rubricas[informe.ID.String()].PuntajeTotal)
	assert.Equal(t, 5.0, *repo.informes[informe.ID.String()].Nota)
}

func TestInformeCalificarRubrica_IncompletaNoEscribe(t *testing.T) {
	uc, repo, practicas, notificador := setupInformeUsecase()

	practica := &model.Practica{}
	require.NoError(t, practicas.Create(practica))
	informe, err := uc.Subir(dto.InformeCreateRequest{PracticaID: practica.ID.String()})
	require.NoError(t, err)

	puntajes := puntajesRubrica(2)
	delete(puntajes, "c11_formato")

	_, err = uc.CalificarRubrica(context.Background(), informe.ID.String(), dto.RubricaRequest{Puntajes: puntajes})

	var incompleta *grade.ErrRubricaIncompleta
	require.True(t, errors.As(err, &incompleta))
	assert.Empty(t, repo.rubricas)
	assert.Nil(t, repo.informes[informe.ID.String()].Nota)
	assert.Empty(t, notificador.difusiones)
}

func TestInformeCalificarRubrica_InformeInexistente(t *testing.T) {
	uc, _, _, _ := setupInformeUsecase()

	_, err := uc.CalificarRubrica(context.Background(), uuid.New().String(), dto.RubricaRequest{Puntajes: puntajesRubrica(2)})
	assert.Error(t, err)
}
