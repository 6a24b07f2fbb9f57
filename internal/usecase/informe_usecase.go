package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/UserBastianProboste/practicas-api/internal/dto"
	"github.com/UserBastianProboste/practicas-api/internal/grade"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/notify"
)

type InformeRepo interface {
	Create(informe *model.Informe) error
	FindByID(id string) (*model.Informe, error)
	UpsertRubrica(rubrica *model.RubricaInformeFinal) error
	FindRubrica(informeID string) (*model.RubricaInformeFinal, error)
	UpdateNota(id string, nota float64) error
}

type InformeUsecase struct {
	informes    InformeRepo
	practicas   PracticaRepo
	notificador Notificador
}

func NewInformeUsecase(informes InformeRepo, practicas PracticaRepo, notificador Notificador) *InformeUsecase {
	return &InformeUsecase{informes: informes, practicas: practicas, notificador: notificador}
}

func (uc *InformeUsecase) Subir(req dto.InformeCreateRequest) (*model.Informe, error) {
	practicaID, err := uuid.Parse(req.PracticaID)
	if err != nil {
		return nil, fmt.Errorf("practica_id inválido: %w", err)
	}
	informe := &model.Informe{
		PracticaID:    practicaID,
		NombreArchivo: req.NombreArchivo,
	}
	if err := uc.informes.Create(informe); err != nil {
		return nil, err
	}
	return informe, nil
}

func (uc *InformeUsecase) Obtener(id string) (*model.Informe, error) {
	return uc.informes.FindByID(id)
}

func (uc *InformeUsecase) ObtenerRubrica(informeID string) (*model.RubricaInformeFinal, error) {
	return uc.informes.FindRubrica(informeID)
}

// ResultadoRubrica es el resultado de aplicar la rúbrica: puntaje sumado, nota
// derivada y estado del aviso al estudiante.
type ResultadoRubrica struct {
	PuntajeTotal int
	Nota         float64
	Resumen      notify.Resumen
}

// CalificarRubrica valida los 20 criterios, persiste la rúbrica (a lo más una
// fila por informe, recalificar sobreescribe) y actualiza la nota del informe.
// Solo después de ambas escrituras se avisa al estudiante.
func (uc *InformeUsecase) CalificarRubrica(ctx context.Context, informeID string, req dto.RubricaRequest) (*ResultadoRubrica, error) {
	informe, err := uc.informes.FindByID(informeID)
	if err != nil {
		return nil, err
	}
	if err := grade.ValidarRubrica(req.Puntajes); err != nil {
		return nil, err
	}

	puntajeTotal, nota := grade.CalcularNotaInforme(req.Puntajes)
	rubrica := rubricaDesdePuntajes(informe.ID, req.Puntajes)
	rubrica.PuntajeTotal = puntajeTotal

	if err := uc.informes.UpsertRubrica(rubrica); err != nil {
		return nil, err
	}
	if err := uc.informes.UpdateNota(informeID, nota); err != nil {
		return nil, err
	}

	resumen := avisarEstudiante(ctx, uc.practicas, uc.notificador, informe.PracticaID.String(),
		"Informe de práctica calificado",
		fmt.Sprintf(`<p>Tu informe de práctica fue evaluado con la rúbrica institucional.</p>
<p><strong>Puntaje:</strong> %d de 60</p>
<p><strong>Nota:</strong> %.1f</p>
<p>Puedes revisar el detalle en el portal de prácticas.</p>`, puntajeTotal, nota))

	return &ResultadoRubrica{PuntajeTotal: puntajeTotal, Nota: nota, Resumen: resumen}, nil
}

func rubricaDesdePuntajes(informeID uuid.UUID, p map[string]int) *model.RubricaInformeFinal {
	return &model.RubricaInformeFinal{
		InformeID:                informeID,
		C1PortadaIndice:          p["c1_portada_indice"],
		C2Introduccion:           p["c2_introduccion"],
		C3ObjetivoGeneral:        p["c3_objetivo_general"],
		C4ObjetivosEspecificos:   p["c4_objetivos_especificos"],
		C5CaracterizacionEmpresa: p["c5_caracterizacion_empresa"],
		C6DatosSupervisor:        p["c6_datos_supervisor"],
		C7DesarrolloPractica:     p["c7_desarrollo_practica"],
		C8Recomendaciones:        p["c8_recomendaciones"],
		C9Conclusiones:           p["c9_conclusiones"],
		C10Anexos:                p["c10_anexos"],
		C11Formato:               p["c11_formato"],
		C12TerceraPersona:        p["c12_tercera_persona"],
		C13CitasFuentes:          p["c13_citas_fuentes"],
		C14Extension:             p["c14_extension"],
		C15TablasGraficos:        p["c15_tablas_graficos"],
		C16Ortografia:            p["c16_ortografia"],
		C17CohesionCoherencia:    p["c17_cohesion_coherencia"],
		C18DesarrolloIdeas:       p["c18_desarrollo_ideas"],
		C19IdentificacionRoles:   p["c19_identificacion_roles"],
		C20RiquezaLinguistica:    p["c20_riqueza_linguistica"],
	}
}
