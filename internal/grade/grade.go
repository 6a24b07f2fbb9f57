// Package grade calcula las notas del flujo de prácticas: la nota de la
// autoevaluación del estudiante (escala Likert de 4 niveles sobre 11 criterios)
// y la nota del informe final (rúbrica de 20 criterios con puntaje 0-3).
// Todas las funciones son puras; una entrada malformada degrada a un valor
// centinela en lugar de fallar.
package grade

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Pesos de cada respuesta de la autoevaluación.
var PesosRespuesta = map[string]int{
	"Siempre":        4,
	"Frecuentemente": 3,
	"A veces":        2,
	"Nunca":          1,
}

// CriteriosAutoevaluacion son las 11 claves fijas: 5 de gestión del trabajo y
// 6 de aspectos personales e interpersonales.
var CriteriosAutoevaluacion = []string{
	"gestion_0", "gestion_1", "gestion_2", "gestion_3", "gestion_4",
	"personales_0", "personales_1", "personales_2", "personales_3",
	"personales_4", "personales_5",
}

// puntaje máximo: 11 criterios × peso 4
const puntajeMaximoAutoevaluacion = 44

type ResultadoAutoevaluacion struct {
	Nota          float64 `json:"nota"`
	NotaPonderada float64 `json:"nota_ponderada"`
	Puntos        int     `json:"puntos"`
	ItemsContados int     `json:"items_contados"`
}

// Completa indica si las 11 respuestas traían una etiqueta reconocida. Solo un
// resultado completo puede persistirse como nota definitiva; uno parcial es una
// vista previa.
func (r ResultadoAutoevaluacion) Completa() bool {
	return r.ItemsContados == len(CriteriosAutoevaluacion)
}

// CalcularNotaAutoevaluacion convierte las respuestas en una nota 1.0-7.0 y su
// ponderación al 10% de la nota final. Las etiquetas no reconocidas o faltantes
// simplemente no se cuentan; si nada se contó el resultado es el centinela 0.
func CalcularNotaAutoevaluacion(respuestas map[string]string) ResultadoAutoevaluacion {
	puntos := 0
	contados := 0
	for _, criterio := range CriteriosAutoevaluacion {
		peso, ok := PesosRespuesta[respuestas[criterio]]
		if !ok {
			continue
		}
		puntos += peso
		contados++
	}

	if contados == 0 {
		return ResultadoAutoevaluacion{}
	}

	nota := redondear2(float64(puntos)/puntajeMaximoAutoevaluacion*6 + 1)
	return ResultadoAutoevaluacion{
		Nota:          nota,
		NotaPonderada: redondear2(nota * 0.1),
		Puntos:        puntos,
		ItemsContados: contados,
	}
}

// SeccionRubrica agrupa criterios de la rúbrica del informe final.
type SeccionRubrica struct {
	Titulo    string
	Criterios []string
}

// SeccionesRubrica define los 20 criterios fijos en sus tres secciones, en el
// mismo orden en que aparecen en la pauta.
var SeccionesRubrica = []SeccionRubrica{
	{
		Titulo: "I. Contenido del documento",
		Criterios: []string{
			"c1_portada_indice",
			"c2_introduccion",
			"c3_objetivo_general",
			"c4_objetivos_especificos",
			"c5_caracterizacion_empresa",
			"c6_datos_supervisor",
			"c7_desarrollo_practica",
			"c8_recomendaciones",
			"c9_conclusiones",
			"c10_anexos",
		},
	},
	{
		Titulo: "II. Forma del documento",
		Criterios: []string{
			"c11_formato",
			"c12_tercera_persona",
			"c13_citas_fuentes",
			"c14_extension",
			"c15_tablas_graficos",
			"c16_ortografia",
		},
	},
	{
		Titulo: "III. Pertinencia del documento",
		Criterios: []string{
			"c17_cohesion_coherencia",
			"c18_desarrollo_ideas",
			"c19_identificacion_roles",
			"c20_riqueza_linguistica",
		},
	},
}

// CriteriosRubrica aplana las secciones en la lista de 20 ids.
func CriteriosRubrica() []string {
	var todos []string
	for _, s := range SeccionesRubrica {
		todos = append(todos, s.Criterios...)
	}
	return todos
}

// EtiquetasRubrica nombra cada puntaje 0-3.
var EtiquetasRubrica = []string{"Insatisfactorio", "Mejorable", "Efectivo", "Excelencia"}

const (
	PuntajeCriterioMax = 3
	PuntajeTotalMax    = 60
)

// ErrRubricaIncompleta describe criterios faltantes o fuera de rango. Se
// detecta antes de cualquier E/S; el llamador la muestra tal cual.
type ErrRubricaIncompleta struct {
	Criterios []string
}

func (e *ErrRubricaIncompleta) Error() string {
	return fmt.Sprintf("rúbrica incompleta o con puntajes inválidos: %s", strings.Join(e.Criterios, ", "))
}

// ValidarRubrica revisa que los 20 criterios estén presentes con puntaje 0-3.
func ValidarRubrica(puntajes map[string]int) error {
	var malos []string
	for _, criterio := range CriteriosRubrica() {
		valor, ok := puntajes[criterio]
		if !ok || valor < 0 || valor > PuntajeCriterioMax {
			malos = append(malos, criterio)
		}
	}
	if len(malos) > 0 {
		sort.Strings(malos)
		return &ErrRubricaIncompleta{Criterios: malos}
	}
	return nil
}

// CalcularNotaInforme suma los puntajes de la rúbrica y aplica la fórmula
// (puntaje + 10) / 10, acotada a [1.0, 7.0]. Los criterios los garantiza el
// llamador vía ValidarRubrica; aquí solo se suman los conocidos.
func CalcularNotaInforme(puntajes map[string]int) (puntajeTotal int, nota float64) {
	for _, criterio := range CriteriosRubrica() {
		puntajeTotal += puntajes[criterio]
	}
	nota = (float64(puntajeTotal) + 10) / 10
	if nota < 1.0 {
		nota = 1.0
	}
	if nota > 7.0 {
		nota = 7.0
	}
	return puntajeTotal, nota
}

func redondear2(v float64) float64 {
	return math.Round(v*100) / 100
}
