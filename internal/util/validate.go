package util

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SedesValidas es el catálogo de sedes aceptadas en los formularios.
var SedesValidas = []string{
	"Sede Llano",
	"Sede Providencia",
	"Sede Temuco",
	"Sede Talca",
}

// SemestresValidos son "1" a "12".
var SemestresValidos = func() []string {
	semestres := make([]string, 12)
	for i := range semestres {
		semestres[i] = fmt.Sprintf("%d", i+1)
	}
	return semestres
}()

// MatchSede devuelve la forma canónica de la sede o "" si no se reconoce.
// Compara sin tildes, espacios ni mayúsculas, para tolerar lo que llega de
// los formularios.
func MatchSede(valor string) string {
	normalizado := NormalizarTexto(valor)
	if normalizado == "" {
		return ""
	}
	for _, sede := range SedesValidas {
		if NormalizarTexto(sede) == normalizado {
			return sede
		}
	}
	return ""
}

// SemestreValido acepta los semestres del catálogo.
func SemestreValido(valor string) bool {
	trimmed := strings.TrimSpace(valor)
	for _, s := range SemestresValidos {
		if s == trimmed {
			return true
		}
	}
	return false
}

// NormalizarTexto quita tildes y espacios y pasa a minúsculas, para comparar
// entradas de formulario contra catálogos.
func NormalizarTexto(texto string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalizado, _, err := transform.String(t, texto)
	if err != nil {
		normalizado = texto
	}
	normalizado = strings.Join(strings.Fields(normalizado), "")
	return strings.ToLower(normalizado)
}

// ValidarRangoFechas exige fechas ISO con término no anterior al inicio.
func ValidarRangoFechas(fechaInicio, fechaTermino string) error {
	inicio, err := time.Parse("2006-01-02", fechaInicio)
	if err != nil {
		return fmt.Errorf("fecha_inicio inválida: %q", fechaInicio)
	}
	termino, err := time.Parse("2006-01-02", fechaTermino)
	if err != nil {
		return fmt.Errorf("fecha_termino inválida: %q", fechaTermino)
	}
	if termino.Before(inicio) {
		return fmt.Errorf("fecha_termino (%s) es anterior a fecha_inicio (%s)", fechaTermino, fechaInicio)
	}
	return nil
}

// AvancePorTiempo calcula el porcentaje de avance de la práctica según la
// fecha actual dentro del periodo, acotado a [0, 100].
func AvancePorTiempo(fechaInicio, fechaTermino string, hoy time.Time) int {
	inicio, errInicio := time.Parse("2006-01-02", fechaInicio)
	termino, errTermino := time.Parse("2006-01-02", fechaTermino)
	if errInicio != nil || errTermino != nil {
		return 0
	}

	totalDias := termino.Sub(inicio).Hours() / 24
	if totalDias < 1 {
		totalDias = 1
	}
	transcurridos := hoy.Sub(inicio).Hours() / 24
	if transcurridos > totalDias {
		transcurridos = totalDias
	}

	avance := int(math.Round(transcurridos / totalDias * 100))
	if avance < 0 {
		return 0
	}
	if avance > 100 {
		return 100
	}
	return avance
}

// DatosEstudiante es la vista mínima que exige la validación de completitud.
type DatosEstudiante struct {
	Nombre   string
	Apellido string
	Email    string
	Telefono string
	Carrera  string
	Sede     string
	Semestre string
}

// EstudianteCompleto exige todos los campos presentes, con sede y semestre
// dentro de los catálogos.
func EstudianteCompleto(e DatosEstudiante) bool {
	campos := []string{e.Nombre, e.Apellido, e.Email, e.Telefono, e.Carrera, e.Sede, e.Semestre}
	for _, campo := range campos {
		if strings.TrimSpace(campo) == "" {
			return false
		}
	}
	return MatchSede(e.Sede) != "" && SemestreValido(e.Semestre)
}
