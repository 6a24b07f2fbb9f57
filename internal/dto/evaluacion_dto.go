package dto

type AutoevaluacionCreateRequest struct {
	PracticaID string            `json:"practica_id"`
	Respuestas map[string]string `json:"respuestas"`
}

type RubricaRequest struct {
	Puntajes map[string]int `json:"puntajes"`
}

type InformeCreateRequest struct {
	PracticaID    string `json:"practica_id"`
	NombreArchivo string `json:"nombre_archivo"`
}

type InvitacionSupervisorRequest struct {
	PracticaID         string `json:"practica_id"`
	NombreSupervisor   string `json:"nombre_supervisor"`
	CargoSupervisor    string `json:"cargo_supervisor"`
	EmailSupervisor    string `json:"email_supervisor"`
	TelefonoSupervisor string `json:"telefono_supervisor"`
}

type RespuestaSupervisorRequest struct {
	CalidadTrabajo             int    `json:"calidad_trabajo"`
	EfectividadTrabajo         int    `json:"efectividad_trabajo"`
	ConocimientosProfesionales int    `json:"conocimientos_profesionales"`
	AdaptabilidadCambios       int    `json:"adaptabilidad_cambios"`
	OrganizacionTrabajo        int    `json:"organizacion_trabajo"`
	ObservacionesTecnicas      string `json:"observaciones_tecnicas"`

	InteresTrabajo   int `json:"interes_trabajo"`
	Responsabilidad  int `json:"responsabilidad"`
	Cooperacion      int `json:"cooperacion"`
	Creatividad      int `json:"creatividad"`
	Iniciativa       int `json:"iniciativa"`
	IntegracionGrupo int `json:"integracion_grupo"`

	ConsideraPositivoRecibirAlumnos string `json:"considera_positivo_recibir_alumnos"`
	EspecialidadRequerida           string `json:"especialidad_requerida"`
	ComentariosAdicionales          string `json:"comentarios_adicionales"`
}
