package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/UserBastianProboste/practicas-api/internal/mail"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/notify"
)

type fakePracticaRepo struct {
	practicas map[string]*model.Practica
}

func newFakePracticaRepo() *fakePracticaRepo {
	return &fakePracticaRepo{practicas: make(map[string]*model.Practica)}
}

func (f *fakePracticaRepo) Create(practica *model.Practica) error {
	if practica.ID == uuid.Nil {
		practica.ID = uuid.New()
	}
	f.practicas[practica.ID.String()] = practica
	return nil
}

func (f *fakePracticaRepo) FindByID(id string) (*model.Practica, error) {
	if p, ok := f.practicas[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePracticaRepo) List(estado string, page, limit int) ([]model.Practica, int64, error) {
	var lista []model.Practica
	for _, p := range f.practicas {
		if estado == "" || p.Estado == estado {
			lista = append(lista, *p)
		}
	}
	return lista, int64(len(lista)), nil
}

func (f *fakePracticaRepo) UpdateEstado(id, estado string) (*model.Practica, error) {
	p, ok := f.practicas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p.Estado = estado
	return p, nil
}

type fakeDirectorio struct {
	estudiantes   map[string]*model.Estudiante
	empresas      map[string]*model.Empresa
	coordinadores []model.Coordinador
	errListar     error
}

func newFakeDirectorio() *fakeDirectorio {
	return &fakeDirectorio{
		estudiantes: make(map[string]*model.Estudiante),
		empresas:    make(map[string]*model.Empresa),
	}
}

func (f *fakeDirectorio) FindEstudiante(id string) (*model.Estudiante, error) {
	if e, ok := f.estudiantes[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDirectorio) FindEmpresa(id string) (*model.Empresa, error) {
	if e, ok := f.empresas[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDirectorio) ListCoordinadores() ([]model.Coordinador, error) {
	if f.errListar != nil {
		return nil, f.errListar
	}
	return f.coordinadores, nil
}

type fakeAutoevaluacionRepo struct {
	autoevaluaciones map[string]*model.Autoevaluacion
	errGuardar       error
}

func newFakeAutoevaluacionRepo() *fakeAutoevaluacionRepo {
	return &fakeAutoevaluacionRepo{autoevaluaciones: make(map[string]*model.Autoevaluacion)}
}

func (f *fakeAutoevaluacionRepo) Create(a *model.Autoevaluacion) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	f.autoevaluaciones[a.ID.String()] = a
	return nil
}

func (f *fakeAutoevaluacionRepo) FindByID(id string) (*model.Autoevaluacion, error) {
	if a, ok := f.autoevaluaciones[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAutoevaluacionRepo) FindByPracticaID(practicaID string) (*model.Autoevaluacion, error) {
	for _, a := range f.autoevaluaciones {
		if a.PracticaID.String() == practicaID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAutoevaluacionRepo) GuardarNota(id string, notaPonderada float64) error {
	if f.errGuardar != nil {
		return f.errGuardar
	}
	a, ok := f.autoevaluaciones[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.NotaAutoevaluacion = &notaPonderada
	return nil
}

type fakeInformeRepo struct {
	informes map[string]*model.Informe
	rubricas map[string]*model.RubricaInformeFinal
}

func newFakeInformeRepo() *fakeInformeRepo {
	return &fakeInformeRepo{
		informes: make(map[string]*model.Informe),
		rubricas: make(map[string]*model.RubricaInformeFinal),
	}
}

func (f *fakeInformeRepo) Create(i *model.Informe) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	f.informes[i.ID.String()] = i
	return nil
}

func (f *fakeInformeRepo) FindByID(id string) (*model.Informe, error) {
	if i, ok := f.informes[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeInformeRepo) UpsertRubrica(r *model.RubricaInformeFinal) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	f.rubricas[r.InformeID.String()] = r
	return nil
}

func (f *fakeInformeRepo) FindRubrica(informeID string) (*model.RubricaInformeFinal, error) {
	if r, ok := f.rubricas[informeID]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeInformeRepo) UpdateNota(id string, nota float64) error {
	i, ok := f.informes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	i.Nota = &nota
	return nil
}

type fakeEvaluacionRepo struct {
	evaluaciones map[string]*model.EvaluacionSupervisor
}

func newFakeEvaluacionRepo() *fakeEvaluacionRepo {
	return &fakeEvaluacionRepo{evaluaciones: make(map[string]*model.EvaluacionSupervisor)}
}

func (f *fakeEvaluacionRepo) Create(e *model.EvaluacionSupervisor) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.evaluaciones[e.ID.String()] = e
	return nil
}

func (f *fakeEvaluacionRepo) FindByID(id string) (*model.EvaluacionSupervisor, error) {
	if e, ok := f.evaluaciones[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEvaluacionRepo) FindByPracticaID(practicaID string) (*model.EvaluacionSupervisor, error) {
	for _, e := range f.evaluaciones {
		if e.PracticaID.String() == practicaID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEvaluacionRepo) GuardarRespuesta(e *model.EvaluacionSupervisor) error {
	if _, ok := f.evaluaciones[e.ID.String()]; !ok {
		return gorm.ErrRecordNotFound
	}
	e.Respondido = true
	e.TokenUsado = true
	f.evaluaciones[e.ID.String()] = e
	return nil
}

// difusionRegistrada captura una llamada a Difundir para las aserciones.
type difusionRegistrada struct {
	Destinatarios []notify.Destinatario
	Tipo          mail.Tipo
	Datos         mail.Datos
}

type notificadorFalso struct {
	mu         sync.Mutex
	difusiones []difusionRegistrada
	resumen    func(destinatarios []notify.Destinatario) notify.Resumen
}

func (n *notificadorFalso) Difundir(ctx context.Context, destinatarios []notify.Destinatario, tipo mail.Tipo, datos mail.Datos, base mail.Payload) notify.Resumen {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.difusiones = append(n.difusiones, difusionRegistrada{
		Destinatarios: destinatarios,
		Tipo:          tipo,
		Datos:         datos,
	})
	if n.resumen != nil {
		return n.resumen(destinatarios)
	}
	return notify.Resumen{OK: len(destinatarios)}
}
