package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UserBastianProboste/practicas-api/internal/config"
	"github.com/UserBastianProboste/practicas-api/internal/mail"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/notify"
)

type registroEnMemoria struct {
	mu      sync.Mutex
	creadas []*model.Notificacion
}

func (r *registroEnMemoria) Crear(ctx context.Context, n *model.Notificacion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creadas = append(r.creadas, n)
	return nil
}

// Cubre el recorrido completo de una decisión con el servicio de correo
// caído: cliente real contra un servidor que responde 503, despachador real
// con respaldo en memoria. La decisión debe quedar persistida, el resumen
// debe reportar el fallo y la notificación debe quedar registrada como
// pendiente con el último error observado.
func TestDecidir_CorreoCaidoRegistraRespaldoPendiente(t *testing.T) {
	var llamadas int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&llamadas, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": "mantenimiento"}`))
	}))
	defer srv.Close()

	cliente := mail.NewCliente(&config.MailerConfig{
		BaseURL:      srv.URL,
		APIKey:       "clave-de-prueba",
		FunctionPath: "/functions/v1/send-email-brevo",
	}, "")
	registro := &registroEnMemoria{}
	dispatcher := notify.NewDispatcher(cliente, registro, mail.Opciones{
		Timeout: 2 * time.Second,
		Backoff: func(int) time.Duration { return 0 },
	})

	practicas := newFakePracticaRepo()
	directorio := newFakeDirectorio()
	practica := &model.Practica{
		ID:           uuid.New(),
		TipoPractica: model.TipoPractica1,
		FechaInicio:  "2024-03-01",
		FechaTermino: "2024-06-30",
		Estado:       model.EstadoPendiente,
		Estudiante:   &model.Estudiante{Nombre: "Ana", Apellido: "Rojas", Email: "ana@uautonoma.cl"},
	}
	practicas.practicas[practica.ID.String()] = practica

	uc := NewPracticaUsecase(practicas, directorio, dispatcher)
	resultado, err := uc.Decidir(context.Background(), practica.ID.String(), model.EstadoAprobada)

	// la mutación se reporta exitosa aunque el correo no haya salido
	require.NoError(t, err)
	assert.Equal(t, model.EstadoAprobada, resultado.Practica.Estado)
	assert.Equal(t, model.EstadoAprobada, practicas.practicas[practica.ID.String()].Estado)

	// un intento más dos reintentos contra el endpoint caído
	assert.Equal(t, int32(3), atomic.LoadInt32(&llamadas))
	assert.Equal(t, 1, resultado.Resumen.Fallidos)
	assert.Equal(t, 0, resultado.Resumen.OK)
	assert.False(t, resultado.Resumen.Exitoso())

	require.Len(t, registro.creadas, 1)
	respaldo := registro.creadas[0]
	assert.Equal(t, "ana@uautonoma.cl", respaldo.Destinatario)
	assert.Equal(t, model.NotificacionEstadoPendiente, respaldo.Estado)
	assert.True(t, strings.Contains(respaldo.Asunto, "APROBADA"))
	require.NotNil(t, respaldo.Error)
	assert.Contains(t, *respaldo.Error, "HTTP 503")

	// el cuerpo guarda el payload completo que se intentó entregar
	var payload mail.Payload
	require.NoError(t, json.Unmarshal([]byte(respaldo.Cuerpo), &payload))
	assert.Equal(t, []string{"ana@uautonoma.cl"}, payload.To)
	assert.Equal(t, model.EstadoAprobada, payload.Estado)
}
