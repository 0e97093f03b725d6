package tickets

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// PageSize es el tamaño fijo de la única página que devuelve List.
// El export es un snapshot best-effort, no un volcado histórico completo.
const PageSize = 100

var (
	ErrUpstream = errors.New("ticket store upstream error")
	ErrTimeout  = errors.New("ticket store timeout")
)

// Draft es lo que el encoder entrega al store, sin modificar.
type Draft struct {
	Title  string
	Body   string
	Labels []string
}

// Ticket representa un issue ya persistido. Es inmutable: nunca se edita ni se borra.
type Ticket struct {
	Number    int
	Title     string
	Body      string
	Labels    []string
	CreatedAt time.Time
}

// Store es el almacén externo append-only (create + list).
// Cada llamada hace exactamente una operación remota, acotada por timeout y sin reintentos.
type Store interface {
	Create(ctx context.Context, d Draft) (int, error)
	// List devuelve hasta PageSize tickets (abiertos y cerrados), más recientes primero.
	List(ctx context.Context) ([]Ticket, error)
}

// StatusError representa una respuesta no-2xx del store.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("ticket store: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("ticket store: status=%d detail=%s", e.StatusCode, e.Detail)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }
