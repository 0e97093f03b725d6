package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pet-insurance-leads/internal/ports/tickets"
)

var (
	ErrTitleRequired = errors.New("ticket title required")
)

// ticketRepo es un store append-only en memoria para dev y tests.
// Numera igual que un tracker: 1, 2, 3... en orden de creación.
type ticketRepo struct {
	mu    sync.RWMutex
	items []tickets.Ticket
	now   func() time.Time
}

func NewTicketRepo() tickets.Store {
	return &ticketRepo{now: time.Now}
}

func (r *ticketRepo) Create(ctx context.Context, d tickets.Draft) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(d.Title) == "" {
		return 0, ErrTitleRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	t := tickets.Ticket{
		Number:    len(r.items) + 1,
		Title:     d.Title,
		Body:      d.Body,
		Labels:    append([]string(nil), d.Labels...),
		CreatedAt: r.now().UTC(),
	}
	r.items = append(r.items, t)
	return t.Number, nil
}

func (r *ticketRepo) List(ctx context.Context) ([]tickets.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Más recientes primero, como el tracker real.
	n := min(len(r.items), tickets.PageSize)
	out := make([]tickets.Ticket, 0, n)
	for i := len(r.items) - 1; i >= 0 && len(out) < n; i-- {
		t := r.items[i]
		t.Labels = append([]string(nil), t.Labels...)
		out = append(out, t)
	}
	return out, nil
}
