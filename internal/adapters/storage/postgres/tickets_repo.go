package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pet-insurance-leads/internal/ports/tickets"

	"github.com/google/uuid"
)

// TicketsRepo guarda los tickets en una tabla append-only.
// Mismo contrato que el store de GitHub: una consulta por operación, con timeout.
type TicketsRepo struct {
	db            *sql.DB
	createTimeout time.Duration
	listTimeout   time.Duration
	now           func() time.Time
}

func NewTicketsRepo(db *sql.DB, createTimeout, listTimeout time.Duration) *TicketsRepo {
	return &TicketsRepo{
		db:            db,
		createTimeout: createTimeout,
		listTimeout:   listTimeout,
		now:           time.Now,
	}
}

func (r *TicketsRepo) Create(ctx context.Context, d tickets.Draft) (int, error) {
	ctx, cancel := withTimeout(ctx, r.createTimeout)
	defer cancel()

	labels := d.Labels
	if labels == nil {
		labels = []string{}
	}
	rawLabels, err := json.Marshal(labels)
	if err != nil {
		return 0, fmt.Errorf("marshal labels: %w", err)
	}

	var number int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO tickets (id, title, body, labels, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5)
		RETURNING number
	`,
		uuid.NewString(),
		d.Title,
		d.Body,
		string(rawLabels),
		r.now().UTC(),
	).Scan(&number)
	if err != nil {
		return 0, translate(ctx, err)
	}
	return int(number), nil
}

func (r *TicketsRepo) List(ctx context.Context) ([]tickets.Ticket, error) {
	ctx, cancel := withTimeout(ctx, r.listTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT number, title, body, labels::text, created_at
		FROM tickets
		ORDER BY created_at DESC, number DESC
		LIMIT $1
	`, tickets.PageSize)
	if err != nil {
		return nil, translate(ctx, err)
	}
	defer rows.Close()

	out := make([]tickets.Ticket, 0)
	for rows.Next() {
		var (
			t         tickets.Ticket
			number    int64
			rawLabels string
		)
		if err := rows.Scan(&number, &t.Title, &t.Body, &rawLabels, &t.CreatedAt); err != nil {
			return nil, translate(ctx, err)
		}
		t.Number = int(number)
		// Etiquetas ilegibles no deben romper el export: el decoder cae al payload.
		_ = json.Unmarshal([]byte(rawLabels), &t.Labels)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(ctx, err)
	}
	return out, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func translate(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", tickets.ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", tickets.ErrUpstream, err)
}
