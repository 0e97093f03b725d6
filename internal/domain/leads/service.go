package leads

import (
	"context"
	"fmt"
	"time"

	"pet-insurance-leads/internal/platform/logger"
	"pet-insurance-leads/internal/ports/tickets"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "pet-insurance-leads/internal/domain/leads"

// Service orquesta una unidad de trabajo por llamada; no guarda estado mutable
// entre invocaciones.
type Service struct {
	store tickets.Store
	log   logger.Logger
	now   func() time.Time

	tracer      trace.Tracer
	submissions metric.Int64Counter
	exported    metric.Int64Counter
}

func NewService(store tickets.Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	meter := otel.Meter(instrumentationName)

	submissions, err := meter.Int64Counter("leads.submissions",
		metric.WithDescription("Leads guardados como ticket"))
	if err != nil {
		submissions = noop.Int64Counter{}
	}
	exported, err := meter.Int64Counter("leads.exported_records",
		metric.WithDescription("Registros devueltos por el export"))
	if err != nil {
		exported = noop.Int64Counter{}
	}

	return &Service{
		store:       store,
		log:         log,
		now:         time.Now,
		tracer:      otel.Tracer(instrumentationName),
		submissions: submissions,
		exported:    exported,
	}
}

type SubmitResult struct {
	Number int
	Title  string
}

// Submit normaliza, codifica y crea exactamente un ticket.
// ErrInvalidInput se devuelve antes de cualquier llamada externa.
func (s *Service) Submit(ctx context.Context, raw RawSubmission) (SubmitResult, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Submit")
	defer span.End()

	sub, err := Normalize(raw, s.now())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return SubmitResult{}, err
	}
	span.SetAttributes(
		attribute.String("lead.type", string(sub.Type)),
		attribute.String("lead.site", sub.Site),
	)

	draft, err := Encode(sub)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return SubmitResult{}, err
	}

	number, err := s.store.Create(ctx, draft)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn("ticket create failed", map[string]any{
			"type":  string(sub.Type),
			"site":  sub.Site,
			"error": err,
		})
		return SubmitResult{}, fmt.Errorf("create ticket: %w", err)
	}

	s.submissions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", string(sub.Type)),
		attribute.String("site", sub.Site),
	))
	s.log.Info("lead submitted", map[string]any{
		"number": number,
		"type":   string(sub.Type),
		"site":   sub.Site,
	})

	return SubmitResult{Number: number, Title: draft.Title}, nil
}

// Export lee la última página de tickets y la decodifica.
// Los tickets corruptos se decodifican con valores por defecto; nunca fallan el lote.
func (s *Service) Export(ctx context.Context) ([]LeadRecord, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Export")
	defer span.End()

	items, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn("ticket list failed", map[string]any{"error": err})
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	records := DecodeAll(items)
	span.SetAttributes(attribute.Int("lead.count", len(records)))
	s.exported.Add(ctx, int64(len(records)))
	return records, nil
}
