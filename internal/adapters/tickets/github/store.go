package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pet-insurance-leads/internal/platform/httpclient"
	"pet-insurance-leads/internal/ports/tickets"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultBaseURL       = "https://api.github.com"
	DefaultAPIVersion    = "2022-11-28"
	DefaultCreateTimeout = 8 * time.Second
	DefaultListTimeout   = 10 * time.Second
)

var ErrNotConfigured = errors.New("github store not configured")

// Config del store sobre GitHub Issues.
type Config struct {
	BaseURL    string
	Token      string
	Repo       string // owner/name
	APIVersion string

	CreateTimeout time.Duration
	ListTimeout   time.Duration
}

// Store implementa tickets.Store usando issues de un repo como registros.
// Sin reintentos: cada operación es una sola llamada acotada por timeout.
type Store struct {
	http          *httpclient.Client
	issuesPath    string
	createTimeout time.Duration
	listTimeout   time.Duration
	tracer        trace.Tracer
}

func NewStore(cfg Config) (*Store, error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(cfg.Repo), "/")
	if !ok || owner == "" || name == "" || strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrNotConfigured
	}

	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	version := strings.TrimSpace(cfg.APIVersion)
	if version == "" {
		version = DefaultAPIVersion
	}
	createTimeout := cfg.CreateTimeout
	if createTimeout <= 0 {
		createTimeout = DefaultCreateTimeout
	}
	listTimeout := cfg.ListTimeout
	if listTimeout <= 0 {
		listTimeout = DefaultListTimeout
	}

	hc, err := httpclient.NewWithBaseURL(base, 2*max(createTimeout, listTimeout))
	if err != nil {
		return nil, err
	}
	hc.Header.Set("Authorization", "Bearer "+strings.TrimSpace(cfg.Token))
	hc.Header.Set("Accept", "application/vnd.github+json")
	hc.Header.Set("X-GitHub-Api-Version", version)

	return &Store{
		http:          hc,
		issuesPath:    "/repos/" + url.PathEscape(owner) + "/" + url.PathEscape(name) + "/issues",
		createTimeout: createTimeout,
		listTimeout:   listTimeout,
		tracer:        otel.Tracer("pet-insurance-leads/internal/adapters/tickets/github"),
	}, nil
}

type createIssueRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

type issueLabel struct {
	Name string `json:"name"`
}

type issue struct {
	Number    int          `json:"number"`
	Title     string       `json:"title"`
	Body      *string      `json:"body"`
	Labels    []issueLabel `json:"labels"`
	CreatedAt time.Time    `json:"created_at"`
}

func (s *Store) Create(ctx context.Context, d tickets.Draft) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.createTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "github.issues.create")
	defer span.End()

	var out issue
	err := s.http.DoJSON(ctx, http.MethodPost, s.issuesPath, createIssueRequest{
		Title:  d.Title,
		Body:   d.Body,
		Labels: d.Labels,
	}, &out)
	if err != nil {
		return 0, s.fail(span, err)
	}

	span.SetAttributes(attribute.Int("github.issue.number", out.Number))
	return out.Number, nil
}

func (s *Store) List(ctx context.Context) ([]tickets.Ticket, error) {
	ctx, cancel := context.WithTimeout(ctx, s.listTimeout)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "github.issues.list")
	defer span.End()

	q := url.Values{}
	q.Set("state", "all")
	q.Set("per_page", strconv.Itoa(tickets.PageSize))
	q.Set("sort", "created")
	q.Set("direction", "desc")

	var out []issue
	if err := s.http.DoJSON(ctx, http.MethodGet, s.issuesPath+"?"+q.Encode(), nil, &out); err != nil {
		return nil, s.fail(span, err)
	}

	items := make([]tickets.Ticket, 0, len(out))
	for _, it := range out {
		items = append(items, toTicket(it))
	}
	span.SetAttributes(attribute.Int("github.issue.count", len(items)))
	return items, nil
}

func toTicket(it issue) tickets.Ticket {
	t := tickets.Ticket{
		Number:    it.Number,
		Title:     it.Title,
		Labels:    make([]string, 0, len(it.Labels)),
		CreatedAt: it.CreatedAt,
	}
	if it.Body != nil {
		t.Body = *it.Body
	}
	for _, l := range it.Labels {
		t.Labels = append(t.Labels, l.Name)
	}
	return t
}

// fail traduce errores del cliente HTTP al contrato de tickets.Store.
func (s *Store) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var he *httpclient.HTTPError
	switch {
	case errors.As(err, &he):
		span.SetAttributes(attribute.Int("http.response.status_code", he.StatusCode))
		return &tickets.StatusError{StatusCode: he.StatusCode, Detail: he.Body}
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", tickets.ErrTimeout, err)
	default:
		return fmt.Errorf("%w: %v", tickets.ErrUpstream, err)
	}
}
