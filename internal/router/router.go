package router

import (
	"net/http"

	_ "pet-insurance-leads/docs"
	"pet-insurance-leads/internal/adapters/storage/memory"
	"pet-insurance-leads/internal/domain/leads"
	"pet-insurance-leads/internal/middleware"
	"pet-insurance-leads/internal/platform/logger"
	"pet-insurance-leads/internal/ports/auth"
	"pet-insurance-leads/internal/ports/tickets"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Store de tickets. Si es nil se usa el store en memoria (modo dev).
	Store tickets.Store

	// AdminVerifier protege el export. nil = export siempre 401.
	AdminVerifier auth.AuthVerifier

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	store := opts.Store
	if store == nil {
		store = memory.NewTicketRepo()
	}

	leadsSvc := leads.NewService(store, log)
	leads.RegisterRoutes(r, leadsSvc, middleware.RequireAdmin(opts.AdminVerifier))

	return r
}
