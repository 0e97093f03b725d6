package router

import (
	"context"
	"fmt"

	"pet-insurance-leads/internal/adapters/storage/memory"
	pg "pet-insurance-leads/internal/adapters/storage/postgres"
	"pet-insurance-leads/internal/adapters/tickets/github"
	"pet-insurance-leads/internal/config"
	"pet-insurance-leads/internal/ports/tickets"
)

// OpenStore construye el store según cfg.Backend(). El close devuelto libera
// recursos (pool de Postgres); para los demás backends es no-op.
func OpenStore(ctx context.Context, cfg *config.Config) (tickets.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend() {
	case config.BackendGitHub:
		s, err := github.NewStore(github.Config{
			BaseURL:       cfg.GitHubBaseURL,
			Token:         cfg.GitHubToken,
			Repo:          cfg.GitHubRepo,
			APIVersion:    cfg.GitHubAPIVersion,
			CreateTimeout: cfg.CreateTimeout,
			ListTimeout:   cfg.ListTimeout,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("github store: %w", err)
		}
		return s, noop, nil

	case config.BackendPostgres:
		db, err := pg.Open(ctx, cfg.DBDSN)
		if err != nil {
			return nil, noop, fmt.Errorf("postgres store: %w", err)
		}
		return pg.NewTicketsRepo(db, cfg.CreateTimeout, cfg.ListTimeout), db.Close, nil

	default:
		return memory.NewTicketRepo(), noop, nil
	}
}
