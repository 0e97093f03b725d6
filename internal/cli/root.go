// Package cli implementa leadctl: export y migraciones desde la línea de comandos.
package cli

import (
	"context"
	"time"

	pg "pet-insurance-leads/internal/adapters/storage/postgres"
	"pet-insurance-leads/internal/config"
	"pet-insurance-leads/internal/platform/logger"
	"pet-insurance-leads/internal/ports/tickets"
	"pet-insurance-leads/internal/router"

	"github.com/spf13/cobra"
)

// Options permite inyectar dependencias en tests. Los campos nil usan las reales.
type Options struct {
	Version    string
	LoadConfig func() (*config.Config, error)
	OpenStore  func(ctx context.Context, cfg *config.Config) (tickets.Store, func() error, error)
	Migrate    func(dsn, direction string) error
	Logger     logger.Logger
	Now        func() time.Time
}

func (o *Options) defaults() {
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	if o.OpenStore == nil {
		o.OpenStore = router.OpenStore
	}
	if o.Migrate == nil {
		o.Migrate = pg.Migrate
	}
	if o.Logger == nil {
		o.Logger = logger.NewFromEnv()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

func NewRootCommand(opts Options) *cobra.Command {
	opts.defaults()

	root := &cobra.Command{
		Use:           "leadctl",
		Short:         "Herramientas de administración para los leads de seguros de mascotas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newExportCommand(opts),
		newMigrateCommand(opts),
		newVersionCommand(opts),
	)
	return root
}

func newVersionCommand(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Println(opts.Version)
			return nil
		},
	}
}
