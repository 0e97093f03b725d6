package cli

import (
	"errors"

	"pet-insurance-leads/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCommand(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Aplica las migraciones del backend Postgres",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.Backend() != config.BackendPostgres {
				return errors.New("migrate requires the postgres backend (DB_DSN or TICKET_BACKEND=postgres)")
			}
			if err := opts.Migrate(cfg.DBDSN, args[0]); err != nil {
				return err
			}
			cmd.Printf("migrations %s: ok\n", args[0])
			return nil
		},
	}
}
