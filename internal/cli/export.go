package cli

import (
	"fmt"
	"os"
	"strings"

	"pet-insurance-leads/internal/domain/leads"

	"github.com/spf13/cobra"
)

func newExportCommand(opts Options) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exporta los últimos 100 leads como JSON o CSV",
		Long: `Export lee la última página de tickets del backend configurado
(TICKET_BACKEND), los decodifica y los escribe en stdout o en --out.
Con --out=auto el archivo se llama leads-YYYY-MM-DD.<format>.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "json" && format != "csv" {
				return fmt.Errorf("unknown format %q (json|csv)", format)
			}

			cfg, err := opts.LoadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := opts.OpenStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeStore() }()

			records, err := leads.NewService(store, opts.Logger).Export(cmd.Context())
			if err != nil {
				return err
			}

			var payload []byte
			if format == "csv" {
				payload = leads.RenderCSV(records)
			} else {
				payload, err = leads.RenderJSON(records)
				if err != nil {
					return err
				}
				payload = append(payload, '\n')
			}

			w := cmd.OutOrStdout()
			if out != "" {
				if out == "auto" {
					out = strings.TrimSuffix(leads.ExportFilename(opts.Now()), ".csv") + "." + format
				}
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if _, err := w.Write(payload); err != nil {
				return err
			}
			if out != "" {
				cmd.PrintErrf("wrote %d records to %s\n", len(records), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "json o csv")
	cmd.Flags().StringVarP(&out, "out", "o", "", "archivo de salida (auto = leads-YYYY-MM-DD.<format>)")
	return cmd
}
