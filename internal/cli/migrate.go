package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/outfit-advisor/internal/common"
	"github.com/joseph-ayodele/outfit-advisor/internal/repository"
)

func newMigrateCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var dsn, driver string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		Long: `Apply the schema to the database named by DB_DRIVER and DB_URL
(or the --driver and --dsn flags). Running it twice is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := common.LoadConfig()
			if err != nil {
				return err
			}
			if driver != "" {
				cfg.Database.Driver = driver
			}
			if dsn != "" {
				cfg.Database.DSN = dsn
			}

			log := logger(cmd)
			store, err := repository.Open(cmd.Context(), repository.Config{
				Driver:      cfg.Database.Driver,
				DSN:         cfg.Database.DSN,
				DialTimeout: cfg.Database.DialTimeout,
			}, log)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			if err := store.HealthCheck(cmd.Context(), 5*time.Second); err != nil {
				return fmt.Errorf("ping database: %w", err)
			}
			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrated %s database\n", store.Dialect())
			return err
		},
	}

	cmd.Flags().StringVar(&driver, "driver", "", "database driver (postgres, sqlite)")
	cmd.Flags().StringVar(&dsn, "dsn", "", "database connection string")
	return cmd
}
