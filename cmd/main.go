package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"direct-ads/internal/adapter/direct"
	"direct-ads/internal/adapter/postgres"
	"direct-ads/internal/adapter/usecase"
	"direct-ads/internal/config"
	"direct-ads/internal/db"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

// rootCmd loads configuration from the environment before any subcommand
// runs. Logs go to stderr so command output on stdout stays parseable.
var rootCmd = &cobra.Command{
	Use:           "direct-ads",
	Short:         "Orchestrate ad campaigns of a Yandex.Direct account",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger = cfg.Log.New(os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(
		serveCmd,
		migrateCmd,
		campaignsCmd,
		chooseCmd,
		domainCmd,
		balanceCmd,
		expensesCmd,
		oauthTokenCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app holds the wired components shared by the commands.
type app struct {
	pool *pgxpool.Pool
	svc  *usecase.Service
}

func (a *app) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// openApp is swapped in tests.
var openApp = newApp

// newApp connects to PostgreSQL, applies migrations when configured and
// wires the use-case service over the Direct client. reg may be nil.
func newApp(ctx context.Context, reg prometheus.Registerer) (*app, error) {
	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Uint64("from_version", uint64(from)))
	}

	loc, err := cfg.Billing.Location()
	if err != nil {
		return nil, fmt.Errorf("billing timezone: %w", err)
	}

	client, err := direct.NewClient(cfg.Direct, direct.Options{
		Logger:  logger,
		Metrics: direct.NewMetrics(reg),
	})
	if err != nil {
		return nil, err
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}

	svc := usecase.NewService(client, postgres.NewCampaignMetaRepository(pool), usecase.Settings{
		Policy:      cfg.Billing.Policy(),
		Location:    loc,
		MethodLimit: cfg.Billing.MethodLimit,
	}, logger)
	return &app{pool: pool, svc: svc}, nil
}

// withApp runs fn with a wired app. No deadline is put on the whole
// command: a multi-step operation runs to completion and only single round
// trips are bounded by DIRECT_TIMEOUT.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, nil)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
