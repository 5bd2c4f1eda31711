package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mmynk/fintrack/internal/config"
	"github.com/mmynk/fintrack/internal/events"
	"github.com/mmynk/fintrack/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Connect API server. The server stops gracefully on SIGINT or
SIGTERM. Posted transactions are published to NATS when events.nats_url is set.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", store.Dialect())

	publisher, err := openPublisher(cfg)
	if err != nil {
		return err
	}
	defer publisher.Close()

	srv, err := server.New(cfg, store, publisher)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

func openPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.Events.NATSURL == "" {
		return events.Noop{}, nil
	}
	p, err := events.NewNATSPublisher(cfg.Events.NATSURL, cfg.Events.SubjectPrefix)
	if err != nil {
		return nil, err
	}
	slog.Info("Publishing events", "url", cfg.Events.NATSURL, "prefix", cfg.Events.SubjectPrefix)
	return p, nil
}
