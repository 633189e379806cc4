package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lastdrop/internal/backend"
	"lastdrop/internal/config"
	"lastdrop/internal/infrastructure/logger"
)

// app carries what every subcommand needs once the root command has loaded
// configuration.
type app struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lastdrop",
		Short: "LastDrop lead capture and retailer dashboard client",
		Long: `Client for the LastDrop clearance backend.

The backend origin comes from BACKEND_URL (default http://localhost:8000).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "optional config file (yaml, json or toml)")

	root.AddCommand(
		newLeadCmd(a),
		newRegisterCmd(a),
		newOrdersCmd(a),
		newDashboardCmd(a),
	)

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = zapLogger
	return nil
}

func (a *app) client() *backend.Client {
	httpClient := &http.Client{Timeout: a.cfg.Backend.Timeout}
	client := backend.NewClient(a.cfg.Backend.URL, httpClient, a.logger)
	a.logger.Debug("using backend", zap.String("url", client.BaseURL()))
	return client
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		stop()
		os.Exit(1)
	}
}
