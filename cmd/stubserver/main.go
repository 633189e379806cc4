package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lastdrop/internal/config"
	"lastdrop/internal/infrastructure/logger"
	"lastdrop/internal/server"
	"lastdrop/internal/stub"
)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "stubserver",
		Short:         "In-memory LastDrop backend for local development",
		Long:          "Serves the LastDrop leads, auth and orders API from memory on STUB_PORT (default 8000).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			defer zapLogger.Sync()

			router, _ := stub.NewModule(zapLogger)
			srv := server.New(cfg.Stub.Port, router, zapLogger)

			if err := srv.Run(cmd.Context()); err != nil {
				zapLogger.Error("server error", zap.Error(err))
				return err
			}

			zapLogger.Info("server stopped gracefully")
			return nil
		},
	}
	root.Flags().StringVar(&configFile, "config", "", "optional config file (yaml, json or toml)")

	return root
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
