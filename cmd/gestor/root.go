package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Gestor-Tareas/pkg/config"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gestor",
		Short:        "Gestor de tareas: BFF web y backend de desarrollo",
		SilenceUsage: true,
	}
	cmd.AddCommand(newServeCmd(), newDevBackendCmd())
	return cmd
}

// bootstrap carga la configuración y construye el logger raíz.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	return cfg, log, nil
}

// listenUntilSignal atiende en addr hasta SIGINT/SIGTERM y apaga con timeout.
func listenUntilSignal(app *fiber.App, addr string, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
		return err
	}
	log.Info().Msg("servidor detenido")
	return nil
}
