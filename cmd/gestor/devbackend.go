package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Gestor-Tareas/internal/devbackend"
)

func newDevBackendCmd() *cobra.Command {
	var skipSamples bool
	cmd := &cobra.Command{
		Use:   "devbackend",
		Short: "Inicia el backend REST en memoria para desarrollo",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			log = log.Named("devbackend")

			srv, err := devbackend.New(devbackend.Config{
				JWTSecret:     cfg.DevBackend.JWTSecret,
				JWTExpiration: cfg.DevBackend.JWTExpiration,
				AdminEmail:    cfg.DevBackend.AdminEmail,
				AdminPassword: cfg.DevBackend.AdminPassword,
				SkipSamples:   skipSamples,
			}, log)
			if err != nil {
				return err
			}
			app := srv.App()

			log.Info().
				Str("addr", cfg.DevBackend.Addr()).
				Str("admin", cfg.DevBackend.AdminEmail).
				Msg("backend de desarrollo listo")
			return listenUntilSignal(app, cfg.DevBackend.Addr(), log)
		},
	}
	cmd.Flags().BoolVar(&skipSamples, "sin-ejemplos", false, "no sembrar las tareas de ejemplo")
	return cmd
}
