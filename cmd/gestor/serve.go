package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Gestor-Tareas/internal/application/session"
	"github.com/jhoicas/Gestor-Tareas/internal/application/usecase"
	"github.com/jhoicas/Gestor-Tareas/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/Gestor-Tareas/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestor-Tareas/internal/infrastructure/postgres"
	"github.com/jhoicas/Gestor-Tareas/internal/infrastructure/sessionstore"
	httpRouter "github.com/jhoicas/Gestor-Tareas/internal/interfaces/http"
	"github.com/jhoicas/Gestor-Tareas/pkg/config"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

const (
	swaggerFile   = "./docs/swagger.json"
	purgeInterval = 15 * time.Minute
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia el BFF web",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			return runServe(cmd.Context(), cfg, log)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api_url", cfg.Backend.BaseURL).
		Str("session_driver", cfg.Session.Driver).
		Msg("iniciando aplicación")

	client := backend.NewClient(cfg.Backend, log)

	persistence, closeStore, err := buildPersistence(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	sessions := session.NewManager(persistence, client, log.Named("session"))
	dashboardUC := usecase.NewDashboardUseCase(client, log)
	adminTasksUC := usecase.NewAdminTasksUseCase(client, client, infrapdf.NewTaskReport(cfg.App.Name), log)
	adminUsersUC := usecase.NewAdminUsersUseCase(client, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Gestor de Tareas",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("sin especificación swagger, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:      sessions,
		Dashboard:     dashboardUC,
		AdminTasks:    adminTasksUC,
		AdminUsers:    adminUsersUC,
		SecureCookies: cfg.Session.Secure,
	})

	return listenUntilSignal(app, cfg.HTTP.Addr(), log)
}

// buildPersistence crea el driver de sesión configurado. El cierre devuelto
// libera conexiones y detiene la purga periódica.
func buildPersistence(ctx context.Context, cfg *config.Config, log *logger.Logger) (session.Persistence, func(), error) {
	codec, err := sessionstore.NewCodec(cfg.Session, log)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Session.Driver {
	case config.SessionDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("conexión a Redis %s: %w", cfg.Redis.Addr, err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sesiones en Redis")
		store := sessionstore.NewRedisStore(rdb, codec, cfg.Session.CookieName, cfg.Session.TTL())
		return store, func() { _ = rdb.Close() }, nil

	case config.SessionDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store := sessionstore.NewPostgresStore(pool, codec, cfg.Session.CookieName, cfg.Session.TTL())
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("sesiones en PostgreSQL")
		purgeCtx, stop := context.WithCancel(ctx)
		go purgeExpired(purgeCtx, store, log)
		return store, func() {
			stop()
			pool.Close()
		}, nil
	}

	return sessionstore.NewCookieStore(codec, cfg.Session.CookieName), func() {}, nil
}

func purgeExpired(ctx context.Context, store *sessionstore.PostgresStore, log *logger.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.PurgeExpired(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("purga de sesiones expiradas")
				continue
			}
			if n > 0 {
				log.Debug().Int64("sesiones", n).Msg("sesiones expiradas eliminadas")
			}
		}
	}
}
