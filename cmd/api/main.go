package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/config"
	"github.com/nortetel/avaliacoes-backend/internal/db"
	apphttp "github.com/nortetel/avaliacoes-backend/internal/http"
	"github.com/nortetel/avaliacoes-backend/internal/http/dto"
	"github.com/nortetel/avaliacoes-backend/internal/http/handlers"
	"github.com/nortetel/avaliacoes-backend/internal/repositories"
	"github.com/nortetel/avaliacoes-backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	usuarioRepo := repositories.NewUsuarioRepo(pool)
	avaliacaoRepo := repositories.NewAvaliacaoRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Services
	authService := services.NewAuthService(usuarioRepo, services.AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		JWTExpiration: cfg.JWTExpiration,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		AdminNome:     cfg.AdminNome,
		AdminEmail:    cfg.AdminEmail,
	}, log)
	usuarioService := services.NewUsuarioService(usuarioRepo, auditRepo, log)
	avaliacaoService := services.NewAvaliacaoService(avaliacaoRepo, auditRepo, log)

	// Bootstrap do admin inicial
	if err := authService.EnsureAdmin(ctx); err != nil {
		log.Fatal("failed to ensure admin user", zap.Error(err))
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	usuarioHandler := handlers.NewUsuarioHandler(usuarioService, log)
	avaliacaoHandler := handlers.NewAvaliacaoHandler(avaliacaoService, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Detail: err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authService, authHandler, usuarioHandler, avaliacaoHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
