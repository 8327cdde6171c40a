package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nortetel/avaliacoes-backend/internal/config"
	"github.com/nortetel/avaliacoes-backend/internal/http/handlers"
	"github.com/nortetel/avaliacoes-backend/internal/middleware"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	resolver middleware.TokenResolver,
	authHandler *handlers.AuthHandler,
	usuarioHandler *handlers.UsuarioHandler,
	avaliacaoHandler *handlers.AvaliacaoHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth
	app.Post("/auth/login",
		middleware.RateLimitMiddleware(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow),
		authHandler.Login)

	logged := app.Group("/auth", middleware.AuthMiddleware(resolver, log))
	logged.Get("/me", authHandler.Me)
	logged.Post("/trocar-senha", authHandler.TrocarSenha)

	// Usuários (somente admin)
	usuarios := app.Group("/usuarios",
		middleware.AuthMiddleware(resolver, log), middleware.AdminMiddleware())
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Patch("/:id/status", usuarioHandler.SetStatus)
	usuarios.Post("/:id/resetar-senha", usuarioHandler.ResetSenha)
	usuarios.Get("/:id/auditoria", usuarioHandler.Auditoria)

	// Avaliações: token opcional, usado apenas para atribuir o ator da
	// auditoria. Sem token o ator é "sistema".
	optional := middleware.OptionalAuthMiddleware(resolver)

	avaliacoes := app.Group("/avaliacoes", optional)
	avaliacoes.Post("/", avaliacaoHandler.Create)
	avaliacoes.Get("/", avaliacaoHandler.List)
	avaliacoes.Get("/:id", avaliacaoHandler.Get)
	avaliacoes.Put("/:id", avaliacaoHandler.Update)
	avaliacoes.Get("/:id/auditoria", avaliacaoHandler.Auditoria)
	avaliacoes.Post("/:id/equipamentos", avaliacaoHandler.AddEquipamento)
	avaliacoes.Get("/:id/equipamentos", avaliacaoHandler.ListEquipamentos)
	avaliacoes.Post("/:id/outros_recursos", avaliacaoHandler.AddRecurso)
	avaliacoes.Get("/:id/outros_recursos", avaliacaoHandler.ListRecursos)

	app.Delete("/equipamentos/:id", optional, avaliacaoHandler.RemoveEquipamento)
	app.Delete("/outros_recursos/:id", optional, avaliacaoHandler.RemoveRecurso)
}
