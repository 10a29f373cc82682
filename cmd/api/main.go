package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	requestlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	applending "github.com/jhoicas/biblioteca-api/internal/application/lending"
	"github.com/jhoicas/biblioteca-api/internal/application/usecase"
	"github.com/jhoicas/biblioteca-api/internal/domain/repository"
	"github.com/jhoicas/biblioteca-api/internal/infrastructure/memory"
	"github.com/jhoicas/biblioteca-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biblioteca-api/internal/infrastructure/rabbit"
	"github.com/jhoicas/biblioteca-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/biblioteca-api/internal/interfaces/http"
	"github.com/jhoicas/biblioteca-api/pkg/config"
	"github.com/jhoicas/biblioteca-api/pkg/logger"
	jsoniter "github.com/json-iterator/go"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		bookRepo   repository.BookRepository
		memberRepo repository.MemberRepository
		loanRepo   repository.LoanRepository
		txRunner   applending.TxRunner
	)
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		bookRepo = postgres.NewBookRepository(pool)
		memberRepo = postgres.NewMemberRepository(pool)
		loanRepo = postgres.NewLoanRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
		log.Info().Msg("almacenamiento: PostgreSQL")
	} else {
		// Sin DATABASE_URL arrancamos con el almacén en memoria y el
		// catálogo de ejemplo, pensado para desarrollo local.
		store := memory.NewStore()
		bookRepo = store.Books()
		memberRepo = store.Members()
		loanRepo = store.Loans()
		txRunner = store
		if err := seed.Run(bookRepo, memberRepo); err != nil {
			log.Fatal().Err(err).Msg("cargar datos iniciales")
		}
		log.Info().Msg("almacenamiento: memoria (datos de ejemplo cargados)")
	}

	// Publicador de eventos opcional: solo si hay broker configurado.
	var events applending.EventPublisher
	if cfg.Rabbit.URL != "" {
		pub, err := rabbit.NewPublisher(cfg.Rabbit.URL, cfg.Rabbit.Exchange, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer pub.Close()
		events = pub
		log.Info().Str("exchange", cfg.Rabbit.Exchange).Msg("eventos habilitados")
	}

	bookUC := usecase.NewBookUseCase(bookRepo, loanRepo)
	memberUC := usecase.NewMemberUseCase(memberRepo, loanRepo)
	lendingUC := applending.NewLendingUseCase(txRunner, events)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
		JSONEncoder:  jsoniter.Marshal,
		JSONDecoder:  jsoniter.Unmarshal,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Log de peticiones HTTP: a archivo si LOG_PATH está definido.
	var accessLog io.Writer = os.Stdout
	if cfg.App.LogPath != "" {
		f, err := os.OpenFile(cfg.App.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.App.LogPath).Msg("abrir archivo de log")
		}
		defer f.Close()
		accessLog = f
	}
	app.Use(requestlog.New(requestlog.Config{Output: accessLog}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Biblioteca API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BookUC:    bookUC,
		MemberUC:  memberUC,
		LendingUC: lendingUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
