package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/latestcomment/interview-cards/internal/config"
	"github.com/latestcomment/interview-cards/internal/handlers"
	"github.com/latestcomment/interview-cards/internal/models"
	"github.com/latestcomment/interview-cards/internal/presenter"
	"github.com/latestcomment/interview-cards/internal/services"
	"github.com/latestcomment/interview-cards/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	addr       string
	seed       bool
)

var rootCmd = &cobra.Command{
	Use:   "interview-cards",
	Short: "Interview practice dashboard",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page, interview cards and card API",
	RunE:  serve,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config/cards.yaml", "path to the YAML config")
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().BoolVar(&seed, "seed", false, "load a demo user with sample interviews")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	log, err := cfg.Log.Build()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	hub := services.NewCardHub(models.NewFeedManager(), log)
	interviews := services.NewInterviewService(models.NewCatalogue(), presenter.New(cfg.ScoreTiers, cfg.Cards.TechStackLimit), hub, log)
	users := services.NewUserService()

	if seed {
		if err := seedDemo(interviews, users, log); err != nil {
			return err
		}
	}

	engine, err := web.Engine(cfg.Server.TemplatesDir)
	if err != nil {
		return err
	}
	app := fiber.New(fiber.Config{
		Views:        engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: handlers.ErrorHandler(log),
	})
	app.Use(logger.New())

	handlers.Register(app,
		handlers.NewHandler(interviews, users, cfg, log),
		handlers.NewWebSocketHandler(interviews, hub, log))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.ShutdownWithTimeout(5 * time.Second)
	}()

	log.Info("interview cards server running", zap.String("addr", cfg.Server.Addr))
	return app.Listen(cfg.Server.Addr)
}
