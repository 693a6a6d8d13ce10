package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Infinityagi/chatkit-starter/internal/config"
	"github.com/Infinityagi/chatkit-starter/internal/handler"
	"github.com/Infinityagi/chatkit-starter/internal/model/widget"
	chatkitService "github.com/Infinityagi/chatkit-starter/internal/service/chatkit"
	"github.com/Infinityagi/chatkit-starter/internal/service/visitor"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Widget configuration: seeded defaults, optional YAML overlay.
	widgetCfg := widget.Seed()
	if cfg.ChatKit.WidgetConfigPath != "" {
		widgetCfg, err = widget.LoadFile(cfg.ChatKit.WidgetConfigPath)
		if err != nil {
			log.Fatalf("failed to load widget configuration: %v", err)
		}
		log.Printf("widget configuration loaded from %s", cfg.ChatKit.WidgetConfigPath)
	}
	widgetStore := widget.NewMemoryStore(widgetCfg)

	visitorSvc := visitor.NewService(cfg.Cookie)

	sessionSvc := chatkitService.NewService(cfg.ChatKit)
	if sessionSvc.Enabled() {
		log.Println("chatkit session minting enabled")
	} else {
		log.Println("OPENAI_API_KEY or CHATKIT_WORKFLOW_ID missing; session requests will fail until configured")
	}

	router := handler.NewRouter(version, sessionSvc, visitorSvc, widgetStore)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("ChatKit starter backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
