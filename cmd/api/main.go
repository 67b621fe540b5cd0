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

	"github.com/konantech/hr-assistant/backend/internal/config"
	"github.com/konantech/hr-assistant/backend/internal/handler"
	"github.com/konantech/hr-assistant/backend/internal/model/policy"
	"github.com/konantech/hr-assistant/backend/internal/service/assistant"
	chatservice "github.com/konantech/hr-assistant/backend/internal/service/chat"
	"github.com/konantech/hr-assistant/backend/internal/service/conversation"
	"github.com/konantech/hr-assistant/backend/internal/store/moodlog"
)

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

	policyDoc, err := policy.LoadFile(cfg.Policy.Path)
	if err != nil {
		log.Printf("warning: failed to load HR policy from %s: %v", cfg.Policy.Path, err)
		log.Println("continuing with the built-in policy document")
		policyDoc = policy.Default()
	}

	chatSvc := chatservice.NewService()
	moodStore := moodlog.NewStore(cfg.MoodLog.Path)

	// The gateway is optional: a missing credential disables freeform
	// answers but leaves the rest of the assistant usable.
	var gateway assistant.Gateway
	if cfg.LLM.Enabled() {
		gateway, err = newGateway(ctx, cfg.LLM)
		if err != nil {
			log.Printf("warning: failed to initialize assistant gateway: %v", err)
			log.Println("continuing without the completion service - check LLM credentials")
			gateway = nil
		} else {
			log.Printf("assistant gateway initialized (provider=%s, model=%s)", cfg.LLM.Provider, cfg.LLM.Model)
		}
	} else {
		log.Println("completion service credentials not configured, freeform answers disabled")
	}

	convSvc := conversation.NewService(
		chatSvc,
		moodStore,
		gateway,
		policyDoc,
		time.Duration(cfg.LLM.TimeoutSeconds)*time.Second,
	)

	router := handler.NewRouter(convSvc, chatSvc, moodStore, policyDoc, cfg.Resume.MaxChars)

	startServer(ctx, cfg.Server, router)
}

func newGateway(ctx context.Context, cfg config.LLMConfig) (assistant.Gateway, error) {
	if cfg.Provider == config.ProviderArk {
		return assistant.NewArkGateway(ctx, cfg)
	}
	return assistant.NewDeepSeekGateway(cfg)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("HR assistant backend listening on %s", addr)
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
