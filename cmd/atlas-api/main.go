// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"atlas/internal/ai"
	"atlas/internal/chat"
	"atlas/internal/config"
	httptransport "atlas/internal/http"
	"atlas/internal/infra"
	"atlas/internal/intel"
	"atlas/internal/modules/conversation"
	"atlas/internal/modules/session"
	"atlas/internal/places"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		logger.Fatal("ATLAS_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Fatal("firebase init", zap.Error(err))
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	lex, err := intel.LoadLexicon(cfg.Intel.LexiconFile)
	if err != nil {
		logger.Warn("lexicon override not loaded, using defaults", zap.Error(err))
	}

	// The model is optional: without a key everything runs on the
	// deterministic heuristics.
	var completer ai.Completer
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiCompleter(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Fatal("gemini init", zap.Error(err))
		}
		defer gemini.Close()
		completer = gemini
	}

	engine := intel.NewEngine(lex, completer, cfg.Intel.LLMTimeout, logger)
	guard := intel.NewFocusGuard(lex, completer, cfg.Intel.LLMTimeout, logger)

	titler := conversation.NewTitler(completer, cfg.Intel.LLMTimeout, logger)
	conversationSvc := conversation.NewService(conversation.NewStore(dbPool), titler)

	sessionSvc := session.NewService(session.NewStore(redisClient, cfg.Redis.SessionTTL), logger)

	placesSvc, err := places.NewService(cfg.AI.MapsKey, logger)
	if err != nil {
		logger.Fatal("places init", zap.Error(err))
	}

	chatSvc := chat.NewService(conversationSvc, sessionSvc, engine, guard, completer, placesSvc, logger)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Chat:          chatSvc,
		Conversations: conversationSvc,
		Sessions:      sessionSvc,
		Engine:        engine,
		Places:        placesSvc,
		Verifier:      verifier,
		Log:           logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server", zap.Error(err))
	}
}
