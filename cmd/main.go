package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/ai"
	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/config"
	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/leads"
	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/internal/whatsapp"
	"github.com/DIMECULTIVA/nsm-whatsapp-Bot/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	ctx := context.Background()

	// --- Model client ---
	var model ai.ModelClient
	switch cfg.ModelProvider {
	case "openai":
		client, err := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			logger.Error("failed to create openai client", "error", err)
			os.Exit(1)
		}
		model = client
	default:
		client, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		client.LogAvailableModels(ctx, logger)
		model = client
	}

	// --- Lead sinks ---
	sinks := make([]leads.Sink, 0, 2)

	sheetsSink, err := leads.NewSheetsSink(ctx, cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SheetRange)
	if err != nil {
		// Persistence stays disabled for the process lifetime; replies still flow.
		logger.Warn("lead store unavailable, persistence disabled", "error", err)
	} else {
		sinks = append(sinks, sheetsSink)
	}

	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Warn("lead archive unavailable", "error", err)
		} else {
			defer db.Close()
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			if err := db.PingContext(pingCtx); err != nil {
				logger.Warn("lead archive unreachable", "error", err)
			} else {
				sinks = append(sinks, leads.NewPostgresSink(db))
			}
			cancel()
		}
	}

	var sink leads.Sink = leads.NopSink{}
	if len(sinks) > 0 {
		sink = leads.NewMultiSink(logger.Named("leads"), sinks...)
	}

	// --- WhatsApp module wiring ---
	store := whatsapp.NewSessionStore(whatsapp.DefaultSessionCapacity)
	gateway := whatsapp.NewGateway(model, logger.Named("gateway"))
	svc := whatsapp.NewService(store, gateway, sink, logger.Named("whatsapp"))
	handler := whatsapp.NewHandler(svc, logger.Named("webhook"))

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	whatsapp.RegisterRoutes(r, handler)

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	logger.Info("listening", "port", cfg.Port, "provider", cfg.ModelProvider)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
