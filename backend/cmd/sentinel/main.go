package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/havenbridge/crisis-sentinel/backend/internal/analyzer"
	"github.com/havenbridge/crisis-sentinel/backend/internal/assessor"
	"github.com/havenbridge/crisis-sentinel/backend/internal/audit"
	"github.com/havenbridge/crisis-sentinel/backend/internal/config"
	"github.com/havenbridge/crisis-sentinel/backend/internal/history"
	"github.com/havenbridge/crisis-sentinel/backend/internal/lexicon"
	"github.com/havenbridge/crisis-sentinel/backend/internal/metrics"
	"github.com/havenbridge/crisis-sentinel/backend/internal/resources"
	"github.com/havenbridge/crisis-sentinel/backend/internal/responder"
	"github.com/havenbridge/crisis-sentinel/backend/internal/server"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger
	logger := log.New(os.Stdout, "[sentinel] ", log.LstdFlags|log.Lshortfile)

	// Load configuration
	cfg := config.Load()
	logger.Println("Configuration loaded")

	// Load the lexicon. A broken lexicon is fatal: the assessor must never
	// run on guessed tables.
	lex, err := lexicon.NewLoader(cfg.Lexicon.Directory, logger).Load()
	if err != nil {
		logger.Fatalf("Failed to load lexicon: %v", err)
	}

	// Compile the pipeline components once, outside the hot path.
	matcher, err := analyzer.NewMatcher(lex)
	if err != nil {
		logger.Fatalf("Failed to compile keyword matcher: %v", err)
	}
	negator := analyzer.NewNegationResolver(lex, cfg.Assessor.NegationWindow)
	modifiers, err := analyzer.NewModifierDetector(lex)
	if err != nil {
		logger.Fatalf("Failed to compile modifier detector: %v", err)
	}
	emotion, err := analyzer.NewEmotionClassifier(lex)
	if err != nil {
		logger.Fatalf("Failed to compile emotion classifier: %v", err)
	}

	directory, err := resources.Load(cfg.Lexicon.ResourcePath)
	if err != nil {
		logger.Fatalf("Failed to load crisis-resource directory: %v", err)
	}

	auditLog, err := audit.NewLogger(cfg.Logging.AuditPath)
	if err != nil {
		logger.Fatalf("Failed to open audit log: %v", err)
	}
	defer auditLog.Close()

	riskAssessor := assessor.New(matcher, negator, modifiers, assessor.Config{
		TrendWindow:     cfg.Assessor.TrendWindow,
		MaxMessageBytes: cfg.Assessor.MaxMessageBytes,
	}, logger)

	handlerConfig := &server.HandlerConfig{
		Config:    cfg,
		Emotion:   emotion,
		History:   history.NewMemoryStore(),
		Assessor:  riskAssessor,
		Responder: responder.New(directory, cfg.Assessor.PreferVeteranResources),
		Directory: directory,
		Audit:     auditLog,
		Logger:    logger,
	}

	// Setup routes
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"crisis-sentinel"}`))
	})

	http.HandleFunc("/api/assess", server.AssessHandler(handlerConfig))
	http.HandleFunc("/api/emotion", server.EmotionHandler(handlerConfig))
	http.HandleFunc("/api/resources", server.ResourcesHandler(handlerConfig))
	http.HandleFunc("/api/session/summary", server.SessionSummaryHandler(handlerConfig))

	http.HandleFunc("/api/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		status := fmt.Sprintf(`{
			"status": "ok",
			"lexicon_version": "%s",
			"categories": %d
		}`, lex.Version, len(lex.Categories))
		w.Write([]byte(status))
	})

	if cfg.Metrics.Enabled {
		metrics.Init()
		http.Handle("/metrics", promhttp.Handler())
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Println("=================================")
	logger.Println("Crisis Sentinel Starting")
	logger.Println("=================================")
	logger.Printf("Server:  http://%s", addr)
	logger.Printf("Lexicon: version %s, %d categories, %d modifier families",
		lex.Version, len(lex.Categories), len(lex.Modifiers))
	logger.Println("=================================")

	srv := &http.Server{
		Addr:         addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
