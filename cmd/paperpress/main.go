package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/paperpress/paperpress-server/internal/api/http"
	"github.com/paperpress/paperpress-server/internal/bank"
	"github.com/paperpress/paperpress-server/internal/config"
	"github.com/paperpress/paperpress-server/internal/db"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := bank.NewSQLStore(dbh)

	if cfg.BankSeedPath != "" {
		n, err := bank.SeedFromFile(ctx, store, cfg.BankSeedPath)
		if err != nil {
			log.Fatalf("bank seed: %v", err)
		}
		log.Printf("bank seeded: %d questions from %s", n, cfg.BankSeedPath)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// The paper endpoints manage CORS by hand: the docx contract reflects a
	// fallback origin for unmatched requests, which the generic middleware
	// cannot express.
	r.Post("/preview-paper", api.PreviewPaperHandler())
	r.Get("/preview-paper", api.MethodNotAllowed())
	r.Post("/generate-docx", api.GenerateDocxHandler(cfg.AllowedOrigins))
	r.Options("/generate-docx", api.DocxPreflightHandler(cfg.AllowedOrigins))

	r.Group(func(gr chi.Router) {
		gr.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         86400,
		}))
		gr.Get("/questions", api.ListQuestionsHandler(store))
		gr.Post("/questions/bulk", api.BulkUpsertQuestionsHandler(store))
		gr.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	})

	log.Printf("paperpress listening on %s", cfg.HTTPAddr)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
