package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"fazzer/go_backend/internal/app/config"
	apphttp "fazzer/go_backend/internal/app/http"
	"fazzer/go_backend/internal/app/http/handlers"
	"fazzer/go_backend/internal/domain/quote"
	pdfgen "fazzer/go_backend/internal/domain/quote/pdf/gofpdf"
	"fazzer/go_backend/internal/infra/db/postgres"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := postgres.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	quotes := quote.NewService(postgres.NewQuoteStore(db))
	h := handlers.New(quotes, pdfgen.New(), loadLogo(cfg.LogoPath))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}

// loadLogo reads the header logo once at boot. Documents render fine without
// one, so a missing file is only logged.
func loadLogo(path string) []byte {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("logo: load failed path=%s: %v", path, err)
		return nil
	}
	return data
}
