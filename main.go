package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/summitinspect/leadgate/internal/config"
	"github.com/summitinspect/leadgate/internal/gelf"
	"github.com/summitinspect/leadgate/internal/generate"
	"github.com/summitinspect/leadgate/internal/handler"
	"github.com/summitinspect/leadgate/internal/mailer"
	"github.com/summitinspect/leadgate/internal/router"
	"github.com/summitinspect/leadgate/internal/service"
	"github.com/summitinspect/leadgate/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	// Adapters are constructed only when configured; the flow service's
	// configuration guard keeps unconfigured (nil) adapters unreachable.
	var recordStore service.RecordStore
	if err := cfg.StoreReady(); err != nil {
		log.Printf("Warning: %v — persisting flows will report a configuration error", err)
	} else {
		fs, err := store.NewFirestore(ctx, cfg.FirebaseProjectID, cfg.FirebaseClientEmail, cfg.FirebasePrivateKey)
		if err != nil {
			log.Fatalf("Failed to connect to lead store: %v", err)
		}
		defer fs.Close()
		recordStore = fs
		log.Printf("Lead store: connected (project %s)", cfg.FirebaseProjectID)
	}

	var gen service.Generator
	if err := cfg.GeneratorReady(); err != nil {
		log.Printf("Warning: %v — generating flows will report a configuration error", err)
	} else {
		g, err := generate.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create generation client: %v", err)
		}
		defer g.Close()
		gen = g
		log.Printf("Generator: ready (model %s)", cfg.GeminiModel)
	}

	var mail mailer.Sender
	if err := cfg.MailerReady(); err != nil {
		log.Printf("Warning: %v — notifications will be skipped or degraded", err)
	} else {
		mail = mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		log.Printf("Mailer: ready (%s:%d)", cfg.SMTPHost, cfg.SMTPPort)
	}

	// Services
	flowSvc := service.NewFlowService(cfg, recordStore, gen, mail)

	// Handlers
	flowH := handler.NewFlowHandler(flowSvc)
	healthH := handler.NewHealthHandler(cfg)

	// Router
	r := router.New(flowH, healthH)

	log.Printf("leadgate server starting on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
