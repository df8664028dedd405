package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "prism-careers/docs" // Swagger docs
	"prism-careers/internal/ai"
	"prism-careers/internal/api"
	"prism-careers/internal/config"
	"prism-careers/internal/mail"
	"prism-careers/internal/storage"
)

// @title Prism Career Guidance API
// @version 1.0
// @description AI-powered career guidance backend with assessments, mentor chat and roadmap tracking

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	cfg := config.LoadConfig()

	if cfg.MongoURI == "" {
		log.Fatal("set MONGODB_URI environment variable (e.g. mongodb://localhost:27017)")
	}

	log.Println("Connecting to database...")

	db, err := storage.NewDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("db open:", err)
	}
	defer db.Close()

	log.Println("Database connected successfully!")

	aiClient, err := ai.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("ai client:", err)
	}

	mailer := mail.NewMailer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	if !mailer.Configured() {
		log.Println("Warning: SMTP credentials not set, email notifications disabled")
	}

	apiSrv := api.NewAPI(db, aiClient, mailer, cfg.AdminEmail)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute, // Gemini generation can take a while on long assessments
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("API server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
