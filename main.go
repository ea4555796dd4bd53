package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/redsand-dev/real_estate_api/backend/config"
	"github.com/redsand-dev/real_estate_api/backend/routes"
	"github.com/redsand-dev/real_estate_api/backend/store"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
}

func setupRouter(props store.PropertyStore, inqs store.InquiryStore) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, props, inqs)
	return router
}

func main() {
	config.SetupLogger()
	loadEnv()

	settings, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	client, err := config.ConnectDB(settings.MongoURL)
	if err != nil {
		slog.Error("failed to connect to the database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			slog.Error("error closing MongoDB connection", "error", err)
			return
		}
		slog.Info("MongoDB connection closed")
	}()
	slog.Info("connected to MongoDB", "database", settings.DBName)

	db := client.Database(settings.DBName)
	props := store.NewPropertyStore(db)
	inqs := store.NewInquiryStore(db)

	router := setupRouter(props, inqs)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   settings.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + settings.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		slog.Info("server running", "port", settings.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("error starting server", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("error during server shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server gracefully stopped")
}
