package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golftracker/internal/handlers"
	"golftracker/internal/logger"
	"golftracker/internal/repository"
	"golftracker/internal/repository/db"
	"golftracker/internal/server"
	"golftracker/internal/service"

	"github.com/spf13/viper"
)

const defaultTokenTTLMinutes = 30

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, authConfig(log))
	apiHandler := handlers.NewHandler(services, log, handlers.Config{
		AllowedOrigins: allowedOrigins(),
	})

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // e.g. DB_PATH, AUTH_SIGNING_KEY override the file
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "golf_tracker.db")
		dbPath = "golf_tracker.db"
	}
	return db.InitDB(dbPath)
}

// authConfig assembles token signing settings from configuration.
func authConfig(log *logger.Logger) service.AuthConfig {
	key := viper.GetString("auth.signing_key")
	if key == "" {
		log.Fatalw("auth.signing_key must be set in config")
	}
	ttlMinutes := viper.GetInt("auth.token_ttl_minutes")
	if ttlMinutes <= 0 {
		ttlMinutes = defaultTokenTTLMinutes
	}
	return service.AuthConfig{
		SigningKey: key,
		TokenTTL:   time.Duration(ttlMinutes) * time.Minute,
	}
}

// allowedOrigins merges the configured CORS origins with the optional
// front-end URL override.
func allowedOrigins() []string {
	origins := viper.GetStringSlice("cors.allowed_origins")
	if fe := viper.GetString("frontend_url"); fe != "" {
		origins = append(origins, fe)
	}
	return origins
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8000"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
