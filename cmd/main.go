package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "kitaplik/docs"
	"kitaplik/internal/handlers"
	"kitaplik/internal/logger"
	"kitaplik/internal/repository"
	"kitaplik/internal/repository/db"
	"kitaplik/internal/serpapi"
	"kitaplik/internal/server"
	"kitaplik/internal/service"

	"github.com/spf13/viper"
)

// @title        Kitaplık API
// @version      1.0
// @description  Personal search, Q&A and saved-notes web app.
// @BasePath     /
func main() {
	// load config.yml first so the log level is honored
	configErr := loadConfig()

	log := logger.Get(viper.GetString("log.level"))
	if configErr != nil {
		log.Fatalw("error reading config", "err", configErr)
	}

	// secrets come from the environment, never from source
	signingKey := viper.GetString("session.signing_key")
	if signingKey == "" {
		log.Fatalw("session signing key missing; set SESSION_SIGNING_KEY")
	}
	serpKey := viper.GetString("serpapi.key")
	if serpKey == "" {
		log.Warnw("serpapi key not set; /ask will only return degraded answers")
	}

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	provider := serpapi.NewClient(
		viper.GetString("serpapi.base_url"),
		serpKey,
		viper.GetDuration("serpapi.timeout"),
	)
	services := service.NewService(repos, []byte(signingKey), provider, log)
	webHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), webHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("serpapi.base_url", serpapi.DefaultBaseURL)
	viper.SetDefault("serpapi.timeout", serpapi.DefaultTimeout)

	_ = viper.BindEnv("session.signing_key", "SESSION_SIGNING_KEY")
	_ = viper.BindEnv("serpapi.key", "SERPAPI_KEY")

	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "kitaplik.db")
		dbPath = "kitaplik.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
