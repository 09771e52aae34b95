// @title                       Todo Backend API
// @version                     1.0
// @description                 Todo CRUD, numeric demo endpoints and JWT login over a demo user.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "todo_backend/docs"
	"todo_backend/internal/config"
	"todo_backend/internal/handlers"
	"todo_backend/internal/logger"
	"todo_backend/internal/metrics"
	"todo_backend/internal/repository"
	"todo_backend/internal/repository/db"
	"todo_backend/internal/server"
	"todo_backend/internal/service"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// load .env, configs/config.yml and environment
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get("info").Fatalw("invalid configuration", "err", err)
	}

	// init logger
	log := logger.Get(cfg.LogLevel)
	defer log.Sync()

	if cfg.JWT.UsingDevSecret {
		log.Warnw("JWT_SECRET_KEY is not set; using the insecure development secret. Never run like this outside development.",
			"environment", cfg.Environment)
	}

	// open DB
	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DBPath, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	m := metrics.New()
	hasher := service.NewBcryptHasher(bcrypt.DefaultCost)
	repos := repository.NewRepository(conn)

	users, err := credentialStore(cfg, repos, hasher, log)
	if err != nil {
		log.Fatalw("failed to prepare credential store", "store", cfg.Auth.Store, "err", err)
	}

	activity := service.NewActivityService(repos.Activity, log)
	auth, err := service.NewAuthService(users, hasher, service.AuthConfig{
		Secret:    cfg.JWT.Secret,
		Algorithm: cfg.JWT.Algorithm,
		TTL:       cfg.JWT.TokenTTL(),
	}, service.WithActivity(activity), service.WithMetrics(m))
	if err != nil {
		log.Fatalw("failed to init auth service", "err", err)
	}

	services := service.NewService(repos, auth, activity)
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithMetrics(m),
		handlers.WithCORSOrigins(cfg.CORSOrigins),
		handlers.WithProtectedTodos(cfg.Auth.ProtectTodos),
	)

	// start HTTP server
	srv := server.New(server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "environment", cfg.Environment,
		"auth_store", cfg.Auth.Store, "protect_todos", cfg.Auth.ProtectTodos)

	// graceful shutdown
	waitForShutdown(srv, cfg, log)
}

// credentialStore builds the user lookup selected by auth.store. The sqlite
// store gets the demo user seeded when it is missing.
func credentialStore(cfg *config.Config, repos *repository.Repository, hasher service.PasswordHasher, log *logger.Logger) (repository.CredentialStore, error) {
	if cfg.Auth.Store != config.StoreSQLite {
		return service.NewDemoUserStore(hasher)
	}
	created, err := service.SeedDemoUser(context.Background(), repos.Users, hasher)
	if err != nil {
		return nil, err
	}
	if created {
		log.Infow("demo user seeded", "username", service.DemoUsername, "db", cfg.DBPath)
	}
	return repos.Users, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
