package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/blogem/social-auth/authenticator"
	"github.com/blogem/social-auth/config"
	"github.com/blogem/social-auth/controllers"
	"github.com/blogem/social-auth/database"
	"github.com/blogem/social-auth/keys"
	authmiddleware "github.com/blogem/social-auth/middleware"
	"github.com/blogem/social-auth/refreshcookie"
	"github.com/blogem/social-auth/repositories"
	"github.com/blogem/social-auth/services"
	"github.com/blogem/social-auth/websession"
)

// application wires the components of a running service
type application struct {
	cfg         *config.Config
	db          *sql.DB
	logger      logrus.FieldLogger
	repos       *repositories.Repositories
	services    *services.Services
	controllers *controllers.Controllers
	sessions    func(http.Handler) http.Handler
}

// newApplication opens the database and discovers the Google issuer
func newApplication(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (*application, error) {
	provider, err := authenticator.NewGoogleProvider(ctx, authenticator.Config{
		IssuerURL:    cfg.Google.Issuer,
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.CallbackURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google provider: %w", err)
	}

	db, err := database.InitializeDatabase(cfg.DatabasePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app, err := assembleApplication(cfg, db, provider, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}

// assembleApplication builds repositories, services and controllers on an open database
func assembleApplication(cfg *config.Config, db *sql.DB, provider authenticator.Provider, logger logrus.FieldLogger) (*application, error) {
	keyGenerator, err := keys.NewKeyGenerator(cfg.SecretKey)
	if err != nil {
		return nil, err
	}
	tokenCfg, err := tokenServiceConfig(cfg)
	if err != nil {
		return nil, err
	}

	sessions, err := websession.Sessioner(cfg.Session, cfg.UseHTTPS)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sessions: %w", err)
	}

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// Initialize services
	srvs := services.NewServices(repos, provider, tokenCfg, logger)

	// Initialize controllers
	cookies := refreshcookie.NewStore(keyGenerator, cfg.Tokens.RefreshTTL, cfg.UseHTTPS)
	ctrl := controllers.NewControllers(srvs, controllers.AuthURLs{
		LoginURL:   cfg.LoginURL(),
		SuccessURL: cfg.SuccessURL(),
		FailedURL:  cfg.FailedURL(),
		ErrorURL:   cfg.ErrorURL(),
	}, cookies, logger)

	return &application{
		cfg:         cfg,
		db:          db,
		logger:      logger,
		repos:       repos,
		services:    srvs,
		controllers: ctrl,
		sessions:    sessions,
	}, nil
}

// Close releases the database
func (a *application) Close() error {
	return a.db.Close()
}

// router configures all routes
func (a *application) router() *chi.Mux {
	ctrl := a.controllers
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))
	r.Use(a.sessions)
	r.Use(authmiddleware.Authenticate(a.services.Tokens, a.logger))
	r.Use(authmiddleware.AuditLogger(a.repos.Audit, a.logger))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", ctrl.Health.Check)
	r.Get("/auth/google/login/", ctrl.Auth.LoginURL)
	r.Get("/accounts/google/login/", ctrl.Auth.Login)
	r.Get("/auth/google/callback/", ctrl.Auth.Callback)
	r.Post("/auth/google/", ctrl.Auth.SocialLogin)
	r.Post("/auth/token/refresh/", ctrl.Auth.Refresh)
	r.Post("/auth/logout/", ctrl.Auth.Logout)

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)

		r.Get("/api/profile", ctrl.Profile.Show)
	})

	return r
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func runServer(server *http.Server, logger logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", server.Addr).Info("Listening")
		errCh <- server.ListenAndServe()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalCh)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case s := <-signalCh:
		logger.WithField("signal", s).Info("Received a shutdown signal")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
