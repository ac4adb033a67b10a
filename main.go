package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/blogem/social-auth/config"
	"github.com/blogem/social-auth/database"
	"github.com/blogem/social-auth/keys"
	"github.com/blogem/social-auth/repositories"
	"github.com/blogem/social-auth/services"
)

// Build information.
var (
	Version string
)

func main() {
	app := cli.NewApp()
	app.Name = "social-auth"
	app.Version = Version
	app.Usage = "Google sign-in for the application API"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:  "env-file",
			Value: ".env",
			Usage: "File to load environment variables from, if present",
		},
	}
	app.Commands = []*cli.Command{
		serveCommand,
		migrateCommand,
		pruneTokensCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		// Load environment variables from .env file
		if err := godotenv.Load(ctx.String("env-file")); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load the env vars: %w", err)
		}

		level, err := logrus.ParseLevel(ctx.String("log-level"))
		if err != nil {
			return fmt.Errorf("unknown log level '%s'", ctx.String("log-level"))
		}
		logrus.SetLevel(level)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Run the HTTP server",
	Action: func(ctx *cli.Context) error {
		logger := logrus.StandardLogger()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		app, err := newApplication(ctx.Context, cfg, logger)
		if err != nil {
			return err
		}
		defer app.Close()

		logger.WithFields(logrus.Fields{
			"database": cfg.DatabasePath,
			"base_url": cfg.BaseURL,
		}).Info("Social auth service starting")

		return runServer(newServer(cfg, app.router()), logger)
	},
}

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Apply pending database migrations",
	Action: func(ctx *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := database.InitializeDatabase(cfg.DatabasePath, logrus.StandardLogger())
		if err != nil {
			return err
		}
		return db.Close()
	},
}

var pruneTokensCommand = &cli.Command{
	Name:  "prune-tokens",
	Usage: "Delete expired refresh tokens",
	Action: func(ctx *cli.Context) error {
		logger := logrus.StandardLogger()

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := database.InitializeDatabase(cfg.DatabasePath, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		tokenCfg, err := tokenServiceConfig(cfg)
		if err != nil {
			return err
		}
		repos := repositories.NewRepositories(db)
		tokens := services.NewTokenService(tokenCfg, repos.RefreshToken, repos.User)

		deleted, err := tokens.PruneExpired(context.WithoutCancel(ctx.Context))
		if err != nil {
			return err
		}

		logger.WithField("deleted", deleted).Info("Pruned expired refresh tokens")
		return nil
	},
}

func tokenServiceConfig(cfg *config.Config) (services.TokenServiceConfig, error) {
	keyGenerator, err := keys.NewKeyGenerator(cfg.SecretKey)
	if err != nil {
		return services.TokenServiceConfig{}, err
	}

	return services.TokenServiceConfig{
		Issuer:     cfg.BaseURL,
		SigningKey: keyGenerator.Generate(keys.PurposeAccessTokenSigning),
		AccessTTL:  cfg.Tokens.AccessTTL,
		RefreshTTL: cfg.Tokens.RefreshTTL,
	}, nil
}
