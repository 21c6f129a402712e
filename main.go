package main

import (
	"errors"
	"net/http"
	"os"

	"timevalue/src/api"
	"timevalue/src/config"
	"timevalue/src/database"
	"timevalue/src/utils"
	"timevalue/src/worker"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	aws_handler "timevalue/src/utils/aws"
	redis_utils "timevalue/src/utils/redis"
)

func main() {
	_ = godotenv.Load()

	logger := utils.NewLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		logger.WithError(err).Fatal("error while loading config")
	}
	if err := resolveSecrets(cfg); err != nil {
		logger.WithError(err).Fatal("error while resolving secrets")
	}

	errC, err := run(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("couldn't run")
	}

	if err := <-errC; err != nil {
		logger.WithError(err).Error("error while running")
	}
}

// resolveSecrets replaces placeholder credentials with values from AWS
// Secrets Manager when a secret id is configured. Local setups keep the
// plain yaml values.
func resolveSecrets(cfg *config.Config) error {
	if cfg.Auth.SecretID == "" && cfg.WeChat.SecretID == "" {
		return nil
	}

	awsHandler, err := aws_handler.NewAWSHandler(cfg.Auth.AWSRegion)
	if err != nil {
		return err
	}

	if cfg.Auth.SecretID != "" {
		secret, err := awsHandler.SecretManager.GetSecretValue(cfg.Auth.SecretID)
		if err != nil {
			return err
		}
		cfg.Auth.JWTSecret = secret
	}
	if cfg.WeChat.SecretID != "" {
		values, err := awsHandler.SecretManager.GetSecretMap(cfg.WeChat.SecretID)
		if err != nil {
			return err
		}
		if appID, ok := values["appId"]; ok {
			cfg.WeChat.AppID = appID
		}
		if appSecret, ok := values["appSecret"]; ok {
			cfg.WeChat.AppSecret = appSecret
		}
	}
	return nil
}

func run(cfg *config.Config, logger *logrus.Logger) (<-chan error, error) {
	errC := make(chan error, 1)

	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	var httpServer *http.Server
	if cfg.Service.Type == config.API {
		redisHandler, err := redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
		server := api.NewServer(db, redisHandler, cfg, logger)
		httpServer = api.NewHTTPServer(server, cfg.Service.Port)
	} else {
		server, err := worker.NewServer(db, cfg, logger)
		if err != nil {
			return nil, err
		}
		httpServer = worker.NewHTTPServer(server, cfg.Service.Port)
	}

	go func() {
		logger.WithField("addr", httpServer.Addr).Info("starting server")

		// ListenAndServe always returns a non-nil error; ErrServerClosed is
		// the clean shutdown path.
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
