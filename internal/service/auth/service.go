package auth

import (
	"funny_arcade/internal/config"
	"funny_arcade/internal/logger"
	"funny_arcade/internal/repository"
	"funny_arcade/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/rs/zerolog"
)

type serv struct {
	txManager trm.Manager
	userRepo  repository.UserRepository
	jwtConfig config.JWTConfig
	log       zerolog.Logger
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	jwtConfig config.JWTConfig,
	log zerolog.Logger,
) service.AuthService {
	return &serv{
		txManager: txManager,
		userRepo:  userRepo,
		jwtConfig: jwtConfig,
		log:       logger.Component(log, "auth"),
	}
}
