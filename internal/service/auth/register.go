package auth

import (
	"context"
	"fmt"

	"funny_arcade/internal/model"
	"funny_arcade/pkg/pass"
	"funny_arcade/pkg/token"
)

func (s *serv) Register(ctx context.Context, user *model.User) (*model.AuthData, error) {
	// Хэширование пароля пользователя
	passwordHash, err := pass.HashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = passwordHash

	var accessToken string

	// Начало транзакции
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		// 2. Создать access токен
		accessToken, err = token.GenerateAccessToken(
			user,
			s.jwtConfig.AccessTokenSecretKey(),
			s.jwtConfig.AccessTokenDuration())
		if err != nil {
			return fmt.Errorf("generate access token: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("user_id", user.ID).Str("login", user.Login).Msg("user registered")

	return &model.AuthData{
		UserID:      user.ID,
		AccessToken: accessToken,
	}, nil
}
