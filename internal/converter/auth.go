package converter

import (
	"strings"

	dto "funny_arcade/internal/api/dto/auth"
	"funny_arcade/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     strings.TrimSpace(req.Name),
		Login:    strings.TrimSpace(req.Login),
		Password: req.Password,
	}
}

func ToAuthResponse(data *model.AuthData) dto.AuthResponse {
	return dto.AuthResponse{
		UserID:      data.UserID,
		AccessToken: data.AccessToken,
	}
}
