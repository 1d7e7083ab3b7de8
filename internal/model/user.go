package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

type UserClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

type AuthData struct {
	UserID      int
	AccessToken string
}
