package usecase

import (
	authdomain "homehub-backend/internal/auth/domain"
	authdto "homehub-backend/internal/auth/dto"
)

// AuthUsecase defines the auth business logic contract
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)
	Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error)
	Logout(token string) error
	ValidateToken(token string) (*authdomain.TokenClaims, error)
	GetProfile(email string) (*authdomain.User, error)
	UpdateProfile(email string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
	DeleteProfile(email string) error
	ListUsers() ([]*authdomain.User, error)
	SweepExpiredTokens() (int64, error)
}
