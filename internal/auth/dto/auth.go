package dto

import authdomain "homehub-backend/internal/auth/domain"

type RegisterRequest struct {
	Email    string              `json:"email" binding:"required,email"`
	Password string              `json:"password" binding:"required,min=6"`
	Name     string              `json:"name" binding:"required"`
	Role     authdomain.UserRole `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  *authdomain.User `json:"user"`
}

type UpdateProfileRequest struct {
	Name     string              `json:"name"`
	Password string              `json:"password"`
	Role     authdomain.UserRole `json:"role"`
}
