package usecase

import (
	"errors"
	"strings"
	"time"

	authdomain "homehub-backend/internal/auth/domain"
	authdto "homehub-backend/internal/auth/dto"
	"homehub-backend/internal/auth/repository"
	"homehub-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed bearer token lifetime.
const tokenTTL = 24 * time.Hour

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo      repository.UserRepository
	blacklistRepo repository.TokenBlacklistRepository
	config        *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, blacklistRepo repository.TokenBlacklistRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		blacklistRepo: blacklistRepo,
		config:        cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	email := strings.ToLower(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = authdomain.RoleUser
	}

	user := &authdomain.User{
		Email:    email,
		Password: hashedPassword,
		Name:     req.Name,
		Role:     role,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &authdto.LoginResponse{Token: token, User: user}, nil
}

// Logout blacklists the presented token under its own exp claim. The token is
// decoded without signature verification: the caller already authenticated
// with this exact token on the current request.
func (u *authUsecase) Logout(tokenString string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return ErrNoExpiryClaim
	}

	return u.blacklistRepo.Add(&authdomain.BlacklistEntry{
		Token:     tokenString,
		ExpiresAt: exp.Time,
	})
}

// ValidateToken checks the blacklist before any cryptographic validation so a
// revoked token is never accepted while its signature and expiry still hold.
// That ordering is a correctness requirement, not an optimization.
func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	revoked, err := u.blacklistRepo.IsBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &authdomain.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   authdomain.UserRole(role),
	}, nil
}

func (u *authUsecase) GetProfile(email string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(email string, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Password != "" {
		hashed, err := repository.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) DeleteProfile(email string) error {
	deleted, err := u.userRepo.DeleteByEmail(email)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (u *authUsecase) ListUsers() ([]*authdomain.User, error) {
	return u.userRepo.FindAll()
}

// SweepExpiredTokens purges blacklist rows whose expiry has passed and
// reports how many went. Safe to call at any time; a sweep racing a logout
// touches disjoint rows.
func (u *authUsecase) SweepExpiredTokens() (int64, error) {
	return u.blacklistRepo.DeleteExpired(time.Now())
}

func (u *authUsecase) issueToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(tokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
