package usecase

import (
	"testing"
	"time"

	authdomain "homehub-backend/internal/auth/domain"
	authdto "homehub-backend/internal/auth/dto"
	"homehub-backend/internal/auth/repository"
	"homehub-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*authdomain.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*authdomain.User{}}
}

func (r *fakeUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll() ([]*authdomain.User, error) {
	var out []*authdomain.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) DeleteByEmail(email string) (bool, error) {
	if _, ok := r.users[email]; !ok {
		return false, nil
	}
	delete(r.users, email)
	return true, nil
}

type fakeBlacklistRepo struct {
	entries map[string]time.Time
}

func newFakeBlacklistRepo() *fakeBlacklistRepo {
	return &fakeBlacklistRepo{entries: map[string]time.Time{}}
}

func (r *fakeBlacklistRepo) Add(entry *authdomain.BlacklistEntry) error {
	r.entries[entry.Token] = entry.ExpiresAt
	return nil
}

func (r *fakeBlacklistRepo) IsBlacklisted(token string) (bool, error) {
	_, ok := r.entries[token]
	return ok, nil
}

func (r *fakeBlacklistRepo) DeleteExpired(before time.Time) (int64, error) {
	var count int64
	for token, exp := range r.entries {
		if exp.Before(before) {
			delete(r.entries, token)
			count++
		}
	}
	return count, nil
}

const testSecret = "test-secret"

func newTestUsecase(t *testing.T) (AuthUsecase, *fakeUserRepo, *fakeBlacklistRepo) {
	t.Helper()
	users := newFakeUserRepo()
	blacklist := newFakeBlacklistRepo()
	uc := NewAuthUsecase(users, blacklist, &config.Config{JWTSecret: testSecret})
	return uc, users, blacklist
}

func registerAndLogin(t *testing.T, uc AuthUsecase) (*authdomain.User, string) {
	t.Helper()
	user, err := uc.Register(&authdto.RegisterRequest{
		Email:    "a@x.com",
		Password: "secret123",
		Name:     "A",
	})
	require.NoError(t, err)

	resp, err := uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return user, resp.Token
}

func TestRegister_HashesPassword(t *testing.T) {
	uc, users, _ := newTestUsecase(t)

	user, err := uc.Register(&authdto.RegisterRequest{
		Email:    "a@x.com",
		Password: "secret123",
		Name:     "A",
	})
	require.NoError(t, err)

	assert.Equal(t, authdomain.RoleUser, user.Role)
	stored := users.users["a@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.True(t, repository.CheckPasswordHash("secret123", stored.Password))
	assert.False(t, repository.CheckPasswordHash("secret124", stored.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret123", Name: "A"})
	require.NoError(t, err)

	_, err = uc.Register(&authdto.RegisterRequest{Email: "A@X.com", Password: "other456", Name: "A2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.Register(&authdto.RegisterRequest{Email: "a@x.com", Password: "secret123", Name: "A"})
	require.NoError(t, err)

	_, err = uc.Login(&authdto.LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(&authdto.LoginRequest{Email: "nobody@x.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	user, token := registerAndLogin(t, uc)

	claims, err := uc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
}

func TestValidateToken_Missing(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestValidateToken_Revoked(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	_, token := registerAndLogin(t, uc)

	require.NoError(t, uc.Logout(token))

	// Signature and expiry are still cryptographically valid; the blacklist
	// hit alone must reject the token.
	_, err := uc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestValidateToken_BlacklistCheckedBeforeSignature(t *testing.T) {
	uc, _, blacklist := newTestUsecase(t)

	// A garbage token that would fail signature validation still reports
	// Revoked if blacklisted: the blacklist check runs first.
	garbage := signedToken(t, "other-secret", jwt.MapClaims{
		"id": "u1", "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, blacklist.Add(&authdomain.BlacklistEntry{Token: garbage, ExpiresAt: time.Now().Add(time.Hour)}))

	_, err := uc.ValidateToken(garbage)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestValidateToken_Expired(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	expired := signedToken(t, testSecret, jwt.MapClaims{
		"id":   "u1",
		"role": "user",
		"exp":  time.Now().Add(-time.Minute).Unix(),
		"iat":  time.Now().Add(-25 * time.Hour).Unix(),
	})

	_, err := uc.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateToken_BadSignature(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	forged := signedToken(t, "other-secret", jwt.MapClaims{
		"id": "u1", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := uc.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = uc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_NoExpiryClaim(t *testing.T) {
	uc, _, blacklist := newTestUsecase(t)

	noExp := signedToken(t, testSecret, jwt.MapClaims{"id": "u1", "role": "user"})

	err := uc.Logout(noExp)
	assert.ErrorIs(t, err, ErrNoExpiryClaim)
	assert.Empty(t, blacklist.entries)
}

func TestLogout_UsesTokenExpiry(t *testing.T) {
	uc, _, blacklist := newTestUsecase(t)
	_, token := registerAndLogin(t, uc)

	require.NoError(t, uc.Logout(token))

	exp, ok := blacklist.entries[token]
	require.True(t, ok)
	// The blacklist entry inherits the token's own exp claim, about 24h out.
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)
}

func TestSweepExpiredTokens_Idempotent(t *testing.T) {
	uc, _, blacklist := newTestUsecase(t)

	require.NoError(t, blacklist.Add(&authdomain.BlacklistEntry{Token: "stale-1", ExpiresAt: time.Now().Add(-time.Hour)}))
	require.NoError(t, blacklist.Add(&authdomain.BlacklistEntry{Token: "stale-2", ExpiresAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, blacklist.Add(&authdomain.BlacklistEntry{Token: "live", ExpiresAt: time.Now().Add(time.Hour)}))

	count, err := uc.SweepExpiredTokens()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = uc.SweepExpiredTokens()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	revoked, err := blacklist.IsBlacklisted("live")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
