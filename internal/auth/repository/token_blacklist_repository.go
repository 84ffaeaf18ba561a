package repository

import (
	"errors"
	"time"

	authdomain "homehub-backend/internal/auth/domain"

	"gorm.io/gorm"
)

// TokenBlacklistRepository is the revocation store contract: insert on
// logout, exact-match existence check on every authenticated request, and a
// bulk purge of rows whose expiry has passed.
type TokenBlacklistRepository interface {
	Add(entry *authdomain.BlacklistEntry) error
	IsBlacklisted(token string) (bool, error)
	DeleteExpired(before time.Time) (int64, error)
}

// gormTokenBlacklistRepository implements TokenBlacklistRepository over GORM
type gormTokenBlacklistRepository struct {
	db *gorm.DB
}

// NewTokenBlacklistRepository creates a new GORM-backed blacklist repository
func NewTokenBlacklistRepository(db *gorm.DB) TokenBlacklistRepository {
	return &gormTokenBlacklistRepository{
		db: db,
	}
}

func (r *gormTokenBlacklistRepository) Add(entry *authdomain.BlacklistEntry) error {
	return r.db.Create(entry).Error
}

func (r *gormTokenBlacklistRepository) IsBlacklisted(token string) (bool, error) {
	var entry authdomain.BlacklistEntry
	err := r.db.Where("token = ?", token).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *gormTokenBlacklistRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", before).Delete(&authdomain.BlacklistEntry{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
