package domain

import "time"

// BlacklistEntry is a revoked bearer token. The row only needs to live until
// the token's own exp claim passes; after that the expiry check rejects the
// token anyway and the sweeper may purge the row.
type BlacklistEntry struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index;not null"`
}

func (BlacklistEntry) TableName() string {
	return "token_blacklist"
}

// TokenClaims is the decoded identity carried by a verified bearer token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   UserRole
}
