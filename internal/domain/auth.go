package domain

import "time"

// SubjectType differentiates shopper vs admin tokens.
type SubjectType string

const (
	SubjectTypeShopper SubjectType = "USER"
	SubjectTypeAdmin   SubjectType = "ADMIN"
)

// AdminAccount is the single pre-provisioned admin credential record.
// Its password is stored bcrypt-hashed, same as shopper passwords.
type AdminAccount struct {
	ID           int64
	PasswordHash string
}

// Token captures metadata of an issued bearer token. Tokens are never
// persisted; this is the shape reconstructed on verification.
type Token struct {
	SubjectID int64
	Subject   SubjectType
	Email     string
	ExpiresAt time.Time
	IssuedAt  time.Time
}
