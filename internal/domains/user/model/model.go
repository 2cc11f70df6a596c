package model

import (
	"strings"
	"time"

	"lodgehub/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldLodgeID      = "lodge_id"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldLevel        = "level"
	FieldFullName     = "full_name"
	FieldProfileImage = "profile_image"
	FieldIsVerified   = "is_verified"
	FieldLastLogin    = "last_login"
	FieldActive       = "active"
	FieldModifiedAt   = "modified_at"
	FieldModifiedBy   = "modified_by"
)

// User is a staff account. Superadmins are not bound to a lodge and carry lodge_id 0.
type User struct {
	ID           string     `db:"id"`
	LodgeID      int64      `db:"lodge_id"`
	Email        string     `db:"email"`
	Password     string     `db:"password"`
	Level        string     `db:"level"`
	FullName     *string    `db:"full_name"`
	ProfileImage *string    `db:"profile_image"`
	IsVerified   bool       `db:"is_verified"`
	LastLogin    *time.Time `db:"last_login"`
	Active       bool       `db:"active"`
	model.Metadata
}

func (u User) Found() bool {
	return u.ID != ""
}

// NormalizeEmail is applied before every lookup and insert; emails are unique case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
