package models

import (
	"strings"
	"time"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserInvited  UserStatus = "invited"
)

type User struct {
	ID           string     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"column:email;type:text;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;type:text" json:"-"`
	FirstName    string     `gorm:"column:first_name;type:text" json:"firstName"`
	LastName     string     `gorm:"column:last_name;type:text" json:"lastName"`
	Role         UserRole   `gorm:"column:role;type:text" json:"role"`
	Status       UserStatus `gorm:"column:status;type:text" json:"status"`
	AvatarURL    string     `gorm:"column:avatar_url;type:text" json:"avatarUrl,omitempty"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at;type:timestamptz" json:"lastLogin,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;type:timestamptz" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;type:timestamptz" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Username is the local part of the email address.
func (u User) Username() string {
	at := strings.IndexByte(u.Email, '@')
	if at <= 0 {
		return u.Email
	}
	return u.Email[:at]
}
