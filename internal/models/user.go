// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email               string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash        string     `json:"-" gorm:"size:255;not null"`
	FirstName           string     `json:"first_name" gorm:"size:100;not null"`
	LastName            string     `json:"last_name" gorm:"size:100"`
	Role                UserRole   `json:"role" gorm:"type:varchar(20);default:'user';index"`
	EmailVerified       bool       `json:"email_verified" gorm:"default:false"`
	DatePasswordChanged *time.Time `json:"date_password_changed"`
	LastLoginAt         *time.Time `json:"last_login_at"`

	// Relationships
	Products  []Product `json:"products,omitempty" gorm:"foreignKey:SellerID"`
	Sells     []Deal    `json:"sells,omitempty" gorm:"foreignKey:SellerID"`
	Purchases []Deal    `json:"purchases,omitempty" gorm:"foreignKey:ConsumerID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	now := time.Now()
	u.DatePasswordChanged = &now
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

func (u *User) CanModerate() bool {
	return u.Role == UserRoleModerator || u.Role == UserRoleAdmin
}
