package models

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
)

// User is an administrator account for the panel.
type User struct {
	BaseModel
	Email        string   `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Role         UserRole `gorm:"size:50;not null;default:'editor'" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
}
