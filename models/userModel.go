package models

import "gorm.io/gorm"

// Role is the closed set of account roles.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Satisfies reports whether the role meets a requirement. Roles are a flat
// set, not a hierarchy.
func (r Role) Satisfies(required Role) bool {
	return r == required
}

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"size:191;uniqueIndex"`
	Email    string `json:"email" gorm:"size:191;uniqueIndex"`
	Password string `json:"-"`
	Role     Role   `json:"role" gorm:"type:varchar(16);default:client"`
}

type SignupData struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
