package entity

import "time"

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleVendor  UserRole = "vendor"
	RoleAdmin   UserRole = "admin"
)

// User covers all three roles. Role is fixed at signup; there is no
// role-change operation.
type User struct {
	Base
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password"`
	Mobile       string     `db:"mobile"`
	Address      string     `db:"address"`
	Role         UserRole   `db:"role"`
	IsActive     bool       `db:"is_active"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}
