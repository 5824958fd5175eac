package models

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleSeller   Role = "SELLER"
	RoleCustomer Role = "CUSTOMER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSeller, RoleCustomer:
		return true
	}
	return false
}

// CanManageOrders reports whether the role may approve or reject orders.
func (r Role) CanManageOrders() bool {
	return r == RoleSeller || r == RoleAdmin
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" binding:"required"`
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password,omitempty"`
	Role      Role      `json:"role" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
}
