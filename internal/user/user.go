package user

import "github.com/petparadise/storefront/internal/address"

// Role ids form a closed enumeration; the backend seeds exactly these three.
const (
	RoleCustomer = 1
	RoleStaff    = 2
	RoleAdmin    = 3
)

// Account status values.
const (
	StatusLocked = 0
	StatusActive = 1
)

// Role is the lookup record behind a role id.
type Role struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// User mirrors the backend user record. Password is write-only: it is sent
// on create/register and never kept in local state.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	RoleID   int    `json:"roleId"`
	Phone    string `json:"phone"`
	Status   int    `json:"status"`

	Addresses []address.Address `json:"addresses,omitempty"`

	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// IsStaffLevel reports whether the user may work the staff back-office.
func (u User) IsStaffLevel() bool { return u.RoleID == RoleStaff || u.RoleID == RoleAdmin }

// IsAdmin reports whether the user may manage catalog and accounts.
func (u User) IsAdmin() bool { return u.RoleID == RoleAdmin }

type CreateRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"roleId"`
	Phone    string `json:"phone"`
}

type UpdateRequest struct {
	ID       int     `json:"id"`
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	RoleID   *int    `json:"roleId,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}
