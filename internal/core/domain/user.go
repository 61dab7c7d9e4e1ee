package domain

import "time"

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// roleRank orders roles by privilege: user < manager < admin.
var roleRank = map[Role]int{
	RoleUser:    0,
	RoleManager: 1,
	RoleAdmin:   2,
}

// ParseRole converts a raw string into a Role.
// Unknown values report ok=false; there is no default escalation.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := roleRank[r]
	return r, ok
}

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r carries at least the privilege of min.
// Unknown roles never satisfy any requirement.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	mr, ok := roleRank[min]
	if !ok {
		return false
	}
	return rr >= mr
}

func (r Role) String() string {
	return string(r)
}

// User models a registered account. The password credential is only ever
// held as a bcrypt hash after registration.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the snapshot of a user copied into the session at
// authentication time. It is a value copy: later changes to the underlying
// User record do not propagate until the next login.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// SnapshotOf builds the session identity snapshot for a user.
func SnapshotOf(u *User) Identity {
	return Identity{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}
