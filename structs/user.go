package structs

import "time"

// User is an account as returned by the upstream API.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile returns the cookie snapshot of u.
func (u User) Profile() Profile {
	p := Profile{Name: u.Name, Nickname: u.Nickname, Email: u.Email}
	if u.Role.Valid() {
		role := u.Role
		p.Role = &role
	}
	return p
}

// UserRoleBody role change form
type UserRoleBody struct {
	Role Role `json:"role" validate:"required,oneof=admin user bot"`
}
