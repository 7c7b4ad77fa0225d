// Package structs defines the board domain models exchanged with the upstream
// API and the request forms accepted from browsers.
package structs

// Role is the account role reported by the upstream API.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleBot   Role = "bot"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleBot:
		return true
	}
	return false
}

// TokenPair is the credential pair issued by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Complete reports whether both tokens are present.
func (p TokenPair) Complete() bool {
	return p.AccessToken != "" && p.RefreshToken != ""
}

// Profile is the user snapshot kept in the user cookie.
type Profile struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Role     *Role  `json:"role"`
}

// Anonymous is the profile of a visitor without a session.
func Anonymous() Profile {
	return Profile{}
}

// IsAdmin reports whether the profile carries the admin role.
func (p Profile) IsAdmin() bool {
	return p.Role != nil && *p.Role == RoleAdmin
}

// LoginResult is the upstream login response.
type LoginResult struct {
	TokenPair
	User User `json:"user"`
}

// Session is the login state rendered to browsers.
type Session struct {
	LoggedIn bool    `json:"loggedIn"`
	User     Profile `json:"user"`
}

// LoginBody login form
type LoginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

// SignupBody signup form
type SignupBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	Name     string `json:"name" validate:"required,min=2,max=30"`
	Nickname string `json:"nickname" validate:"required,min=2,max=20"`
}
