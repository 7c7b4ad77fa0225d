package config

import "github.com/spf13/viper"

// Auth auth cookie config struct
type Auth struct {
	Cookie        *Cookie
	AccessMaxAge  int
	RefreshMaxAge int
}

// Cookie cookie attributes config struct
type Cookie struct {
	Domain string
	// Secure forces the Secure attribute; nil follows the run mode.
	Secure *bool
}

// getAuthConfig returns the auth config.
func getAuthConfig(v *viper.Viper) *Auth {
	return &Auth{
		Cookie:        getCookieConfig(v),
		AccessMaxAge:  getIntOrDefault(v, "auth.access_max_age", 900),
		RefreshMaxAge: getIntOrDefault(v, "auth.refresh_max_age", 604800),
	}
}

// getCookieConfig returns the cookie config.
func getCookieConfig(v *viper.Viper) *Cookie {
	c := &Cookie{
		Domain: v.GetString("auth.cookie.domain"),
	}
	if v.IsSet("auth.cookie.secure") {
		secure := v.GetBool("auth.cookie.secure")
		c.Secure = &secure
	}
	return c
}
