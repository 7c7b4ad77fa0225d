package config

import "github.com/spf13/viper"

// Frontend frontend config struct
type Frontend struct {
	SignInURL    string
	ForbiddenURL string
}

// getFrontendConfig returns frontend config
func getFrontendConfig(v *viper.Viper) *Frontend {
	return &Frontend{
		SignInURL:    getStringOrDefault(v, "frontend.sign_in_url", "/login"),
		ForbiddenURL: getStringOrDefault(v, "frontend.forbidden_url", "/forbidden"),
	}
}
