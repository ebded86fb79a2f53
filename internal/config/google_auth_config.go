package config

import "os"

type GGAuthConfig struct {
	// RestrictDomain limits Google logins to one email domain when set.
	RestrictDomain string
}

func NewGGAuthConfig() *GGAuthConfig {
	return &GGAuthConfig{
		RestrictDomain: os.Getenv("GOOGLE_RESTRICT_DOMAIN"),
	}
}
