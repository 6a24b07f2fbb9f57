package config

import (
	"os"
	"sync"
)

type AuthConfig struct {
	TokenSecret string
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		authConfig = &AuthConfig{
			TokenSecret: os.Getenv("TOKEN_SECRET"),
		}
	})
	return authConfig
}
