package config

import (
	"os"
	"sync"
)

type MailerConfig struct {
	BaseURL      string
	APIKey       string
	FunctionPath string
}

var (
	mailerConfig *MailerConfig
	mailerOnce   sync.Once
)

func LoadMailerConfig() *MailerConfig {
	mailerOnce.Do(func() {
		path := os.Getenv("MAILER_FUNCTION_PATH")
		if path == "" {
			path = "/functions/v1/send-email-brevo"
		}
		mailerConfig = &MailerConfig{
			BaseURL:      os.Getenv("MAILER_BASE_URL"),
			APIKey:       os.Getenv("MAILER_API_KEY"),
			FunctionPath: path,
		}
	})
	return mailerConfig
}
