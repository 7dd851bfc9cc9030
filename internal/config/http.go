package config

import "time"

type HTTP struct {
	Port    uint32 `env:"PORT" envDefault:"8000" validate:"min=1,max=65535"`
	Swagger bool   `env:"HTTP_SWAGGER" envDefault:"true"`

	// Zero disables the timeout.
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"0s" validate:"min=0"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s" validate:"min=0"`

	CorsAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}
