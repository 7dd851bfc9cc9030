package config

import "time"

type Postgres struct {
	Host     string `env:"DB_HOST,required"`
	Port     int    `env:"DB_PORT" envDefault:"5432" validate:"min=1,max=65535"`
	User     string `env:"DB_USER,required"`
	Password string `env:"DB_PASSWORD"`
	DB       string `env:"DB_NAME,required"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	// Zero values keep the pgxpool defaults.
	MaxConns        int32         `env:"DB_MAX_CONNS" validate:"min=0"`
	MinConns        int32         `env:"DB_MIN_CONNS" validate:"min=0"`
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" validate:"min=0"`
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" validate:"min=0"`
}
