package config

import "time"

// Kafka is optional for the API: with no addresses product events are not published.
type Kafka struct {
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"catfood"`

	// PublishTimeout bounds how long a write request waits for its event to be acknowledged.
	PublishTimeout time.Duration `env:"KAFKA_PUBLISH_TIMEOUT" envDefault:"5s" validate:"min=0"`
}

// Enabled reports whether any broker address is configured.
func (k Kafka) Enabled() bool {
	return len(k.Addresses) > 0
}
