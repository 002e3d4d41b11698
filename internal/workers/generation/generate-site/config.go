package generatesite

import "time"

type Config struct {
	// Timeout bounds one whole run: generation plus deploy and cleanup.
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Minute,
	}
}
