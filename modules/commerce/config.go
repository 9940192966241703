package commerce

import (
	"time"

	"github.com/dmitrymomot/validate/pkg/config"
)

type Config struct {
	Addr         string        `env:"COMMERCE_ADDR" envDefault:":8080"`                // Addr is the listen address for the commerce API.
	Env          string        `env:"APP_ENV" envDefault:"development"`                // Env names the runtime environment for logging.
	CheckTimeout time.Duration `env:"COMMERCE_CHECK_TIMEOUT" envDefault:"3s"`          // CheckTimeout bounds the external validation checks per request.
	MaxBodyBytes int64         `env:"COMMERCE_MAX_BODY_BYTES" envDefault:"1048576"`    // MaxBodyBytes caps request body size.
	BcryptCost   int           `env:"COMMERCE_BCRYPT_COST" envDefault:"10"`            // BcryptCost is the work factor for password hashing.
}

// LoadConfig reads the module configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
