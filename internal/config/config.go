package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"devstep"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"devstep"`
	DBName     string `env:"DB_NAME" envDefault:"devstep"`

	JWTSecret string        `env:"JWT_SECRET" envDefault:"devstep-dev-secret"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"720h"` // 30 jours

	// Seules les adresses de ce domaine peuvent s'inscrire (vide = pas de restriction)
	AllowedEmailDomain string `env:"ALLOWED_EMAIL_DOMAIN" envDefault:"devoteam.com"`
}

// LoadConfig charge la configuration depuis les variables d'environnement
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("could not parse environment: %w", err)
	}
	return &cfg, nil
}

// DSN construit la chaîne de connexion PostgreSQL
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}
