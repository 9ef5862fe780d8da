package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config carries all process settings. It is loaded once in main and passed
// to the components that need it; nothing reads the environment after that.
type Config struct {
	Port           string   `envconfig:"PORT" default:"8083"`
	GinMode        string   `envconfig:"GIN_MODE" default:"debug"`
	DatabaseDSN    string   `envconfig:"DATABASE_DSN" default:"host=localhost user=postgres password=postgres dbname=cafe port=5432 sslmode=disable"`
	APIPrefix      string   `envconfig:"API_PREFIX" default:"/api"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	UploadDir      string   `envconfig:"UPLOAD_DIR" default:"./uploads"`

	// EmployeeIDAttempts bounds the random-id collision retry loop.
	EmployeeIDAttempts int `envconfig:"EMPLOYEE_ID_ATTEMPTS" default:"10"`
	// DeleteStaffWithCafe controls whether deleting a cafe also deletes the
	// employees assigned to it, rather than just unassigning them.
	DeleteStaffWithCafe bool `envconfig:"DELETE_STAFF_WITH_CAFE" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CAFE", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
