package hassvoice

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the fixed connection configuration for a Client. It is never
// mutated after construction.
//
// Verify is a pointer so "not set" and "explicitly false" stay distinct:
// nil verifies server certificates, an explicit false actually disables
// verification. Verify only matters when SSL is true.
type Config struct {
	SSL        bool   `yaml:"ssl"`
	Verify     *bool  `yaml:"verify"`
	IPAddress  string `yaml:"ip_address"`
	Token      string `yaml:"token"`
	PortNumber int    `yaml:"port_number"`
}

// VerifyTLS reports whether server certificates should be verified.
func (c Config) VerifyTLS() bool {
	return c.Verify == nil || *c.Verify
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	var config Config

	raw, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

// ConfigFromEnv builds a Config from HASS_* environment variables, loading
// a .env file first when one is present in the working directory.
func ConfigFromEnv() (Config, error) {
	// A missing .env file is fine; the variables may already be set.
	_ = godotenv.Load()

	config := Config{
		IPAddress: os.Getenv("HASS_IP_ADDRESS"),
		Token:     os.Getenv("HASS_TOKEN"),
	}

	if v, ok := os.LookupEnv("HASS_SSL"); ok {
		ssl, err := strconv.ParseBool(v)
		if err != nil {
			return config, fmt.Errorf("invalid HASS_SSL value %q: %w", v, err)
		}
		config.SSL = ssl
	}

	if v, ok := os.LookupEnv("HASS_VERIFY"); ok {
		verify, err := strconv.ParseBool(v)
		if err != nil {
			return config, fmt.Errorf("invalid HASS_VERIFY value %q: %w", v, err)
		}
		config.Verify = &verify
	}

	if v, ok := os.LookupEnv("HASS_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return config, fmt.Errorf("invalid HASS_PORT value %q: %w", v, err)
		}
		config.PortNumber = port
	}

	return config, nil
}
