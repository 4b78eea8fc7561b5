package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	domainErrors "github.com/ndelucca/prstatus/internal/domain/errors"
)

type Config struct {
	Language            string   `json:"language"`
	Owner               string   `json:"owner"`
	Repo                string   `json:"repo"`
	IgnoredAuthors      []string `json:"ignored_authors"`
	PollIntervalSeconds int      `json:"poll_interval_seconds"`
	PollMaxAttempts     int      `json:"poll_max_attempts"`
	PathFile            string   `json:"path_file"`
}

const (
	defaultLang                = "en"
	defaultPollIntervalSeconds = 2
	defaultPollMaxAttempts     = 30

	// TokenEnvVar es la variable de entorno de la que se lee el token de
	// acceso. Nunca se persiste en el archivo de configuración.
	TokenEnvVar = "GITHUB_TOKEN"
)

// ReadToken lee el token de acceso del entorno. Su ausencia es un error
// fatal de configuración, detectado antes de cualquier llamada remota.
func ReadToken() (string, error) {
	token := os.Getenv(TokenEnvVar)
	if token == "" {
		return "", domainErrors.NewMissingTokenError(TokenEnvVar)
	}
	return token, nil
}

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".prstatus")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:            defaultLang,
		IgnoredAuthors:      []string{},
		PollIntervalSeconds: defaultPollIntervalSeconds,
		PollMaxAttempts:     defaultPollMaxAttempts,
		PathFile:            path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("Language no puede estar vacío")
	}
	if config.PollIntervalSeconds <= 0 {
		return errors.New("PollIntervalSeconds debe ser mayor que 0")
	}
	if config.PollMaxAttempts <= 0 {
		return errors.New("PollMaxAttempts debe ser mayor que 0")
	}
	return nil
}
