package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// MissingTokenError indica que falta el token de acceso en el entorno.
// Es fatal y se detecta antes de cualquier llamada remota.
type MissingTokenError struct {
	EnvVar string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("token de acceso no encontrado: definí la variable de entorno %s", e.EnvVar)
}

// NewMissingTokenError crea un nuevo error de token ausente
func NewMissingTokenError(envVar string) *MissingTokenError {
	return &MissingTokenError{EnvVar: envVar}
}

// MergeableTimeoutError indica que el proveedor no resolvió la
// mergeabilidad de una PR dentro del límite de intentos configurado.
type MergeableTimeoutError struct {
	PRNumber int
	Attempts int
}

func (e *MergeableTimeoutError) Error() string {
	return fmt.Sprintf("la mergeabilidad de la PR #%d sigue pendiente después de %d intentos", e.PRNumber, e.Attempts)
}

// NewMergeableTimeoutError crea un nuevo error de polling agotado
func NewMergeableTimeoutError(prNumber, attempts int) *MergeableTimeoutError {
	return &MergeableTimeoutError{PRNumber: prNumber, Attempts: attempts}
}
