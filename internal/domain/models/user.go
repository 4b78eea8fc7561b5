package models

// User identifica una cuenta del proveedor únicamente por su login.
// La comparación de identidades es sensible a mayúsculas.
type User struct {
	Login string
}
