package entity

import "time"

// User usuario con acceso al sistema.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt, nunca la contraseña en claro
	DisplayName  string
	CreatedAt    time.Time
}
