package entity

// User representa un usuario registrado.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	CI           string // documento nacional de identidad
	Email        string // único en el almacén
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
}
