package dto

// RegisterRequest entrada para registro. El password se hashea en el use case.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CI        string `json:"ci"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token firmado.
type LoginResponse struct {
	Token string `json:"token"`
}
