package dto

import "github.com/shopspring/decimal"

func init() {
	// El front-end espera price como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// MessageResponse respuesta de éxito de las operaciones de escritura.
// ID es el id insertado (create); Affected las filas tocadas (update/delete).
type MessageResponse struct {
	Message  string `json:"message"`
	ID       *int64 `json:"id,omitempty"`
	Affected *int64 `json:"affected,omitempty"`
}

// ErrorResponse cuerpo de error HTTP. Error lleva el mensaje crudo del almacén (500)
// o de validación (400); Message el texto fijo de las respuestas 401.
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthResponse salida de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
