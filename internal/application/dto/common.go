package dto

// Response envolvente uniforme de la API: {code, status, data|message|error}.
// Todas las respuestas, de éxito o de error, usan esta forma.
type Response struct {
	Code    string     `json:"code"`
	Status  string     `json:"status"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody detalle de error dentro de la envolvente.
type ErrorBody struct {
	Message string `json:"message"`
}
