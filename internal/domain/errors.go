package domain

// Errores de dominio clasificados por tipo (sin dependencias externas).
// El tipo determina el código HTTP; el mapeo concreto vive en interfaces/http.

// Kind clasifica un error de negocio.
type Kind string

const (
	KindInvalidInput    Kind = "INVALID_INPUT"    // entrada malformada o fecha inválida
	KindNotFound        Kind = "NOT_FOUND"        // socio o libro inexistente
	KindPolicyViolation Kind = "POLICY_VIOLATION" // regla de préstamo incumplida
	KindInternal        Kind = "INTERNAL"         // falla inesperada
)

// Error error de dominio con tipo y mensaje visible para el cliente.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// InvalidInput construye un error de entrada inválida.
func InvalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

// NotFound construye un error de recurso inexistente.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// PolicyViolation construye un error por regla de negocio incumplida.
func PolicyViolation(msg string) *Error {
	return &Error{Kind: KindPolicyViolation, Message: msg}
}

// Internal construye un error interno genérico.
func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg}
}

// KindOf devuelve el tipo de un error de dominio; KindInternal para cualquier otro error.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindInternal
}
