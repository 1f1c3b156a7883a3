package shared

// DomainError represents a domain-level error with a stable code and a
// human-readable message. The message is the text shown to API consumers;
// the code drives the HTTP status mapping at the interface layer.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Recurso não encontrado")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Recurso já existe")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Dados inválidos")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Recurso foi modificado por outro processo")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operação não permitida no estado atual")
)
