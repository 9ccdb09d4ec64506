package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound            = NewAppError("NOT_FOUND", "Recurso no encontrado", http.StatusNotFound)
	ErrUnauthorized        = NewAppError("UNAUTHORIZED", "No autorizado", http.StatusUnauthorized)
	ErrBadRequest          = NewAppError("BAD_REQUEST", "Solicitud inválida", http.StatusBadRequest)
	ErrInternalServer      = NewAppError("INTERNAL_SERVER_ERROR", "Error interno del servidor", http.StatusInternalServerError)
	ErrConflict            = NewAppError("CONFLICT", "Conflicto de recursos", http.StatusConflict)
	ErrValidation          = NewAppError("VALIDATION_ERROR", "Error de validación", http.StatusBadRequest)
	ErrDatabase            = NewAppError("DATABASE_ERROR", "Error en la base de datos", http.StatusInternalServerError)
	ErrTransactionNotFound = NewAppError("TRANSACTION_NOT_FOUND", "Transacción no encontrada", http.StatusNotFound)
	ErrCategoryNotFound    = NewAppError("CATEGORY_NOT_FOUND", "Categoría no encontrada", http.StatusNotFound)
	ErrRateNotFound        = NewAppError("RATE_NOT_FOUND", "No hay cotización registrada", http.StatusNotFound)
	ErrRateUnavailable     = NewAppError("RATE_UNAVAILABLE", "No hay cotización disponible para la conversión", http.StatusBadRequest)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Solicitud cancelada por el cliente", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Error desconocido", http.StatusInternalServerError)
}

// NewValidationError reports a single invalid field. The field name
// travels in Details so clients can point at the offending input.
func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    fmt.Sprintf("%s %s", translateFieldName(field), message),
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

// NewInvalidReferenceError reports a field pointing at a record that
// does not exist (e.g. category_id).
func NewInvalidReferenceError(field string) *AppError {
	return &AppError{
		Code:       "INVALID_REFERENCE",
		Message:    fmt.Sprintf("%s hace referencia a un registro inexistente", translateFieldName(field)),
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, "DATABASE_ERROR", "Error al ejecutar la operación en la base de datos", http.StatusInternalServerError)
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s no encontrado", resource),
		StatusCode: http.StatusNotFound,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func NewConflictError(resource string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    fmt.Sprintf("%s ya existe", resource),
		StatusCode: http.StatusConflict,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translateFieldName(fieldErr.Field()),
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Error de validación en los campos",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateFieldName(field string) string {
	fieldMap := map[string]string{
		"amount":      "monto",
		"amount_ars":  "monto en pesos",
		"amountars":   "monto en pesos",
		"currency":    "moneda",
		"category_id": "categoría",
		"categoryid":  "categoría",
		"type":        "tipo",
		"description": "descripción",
		"name":        "nombre",
		"color":       "color",
		"date":        "fecha",
	}
	if translated, ok := fieldMap[strings.ToLower(field)]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", fieldName)
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s debe tener como máximo %s caracteres", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de los valores: %s", fieldName, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s debe ser una fecha válida", fieldName)
	case "hexcolor":
		return fmt.Sprintf("%s debe ser un color hexadecimal válido", fieldName)
	default:
		return fmt.Sprintf("La validación '%s' falló para %s", fe.Tag(), fieldName)
	}
}
