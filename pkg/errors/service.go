package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ServiceError представляет ошибку сервиса с HTTP-статусом
type ServiceError struct {
	Code    int    // HTTP-статус
	Message string // Сообщение для клиента
	Err     error  // Исходная ошибка
}

// NewServiceError создает новую ошибку сервиса
func NewServiceError(code int, message string, err error) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error реализует интерфейс error
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает оригинальную ошибку
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(resourceType string, id interface{}) *ServiceError {
	message := fmt.Sprintf("%s с ID=%v не найден", resourceType, id)
	return NewServiceError(http.StatusNotFound, message, ErrNotFound)
}

func NewNotFoundByFieldError(resourceType string, field string, value interface{}) *ServiceError {
	message := fmt.Sprintf("%s с %s=%v не найден", resourceType, field, value)
	return NewServiceError(http.StatusNotFound, message, ErrNotFound)
}

// NewDuplicateError сообщает о нарушении уникальности поля.
// Это ошибка клиентского ввода, поэтому код ответа 400.
func NewDuplicateError(resourceType string, field string, value interface{}) *ServiceError {
	message := fmt.Sprintf("%s с %s=%v уже зарегистрирован", resourceType, field, value)
	return NewServiceError(http.StatusBadRequest, message, ErrAlreadyExists)
}

func NewBadRequestError(reason string) *ServiceError {
	message := "Некорректный запрос"
	if reason != "" {
		message = fmt.Sprintf("%s: %s", message, reason)
	}
	return NewServiceError(http.StatusBadRequest, message, ErrBadRequest)
}

func NewValidationError(field, reason string) *ServiceError {
	message := fmt.Sprintf("Ошибка валидации поля '%s': %s", field, reason)
	return NewServiceError(http.StatusUnprocessableEntity, message, ErrValidation)
}

func NewInternalServerError(err error) *ServiceError {
	return NewServiceError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err)
}

// ToHTTPResponse преобразует ошибку в HTTP-статус и тело ответа
func ToHTTPResponse(err error) (int, HTTPErrorResponse) {
	var se *ServiceError
	if errors.As(err, &se) {
		if se.Code >= http.StatusInternalServerError {
			return se.Code, ErrorResponse("Внутренняя ошибка сервера", nil)
		}
		return se.Code, ErrorResponse(se.Message, nil)
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrorResponse(err.Error(), nil)
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, ErrorResponse(err.Error(), nil)
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity, ErrorResponse(err.Error(), nil)
	default:
		return http.StatusInternalServerError, ErrorResponse("Внутренняя ошибка сервера", nil)
	}
}
