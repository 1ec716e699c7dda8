package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Базовые ошибки, по которым слой HTTP выбирает код ответа
var (
	ErrNotFound       = errors.New("ресурс не найден")
	ErrAlreadyExists  = errors.New("ресурс уже существует")
	ErrValidation     = errors.New("ошибка валидации")
	ErrBadRequest     = errors.New("некорректный запрос")
	ErrInternalServer = errors.New("внутренняя ошибка сервера")
)

// AppendPrefix добавляет префикс к сообщению об ошибке
func AppendPrefix(err error, prefix string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

// LogError логирует ошибку с контекстом
func LogError(err error, context string) {
	if err == nil {
		return
	}
	logrus.WithError(err).WithField("context", context).Error("ОШИБКА")
}

// LogErrorWithDetails логирует ошибку с контекстом и дополнительными полями
func LogErrorWithDetails(err error, context string, details map[string]interface{}) {
	if err == nil {
		return
	}
	logrus.WithError(err).
		WithField("context", context).
		WithFields(logrus.Fields(details)).
		Error("ОШИБКА")
}

// ErrorGroup представляет группу ошибок, собранных из разных операций
type ErrorGroup struct {
	errors []error
}

// NewErrorGroup создает новую группу ошибок
func NewErrorGroup() *ErrorGroup {
	return &ErrorGroup{
		errors: make([]error, 0),
	}
}

// Add добавляет ошибку в группу (игнорирует nil)
func (g *ErrorGroup) Add(err error) {
	if err != nil {
		g.errors = append(g.errors, err)
	}
}

// AddPrefix добавляет ошибку с префиксом в группу
func (g *ErrorGroup) AddPrefix(err error, prefix string) {
	if err != nil {
		g.errors = append(g.errors, AppendPrefix(err, prefix))
	}
}

// HasErrors проверяет, есть ли ошибки в группе
func (g *ErrorGroup) HasErrors() bool {
	return len(g.errors) > 0
}

// Error возвращает конкатенацию всех ошибок в группе
func (g *ErrorGroup) Error() string {
	var sb strings.Builder
	for i, err := range g.errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap позволяет errors.Is находить ошибки внутри группы
func (g *ErrorGroup) Unwrap() []error {
	return g.errors
}
