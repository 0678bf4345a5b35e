package req

import (
	"encoding/json"
	"io"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode читает JSON тело запроса и проверяет теги validate.
// Пустое тело даёт нулевое значение T
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil && err != io.EOF {
		return payload, err
	}

	if err := validate.Struct(payload); err != nil {
		return payload, err
	}
	return payload, nil
}
