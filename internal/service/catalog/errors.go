package catalog

import "errors"

var (
	// ErrValidation возвращается, когда не выбран специалист
	ErrValidation = errors.New("catalog: select a professional")

	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("catalog: professional not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
