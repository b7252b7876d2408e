package book_appointment

import "errors"

var (
	// ErrValidation возвращается, когда не выбран специалист или слот
	ErrValidation = errors.New("book_appointment: select professional and slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
