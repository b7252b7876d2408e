package s3

import "errors"

var (
	// ErrConfig возвращается при неполной конфигурации
	ErrConfig = errors.New("s3.repository: invalid config")

	// ErrGet возвращается при ошибке чтения объекта
	ErrGet = errors.New("s3.repository: failed to get object")

	// ErrPut возвращается при ошибке записи объекта
	ErrPut = errors.New("s3.repository: failed to put object")

	// ErrClear возвращается при ошибке удаления объектов
	ErrClear = errors.New("s3.repository: failed to clear objects")
)
