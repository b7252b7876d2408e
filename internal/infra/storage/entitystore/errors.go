package entitystore

import "errors"

var (
	// ErrPersist возвращается, когда бэкенд не смог сохранить коллекции
	ErrPersist = errors.New("entitystore: failed to persist collections")

	// ErrReset возвращается, когда бэкенд не смог очистить коллекции
	ErrReset = errors.New("entitystore: failed to reset collections")

	// ErrDecode возвращается, когда сохранённое значение не является корректным JSON
	ErrDecode = errors.New("entitystore: malformed collection payload")

	// ErrNotArray возвращается, когда сохранённое значение не является JSON массивом
	ErrNotArray = errors.New("entitystore: collection payload is not an array")
)
