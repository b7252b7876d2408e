package entitystore

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decode разбирает JSON массив записей
// null, объект или скаляр считаются повреждёнными данными
func decode[T any](payload []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var records []T
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// encode сериализует коллекцию целиком, nil записывается как []
func encode[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}
	return json.Marshal(records)
}
