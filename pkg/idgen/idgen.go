// Package idgen генерирует короткие непрозрачные идентификаторы сущностей
package idgen

import (
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// Length длина идентификатора: 128 бит в base36 занимают не более 25 символов
const Length = 25

// Generator выдает идентификаторы на основе случайного UUIDv4
// Уникальность относительно уже сохранённых коллекций не проверяется
type Generator struct{}

// New создает генератор
func New() *Generator {
	return &Generator{}
}

// New возвращает новый идентификатор фиксированной длины из символов [0-9a-z]
func (g *Generator) New() string {
	id := uuid.New()
	token := new(big.Int).SetBytes(id[:]).Text(36)
	if len(token) < Length {
		token = strings.Repeat("0", Length-len(token)) + token
	}
	return token
}
