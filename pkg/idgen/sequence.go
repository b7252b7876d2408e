package idgen

import (
	"strconv"
	"sync"
)

// Sequence детерминированный генератор prefix-1, prefix-2, ... для тестов и отладки
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewSequence создает генератор с префиксом
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// New возвращает следующий идентификатор последовательности
func (s *Sequence) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.prefix + "-" + strconv.Itoa(s.next)
}
