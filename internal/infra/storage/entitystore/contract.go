package entitystore

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для учета чтений, вернувших fallback
type Metrics interface {
	IncStoreFallback(collection, reason string)
}
