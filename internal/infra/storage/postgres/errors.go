package postgres

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к БД
	ErrConnect = errors.New("postgres.repository: failed to connect")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("postgres.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("postgres.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("postgres.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("postgres.repository: failed to scan row")
)
