package closure

import "errors"

var (
	// ErrClosureNotFound возвращается, когда запись о закрытии не найдена
	ErrClosureNotFound = errors.New("closure.repository: closure not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("closure.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("closure.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("closure.repository: failed to scan row")
)
