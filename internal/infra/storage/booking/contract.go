package booking

import (
	"github.com/masterbarber/MB-BookingService/pkg/dbmetrics"
)

// Переиспользуем интерфейс выполнения запросов из dbmetrics:
// ему удовлетворяют *sql.DB, обёртка с метриками и транзакции
type DBExecutor = dbmetrics.DBExecutor
