package reservation

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов
// Поддерживает *sql.DB и *sql.Tx, в тестах подменяется фейком
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
