package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html#23505:~:text=foreign_key_violation-,23505,-unique_violation
const (
	PgErrUniqueViolation = "23505"
	PgErrCheckViolation  = "23514"
)

// Сентинелы уровня хранилища. Одна таблица shipments обслуживает несколько
// сервисов (dispatch, delivery, rating, tracking), поэтому доменные ошибки
// живут здесь, а сервисы переводят их в свои.
var (
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrDriverNotFound   = errors.New("driver not found")

	// ErrNoRowsUpdated — условный UPDATE не нашел строку в ожидаемом
	// состоянии: либо гонка с конкурентной мутацией, либо нарушенное
	// предусловие. Классифицирует сервис, перечитав состояние.
	ErrNoRowsUpdated = errors.New("no rows matched update precondition")

	ErrTrackingCodeTaken = errors.New("tracking code already taken")
	ErrDriverPhoneTaken  = errors.New("driver phone already registered")
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
