package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/nvbit/SLN-SlotService/internal/domain"
	"github.com/nvbit/SLN-SlotService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

var reservationColumns = []string{
	"id",
	"reservation_date",
	"start_time",
	"duration_minutes",
	"status",
	"customer_name",
	"customer_phone",
	"customer_email",
	"notes",
	"service_names",
	"total_price",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с подтвержденными бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateCommittedReservation создает подтвержденное бронирование
//
// Частичный уникальный индекс по (reservation_date, start_time) для активных
// строк гарантирует единственность бронирования на слот на уровне хранилища.
// Проигранная гонка возвращается как ErrSlotTaken - вызывающий должен
// перезапросить доступность, а не повторять запись вслепую.
func (r *Repository) CreateCommittedReservation(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if res.Status == "" {
		res.Status = domain.StatusConfirmed
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"reservation_date",
			"start_time",
			"duration_minutes",
			"status",
			"customer_name",
			"customer_phone",
			"customer_email",
			"notes",
			"service_names",
			"total_price",
		).
		Values(
			res.Date,
			res.StartTime,
			res.DurationMinutes,
			res.Status,
			res.CustomerName,
			res.CustomerPhone,
			res.CustomerEmail,
			res.Notes,
			res.ServiceNames,
			res.TotalPrice,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCommittedReservation - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: CreateCommittedReservation - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// FetchCommittedReservations получает активные бронирования на конкретную дату
// Отмененные и no-show бронирования слот не занимают и не возвращаются
func (r *Repository) FetchCommittedReservations(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	inactiveStatuses := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatuses[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"reservation_date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"status": inactiveStatuses}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FetchCommittedReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchCommittedReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByCustomerPhone получает историю бронирований клиента по номеру телефона
func (r *Repository) GetByCustomerPhone(ctx context.Context, phone string) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"customer_phone": phone}).
		OrderBy("reservation_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerPhone - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Cancel отменяет бронирование с указанием причины, освобождая его слот
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо бронирования нет, либо оно уже не в статусе confirmed
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrCannotCancel
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в доменную модель
func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Date,
		&res.StartTime,
		&res.DurationMinutes,
		&res.Status,
		&res.CustomerName,
		&res.CustomerPhone,
		&res.CustomerEmail,
		&res.Notes,
		&res.ServiceNames,
		&res.TotalPrice,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
