package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/pkg/dbmetrics"
	"github.com/zohoustanley/barbeshop/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"prestation_id",
	"staff_id",
	"reservation_date",
	"start_time",
	"duration_minutes",
	"status",
	"client_name",
	"client_email",
	"client_phone",
	"client_note",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция (через context.Value), использует её:
// создание записи с проверкой доступности слота должно идти в одной транзакции,
// иначе возможен race condition между двумя параллельными бронированиями.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"prestation_id",
			"staff_id",
			"reservation_date",
			"start_time",
			"duration_minutes",
			"status",
			"client_name",
			"client_email",
			"client_phone",
			"client_note",
		).
		Values(
			res.PrestationID,
			res.StaffID,
			res.Date,
			res.StartTime,
			res.DurationMinutes,
			res.Status,
			res.ClientName,
			res.ClientEmail,
			res.ClientPhone,
			res.ClientNote,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.PrestationID,
		&res.StaffID,
		&res.Date,
		&res.StartTime,
		&res.DurationMinutes,
		&res.Status,
		&res.ClientName,
		&res.ClientEmail,
		&res.ClientPhone,
		&res.ClientNote,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// FindByDay получает записи на конкретную дату с фильтрацией
// Поддерживает фильтрацию по:
// - Мастеру (StaffID) - опционально
// - Статусам (Statuses), по умолчанию только блокирующие слот
// - Исключению записи (ExcludeID) - при редактировании существующей записи
//
// Внутри активной транзакции добавляет FOR UPDATE: выборка конфликтов
// перед созданием записи блокирует конкурирующие бронирования.
func (r *Repository) FindByDay(ctx context.Context, filter domain.DayReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"reservation_date": filter.Date})

	// Фильтрация по мастеру (если указан)
	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *filter.StaffID})
	}

	// Фильтрация по статусам
	statuses := filter.Statuses
	if len(statuses) == 0 {
		statuses = domain.BlockingStatuses
	}
	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}
	selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings})

	// Исключение редактируемой записи
	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// UpdateSchedule переносит запись на другую дату, время или мастера.
// Длительность обновляется вместе со временем, чтобы окно конфликта
// соответствовало актуальной услуге.
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, schedule domain.ScheduleUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reservations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if schedule.Date != nil {
		updateBuilder = updateBuilder.Set("reservation_date", *schedule.Date)
	}
	if schedule.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *schedule.StartTime)
	}
	if schedule.DurationMinutes != nil {
		updateBuilder = updateBuilder.Set("duration_minutes", *schedule.DurationMinutes)
	}
	if schedule.StaffID != nil {
		updateBuilder = updateBuilder.Set("staff_id", *schedule.StaffID)
	}
	if schedule.Status != nil {
		updateBuilder = updateBuilder.Set("status", *schedule.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Cancel отменяет запись
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []string{
			string(domain.StatusPending),
			string(domain.StatusPublished),
		}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс записей
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.PrestationID,
			&res.StaffID,
			&res.Date,
			&res.StartTime,
			&res.DurationMinutes,
			&res.Status,
			&res.ClientName,
			&res.ClientEmail,
			&res.ClientPhone,
			&res.ClientNote,
			&res.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
