package planning

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/zohoustanley/barbeshop/internal/domain"
	"github.com/zohoustanley/barbeshop/pkg/dbmetrics"
	"github.com/zohoustanley/barbeshop/pkg/psqlbuilder"
)

// settingsRowID единственная строка таблицы planning_settings
const settingsRowID = 1

// Repository репозиторий настроек расписания салона.
// Настройки хранятся как есть, без валидации: нормализация выполняется
// на чтении в доменном слое, чтобы старые и кривые данные не ломали запись.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRaw читает сохраненные настройки без какой-либо коэрции.
// Отсутствие строк - штатный случай: возвращается пустая структура,
// дефолты подставит нормализация.
func (r *Repository) GetRaw(ctx context.Context) (domain.RawPlanning, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	raw := domain.RawPlanning{
		Days: make(map[int]domain.RawDayHours),
	}

	query, args, err := psqlbuilder.Select(
		"days_ahead",
		"slot_interval_minutes",
		"min_lead_minutes",
		"open_days",
	).
		From("planning_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return raw, fmt.Errorf("%w: GetRaw - build settings query: %v", ErrBuildQuery, err)
	}

	var openDays pq.Int64Array
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&raw.DaysAhead,
		&raw.SlotIntervalMinutes,
		&raw.MinLeadMinutes,
		&openDays,
	)

	if err != nil && err != sql.ErrNoRows {
		return raw, fmt.Errorf("%w: GetRaw - scan settings: %v", ErrScanRow, err)
	}

	raw.OpenDays = make([]int, 0, len(openDays))
	for _, d := range openDays {
		raw.OpenDays = append(raw.OpenDays, int(d))
	}

	query, args, err = psqlbuilder.Select(
		"weekday",
		"enabled",
		"open_time",
		"close_time",
	).
		From("planning_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return raw, fmt.Errorf("%w: GetRaw - build hours query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return raw, fmt.Errorf("%w: GetRaw - execute hours query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var weekday int
		var enabled sql.NullBool
		var openTime, closeTime sql.NullString

		if err := rows.Scan(&weekday, &enabled, &openTime, &closeTime); err != nil {
			return raw, fmt.Errorf("%w: GetRaw - scan hours row: %v", ErrScanRow, err)
		}

		day := domain.RawDayHours{
			Open:  openTime.String,
			Close: closeTime.String,
		}
		if enabled.Valid {
			day.Enabled = &enabled.Bool
		}
		raw.Days[weekday] = day
	}

	if err := rows.Err(); err != nil {
		return raw, fmt.Errorf("%w: GetRaw - hours rows error: %v", ErrScanRow, err)
	}

	return raw, nil
}

// SaveRaw сохраняет настройки расписания через upsert.
// Вызывается внутри транзакции, чтобы настройки и часы дней обновились атомарно.
func (r *Repository) SaveRaw(ctx context.Context, raw domain.RawPlanning) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	openDays := make(pq.Int64Array, 0, len(raw.OpenDays))
	for _, d := range raw.OpenDays {
		openDays = append(openDays, int64(d))
	}

	query, args, err := psqlbuilder.Insert("planning_settings").
		Columns(
			"id",
			"days_ahead",
			"slot_interval_minutes",
			"min_lead_minutes",
			"open_days",
		).
		Values(
			settingsRowID,
			raw.DaysAhead,
			raw.SlotIntervalMinutes,
			raw.MinLeadMinutes,
			openDays,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			days_ahead = EXCLUDED.days_ahead,
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			min_lead_minutes = EXCLUDED.min_lead_minutes,
			open_days = EXCLUDED.open_days,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveRaw - build settings upsert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveRaw - execute settings upsert: %v", ErrExecQuery, err)
	}

	for weekday := domain.WeekdayMonday; weekday <= domain.WeekdaySunday; weekday++ {
		day, ok := raw.Days[weekday]
		if !ok {
			continue
		}

		var enabled interface{}
		if day.Enabled != nil {
			enabled = *day.Enabled
		}

		query, args, err := psqlbuilder.Insert("planning_hours").
			Columns("weekday", "enabled", "open_time", "close_time").
			Values(weekday, enabled, day.Open, day.Close).
			Suffix(`ON CONFLICT (weekday) DO UPDATE SET
				enabled = EXCLUDED.enabled,
				open_time = EXCLUDED.open_time,
				close_time = EXCLUDED.close_time,
				updated_at = NOW()`).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: SaveRaw - build hours upsert (weekday %d): %v", ErrBuildQuery, weekday, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: SaveRaw - execute hours upsert (weekday %d): %v", ErrExecQuery, weekday, err)
		}
	}

	return nil
}
