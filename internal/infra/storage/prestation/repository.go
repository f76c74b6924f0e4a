package prestation

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

var prestationColumns = []string{
	"id",
	"title",
	"description",
	"price_label",
	"duration_minutes",
	"allowed_staff_ids",
	"category",
	"position",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, p *domain.Prestation) (*domain.Prestation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("prestations").
		Columns(
			"title",
			"description",
			"price_label",
			"duration_minutes",
			"allowed_staff_ids",
			"category",
			"position",
		).
		Values(
			p.Title,
			p.Description,
			p.PriceLabel,
			p.DurationMinutes,
			pq.Array(p.AllowedStaffIDs),
			p.Category,
			p.Position,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Prestation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(prestationColumns...).
		From("prestations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Prestation
	var allowedStaffIDs pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.PriceLabel,
		&p.DurationMinutes,
		&allowedStaffIDs,
		&p.Category,
		&p.Position,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPrestationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan prestation: %v", ErrScanRow, err)
	}

	p.AllowedStaffIDs = allowedStaffIDs
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// List получает весь каталог услуг, отсортированный для витрины:
// по категории, затем по позиции внутри категории
func (r *Repository) List(ctx context.Context) ([]*domain.Prestation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(prestationColumns...).
		From("prestations").
		OrderBy("category ASC", "position ASC", "title ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prestations := make([]*domain.Prestation, 0)
	for rows.Next() {
		var p domain.Prestation
		var allowedStaffIDs pq.Int64Array
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.PriceLabel,
			&p.DurationMinutes,
			&allowedStaffIDs,
			&p.Category,
			&p.Position,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		p.AllowedStaffIDs = allowedStaffIDs
		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time

		prestations = append(prestations, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return prestations, nil
}

// Update обновляет услугу целиком
func (r *Repository) Update(ctx context.Context, p *domain.Prestation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("prestations").
		Set("title", p.Title).
		Set("description", p.Description).
		Set("price_label", p.PriceLabel).
		Set("duration_minutes", p.DurationMinutes).
		Set("allowed_staff_ids", pq.Array(p.AllowedStaffIDs)).
		Set("category", p.Category).
		Set("position", p.Position).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPrestationNotFound
	}

	return nil
}

// Delete удаляет услугу из каталога.
// Существующие записи хранят снапшот длительности и названия,
// поэтому удаление услуги не ломает историю бронирований.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("prestations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPrestationNotFound
	}

	return nil
}
