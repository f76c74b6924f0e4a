// Package txmanager менеджер транзакций поверх dbmetrics.DB со сбором метрик
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/zohoustanley/barbeshop/pkg/dbmetrics"
	"github.com/zohoustanley/barbeshop/pkg/metrics"
)

const pqSerializationFailure = "40001"

const maxSerializableRetries = 3

// TxBeginner источник транзакций (dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager менеджер транзакций с метриками
type TransactionManager struct {
	db      TxBeginner
	metrics *metrics.Metrics
}

// NewTransactionManager создает менеджер транзакций.
// metrics может быть nil - тогда метрики транзакций не собираются.
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithMetrics включает сбор метрик транзакций
func (m *TransactionManager) WithMetrics(collector *metrics.Metrics) *TransactionManager {
	m.metrics = collector
	return m
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, "default", fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции с повторами
// при сбое сериализации
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		err = m.run(ctx, opts, "serializable", fn)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, "read_only", fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, isolation string, fn func(ctx context.Context) error) (err error) {
	start := time.Now()
	defer func() {
		if m.metrics == nil {
			return
		}
		status := "commit"
		if err != nil {
			status = "rollback"
		}
		m.metrics.TxTotal.WithLabelValues(isolation, status).Inc()
		m.metrics.TxDuration.WithLabelValues(isolation).Observe(time.Since(start).Seconds())
	}()

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin transaction: %w", err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err = fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("txmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit transaction: %w", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqSerializationFailure
	}
	return false
}
