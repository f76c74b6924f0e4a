package dbmetrics

import "context"

type ctxKey struct{}

// WithTx кладет активную транзакцию в контекст.
// Репозитории увидят её через GetExecutor и выполнят запросы в рамках транзакции.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// TxFromContext достает транзакцию из контекста (nil, если её нет)
func TxFromContext(ctx context.Context) TxExecutor {
	tx, _ := ctx.Value(ctxKey{}).(TxExecutor)
	return tx
}

// IsInTransaction сообщает, есть ли в контексте активная транзакция
func IsInTransaction(ctx context.Context) bool {
	return TxFromContext(ctx) != nil
}

// GetExecutor возвращает транзакцию из контекста, либо fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return fallback
}
