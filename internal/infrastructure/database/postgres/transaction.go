package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Queryer est satisfait par *Client et pgx.Tx : les vérifications
// d'intégrité référentielle s'exécutent dans la même transaction que la
// suppression qu'elles protègent.
type Queryer interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Executor sous-ensemble de *Client utilisé par les services,
// substituable en test
type Executor interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) error
	ExecAffected(ctx context.Context, sql string, args ...interface{}) (int64, error)
}

type TxFunc func(tx pgx.Tx) error

// Transactor démarre une transaction et y exécute fn, satisfait par
// *TransactionManager
type Transactor interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
}

type TransactionManager struct {
	client *Client
}

func NewTransactionManager(client *Client) *TransactionManager {
	return &TransactionManager{client: client}
}

// WithTransaction exécute fn dans une transaction, rollback automatique
// si fn retourne une erreur.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn TxFunc) error {
	tx, err := tm.client.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("impossible de démarrer la transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("impossible de valider la transaction: %w", err)
	}

	return nil
}
