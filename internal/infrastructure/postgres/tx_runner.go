package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/lunch-decider/internal/application/voting"
	"github.com/tu-usuario/lunch-decider/internal/domain/repository"
)

// Ensure TxRunner implements voting.TxRunner.
var _ voting.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunVote inicia una transacción, ejecuta fn con los repos de menús y votos
// atados a la tx y hace Commit o Rollback. Combinado con el lock de fila de
// MenuRepo.GetForUpdate, cierra la carrera check-then-insert del voto: dos
// peticiones concurrentes del mismo empleado se serializan sobre el menú.
func (r *TxRunner) RunVote(ctx context.Context, fn func(
	menuRepo repository.MenuRepository,
	voteRepo repository.VoteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	menuRepo := NewMenuRepository(tx)
	voteRepo := NewVoteRepository(tx)

	if err := fn(menuRepo, voteRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
