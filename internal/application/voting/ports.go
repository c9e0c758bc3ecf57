package voting

import (
	"context"
	"time"

	"github.com/tu-usuario/lunch-decider/internal/domain/repository"
)

// Clock fuente de tiempo inyectable para el filtro "el menú debe ser de hoy".
type Clock func() time.Time

// TxRunner ejecuta el registro de un voto dentro de una transacción con los
// repositorios atados a ella. La secuencia lock → count → insert de CastVote
// solo es segura frente a votos concurrentes si corre completa en una
// transacción (lo implementa postgres.TxRunner).
type TxRunner interface {
	RunVote(ctx context.Context, fn func(
		menuRepo repository.MenuRepository,
		voteRepo repository.VoteRepository,
	) error) error
}
