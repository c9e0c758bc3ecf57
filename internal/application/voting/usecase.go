package voting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/lunch-decider/internal/application/dto"
	"github.com/tu-usuario/lunch-decider/internal/domain"
	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
	"github.com/tu-usuario/lunch-decider/internal/domain/repository"
)

// VoteUseCase registra votos aplicando la política versionada.
type VoteUseCase struct {
	employees repository.EmployeeRepository
	tx        TxRunner
	clock     Clock
}

// NewVoteUseCase construye el caso de uso de votación.
func NewVoteUseCase(employees repository.EmployeeRepository, tx TxRunner, clock Clock) *VoteUseCase {
	return &VoteUseCase{employees: employees, tx: tx, clock: clock}
}

// CastVote registra un voto del usuario autenticado por un menú de hoy.
//
// El empleado se deriva de la identidad del token (nunca del cuerpo). La
// validación y el insert corren en una sola transacción: se toma un lock de
// fila sobre el menú antes de contar, de modo que dos votos concurrentes del
// mismo empleado se serializan y no pueden superar el límite de la política.
func (uc *VoteUseCase) CastVote(ctx context.Context, actingUserID, menuID string, version PolicyVersion) (*dto.VoteResponse, error) {
	if menuID == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employees.GetByUserID(actingUserID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNoEmployeeProfile
	}

	vote := &entity.Vote{
		ID:         uuid.New().String(),
		EmployeeID: employee.ID,
		MenuID:     menuID,
		CreatedAt:  time.Now(),
	}

	err = uc.tx.RunVote(ctx, func(menuRepo repository.MenuRepository, voteRepo repository.VoteRepository) error {
		menu, err := menuRepo.GetForUpdate(menuID)
		if err != nil {
			return err
		}
		if menu == nil {
			return domain.ErrNotFound
		}
		if !sameDay(menu.Date, uc.clock()) {
			return domain.ErrMenuNotToday
		}
		count, err := voteRepo.CountByEmployeeAndMenu(employee.ID, menuID)
		if err != nil {
			return err
		}
		if err := version.Validate(count); err != nil {
			return err
		}
		return voteRepo.Create(vote)
	})
	if err != nil {
		return nil, err
	}

	return &dto.VoteResponse{
		ID:         vote.ID,
		EmployeeID: vote.EmployeeID,
		MenuID:     vote.MenuID,
		CreatedAt:  vote.CreatedAt,
	}, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
