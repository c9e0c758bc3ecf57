package repository

import (
	"time"

	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
)

// MenuRepository define el puerto de persistencia para Menu.
// Todas las lecturas pueblan RestaurantName y TotalVotes. Las búsquedas
// devuelven (nil, nil) si no hay fila. Delete cascadea a votos.
type MenuRepository interface {
	Create(menu *entity.Menu) error
	GetByID(id string) (*entity.Menu, error)
	// GetForUpdate lee el menú tomando un lock de fila (SELECT ... FOR UPDATE).
	// Solo tiene efecto dentro de una transacción (ver postgres.TxRunner).
	GetForUpdate(id string) (*entity.Menu, error)
	// ListByDate menús de una fecha, sin orden de ranking.
	ListByDate(date time.Time) ([]*entity.Menu, error)
	// ListRankedByDate menús de una fecha ordenados por total de votos ASC,
	// el orden que documenta la proyección de ranking.
	ListRankedByDate(date time.Time) ([]*entity.Menu, error)
	// TopByDate el menú más votado de la fecha (total de votos DESC, LIMIT 1).
	TopByDate(date time.Time) (*entity.Menu, error)
	Update(menu *entity.Menu) error
	Delete(id string) error
}
