package repository

import "github.com/tu-usuario/lunch-decider/internal/domain/entity"

// RestaurantRepository define el puerto de persistencia para Restaurant.
// Las búsquedas devuelven (nil, nil) si no hay fila. Delete cascadea a menús y votos.
type RestaurantRepository interface {
	Create(restaurant *entity.Restaurant) error
	GetByID(id string) (*entity.Restaurant, error)
	List(limit, offset int) ([]*entity.Restaurant, error)
	Update(restaurant *entity.Restaurant) error
	Delete(id string) error
}
