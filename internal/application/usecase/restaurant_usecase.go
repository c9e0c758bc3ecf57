package usecase

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/lunch-decider/internal/application/dto"
	"github.com/tu-usuario/lunch-decider/internal/domain"
	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
	"github.com/tu-usuario/lunch-decider/internal/domain/repository"
	"github.com/tu-usuario/lunch-decider/pkg/upload"
)

// RestaurantUseCase aplica reglas de negocio para restaurantes.
// Las escrituras son de administrador; eso se exige en la capa HTTP.
type RestaurantUseCase struct {
	repo  repository.RestaurantRepository
	store FileStore
}

// NewRestaurantUseCase construye el caso de uso.
func NewRestaurantUseCase(repo repository.RestaurantRepository, store FileStore) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo, store: store}
}

// Create crea un restaurante.
func (uc *RestaurantUseCase) Create(in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.Restaurant{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Address:     in.Address,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(r); err != nil {
		return nil, err
	}
	return toRestaurantResponse(r), nil
}

// List proyección de listado con descripción truncada.
func (uc *RestaurantUseCase) List(limit, offset int) ([]dto.RestaurantListItem, error) {
	restaurants, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RestaurantListItem, 0, len(restaurants))
	for _, r := range restaurants {
		items = append(items, dto.RestaurantListItem{
			ID:                 r.ID,
			Name:               r.Name,
			DescriptionPreview: r.DescriptionPreview(),
		})
	}
	return items, nil
}

// GetDetail proyección de detalle. (nil, nil) si no existe.
func (uc *RestaurantUseCase) GetDetail(id string) (*dto.RestaurantDetailResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil || r == nil {
		return nil, err
	}
	return &dto.RestaurantDetailResponse{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Picture:     r.Picture,
	}, nil
}

// Update edita un restaurante.
func (uc *RestaurantUseCase) Update(id string, in dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		r.Name = in.Name
	}
	if in.Address != "" {
		r.Address = in.Address
	}
	r.Description = in.Description
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return toRestaurantResponse(r), nil
}

// Delete elimina un restaurante; la DB cascadea menús y votos.
func (uc *RestaurantUseCase) Delete(id string) error {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// AttachPicture guarda la foto del restaurante y actualiza la referencia.
func (uc *RestaurantUseCase) AttachPicture(id, filename string, content io.Reader) (*dto.RestaurantResponse, error) {
	r, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	path, err := upload.BuildPath(r.Name, r.Name, filename)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(path, content); err != nil {
		return nil, err
	}
	r.Picture = path
	r.UpdatedAt = time.Now()
	if err := uc.repo.Update(r); err != nil {
		return nil, err
	}
	return toRestaurantResponse(r), nil
}

func toRestaurantResponse(r *entity.Restaurant) *dto.RestaurantResponse {
	if r == nil {
		return nil
	}
	return &dto.RestaurantResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		Description: r.Description,
		Picture:     r.Picture,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
