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

// MenuUseCase aplica reglas de negocio para menús diarios.
// Todas las vistas acotadas a "hoy" usan el reloj inyectado.
type MenuUseCase struct {
	repo  repository.MenuRepository
	store FileStore
	clock Clock
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(repo repository.MenuRepository, store FileStore, clock Clock) *MenuUseCase {
	return &MenuUseCase{repo: repo, store: store, clock: clock}
}

// Create crea el menú de un restaurante para una fecha (hoy si viene vacía).
// Un segundo menú para el mismo (restaurante, fecha) → ErrDuplicateMenu.
func (uc *MenuUseCase) Create(in dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	if in.RestaurantID == "" || in.MenuItems == "" {
		return nil, domain.ErrInvalidInput
	}
	date := truncateToDay(uc.clock())
	if in.Date != "" {
		parsed, err := time.Parse(entity.DateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}
	now := time.Now()
	m := &entity.Menu{
		ID:           uuid.New().String(),
		RestaurantID: in.RestaurantID,
		Date:         date,
		MenuItems:    in.MenuItems,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMenuResponse(m), nil
}

// ListRankedToday proyección de ranking de los menús de hoy, ordenados por
// total de votos ASC (el orden documentado por la vista de ranking; el "top"
// usa DESC, ver TopToday).
func (uc *MenuUseCase) ListRankedToday() ([]dto.RankedMenuItem, error) {
	menus, err := uc.repo.ListRankedByDate(truncateToDay(uc.clock()))
	if err != nil {
		return nil, err
	}
	items := make([]dto.RankedMenuItem, 0, len(menus))
	for _, m := range menus {
		items = append(items, dto.RankedMenuItem{
			ID:         m.ID,
			Name:       m.DisplayName(),
			TotalVotes: m.TotalVotes,
		})
	}
	return items, nil
}

// GetDetail proyección de detalle con total de votos. (nil, nil) si no existe.
func (uc *MenuUseCase) GetDetail(id string) (*dto.MenuDetailResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil || m == nil {
		return nil, err
	}
	return toMenuDetailResponse(m), nil
}

// TodayMenus todos los menús de hoy, proyección completa, sin ranking.
func (uc *MenuUseCase) TodayMenus() ([]dto.MenuResponse, error) {
	menus, err := uc.repo.ListByDate(truncateToDay(uc.clock()))
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuResponse, 0, len(menus))
	for _, m := range menus {
		items = append(items, *toMenuResponse(m))
	}
	return items, nil
}

// TopToday el menú de hoy con más votos, en proyección de detalle.
// Orden explícito por total de votos DESC. (nil, nil) si hoy no hay menús.
func (uc *MenuUseCase) TopToday() (*dto.MenuDetailResponse, error) {
	m, err := uc.repo.TopByDate(truncateToDay(uc.clock()))
	if err != nil || m == nil {
		return nil, err
	}
	return toMenuDetailResponse(m), nil
}

// Update edita un menú.
func (uc *MenuUseCase) Update(id string, in dto.CreateMenuRequest) (*dto.MenuResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.MenuItems != "" {
		m.MenuItems = in.MenuItems
	}
	if in.Date != "" {
		parsed, err := time.Parse(entity.DateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		m.Date = parsed
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMenuResponse(m), nil
}

// Delete elimina un menú; la DB cascadea sus votos.
func (uc *MenuUseCase) Delete(id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// AttachFile guarda la carta del día (imagen o PDF) y actualiza la referencia.
func (uc *MenuUseCase) AttachFile(id, filename string, content io.Reader) (*dto.MenuResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	path, err := upload.BuildPath(m.DisplayName(), m.DisplayName(), filename)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(path, content); err != nil {
		return nil, err
	}
	m.Attachment = path
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return toMenuResponse(m), nil
}

func toMenuResponse(m *entity.Menu) *dto.MenuResponse {
	if m == nil {
		return nil
	}
	return &dto.MenuResponse{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Date:         m.Date.Format(entity.DateLayout),
		MenuItems:    m.MenuItems,
		Attachment:   m.Attachment,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toMenuDetailResponse(m *entity.Menu) *dto.MenuDetailResponse {
	return &dto.MenuDetailResponse{
		Name:       m.DisplayName(),
		MenuItems:  m.MenuItems,
		Attachment: m.Attachment,
		TotalVotes: m.TotalVotes,
	}
}

// truncateToDay descarta la parte horaria; los menús se comparan por fecha.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
