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

// EmployeeUseCase aplica reglas de negocio para perfiles de empleado.
type EmployeeUseCase struct {
	repo  repository.EmployeeRepository
	store FileStore
}

// NewEmployeeUseCase construye el caso de uso con el puerto de persistencia
// y el almacenamiento de archivos.
func NewEmployeeUseCase(repo repository.EmployeeRepository, store FileStore) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, store: store}
}

// CreateProfile crea el perfil del usuario autenticado. La identidad viene
// del token, no del cuerpo. Un segundo perfil para el mismo usuario es un
// error de validación.
func (uc *EmployeeUseCase) CreateProfile(userID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Email == "" || in.Name == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}
	birthDate, err := parseOptionalDate(in.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		UserID:    userID,
		Email:     in.Email,
		Name:      in.Name,
		LastName:  in.LastName,
		Bio:       in.Bio,
		BirthDate: birthDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List proyección de listado: id, nombre completo y email.
func (uc *EmployeeUseCase) List(limit, offset int) ([]dto.EmployeeListItem, error) {
	employees, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeListItem, 0, len(employees))
	for _, e := range employees {
		items = append(items, dto.EmployeeListItem{
			ID:       e.ID,
			FullName: e.FullName(),
			Email:    e.Email,
		})
	}
	return items, nil
}

// GetDetail proyección de detalle de un empleado. (nil, nil) si no existe.
func (uc *EmployeeUseCase) GetDetail(id string) (*dto.EmployeeDetailResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil || e == nil {
		return nil, err
	}
	return &dto.EmployeeDetailResponse{
		FullName:       e.FullName(),
		Email:          e.Email,
		BirthDate:      formatOptionalDate(e.BirthDate),
		Bio:            e.Bio,
		ProfilePicture: e.ProfilePicture,
	}, nil
}

// Update edita el perfil. Solo el dueño (owner-or-read-only) puede escribir.
func (uc *EmployeeUseCase) Update(id, actingUserID string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}
	if in.Name != "" {
		e.Name = in.Name
	}
	if in.LastName != "" {
		e.LastName = in.LastName
	}
	e.Bio = in.Bio
	if in.BirthDate != "" {
		birthDate, err := parseOptionalDate(in.BirthDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		e.BirthDate = birthDate
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// Delete elimina el perfil (cascadea sus votos). Solo el dueño.
func (uc *EmployeeUseCase) Delete(id, actingUserID string) error {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if e.UserID != actingUserID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// AttachPicture guarda la foto de perfil y actualiza la referencia.
// Solo el dueño. Extensiones fuera de la lista → upload.ErrUnsupportedType.
func (uc *EmployeeUseCase) AttachPicture(id, actingUserID, filename string, content io.Reader) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.UserID != actingUserID {
		return nil, domain.ErrForbidden
	}
	path, err := upload.BuildPath(e.FullName(), e.FullName(), filename)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Save(path, content); err != nil {
		return nil, err
	}
	e.ProfilePicture = path
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:             e.ID,
		UserID:         e.UserID,
		Email:          e.Email,
		Name:           e.Name,
		LastName:       e.LastName,
		Bio:            e.Bio,
		BirthDate:      formatOptionalDate(e.BirthDate),
		ProfilePicture: e.ProfilePicture,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func formatOptionalDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format(entity.DateLayout)
	return &s
}
