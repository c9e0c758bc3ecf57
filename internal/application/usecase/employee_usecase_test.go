package usecase_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lunch-decider/internal/application/dto"
	"github.com/tu-usuario/lunch-decider/internal/application/usecase"
	"github.com/tu-usuario/lunch-decider/internal/domain"
	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
	"github.com/tu-usuario/lunch-decider/pkg/upload"
)

// fakeEmployeeRepo repositorio en memoria para las pruebas del caso de uso.
type fakeEmployeeRepo struct {
	byID map[string]*entity.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(e *entity.Employee) error {
	for _, ex := range r.byID {
		if ex.Email == e.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}
func (r *fakeEmployeeRepo) GetByID(id string) (*entity.Employee, error) { return r.byID[id], nil }
func (r *fakeEmployeeRepo) GetByUserID(userID string) (*entity.Employee, error) {
	for _, e := range r.byID {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeEmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	var out []*entity.Employee
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}
func (r *fakeEmployeeRepo) Update(e *entity.Employee) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}
func (r *fakeEmployeeRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// fakeStore guarda en memoria las rutas escritas.
type fakeStore struct {
	saved map[string][]byte
}

func newFakeStore() *fakeStore { return &fakeStore{saved: map[string][]byte{}} }

func (s *fakeStore) Save(path string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.saved[path] = data
	return nil
}

func validProfile() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Email:     "ana@empresa.com",
		Name:      "Ana",
		LastName:  "García",
		Bio:       "fan del sushi",
		BirthDate: "1990-05-17",
	}
}

func TestCreateProfile_OK(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo(), newFakeStore())

	out, err := uc.CreateProfile("user-1", validProfile())
	require.NoError(t, err)
	assert.Equal(t, "user-1", out.UserID, "la identidad se toma del token")
	assert.Equal(t, "Ana", out.Name)
	require.NotNil(t, out.BirthDate)
	assert.Equal(t, "1990-05-17", *out.BirthDate)
}

func TestCreateProfile_SegundoPerfilRechazado(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo, newFakeStore())

	_, err := uc.CreateProfile("user-1", validProfile())
	require.NoError(t, err)

	second := validProfile()
	second.Email = "otra@empresa.com"
	_, err = uc.CreateProfile("user-1", second)
	require.ErrorIs(t, err, domain.ErrProfileAlreadyExists)
	assert.Len(t, repo.byID, 1, "el rechazo no debe crear fila")
}

func TestCreateProfile_CamposRequeridos(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newFakeEmployeeRepo(), newFakeStore())

	in := validProfile()
	in.LastName = ""
	_, err := uc.CreateProfile("user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_ProyeccionDeListado(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo, newFakeStore())
	_, err := uc.CreateProfile("user-1", validProfile())
	require.NoError(t, err)

	items, err := uc.List(20, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ana García", items[0].FullName)
	assert.Equal(t, "ana@empresa.com", items[0].Email)
}

func TestUpdate_SoloElDueno(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo, newFakeStore())
	created, err := uc.CreateProfile("user-1", validProfile())
	require.NoError(t, err)

	_, err = uc.Update(created.ID, "user-2", dto.UpdateEmployeeRequest{Name: "Eva"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "otro usuario no puede editar el perfil")

	out, err := uc.Update(created.ID, "user-1", dto.UpdateEmployeeRequest{Name: "Eva"})
	require.NoError(t, err)
	assert.Equal(t, "Eva", out.Name)
}

func TestDelete_SoloElDueno(t *testing.T) {
	repo := newFakeEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo, newFakeStore())
	created, err := uc.CreateProfile("user-1", validProfile())
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(created.ID, "user-2"), domain.ErrForbidden)
	require.NoError(t, uc.Delete(created.ID, "user-1"))
	assert.Empty(t, repo.byID)
}

func TestAttachPicture_TipoNoSoportado(t *testing.T) {
	repo := newFakeEmployeeRepo()
	store := newFakeStore()
	uc := usecase.NewEmployeeUseCase(repo, store)
	created, err := uc.CreateProfile("user-1", validProfile())
	require.NoError(t, err)

	_, err = uc.AttachPicture(created.ID, "user-1", "cv.docx", bytes.NewReader([]byte("x")))
	require.ErrorIs(t, err, upload.ErrUnsupportedType)
	assert.Empty(t, store.saved, "nada debe escribirse si la extensión se rechaza")
}

func TestAttachPicture_GuardaYActualizaReferencia(t *testing.T) {
	repo := newFakeEmployeeRepo()
	store := newFakeStore()
	uc := usecase.NewEmployeeUseCase(repo, store)
	created, err := uc.CreateProfile("user-1", validProfile())
	require.NoError(t, err)

	out, err := uc.AttachPicture(created.ID, "user-1", "foto.png", bytes.NewReader([]byte("img")))
	require.NoError(t, err)
	assert.Contains(t, out.ProfilePicture, "ana-garcia-", "la ruta lleva el slug del nombre")
	assert.Contains(t, store.saved, out.ProfilePicture, "el archivo debe quedar guardado en esa ruta")
}
