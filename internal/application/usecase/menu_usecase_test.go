package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/lunch-decider/internal/application/dto"
	"github.com/tu-usuario/lunch-decider/internal/application/usecase"
	"github.com/tu-usuario/lunch-decider/internal/domain"
	"github.com/tu-usuario/lunch-decider/internal/domain/entity"
)

var testToday = time.Date(2026, 8, 28, 13, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testToday }

// fakeMenuRepo repositorio en memoria que reproduce los órdenes de las
// consultas reales: ranking ASC, top DESC.
type fakeMenuRepo struct {
	byID       map[string]*entity.Menu
	duplicates map[string]bool // clave restaurant_id|fecha ya usada
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{byID: map[string]*entity.Menu{}, duplicates: map[string]bool{}}
}

func dupKey(m *entity.Menu) string {
	return m.RestaurantID + "|" + m.Date.Format(entity.DateLayout)
}

func (r *fakeMenuRepo) Create(m *entity.Menu) error {
	if r.duplicates[dupKey(m)] {
		return domain.ErrDuplicateMenu
	}
	r.duplicates[dupKey(m)] = true
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}
func (r *fakeMenuRepo) GetByID(id string) (*entity.Menu, error)      { return r.byID[id], nil }
func (r *fakeMenuRepo) GetForUpdate(id string) (*entity.Menu, error) { return r.byID[id], nil }
func (r *fakeMenuRepo) ListByDate(date time.Time) ([]*entity.Menu, error) {
	var out []*entity.Menu
	for _, m := range r.byID {
		if m.Date.Format(entity.DateLayout) == date.Format(entity.DateLayout) {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeMenuRepo) ListRankedByDate(date time.Time) ([]*entity.Menu, error) {
	out, _ := r.ListByDate(date)
	sort.Slice(out, func(i, j int) bool { return out[i].TotalVotes < out[j].TotalVotes })
	return out, nil
}
func (r *fakeMenuRepo) TopByDate(date time.Time) (*entity.Menu, error) {
	menus, _ := r.ListByDate(date)
	if len(menus) == 0 {
		return nil, nil
	}
	top := menus[0]
	for _, m := range menus[1:] {
		if m.TotalVotes > top.TotalVotes {
			top = m
		}
	}
	return top, nil
}
func (r *fakeMenuRepo) Update(m *entity.Menu) error {
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}
func (r *fakeMenuRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func seedMenu(r *fakeMenuRepo, id, restaurant string, date time.Time, votes int) {
	m := &entity.Menu{
		ID:             id,
		RestaurantID:   "rest-" + id,
		RestaurantName: restaurant,
		Date:           date,
		MenuItems:      "plato del día",
		TotalVotes:     votes,
	}
	r.byID[id] = m
	r.duplicates[dupKey(m)] = true
}

func TestMenuCreate_DuplicadoPorRestauranteYFecha(t *testing.T) {
	repo := newFakeMenuRepo()
	uc := usecase.NewMenuUseCase(repo, newFakeStore(), fixedClock)

	in := dto.CreateMenuRequest{RestaurantID: "rest-1", Date: "2026-08-28", MenuItems: "pasta"}
	_, err := uc.Create(in)
	require.NoError(t, err)

	in.MenuItems = "pizza"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicateMenu,
		"un restaurante solo publica un menú por día")
}

func TestMenuCreate_FechaVaciaEsHoy(t *testing.T) {
	repo := newFakeMenuRepo()
	uc := usecase.NewMenuUseCase(repo, newFakeStore(), fixedClock)

	out, err := uc.Create(dto.CreateMenuRequest{RestaurantID: "rest-1", MenuItems: "pasta"})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-28", out.Date, "sin fecha explícita se usa el reloj inyectado")
}

func TestTopToday_EligeElMasVotado(t *testing.T) {
	repo := newFakeMenuRepo()
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	seedMenu(repo, "m1", "Bella Italia", today, 3)
	seedMenu(repo, "m2", "Sushi Ya", today, 5)
	uc := usecase.NewMenuUseCase(repo, newFakeStore(), fixedClock)

	top, err := uc.TopToday()
	require.NoError(t, err)
	require.NotNil(t, top)
	assert.Equal(t, "Sushi Ya 2026-08-28", top.Name, "con votos 3 y 5 gana el de 5")
	assert.Equal(t, 5, top.TotalVotes)
}

func TestTopToday_SinMenusDeHoy(t *testing.T) {
	repo := newFakeMenuRepo()
	seedMenu(repo, "m1", "Bella Italia", time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), 9)
	uc := usecase.NewMenuUseCase(repo, newFakeStore(), fixedClock)

	top, err := uc.TopToday()
	require.NoError(t, err)
	assert.Nil(t, top, "menús de otros días no cuentan")
}

func TestListRankedToday_OrdenAscendenteDocumentado(t *testing.T) {
	repo := newFakeMenuRepo()
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	seedMenu(repo, "m1", "Bella Italia", today, 3)
	seedMenu(repo, "m2", "Sushi Ya", today, 5)
	seedMenu(repo, "m3", "Tacos El Güero", today, 1)
	uc := usecase.NewMenuUseCase(repo, newFakeStore(), fixedClock)

	items, err := uc.ListRankedToday()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{items[0].TotalVotes, items[1].TotalVotes, items[2].TotalVotes})
}

func TestTodayMenus_SoloLosDeHoy(t *testing.T) {
	repo := newFakeMenuRepo()
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	seedMenu(repo, "m1", "Bella Italia", today, 0)
	seedMenu(repo, "m2", "Sushi Ya", today.AddDate(0, 0, -1), 0)
	uc := usecase.NewMenuUseCase(repo, newFakeStore(), fixedClock)

	menus, err := uc.TodayMenus()
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "m1", menus[0].ID)
}

func TestMenuGetDetail_IncluyeNombreDerivadoYVotos(t *testing.T) {
	repo := newFakeMenuRepo()
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	seedMenu(repo, "m1", "Bella Italia", today, 4)
	uc := usecase.NewMenuUseCase(repo, newFakeStore(), fixedClock)

	detail, err := uc.GetDetail("m1")
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Bella Italia 2026-08-28", detail.Name)
	assert.Equal(t, 4, detail.TotalVotes)
}
