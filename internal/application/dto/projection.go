package dto

// Action tipo de operación sobre una colección.
type Action string

// Projection variante de serialización de salida.
type Projection string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionWrite    Action = "write"
)

const (
	ProjectionList   Projection = "list"   // vista resumida para listados
	ProjectionDetail Projection = "detail" // vista ampliada de un recurso
	ProjectionFull   Projection = "full"   // todos los campos almacenados
	ProjectionRanked Projection = "ranked" // id + nombre + total de votos
)

// Mapa explícito acción → proyección por entidad, en lugar de dispatch por
// herencia: los listados de menús usan la proyección de ranking, el detalle
// la vista ampliada y las escrituras devuelven el registro completo.
var (
	employeeProjections = map[Action]Projection{
		ActionList:     ProjectionList,
		ActionRetrieve: ProjectionDetail,
		ActionWrite:    ProjectionFull,
	}
	restaurantProjections = map[Action]Projection{
		ActionList:     ProjectionList,
		ActionRetrieve: ProjectionDetail,
		ActionWrite:    ProjectionFull,
	}
	menuProjections = map[Action]Projection{
		ActionList:     ProjectionRanked,
		ActionRetrieve: ProjectionDetail,
		ActionWrite:    ProjectionFull,
	}
)

// EmployeeProjectionFor proyección a usar para una acción sobre empleados.
func EmployeeProjectionFor(a Action) Projection { return projectionFor(employeeProjections, a) }

// RestaurantProjectionFor proyección a usar para una acción sobre restaurantes.
func RestaurantProjectionFor(a Action) Projection { return projectionFor(restaurantProjections, a) }

// MenuProjectionFor proyección a usar para una acción sobre menús.
func MenuProjectionFor(a Action) Projection { return projectionFor(menuProjections, a) }

func projectionFor(m map[Action]Projection, a Action) Projection {
	if p, ok := m[a]; ok {
		return p
	}
	return ProjectionFull
}
