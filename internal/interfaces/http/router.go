package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/lunch-decider/internal/application/auth"
	"github.com/tu-usuario/lunch-decider/internal/application/usecase"
	"github.com/tu-usuario/lunch-decider/internal/application/voting"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	RestaurantUC *usecase.RestaurantUseCase
	MenuUC       *usecase.MenuUseCase
	VoteUC       *voting.VoteUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Restaurants: lectura pública, escritura de administrador
	restaurants := api.Group("/restaurants", OptionalAuthMiddleware(deps.JWTSecret), AuthenticatedOrReadOnly(), AdminOrReadOnly())
	restaurantHandler := NewRestaurantHandler(deps.RestaurantUC)
	restaurants.Get("/", restaurantHandler.List)
	restaurants.Post("/", restaurantHandler.Create)
	restaurants.Get("/:id", restaurantHandler.GetByID)
	restaurants.Put("/:id", restaurantHandler.Update)
	restaurants.Delete("/:id", restaurantHandler.Delete)
	restaurants.Put("/:id/picture", restaurantHandler.AttachPicture)

	// Menus: lectura pública, escritura de administrador
	menus := api.Group("/menus", OptionalAuthMiddleware(deps.JWTSecret), AuthenticatedOrReadOnly(), AdminOrReadOnly())
	menuHandler := NewMenuHandler(deps.MenuUC)
	menus.Get("/", menuHandler.List)
	menus.Post("/", menuHandler.Create)
	menus.Get("/:id", menuHandler.GetByID)
	menus.Put("/:id", menuHandler.Update)
	menus.Delete("/:id", menuHandler.Delete)
	menus.Put("/:id/attachment", menuHandler.AttachFile)

	// Employees: lectura pública, escritura autenticada; el caso de uso
	// restringe editar y borrar al dueño del perfil
	employees := api.Group("/employees", OptionalAuthMiddleware(deps.JWTSecret), AuthenticatedOrReadOnly())
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Put("/:id/picture", employeeHandler.AttachPicture)

	// Votos y vistas del día (requieren Bearer Token)
	voteHandler := NewVoteHandler(deps.VoteUC)
	api.Post("/votes", AuthMiddleware(deps.JWTSecret), voteHandler.Cast)
	api.Get("/today", AuthMiddleware(deps.JWTSecret), menuHandler.Today)
	api.Get("/top", AuthMiddleware(deps.JWTSecret), menuHandler.Top)
}
