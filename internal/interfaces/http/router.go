package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestor-Tareas/internal/application/session"
	"github.com/jhoicas/Gestor-Tareas/internal/application/usecase"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions      *session.Manager
	Dashboard     *usecase.DashboardUseCase
	AdminTasks    *usecase.AdminTasksUseCase
	AdminUsers    *usecase.AdminUsersUseCase
	SecureCookies bool
}

// Router registra las rutas del BFF.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(SessionMiddleware(deps.Sessions, deps.SecureCookies))

	// Públicas
	authHandler := NewAuthHandler()
	app.Get("/", authHandler.Root)
	app.Get(LoginPath, authHandler.LoginPage)
	app.Post(LoginPath, authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/me", RequireAuth(LoginPath), authHandler.Me)

	// Mis tareas: basta con estar autenticado; cada acción exige su permiso
	dash := app.Group(HomePath, RequireAuth(LoginPath))
	dashHandler := NewDashboardHandler(deps.Dashboard)
	dash.Get("/", dashHandler.View)
	dash.Post("/tasks", RequireCapability(access.RequirePermission(access.PermCreate), nil), dashHandler.CreateTask)
	dash.Put("/tasks/:id", RequireCapability(access.RequirePermission(access.PermUpdate), nil), dashHandler.UpdateTask)
	dash.Put("/tasks/:id/state", RequireCapability(access.RequirePermission(access.PermUpdate), nil), dashHandler.ChangeState)

	// Administración (solo Administrador)
	admin := app.Group("/admin",
		RequireAuth(LoginPath),
		RequireCapability(access.RequireRole(access.RoleAdministrador), AccessDenied),
	)
	tasksHandler := NewAdminTasksHandler(deps.AdminTasks)
	admin.Get("/", tasksHandler.Overview)
	admin.Get("/tasks/report.pdf", tasksHandler.Report)
	admin.Get("/tasks", tasksHandler.Board)
	admin.Post("/tasks", tasksHandler.CreateTask)
	admin.Put("/tasks/:id", tasksHandler.UpdateTask)
	admin.Post("/tasks/:id/assign", tasksHandler.AssignUser)
	admin.Delete("/tasks/:id/assign/:userId", tasksHandler.UnassignUser)

	usersHandler := NewAdminUsersHandler(deps.AdminUsers)
	admin.Get("/users", usersHandler.Directory)
	admin.Get("/users/stats", usersHandler.Stats)
	admin.Post("/users", usersHandler.CreateUser)
	admin.Put("/users/:id", usersHandler.UpdateUser)
	admin.Delete("/users/:id", usersHandler.DeleteUser)
	admin.Post("/users/:id/restore", usersHandler.RestoreUser)
	admin.Put("/users/:id/role", usersHandler.AssignRole)
	admin.Delete("/users/:id/roles/:role", usersHandler.RemoveRole)
	admin.Get("/roles", usersHandler.Roles)
}
