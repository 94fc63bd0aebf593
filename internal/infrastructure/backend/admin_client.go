package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/ports"
)

func userPath(id string) string {
	return "/users/" + url.PathEscape(id)
}

// ListUsers GET /users (activos).
func (c *Client) ListUsers(ctx context.Context, ts ports.TokenSource) ([]dto.AdminUserView, error) {
	var ws []wireUser
	if err := c.do(ctx, "backend.ListUsers", ts, http.MethodGet, "/users", nil, &ws); err != nil {
		return nil, err
	}
	return userViews(ws, false), nil
}

// ListDeletedUsers GET /users/deleted. Siempre inactivos.
func (c *Client) ListDeletedUsers(ctx context.Context, ts ports.TokenSource) ([]dto.AdminUserView, error) {
	var ws []wireUser
	if err := c.do(ctx, "backend.ListDeletedUsers", ts, http.MethodGet, "/users/deleted", nil, &ws); err != nil {
		return nil, err
	}
	return userViews(ws, true), nil
}

// ListUserSummaries GET /users/simple, para los selectores de asignación.
func (c *Client) ListUserSummaries(ctx context.Context, ts ports.TokenSource) ([]dto.UserSummaryView, error) {
	var ws []wireUser
	if err := c.do(ctx, "backend.ListUserSummaries", ts, http.MethodGet, "/users/simple", nil, &ws); err != nil {
		return nil, err
	}
	out := make([]dto.UserSummaryView, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.summaryView())
	}
	return out, nil
}

// CreateUser POST /users.
func (c *Client) CreateUser(ctx context.Context, ts ports.TokenSource, in dto.CreateUserRequest) (*dto.AdminUserView, error) {
	var w wireUser
	if err := c.do(ctx, "backend.CreateUser", ts, http.MethodPost, "/users", in, &w); err != nil {
		return nil, err
	}
	return optionalUser(w), nil
}

// UpdateUser PUT /users/{id}.
func (c *Client) UpdateUser(ctx context.Context, ts ports.TokenSource, id string, in dto.UpdateUserRequest) (*dto.AdminUserView, error) {
	var w wireUser
	if err := c.do(ctx, "backend.UpdateUser", ts, http.MethodPut, userPath(id), in, &w); err != nil {
		return nil, err
	}
	return optionalUser(w), nil
}

// DeleteUser DELETE /users/{id} (borrado lógico).
func (c *Client) DeleteUser(ctx context.Context, ts ports.TokenSource, id string) error {
	return c.do(ctx, "backend.DeleteUser", ts, http.MethodDelete, userPath(id), nil, nil)
}

// RestoreUser POST /users/{id}/restore.
func (c *Client) RestoreUser(ctx context.Context, ts ports.TokenSource, id string) (*dto.AdminUserView, error) {
	var w wireUser
	if err := c.do(ctx, "backend.RestoreUser", ts, http.MethodPost, userPath(id)+"/restore", nil, &w); err != nil {
		return nil, err
	}
	return optionalUser(w), nil
}

// AssignRole POST /users/{id}/roles. El backend reemplaza el rol anterior.
func (c *Client) AssignRole(ctx context.Context, ts ports.TokenSource, userID, role string) (*dto.AdminUserView, error) {
	var w wireUser
	in := dto.RoleRequest{Role: role}
	if err := c.do(ctx, "backend.AssignRole", ts, http.MethodPost, userPath(userID)+"/roles", in, &w); err != nil {
		return nil, err
	}
	return optionalUser(w), nil
}

// RemoveRole DELETE /users/{id}/roles/{roleName}.
func (c *Client) RemoveRole(ctx context.Context, ts ports.TokenSource, userID, role string) (*dto.AdminUserView, error) {
	var w wireUser
	path := userPath(userID) + "/roles/" + url.PathEscape(role)
	if err := c.do(ctx, "backend.RemoveRole", ts, http.MethodDelete, path, nil, &w); err != nil {
		return nil, err
	}
	return optionalUser(w), nil
}

// ListRoles GET /roles.
func (c *Client) ListRoles(ctx context.Context, ts ports.TokenSource) ([]dto.RoleView, error) {
	var ws []wireRole
	if err := c.do(ctx, "backend.ListRoles", ts, http.MethodGet, "/roles", nil, &ws); err != nil {
		return nil, err
	}
	out := make([]dto.RoleView, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.view())
	}
	return out, nil
}

// optionalUser nil cuando la respuesta no trae el usuario (solo un mensaje).
func optionalUser(w wireUser) *dto.AdminUserView {
	if w.ID == "" {
		return nil
	}
	v := w.adminView()
	return &v
}
