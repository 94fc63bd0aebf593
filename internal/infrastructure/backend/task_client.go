package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/application/ports"
)

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}

// ListTasks GET /tasks.
func (c *Client) ListTasks(ctx context.Context, ts ports.TokenSource) ([]dto.TaskView, error) {
	var ws []wireTask
	if err := c.do(ctx, "backend.ListTasks", ts, http.MethodGet, "/tasks", nil, &ws); err != nil {
		return nil, err
	}
	return taskViews(ws), nil
}

// GetTask GET /tasks/{id}.
func (c *Client) GetTask(ctx context.Context, ts ports.TokenSource, id string) (*dto.TaskView, error) {
	var w wireTask
	if err := c.do(ctx, "backend.GetTask", ts, http.MethodGet, taskPath(id), nil, &w); err != nil {
		return nil, err
	}
	v := w.view()
	return &v, nil
}

// CreateTask POST /tasks.
func (c *Client) CreateTask(ctx context.Context, ts ports.TokenSource, in dto.CreateTaskRequest) (*dto.TaskView, error) {
	var w wireTask
	if err := c.do(ctx, "backend.CreateTask", ts, http.MethodPost, "/tasks", in, &w); err != nil {
		return nil, err
	}
	return optionalTask(w), nil
}

// UpdateTask PUT /tasks/{id}; solo se envían los campos no nil.
func (c *Client) UpdateTask(ctx context.Context, ts ports.TokenSource, id string, in dto.UpdateTaskRequest) (*dto.TaskView, error) {
	var w wireTask
	if err := c.do(ctx, "backend.UpdateTask", ts, http.MethodPut, taskPath(id), in, &w); err != nil {
		return nil, err
	}
	return optionalTask(w), nil
}

// AssignUser POST /tasks/{id}/assign.
func (c *Client) AssignUser(ctx context.Context, ts ports.TokenSource, taskID, userID string) (*dto.TaskView, error) {
	var w wireTask
	in := dto.AssignUserRequest{UserID: userID}
	if err := c.do(ctx, "backend.AssignUser", ts, http.MethodPost, taskPath(taskID)+"/assign", in, &w); err != nil {
		return nil, err
	}
	return optionalTask(w), nil
}

// UnassignUser DELETE /tasks/{id}/assign/{userId}.
func (c *Client) UnassignUser(ctx context.Context, ts ports.TokenSource, taskID, userID string) (*dto.TaskView, error) {
	var w wireTask
	path := taskPath(taskID) + "/assign/" + url.PathEscape(userID)
	if err := c.do(ctx, "backend.UnassignUser", ts, http.MethodDelete, path, nil, &w); err != nil {
		return nil, err
	}
	return optionalTask(w), nil
}

// optionalTask tarea de la respuesta, o nil si el endpoint solo devolvió un
// mensaje. No se hace una segunda petición.
func optionalTask(w wireTask) *dto.TaskView {
	if w.ID == "" {
		return nil
	}
	v := w.view()
	return &v
}
