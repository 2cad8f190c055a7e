package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
	"github.com/taskdesk/taskdesk/internal/session"
)

// TaskGateway maps task CRUD operations onto /tareas endpoints. Every call is
// scoped to the user id read from the session store at call time.
type TaskGateway struct {
	client  *api.Client
	session *session.Store
}

// NewTaskGateway creates the task gateway
func NewTaskGateway(client *api.Client, sess *session.Store) *TaskGateway {
	return &TaskGateway{client: client, session: sess}
}

// userID resolves the current user id, or ErrNoSession when logged out
func (g *TaskGateway) userID() (int, error) {
	id, ok := g.session.UserID()
	if !ok {
		return 0, ErrNoSession
	}
	return id, nil
}

// List fetches all tasks for the current user.
func (g *TaskGateway) List(ctx context.Context) (*api.Result[model.Task], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tareas/listadoTareas/%d", userID)
	return api.Call[model.Task](ctx, g.client, http.MethodGet, path, nil, nil)
}

// Get fetches a single task by id.
func (g *TaskGateway) Get(ctx context.Context, taskID int) (*api.Result[model.Task], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tareas/usuario/%d/%d", userID, taskID)
	return api.Call[model.Task](ctx, g.client, http.MethodGet, path, nil, nil)
}

// Create stores a new task.
func (g *TaskGateway) Create(ctx context.Context, task model.Task) (*api.Result[model.Task], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tareas/usuario/%d", userID)
	return api.Call[model.Task](ctx, g.client, http.MethodPost, path, nil, task)
}

// Update replaces a task in full.
func (g *TaskGateway) Update(ctx context.Context, taskID int, task model.Task) (*api.Result[model.Task], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tareas/usuario/%d/%d", userID, taskID)
	return api.Call[model.Task](ctx, g.client, http.MethodPut, path, nil, task)
}

// Delete removes a task.
func (g *TaskGateway) Delete(ctx context.Context, taskID int) (*api.Result[api.None], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tareas/usuario/eliminacion/%d/%d", userID, taskID)
	return api.Call[api.None](ctx, g.client, http.MethodDelete, path, nil, nil)
}

// statusPatch is the body of a status-only partial update
type statusPatch struct {
	Status model.TaskStatus `json:"estado"`
}

// ChangeStatus patches only the status of a task.
func (g *TaskGateway) ChangeStatus(ctx context.Context, taskID int, status model.TaskStatus) (*api.Result[model.Task], error) {
	userID, err := g.userID()
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/tareas/usuario/%d/%d/estado", userID, taskID)
	return api.Call[model.Task](ctx, g.client, http.MethodPatch, path, nil, statusPatch{Status: status})
}
