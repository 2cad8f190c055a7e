package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/taskdesk/taskdesk/internal/api"
	"github.com/taskdesk/taskdesk/internal/model"
	"github.com/taskdesk/taskdesk/internal/session"
)

// recordedRequest captures what the backend saw
type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

// newTaskFixture wires a logged-in session and task gateway against a test
// server that records requests and replies with the given envelope.
func newTaskFixture(t *testing.T, envelope string, record *recordedRequest) (*TaskGateway, *session.Store) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record.Method = r.Method
		record.Path = r.URL.Path
		if raw, err := io.ReadAll(r.Body); err == nil {
			record.Body = string(raw)
		}
		w.Write([]byte(envelope))
	}))
	t.Cleanup(server.Close)

	store := session.NewStore(test.NewApp())
	store.Save("tok-1", "alice", 7)
	client := api.NewClient(server.URL, store)
	return NewTaskGateway(client, store), store
}

func TestTaskList_PathScopedToUser(t *testing.T) {
	var rec recordedRequest
	gw, _ := newTaskFixture(t, `{"correct":true,"status":200,"objects":[{"idTarea":1,"titulo":"a","fechafin":"2024-03-01","estado":"PENDIENTE"}]}`, &rec)

	result, err := gw.List(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Method != http.MethodGet || rec.Path != "/tareas/listadoTareas/7" {
		t.Errorf("List mapped to %s %s", rec.Method, rec.Path)
	}
	if len(result.Objects) != 1 || result.Objects[0].Title != "a" {
		t.Errorf("Expected one decoded task, got %+v", result.Objects)
	}
}

func TestTaskGet(t *testing.T) {
	var rec recordedRequest
	gw, _ := newTaskFixture(t, `{"correct":true,"status":200,"object":{"idTarea":3,"titulo":"b","fechafin":"15/03/2024","estado":"INICIADA"}}`, &rec)

	result, err := gw.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Method != http.MethodGet || rec.Path != "/tareas/usuario/7/3" {
		t.Errorf("Get mapped to %s %s", rec.Method, rec.Path)
	}
	if result.Object == nil || result.Object.ID != 3 {
		t.Errorf("Expected decoded task 3, got %+v", result.Object)
	}
}

func TestTaskCreateAndUpdate(t *testing.T) {
	var rec recordedRequest
	gw, _ := newTaskFixture(t, `{"correct":true,"status":200}`, &rec)

	task := model.Task{Title: "new", DueDate: "2025-01-01", Status: model.TaskStatusPending}

	if _, err := gw.Create(context.Background(), task); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Method != http.MethodPost || rec.Path != "/tareas/usuario/7" {
		t.Errorf("Create mapped to %s %s", rec.Method, rec.Path)
	}

	var sent model.Task
	if err := json.Unmarshal([]byte(rec.Body), &sent); err != nil {
		t.Fatalf("Create body not valid JSON: %v", err)
	}
	if sent.Title != "new" || sent.Status != model.TaskStatusPending {
		t.Errorf("Create body mismatch: %+v", sent)
	}

	if _, err := gw.Update(context.Background(), 9, task); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Method != http.MethodPut || rec.Path != "/tareas/usuario/7/9" {
		t.Errorf("Update mapped to %s %s", rec.Method, rec.Path)
	}
}

func TestTaskDelete(t *testing.T) {
	var rec recordedRequest
	gw, _ := newTaskFixture(t, `{"correct":true,"status":200}`, &rec)

	if _, err := gw.Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if rec.Method != http.MethodDelete || rec.Path != "/tareas/usuario/eliminacion/7/4" {
		t.Errorf("Delete mapped to %s %s", rec.Method, rec.Path)
	}
}

func TestTaskChangeStatus(t *testing.T) {
	var rec recordedRequest
	gw, _ := newTaskFixture(t, `{"correct":true,"status":200}`, &rec)

	if _, err := gw.ChangeStatus(context.Background(), 4, model.TaskStatusCompleted); err != nil {
		t.Fatalf("ChangeStatus: %v", err)
	}
	if rec.Method != http.MethodPatch || rec.Path != "/tareas/usuario/7/4/estado" {
		t.Errorf("ChangeStatus mapped to %s %s", rec.Method, rec.Path)
	}

	var body map[string]string
	if err := json.Unmarshal([]byte(rec.Body), &body); err != nil {
		t.Fatalf("ChangeStatus body not valid JSON: %v", err)
	}
	if body["estado"] != "COMPLETADA" {
		t.Errorf("Expected estado COMPLETADA in body, got %v", body)
	}
}

func TestTaskCalls_RequireSession(t *testing.T) {
	var rec recordedRequest
	gw, store := newTaskFixture(t, `{"correct":true,"status":200}`, &rec)
	store.Clear()

	if _, err := gw.List(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Errorf("Expected ErrNoSession after logout, got %v", err)
	}
}

func TestTaskUserIDResolvedPerCall(t *testing.T) {
	var rec recordedRequest
	gw, store := newTaskFixture(t, `{"correct":true,"status":200,"objects":[]}`, &rec)

	if _, err := gw.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Path != "/tareas/listadoTareas/7" {
		t.Errorf("Expected first call scoped to user 7, got %s", rec.Path)
	}

	// A login as a different user between calls changes the effective target
	store.Save("tok-2", "bob", 8)
	if _, err := gw.List(context.Background()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Path != "/tareas/listadoTareas/8" {
		t.Errorf("Expected second call scoped to user 8, got %s", rec.Path)
	}
}
