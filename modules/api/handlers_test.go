package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/task-manager/modules/tasks"
	"github.com/gofiber/fiber/v2"
)

// mockTaskPort implements tasks.TaskPort for testing and records the last
// request it received.
type mockTaskPort struct {
	createFunc func(ctx context.Context, req *tasks.CreateTaskRequest) (*tasks.TaskResponse, error)
	getFunc    func(ctx context.Context, ownerID, taskID string) (*tasks.TaskResponse, error)
	listFunc   func(ctx context.Context, ownerID string, query tasks.ListQuery) (*tasks.ListTasksResponse, error)
	updateFunc func(ctx context.Context, req *tasks.UpdateTaskRequest) (*tasks.TaskResponse, error)
	deleteFunc func(ctx context.Context, ownerID, taskID string) error

	lastCreate *tasks.CreateTaskRequest
	lastUpdate *tasks.UpdateTaskRequest
	lastQuery  tasks.ListQuery
}

func (m *mockTaskPort) CreateTask(ctx context.Context, req *tasks.CreateTaskRequest) (*tasks.TaskResponse, error) {
	m.lastCreate = req
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &tasks.TaskResponse{ID: "task-1", Title: req.Title, UserID: req.OwnerID, Status: "Pending", Priority: "Low"}, nil
}

func (m *mockTaskPort) GetTask(ctx context.Context, ownerID, taskID string) (*tasks.TaskResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, ownerID, taskID)
	}
	return &tasks.TaskResponse{ID: taskID, UserID: ownerID}, nil
}

func (m *mockTaskPort) ListTasks(ctx context.Context, ownerID string, query tasks.ListQuery) (*tasks.ListTasksResponse, error) {
	m.lastQuery = query
	if m.listFunc != nil {
		return m.listFunc(ctx, ownerID, query)
	}
	return &tasks.ListTasksResponse{Tasks: []tasks.TaskResponse{}, Total: 0, Page: 1, Limit: 10}, nil
}

func (m *mockTaskPort) UpdateTask(ctx context.Context, req *tasks.UpdateTaskRequest) (*tasks.TaskResponse, error) {
	m.lastUpdate = req
	if m.updateFunc != nil {
		return m.updateFunc(ctx, req)
	}
	return &tasks.TaskResponse{ID: req.TaskID, UserID: req.OwnerID}, nil
}

func (m *mockTaskPort) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, ownerID, taskID)
	}
	return nil
}

// newTestApp wires the task routes behind an always-authenticated middleware.
func newTestApp(port tasks.TaskPort) *fiber.App {
	app := fiber.New()
	handlers := &Handlers{taskAdapter: port}

	taskRoutes := app.Group("/api/tasks")
	taskRoutes.Use(AuthMiddleware(validAuthPort("user-123")))
	taskRoutes.Post("/", handlers.CreateTask)
	taskRoutes.Get("/", handlers.ListTasks)
	taskRoutes.Get("/:id", handlers.GetTask)
	taskRoutes.Put("/:id", handlers.UpdateTask)
	taskRoutes.Delete("/:id", handlers.DeleteTask)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer token")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}
	return resp.StatusCode, string(data)
}

func TestCreateTaskHandler(t *testing.T) {
	t.Run("created with owner from token", func(t *testing.T) {
		mock := &mockTaskPort{}
		app := newTestApp(mock)

		status, body := doJSON(t, app, "POST", "/api/tasks/", `{"title":"Buy milk","dueDate":"2025-01-01","priority":"Medium"}`)
		if status != fiber.StatusCreated {
			t.Fatalf("status = %d, want 201 (body: %s)", status, body)
		}
		if !strings.Contains(body, `"Task created"`) {
			t.Errorf("body = %s, want a created message", body)
		}
		if mock.lastCreate.OwnerID != "user-123" {
			t.Errorf("owner = %q, want the authenticated user", mock.lastCreate.OwnerID)
		}
	})

	t.Run("validation errors are per-field", func(t *testing.T) {
		mock := &mockTaskPort{}
		app := newTestApp(mock)

		status, body := doJSON(t, app, "POST", "/api/tasks/", `{"description":"no title or date"}`)
		if status != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want 400 (body: %s)", status, body)
		}

		var resp ValidationErrorResponse
		if err := json.Unmarshal([]byte(body), &resp); err != nil {
			t.Fatalf("response not a validation error payload: %v", err)
		}
		if len(resp.Errors) != 2 {
			t.Errorf("errors = %v, want title and dueDate entries", resp.Errors)
		}
		if mock.lastCreate != nil {
			t.Error("service was called despite validation failure")
		}
	})
}

func TestListTasksHandler(t *testing.T) {
	t.Run("query parameters pass through", func(t *testing.T) {
		mock := &mockTaskPort{}
		app := newTestApp(mock)

		status, body := doJSON(t, app, "GET", "/api/tasks/?page=2&limit=5&priority=High&search=milk&sort=-dueDate", "")
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", status, body)
		}

		q := mock.lastQuery
		if q.Page != 2 || q.Limit != 5 || q.Priority != "High" || q.Search != "milk" || q.Sort != "-dueDate" {
			t.Errorf("query = %+v, want the supplied parameters", q)
		}
	})

	t.Run("rejects non-positive page", func(t *testing.T) {
		app := newTestApp(&mockTaskPort{})

		status, body := doJSON(t, app, "GET", "/api/tasks/?page=0", "")
		if status != fiber.StatusBadRequest {
			t.Errorf("status = %d, want 400 (body: %s)", status, body)
		}
	})

	t.Run("rejects unknown sort", func(t *testing.T) {
		app := newTestApp(&mockTaskPort{})

		status, body := doJSON(t, app, "GET", "/api/tasks/?sort=title", "")
		if status != fiber.StatusBadRequest {
			t.Errorf("status = %d, want 400 (body: %s)", status, body)
		}
	})
}

func TestGetTaskHandlerNotFound(t *testing.T) {
	mock := &mockTaskPort{
		getFunc: func(_ context.Context, _, _ string) (*tasks.TaskResponse, error) {
			return nil, errors.New("get-task request failed: task not found")
		},
	}
	app := newTestApp(mock)

	status, body := doJSON(t, app, "GET", "/api/tasks/some-id", "")
	if status != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404 (body: %s)", status, body)
	}
	if !strings.Contains(body, "Task not found") {
		t.Errorf("body = %s, want a not-found message", body)
	}
}

func TestUpdateTaskHandlerIgnoresOwnerField(t *testing.T) {
	mock := &mockTaskPort{}
	app := newTestApp(mock)

	// A user_id in the body must not reach the service as an owner change.
	status, body := doJSON(t, app, "PUT", "/api/tasks/task-9", `{"status":"Completed","user_id":"someone-else"}`)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", status, body)
	}

	if mock.lastUpdate.OwnerID != "user-123" {
		t.Errorf("owner = %q, want the authenticated user", mock.lastUpdate.OwnerID)
	}
	if mock.lastUpdate.TaskID != "task-9" {
		t.Errorf("task id = %q, want task-9", mock.lastUpdate.TaskID)
	}
	if mock.lastUpdate.Status == nil || *mock.lastUpdate.Status != "Completed" {
		t.Errorf("status field = %v, want Completed", mock.lastUpdate.Status)
	}
}

func TestDeleteTaskHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		app := newTestApp(&mockTaskPort{})

		status, body := doJSON(t, app, "DELETE", "/api/tasks/task-1", "")
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200 (body: %s)", status, body)
		}
		if !strings.Contains(body, "Task deleted") {
			t.Errorf("body = %s, want a deleted message", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mock := &mockTaskPort{
			deleteFunc: func(_ context.Context, _, _ string) error {
				return errors.New("delete-task request failed: task not found")
			},
		}
		app := newTestApp(mock)

		status, body := doJSON(t, app, "DELETE", "/api/tasks/missing", "")
		if status != fiber.StatusNotFound {
			t.Errorf("status = %d, want 404 (body: %s)", status, body)
		}
	})
}
