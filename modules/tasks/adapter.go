package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskAdapter implements TaskPort using the service container.
type TaskAdapter struct {
	container mono.ServiceContainer
}

// Compile-time interface check.
var _ TaskPort = (*TaskAdapter)(nil)

// NewTaskAdapter creates a new TaskAdapter.
func NewTaskAdapter(container mono.ServiceContainer) *TaskAdapter {
	return &TaskAdapter{
		container: container,
	}
}

// call is the shared request-reply plumbing for task services.
func call[T any](a *TaskAdapter, ctx context.Context, service string, req any, resp *T) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	); err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	return nil
}

// CreateTask creates a new task owned by the caller.
func (a *TaskAdapter) CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := call(a, ctx, "create-task", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTask fetches a single task scoped to the owner.
func (a *TaskAdapter) GetTask(ctx context.Context, ownerID, taskID string) (*TaskResponse, error) {
	req := GetTaskRequest{OwnerID: ownerID, TaskID: taskID}
	var resp TaskResponse
	if err := call(a, ctx, "get-task", &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTasks lists the owner's tasks matching the query.
func (a *TaskAdapter) ListTasks(ctx context.Context, ownerID string, query ListQuery) (*ListTasksResponse, error) {
	req := ListTasksRequest{OwnerID: ownerID, Query: query}
	var resp ListTasksResponse
	if err := call(a, ctx, "list-tasks", &req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTask applies a partial update scoped to the owner.
func (a *TaskAdapter) UpdateTask(ctx context.Context, req *UpdateTaskRequest) (*TaskResponse, error) {
	var resp TaskResponse
	if err := call(a, ctx, "update-task", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTask permanently removes a task scoped to the owner.
func (a *TaskAdapter) DeleteTask(ctx context.Context, ownerID, taskID string) error {
	req := DeleteTaskRequest{OwnerID: ownerID, TaskID: taskID}
	var resp DeleteTaskResponse
	return call(a, ctx, "delete-task", &req, &resp)
}
