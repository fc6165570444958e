package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"lexboard/internal/domain"
	"lexboard/internal/engine"
)

func registerTasks(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-task",
		Method:        http.MethodPost,
		Path:          "/tasks",
		Summary:       "Create task",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body CreateTaskRequest `json:"body"`
	}) (*struct {
		Body domain.Task `json:"body"`
	}, error) {
		t := e.Store.CreateTask(domain.Task{
			Title:       input.Body.Title,
			Description: stringOrEmpty(input.Body.Description),
			Type:        input.Body.Type,
			RelatedID:   input.Body.RelatedID,
			DueDate:     stringOrEmpty(input.Body.DueDate),
		})
		return &struct {
			Body domain.Task `json:"body"`
		}{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tasks",
		Method:      http.MethodGet,
		Path:        "/tasks",
		Summary:     "List tasks",
	}, func(ctx context.Context, input *struct {
		Status    string `query:"status" enum:"pending,completed,"`
		Type      string `query:"type"`
		RelatedID int    `query:"relatedId"`
	}) (*struct {
		Body []domain.Task `json:"body"`
	}, error) {
		items := e.Store.TasksWhere(func(t domain.Task) bool {
			if input.Status != "" && t.Status != input.Status {
				return false
			}
			if input.Type != "" && t.Type != input.Type {
				return false
			}
			if input.RelatedID != 0 && (t.RelatedID == nil || *t.RelatedID != input.RelatedID) {
				return false
			}
			return true
		})
		return &struct {
			Body []domain.Task `json:"body"`
		}{Body: items}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-task",
		Method:      http.MethodGet,
		Path:        "/tasks/{id}",
		Summary:     "Get task",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct {
		Body domain.Task `json:"body"`
	}, error) {
		t, ok := e.Store.GetTask(input.ID)
		if !ok {
			return nil, notFound("task", input.ID)
		}
		return &struct {
			Body domain.Task `json:"body"`
		}{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-task",
		Method:      http.MethodPatch,
		Path:        "/tasks/{id}",
		Summary:     "Update task",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID   int               `path:"id"`
		Body UpdateTaskRequest `json:"body"`
	}) (*struct {
		Body domain.Task `json:"body"`
	}, error) {
		t, ok := e.Store.UpdateTask(input.ID, input.Body.toDomain())
		if !ok {
			return nil, notFound("task", input.ID)
		}
		return &struct {
			Body domain.Task `json:"body"`
		}{Body: t}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-task",
		Method:      http.MethodDelete,
		Path:        "/tasks/{id}",
		Summary:     "Delete task",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct{}, error) {
		if !e.Store.DeleteTask(input.ID) {
			return nil, notFound("task", input.ID)
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "derive-tasks",
		Method:      http.MethodPost,
		Path:        "/tasks/derive",
		Summary:     "Derive pending tasks from hearing state",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body []domain.Task `json:"body"`
	}, error) {
		return &struct {
			Body []domain.Task `json:"body"`
		}{Body: e.DeriveTasks()}, nil
	})
}
