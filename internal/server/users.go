package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"lexboard/internal/domain"
	"lexboard/internal/engine"
)

func registerUsers(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Create user",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body CreateUserRequest `json:"body"`
	}) (*struct {
		Body domain.User `json:"body"`
	}, error) {
		u := e.Store.CreateUser(domain.User{
			Name:  input.Body.Name,
			Email: input.Body.Email,
			Role:  stringOrEmpty(input.Body.Role),
		})
		return &struct {
			Body domain.User `json:"body"`
		}{Body: u}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body []domain.User `json:"body"`
	}, error) {
		return &struct {
			Body []domain.User `json:"body"`
		}{Body: e.Store.ListUsers()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Get user",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct {
		Body domain.User `json:"body"`
	}, error) {
		u, ok := e.Store.GetUser(input.ID)
		if !ok {
			return nil, notFound("user", input.ID)
		}
		return &struct {
			Body domain.User `json:"body"`
		}{Body: u}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPatch,
		Path:        "/users/{id}",
		Summary:     "Update user",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID   int               `path:"id"`
		Body UpdateUserRequest `json:"body"`
	}) (*struct {
		Body domain.User `json:"body"`
	}, error) {
		u, ok := e.Store.UpdateUser(input.ID, domain.UserUpdate{
			Name:  input.Body.Name,
			Email: input.Body.Email,
			Role:  input.Body.Role,
		})
		if !ok {
			return nil, notFound("user", input.ID)
		}
		return &struct {
			Body domain.User `json:"body"`
		}{Body: u}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/users/{id}",
		Summary:     "Delete user",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct{}, error) {
		if !e.Store.DeleteUser(input.ID) {
			return nil, notFound("user", input.ID)
		}
		return &struct{}{}, nil
	})
}
