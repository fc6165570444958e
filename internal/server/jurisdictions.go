package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"lexboard/internal/domain"
	"lexboard/internal/engine"
)

func registerJurisdictions(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-jurisdiction",
		Method:        http.MethodPost,
		Path:          "/jurisdictions",
		Summary:       "Register jurisdiction",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body CreateJurisdictionRequest `json:"body"`
	}) (*struct {
		Body domain.Jurisdiction `json:"body"`
	}, error) {
		if e.Config != nil && !e.Config.KnownState(input.Body.State) {
			return nil, badRequest("unknown state code " + input.Body.State)
		}
		j := e.Store.CreateJurisdiction(domain.Jurisdiction{
			Name:    input.Body.Name,
			State:   input.Body.State,
			City:    input.Body.City,
			Address: stringOrEmpty(input.Body.Address),
		})
		return &struct {
			Body domain.Jurisdiction `json:"body"`
		}{Body: j}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-jurisdictions",
		Method:      http.MethodGet,
		Path:        "/jurisdictions",
		Summary:     "List jurisdictions",
	}, func(ctx context.Context, _ *struct{}) (*struct {
		Body []domain.Jurisdiction `json:"body"`
	}, error) {
		return &struct {
			Body []domain.Jurisdiction `json:"body"`
		}{Body: e.Store.ListJurisdictions()}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-jurisdiction",
		Method:      http.MethodGet,
		Path:        "/jurisdictions/{id}",
		Summary:     "Get jurisdiction",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct {
		Body domain.Jurisdiction `json:"body"`
	}, error) {
		j, ok := e.Store.GetJurisdiction(input.ID)
		if !ok {
			return nil, notFound("jurisdiction", input.ID)
		}
		return &struct {
			Body domain.Jurisdiction `json:"body"`
		}{Body: j}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-jurisdiction",
		Method:      http.MethodPatch,
		Path:        "/jurisdictions/{id}",
		Summary:     "Update jurisdiction",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID   int                       `path:"id"`
		Body UpdateJurisdictionRequest `json:"body"`
	}) (*struct {
		Body domain.Jurisdiction `json:"body"`
	}, error) {
		if e.Config != nil && input.Body.State != nil && !e.Config.KnownState(*input.Body.State) {
			return nil, badRequest("unknown state code " + *input.Body.State)
		}
		j, ok := e.Store.UpdateJurisdiction(input.ID, domain.JurisdictionUpdate{
			Name:    input.Body.Name,
			State:   input.Body.State,
			City:    input.Body.City,
			Address: input.Body.Address,
		})
		if !ok {
			return nil, notFound("jurisdiction", input.ID)
		}
		return &struct {
			Body domain.Jurisdiction `json:"body"`
		}{Body: j}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-jurisdiction",
		Method:      http.MethodDelete,
		Path:        "/jurisdictions/{id}",
		Summary:     "Delete jurisdiction",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct{}, error) {
		if !e.Store.DeleteJurisdiction(input.ID) {
			return nil, notFound("jurisdiction", input.ID)
		}
		return &struct{}{}, nil
	})
}
