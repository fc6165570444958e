package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"lexboard/internal/domain"
	"lexboard/internal/engine"
)

func registerProfessionals(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-professional",
		Method:        http.MethodPost,
		Path:          "/professionals",
		Summary:       "Register professional",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body CreateProfessionalRequest `json:"body"`
	}) (*struct {
		Body domain.Professional `json:"body"`
	}, error) {
		if e.Config != nil {
			for _, state := range input.Body.Jurisdictions {
				if !e.Config.KnownState(state) {
					return nil, badRequest("unknown state code " + state)
				}
			}
		}
		active := true
		if input.Body.Active != nil {
			active = *input.Body.Active
		}
		p := e.Store.CreateProfessional(domain.Professional{
			Name:           input.Body.Name,
			Email:          input.Body.Email,
			Phone:          stringOrEmpty(input.Body.Phone),
			Type:           input.Body.Type,
			Specialization: input.Body.Specialization,
			Jurisdictions:  input.Body.Jurisdictions,
			Active:         active,
		})
		return &struct {
			Body domain.Professional `json:"body"`
		}{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-professionals",
		Method:      http.MethodGet,
		Path:        "/professionals",
		Summary:     "List professionals",
	}, func(ctx context.Context, input *struct {
		Type           string `query:"type" enum:"lawyer,court_official,"`
		Specialization string `query:"specialization"`
		State          string `query:"state"`
		// huma panics on pointer query params, so optionality is modeled as
		// an enum-validated string: "" means the filter is not applied.
		Active         string `query:"active" enum:"true,false,"`
	}) (*struct {
		Body []domain.Professional `json:"body"`
	}, error) {
		items := e.Store.ProfessionalsWhere(func(p domain.Professional) bool {
			if input.Type != "" && p.Type != input.Type {
				return false
			}
			if input.Specialization != "" && p.Specialization != input.Specialization {
				return false
			}
			if input.State != "" && !containsString(p.Jurisdictions, input.State) {
				return false
			}
			if input.Active != "" && p.Active != (input.Active == "true") {
				return false
			}
			return true
		})
		return &struct {
			Body []domain.Professional `json:"body"`
		}{Body: items}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-professional",
		Method:      http.MethodGet,
		Path:        "/professionals/{id}",
		Summary:     "Get professional",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct {
		Body domain.Professional `json:"body"`
	}, error) {
		p, ok := e.Store.GetProfessional(input.ID)
		if !ok {
			return nil, notFound("professional", input.ID)
		}
		return &struct {
			Body domain.Professional `json:"body"`
		}{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-professional",
		Method:      http.MethodPatch,
		Path:        "/professionals/{id}",
		Summary:     "Update professional",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID   int                       `path:"id"`
		Body UpdateProfessionalRequest `json:"body"`
	}) (*struct {
		Body domain.Professional `json:"body"`
	}, error) {
		if e.Config != nil {
			for _, state := range input.Body.Jurisdictions {
				if !e.Config.KnownState(state) {
					return nil, badRequest("unknown state code " + state)
				}
			}
		}
		p, ok := e.Store.UpdateProfessional(input.ID, domain.ProfessionalUpdate{
			Name:           input.Body.Name,
			Email:          input.Body.Email,
			Phone:          input.Body.Phone,
			Type:           input.Body.Type,
			Specialization: input.Body.Specialization,
			Jurisdictions:  input.Body.Jurisdictions,
			Active:         input.Body.Active,
		})
		if !ok {
			return nil, notFound("professional", input.ID)
		}
		return &struct {
			Body domain.Professional `json:"body"`
		}{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-professional",
		Method:      http.MethodDelete,
		Path:        "/professionals/{id}",
		Summary:     "Delete professional",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct{}, error) {
		if !e.Store.DeleteProfessional(input.ID) {
			return nil, notFound("professional", input.ID)
		}
		return &struct{}{}, nil
	})
}

func containsString(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
