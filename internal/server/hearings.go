package server

import (
	"context"
	"fmt"
	"net/http"
	"path"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"lexboard/internal/domain"
	"lexboard/internal/engine"
)

func registerHearings(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-hearing",
		Method:        http.MethodPost,
		Path:          "/hearings",
		Summary:       "Schedule hearing",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body CreateHearingRequest `json:"body"`
	}) (*struct {
		Body domain.Hearing `json:"body"`
	}, error) {
		if _, ok := e.Store.GetJurisdiction(input.Body.JurisdictionID); !ok {
			return nil, badRequest(fmt.Sprintf("jurisdiction %d: invalid reference", input.Body.JurisdictionID))
		}
		if e.Config != nil && !e.Config.KnownArea(input.Body.Area) {
			return nil, badRequest("unknown area " + input.Body.Area)
		}
		h := domain.Hearing{
			ProcessNumber:  input.Body.ProcessNumber,
			JurisdictionID: input.Body.JurisdictionID,
			Date:           input.Body.Date,
			Time:           input.Body.Time,
			Type:           input.Body.Type,
			Area:           input.Body.Area,
			ProfessionalID: input.Body.ProfessionalID,
			Notes:          stringOrEmpty(input.Body.Notes),
		}
		if h.ProfessionalID != nil {
			h.Status = domain.HearingAssigned
		}
		h = e.Store.CreateHearing(h)
		return &struct {
			Body domain.Hearing `json:"body"`
		}{Body: h}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-hearings",
		Method:      http.MethodGet,
		Path:        "/hearings",
		Summary:     "List hearings",
	}, func(ctx context.Context, input *struct {
		Status         string `query:"status" enum:"pending,assigned,completed,cancelled,"`
		Date           string `query:"date" example:"2024-03-20"`
		JurisdictionID int    `query:"jurisdictionId"`
		ProfessionalID int    `query:"professionalId"`
		Type           string `query:"type"`
		Area           string `query:"area"`
	}) (*struct {
		Body []domain.Hearing `json:"body"`
	}, error) {
		items := e.Store.HearingsWhere(func(h domain.Hearing) bool {
			if input.Status != "" && h.Status != input.Status {
				return false
			}
			if input.Date != "" && h.Date != input.Date {
				return false
			}
			if input.JurisdictionID != 0 && h.JurisdictionID != input.JurisdictionID {
				return false
			}
			if input.ProfessionalID != 0 && (h.ProfessionalID == nil || *h.ProfessionalID != input.ProfessionalID) {
				return false
			}
			if input.Type != "" && h.Type != input.Type {
				return false
			}
			if input.Area != "" && h.Area != input.Area {
				return false
			}
			return true
		})
		return &struct {
			Body []domain.Hearing `json:"body"`
		}{Body: items}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-hearing",
		Method:      http.MethodGet,
		Path:        "/hearings/{id}",
		Summary:     "Get hearing",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct {
		Body domain.Hearing `json:"body"`
	}, error) {
		h, ok := e.Store.GetHearing(input.ID)
		if !ok {
			return nil, notFound("hearing", input.ID)
		}
		return &struct {
			Body domain.Hearing `json:"body"`
		}{Body: h}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-hearing",
		Method:      http.MethodPatch,
		Path:        "/hearings/{id}",
		Summary:     "Update hearing",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict},
	}, func(ctx context.Context, input *struct {
		ID   int                  `path:"id"`
		Body UpdateHearingRequest `json:"body"`
	}) (*struct {
		Body domain.Hearing `json:"body"`
	}, error) {
		if input.Body.JurisdictionID != nil {
			if _, ok := e.Store.GetJurisdiction(*input.Body.JurisdictionID); !ok {
				return nil, badRequest(fmt.Sprintf("jurisdiction %d: invalid reference", *input.Body.JurisdictionID))
			}
		}
		if e.Config != nil && input.Body.Area != nil && !e.Config.KnownArea(*input.Body.Area) {
			return nil, badRequest("unknown area " + *input.Body.Area)
		}
		// Status changes go through the lifecycle validator; the rest is a
		// plain merge.
		if input.Body.Status != nil {
			if _, err := e.SetHearingStatus(input.ID, *input.Body.Status, false); err != nil {
				return nil, handleError(err)
			}
		}
		h, ok := e.Store.UpdateHearing(input.ID, input.Body.toDomain())
		if !ok {
			return nil, notFound("hearing", input.ID)
		}
		return &struct {
			Body domain.Hearing `json:"body"`
		}{Body: h}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-hearing",
		Method:      http.MethodDelete,
		Path:        "/hearings/{id}",
		Summary:     "Delete hearing",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct{}, error) {
		if !e.Store.DeleteHearing(input.ID) {
			return nil, notFound("hearing", input.ID)
		}
		return &struct{}{}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "eligible-professionals",
		Method:      http.MethodGet,
		Path:        "/hearings/{id}/eligible-professionals",
		Summary:     "List professionals eligible for a hearing",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct {
		Body []domain.Professional `json:"body"`
	}, error) {
		items, err := e.EligibleProfessionals(input.ID)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body []domain.Professional `json:"body"`
		}{Body: items}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "assign-professional",
		Method:      http.MethodPost,
		Path:        "/hearings/{id}/assign",
		Summary:     "Assign a professional to a hearing",
		Errors:      []int{http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity},
	}, func(ctx context.Context, input *struct {
		ID   int                       `path:"id"`
		Body AssignProfessionalRequest `json:"body"`
	}) (*struct {
		Body domain.Hearing `json:"body"`
	}, error) {
		h, err := e.AssignProfessional(input.ID, input.Body.ProfessionalID, input.Body.Force)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body domain.Hearing `json:"body"`
		}{Body: h}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "upload-minutes",
		Method:      http.MethodPost,
		Path:        "/hearings/{id}/minutes",
		Summary:     "Record a minutes upload for a hearing",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict},
	}, func(ctx context.Context, input *struct {
		ID   int                  `path:"id"`
		Body UploadMinutesRequest `json:"body"`
	}) (*struct {
		Body domain.Hearing `json:"body"`
	}, error) {
		fileRef := "minutes/" + uuid.NewString() + path.Ext(input.Body.FileName)
		h, err := e.RecordMinutesUpload(input.ID, fileRef)
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body domain.Hearing `json:"body"`
		}{Body: h}, nil
	})
}
