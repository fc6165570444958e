package server

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"lexboard/internal/domain"
	"lexboard/internal/engine"
)

func registerPayments(api huma.API, e engine.Engine) {
	huma.Register(api, huma.Operation{
		OperationID:   "record-payment",
		Method:        http.MethodPost,
		Path:          "/payments",
		Summary:       "Record payment",
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, func(ctx context.Context, input *struct {
		Body RecordPaymentRequest `json:"body"`
	}) (*struct {
		Body domain.Payment `json:"body"`
	}, error) {
		p, err := e.RecordPayment(engine.PaymentOptions{
			HearingID:      input.Body.HearingID,
			ProfessionalID: input.Body.ProfessionalID,
			Amount:         input.Body.Amount,
			Status:         stringOrEmpty(input.Body.Status),
			PaymentDate:    stringOrEmpty(input.Body.PaymentDate),
			Notes:          stringOrEmpty(input.Body.Notes),
		})
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body domain.Payment `json:"body"`
		}{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-payments",
		Method:      http.MethodGet,
		Path:        "/payments",
		Summary:     "List payments",
	}, func(ctx context.Context, input *struct {
		HearingID      int    `query:"hearingId"`
		ProfessionalID int    `query:"professionalId"`
		Status         string `query:"status" enum:"pending,processing,paid,"`
	}) (*struct {
		Body []domain.Payment `json:"body"`
	}, error) {
		items := e.Store.PaymentsWhere(func(p domain.Payment) bool {
			if input.HearingID != 0 && p.HearingID != input.HearingID {
				return false
			}
			if input.ProfessionalID != 0 && p.ProfessionalID != input.ProfessionalID {
				return false
			}
			if input.Status != "" && p.Status != input.Status {
				return false
			}
			return true
		})
		return &struct {
			Body []domain.Payment `json:"body"`
		}{Body: items}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-payment",
		Method:      http.MethodGet,
		Path:        "/payments/{id}",
		Summary:     "Get payment",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct {
		Body domain.Payment `json:"body"`
	}, error) {
		p, ok := e.Store.GetPayment(input.ID)
		if !ok {
			return nil, notFound("payment", input.ID)
		}
		return &struct {
			Body domain.Payment `json:"body"`
		}{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-payment",
		Method:      http.MethodPatch,
		Path:        "/payments/{id}",
		Summary:     "Update payment",
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID   int                  `path:"id"`
		Body UpdatePaymentRequest `json:"body"`
	}) (*struct {
		Body domain.Payment `json:"body"`
	}, error) {
		p, err := e.UpdatePayment(input.ID, input.Body.toDomain())
		if err != nil {
			return nil, handleError(err)
		}
		return &struct {
			Body domain.Payment `json:"body"`
		}{Body: p}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-payment",
		Method:      http.MethodDelete,
		Path:        "/payments/{id}",
		Summary:     "Delete payment",
		Errors:      []int{http.StatusNotFound},
	}, func(ctx context.Context, input *struct {
		ID int `path:"id"`
	}) (*struct{}, error) {
		if !e.Store.DeletePayment(input.ID) {
			return nil, notFound("payment", input.ID)
		}
		return &struct{}{}, nil
	})
}
