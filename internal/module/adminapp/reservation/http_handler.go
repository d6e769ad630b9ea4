package reservation

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	internalMiddleware "github.com/andersonbelino29/eventmate-pro-sub001/internal/pkg/middleware"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	publicMiddleware "github.com/andersonbelino29/eventmate-pro-sub001/pkg/middleware"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/response"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type HTTPHandler struct {
	Validate           *validator.Validate
	ReservationUseCase ReservationUseCase
}

func InitHTTPHandler(router *mux.Router, tenantResolver *tenant.Resolver, adminSession *internalMiddleware.AdminSession, validate *validator.Validate, reservationUseCase ReservationUseCase) {
	handler := &HTTPHandler{
		Validate:           validate,
		ReservationUseCase: reservationUseCase,
	}

	router.HandleFunc("/v1/adminapp/reservations", publicMiddleware.SetRouteChain(handler.GetManyReservation, tenantResolver.Resolve, adminSession.Verify)).Methods(http.MethodGet)
	router.HandleFunc("/v1/adminapp/reservations/{id}/cancel", publicMiddleware.SetRouteChain(handler.CancelReservation, tenantResolver.Resolve, adminSession.Verify)).Methods(http.MethodPost)
}

func (handler HTTPHandler) validate(ctx context.Context, payload interface{}) error {
	err := handler.Validate.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	errorFields := err.(validator.ValidationErrors)

	errMessages := make([]string, len(errorFields))

	for k, errorField := range errorFields {
		errMessages[k] = fmt.Sprintf("invalid '%s' with value '%v'", errorField.Field(), errorField.Value())
	}

	return fmt.Errorf("%s", strings.Join(errMessages, ", "))
}

func (handler HTTPHandler) GetManyReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	qs := r.URL.Query()

	req := GetManyReservationRequest{}
	req.Page, _ = strconv.ParseInt(qs.Get("page"), 10, 64)
	req.Size, _ = strconv.ParseInt(qs.Get("size"), 10, 64)

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, meta, err := handler.ReservationUseCase.GetManyReservation(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "list of reservations",
		Data:    resp,
		Meta:    meta,
	})
}

func (handler HTTPHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := CancelReservationRequest{
		ID: mux.Vars(r)["id"],
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.ReservationUseCase.CancelReservation(ctx, req)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "reservation has been cancelled",
		Data:    resp,
	})
}
