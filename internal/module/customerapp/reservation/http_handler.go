package reservation

import (
	"context"
	"encoding/json"
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

func InitHTTPHandler(router *mux.Router, tenantResolver *tenant.Resolver, customerSession *internalMiddleware.CustomerSession, validate *validator.Validate, reservationUseCase ReservationUseCase) {
	handler := &HTTPHandler{
		Validate:           validate,
		ReservationUseCase: reservationUseCase,
	}

	router.HandleFunc("/v1/customerapp/reservation-draft", publicMiddleware.SetRouteChain(handler.SaveDraft, tenantResolver.Resolve)).Methods(http.MethodPut)
	router.HandleFunc("/v1/customerapp/reservation-draft", publicMiddleware.SetRouteChain(handler.LoadDraft, tenantResolver.Resolve)).Methods(http.MethodGet)
	router.HandleFunc("/v1/customerapp/reservation-draft", publicMiddleware.SetRouteChain(handler.ClearDraft, tenantResolver.Resolve)).Methods(http.MethodDelete)
	router.HandleFunc("/v1/customerapp/checkout-sessions", publicMiddleware.SetRouteChain(handler.CreateCheckoutSession, tenantResolver.Resolve)).Methods(http.MethodPost)
	router.HandleFunc("/v1/customerapp/checkout-sessions/on-completed", publicMiddleware.SetRouteChain(handler.OnCheckoutCompleted)).Methods(http.MethodPost)
	router.HandleFunc("/v1/customerapp/reservations/confirm", publicMiddleware.SetRouteChain(handler.ConfirmWithoutPayment, tenantResolver.Resolve)).Methods(http.MethodPost)
	router.HandleFunc("/v1/customerapp/reservations", publicMiddleware.SetRouteChain(handler.GetManyReservation, tenantResolver.Resolve, customerSession.Verify)).Methods(http.MethodGet)
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

func sessionIDFromRequest(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

func (handler HTTPHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := sessionIDFromRequest(r)
	if sessionID == "" {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: "missing 'X-Session-ID' header",
		})

		return
	}

	req := SaveDraftRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.ReservationUseCase.SaveDraft(ctx, sessionID, req)
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
		Message: "reservation draft has been saved",
		Data:    resp,
	})
}

func (handler HTTPHandler) LoadDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := sessionIDFromRequest(r)
	if sessionID == "" {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: "missing 'X-Session-ID' header",
		})

		return
	}

	resp, err := handler.ReservationUseCase.LoadDraft(ctx, sessionID)
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
		Message: "reservation draft",
		Data:    resp,
	})
}

func (handler HTTPHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := sessionIDFromRequest(r)
	if sessionID == "" {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: "missing 'X-Session-ID' header",
		})

		return
	}

	if err := handler.ReservationUseCase.ClearDraft(ctx, sessionID); err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "reservation draft has been cleared",
	})
}

func (handler HTTPHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := CreateCheckoutSessionRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	if err := handler.validate(ctx, req); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	resp, err := handler.ReservationUseCase.CreateCheckoutSession(ctx, r.Header.Get("Origin"), req)
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
		Message: "checkout session has been created",
		Data:    resp,
	})
}

func (handler HTTPHandler) OnCheckoutCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	e := CheckoutCompletedEvent{}
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		response.JSON(w, http.StatusUnprocessableEntity, response.RESTEnvelope{
			Status:  status.UNPROCESSABLE_ENTITY,
			Message: err.Error(),
		})

		return
	}

	if err := handler.validate(ctx, e); err != nil {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: err.Error(),
		})

		return
	}

	if err := handler.ReservationUseCase.OnCheckoutCompleted(ctx, e); err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "reservation has been updated by checkout completion",
	})
}

func (handler HTTPHandler) ConfirmWithoutPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := sessionIDFromRequest(r)
	if sessionID == "" {
		response.JSON(w, http.StatusBadRequest, response.RESTEnvelope{
			Status:  status.BAD_REQUEST,
			Message: "missing 'X-Session-ID' header",
		})

		return
	}

	resp, err := handler.ReservationUseCase.ConfirmWithoutPayment(ctx, sessionID)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusCreated, response.RESTEnvelope{
		Status:  status.CREATED,
		Message: "reservation has been confirmed without payment",
		Data:    resp,
	})
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

	resp, err := handler.ReservationUseCase.GetManyReservation(ctx, req)
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
	})
}
