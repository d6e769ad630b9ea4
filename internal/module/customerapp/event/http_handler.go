package event

import (
	"net/http"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	publicMiddleware "github.com/andersonbelino29/eventmate-pro-sub001/pkg/middleware"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/response"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/gorilla/mux"
)

type HTTPHandler struct {
	EventUseCase EventUseCase
}

func InitHTTPHandler(router *mux.Router, tenantResolver *tenant.Resolver, eventUseCase EventUseCase) {
	handler := &HTTPHandler{
		EventUseCase: eventUseCase,
	}

	router.HandleFunc("/v1/customerapp/events/{id}", publicMiddleware.SetRouteChain(handler.GetEvent, tenantResolver.Resolve)).Methods(http.MethodGet)
}

func (handler HTTPHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.EventUseCase.GetEvent(ctx, mux.Vars(r)["id"])
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
		Message: "event's properties",
		Data:    resp,
	})
}
