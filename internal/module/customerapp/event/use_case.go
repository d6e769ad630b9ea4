package event

import (
	"context"
	"net/http"
	"time"

	"github.com/andersonbelino29/eventmate-pro-sub001/internal/module/customerapp/tenant"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/errors"
	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
	"github.com/sirupsen/logrus"
)

type EventUseCase interface {
	GetEvent(ctx context.Context, ID string) (GetEventResponse, error)
}

type eventUseCase struct {
	logger          *logrus.Logger
	timeout         time.Duration
	eventRepository EventRepository
	tableRepository TableRepository
}

type EventUseCaseProperty struct {
	Logger          *logrus.Logger
	Timeout         time.Duration
	EventRepository EventRepository
	TableRepository TableRepository
}

func NewEventUseCase(props EventUseCaseProperty) EventUseCase {
	return &eventUseCase{
		logger:          props.Logger,
		timeout:         props.Timeout,
		eventRepository: props.EventRepository,
		tableRepository: props.TableRepository,
	}
}

// GetEvent implements EventUseCase. Only published events are visible to
// visitors.
func (u *eventUseCase) GetEvent(ctx context.Context, ID string) (GetEventResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	t, err := tenant.FromCtx(ctx)
	if err != nil {
		return GetEventResponse{}, err
	}

	e, err := u.eventRepository.FindByID(ctx, t.ID, ID)
	if err != nil {
		return GetEventResponse{}, err
	}

	if e.Status != StatusPublished {
		return GetEventResponse{}, errors.New(http.StatusNotFound, status.NOT_FOUND, "event is not available")
	}

	tables, err := u.tableRepository.FindManyByEventID(ctx, e.ID)
	if err != nil {
		return GetEventResponse{}, err
	}

	resp := GetEventResponse{}
	resp.PopulateFromEntity(e, tables)
	resp.ItemLabel = t.ItemConfig.SingularLabel

	return resp, nil
}
