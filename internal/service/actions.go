package service

import (
	"fmt"

	"github.com/theirongolddev/subtrack/internal/model"
)

// Action identifies a user-invokable mutation on a subscription. UI code
// dispatches through a typed table instead of looking methods up by name.
type Action int

// Subscription actions.
const (
	ActionRecordPayment Action = iota
	ActionActivate
	ActionDeactivate
	ActionDelete
)

// String returns the action's display name.
func (a Action) String() string {
	switch a {
	case ActionRecordPayment:
		return "record payment"
	case ActionActivate:
		return "activate"
	case ActionDeactivate:
		return "deactivate"
	case ActionDelete:
		return "delete"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ActionHandler applies one action to the subscription with the given id.
// The returned subscription is the zero value for ActionDelete.
type ActionHandler func(id string) (model.Subscription, error)

// Dispatcher maps actions to handlers over one subscription service.
type Dispatcher struct {
	handlers map[Action]ActionHandler
}

// NewDispatcher builds the action table for the given service.
func NewDispatcher(subs *Subscriptions) *Dispatcher {
	return &Dispatcher{handlers: map[Action]ActionHandler{
		ActionRecordPayment: subs.RecordPayment,
		ActionActivate: func(id string) (model.Subscription, error) {
			return subs.SetActive(id, true)
		},
		ActionDeactivate: func(id string) (model.Subscription, error) {
			return subs.SetActive(id, false)
		},
		ActionDelete: func(id string) (model.Subscription, error) {
			return model.Subscription{}, subs.Delete(id)
		},
	}}
}

// Dispatch runs the handler registered for the action.
func (d *Dispatcher) Dispatch(a Action, id string) (model.Subscription, error) {
	h, ok := d.handlers[a]
	if !ok {
		return model.Subscription{}, fmt.Errorf("no handler for %s", a)
	}
	return h(id)
}
