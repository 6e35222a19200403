// Package service wires validation, the billing engine, and persistence
// behind explicitly constructed service objects. Nothing here is a
// singleton; tests supply isolated stores.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/subtrack/internal/billing"
	"github.com/theirongolddev/subtrack/internal/model"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("service: not found")

// Subscriptions manages the subscription collection.
type Subscriptions struct {
	store Storage
	now   func() time.Time
}

// Storage is the persistence surface the services need.
type Storage interface {
	Subscriptions() ([]model.Subscription, error)
	SaveSubscriptions([]model.Subscription) error
	Budgets() ([]model.Budget, error)
	SaveBudgets([]model.Budget) error
	Categories() ([]model.Category, error)
	SaveCategories([]model.Category) error
	Settings() (model.Settings, error)
	SaveSettings(model.Settings) error
}

// NewSubscriptions creates a subscription service over the given store.
func NewSubscriptions(store Storage) *Subscriptions {
	return &Subscriptions{store: store, now: time.Now}
}

// List returns all subscriptions.
func (s *Subscriptions) List() ([]model.Subscription, error) {
	return s.store.Subscriptions()
}

// Get returns one subscription by id.
func (s *Subscriptions) Get(id string) (model.Subscription, error) {
	subs, err := s.store.Subscriptions()
	if err != nil {
		return model.Subscription{}, err
	}
	for _, sub := range subs {
		if sub.ID == id {
			return sub, nil
		}
	}
	return model.Subscription{}, fmt.Errorf("subscription %s: %w", id, ErrNotFound)
}

// Create validates and stores a new subscription, assigning its id and
// timestamps. On validation failure nothing is written.
func (s *Subscriptions) Create(sub model.Subscription) (model.Subscription, error) {
	if err := validateSubscription(sub); err != nil {
		return model.Subscription{}, err
	}

	now := s.now()
	sub.ID = uuid.NewString()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	subs, err := s.store.Subscriptions()
	if err != nil {
		return model.Subscription{}, err
	}
	subs = append(subs, sub)
	if err := s.store.SaveSubscriptions(subs); err != nil {
		return model.Subscription{}, err
	}
	return sub, nil
}

// Update validates and replaces an existing subscription. Creation time
// and payment history are preserved from the stored record.
func (s *Subscriptions) Update(sub model.Subscription) (model.Subscription, error) {
	if err := validateSubscription(sub); err != nil {
		return model.Subscription{}, err
	}

	subs, err := s.store.Subscriptions()
	if err != nil {
		return model.Subscription{}, err
	}
	for i, existing := range subs {
		if existing.ID != sub.ID {
			continue
		}
		sub.CreatedAt = existing.CreatedAt
		sub.History = existing.History
		sub.UpdatedAt = s.now()
		subs[i] = sub
		if err := s.store.SaveSubscriptions(subs); err != nil {
			return model.Subscription{}, err
		}
		return sub, nil
	}
	return model.Subscription{}, fmt.Errorf("subscription %s: %w", sub.ID, ErrNotFound)
}

// Delete removes a subscription. Budgets are unaffected; they reference
// subscriptions by category name only.
func (s *Subscriptions) Delete(id string) error {
	subs, err := s.store.Subscriptions()
	if err != nil {
		return err
	}
	for i, sub := range subs {
		if sub.ID == id {
			subs = append(subs[:i], subs[i+1:]...)
			return s.store.SaveSubscriptions(subs)
		}
	}
	return fmt.Errorf("subscription %s: %w", id, ErrNotFound)
}

// SetActive toggles a subscription's active flag.
func (s *Subscriptions) SetActive(id string, active bool) (model.Subscription, error) {
	subs, err := s.store.Subscriptions()
	if err != nil {
		return model.Subscription{}, err
	}
	for i := range subs {
		if subs[i].ID == id {
			subs[i].Active = active
			subs[i].UpdatedAt = s.now()
			if err := s.store.SaveSubscriptions(subs); err != nil {
				return model.Subscription{}, err
			}
			return subs[i], nil
		}
	}
	return model.Subscription{}, fmt.Errorf("subscription %s: %w", id, ErrNotFound)
}

// RecordPayment appends a payment at the current billing date, advances
// the next billing date by one cycle, and persists.
func (s *Subscriptions) RecordPayment(id string) (model.Subscription, error) {
	subs, err := s.store.Subscriptions()
	if err != nil {
		return model.Subscription{}, err
	}
	for i := range subs {
		if subs[i].ID == id {
			billing.RecordPayment(&subs[i], s.now())
			if err := s.store.SaveSubscriptions(subs); err != nil {
				return model.Subscription{}, err
			}
			return subs[i], nil
		}
	}
	return model.Subscription{}, fmt.Errorf("subscription %s: %w", id, ErrNotFound)
}

// FindByPrefix resolves an id or unique id prefix, easing CLI usage.
func (s *Subscriptions) FindByPrefix(prefix string) (model.Subscription, error) {
	subs, err := s.store.Subscriptions()
	if err != nil {
		return model.Subscription{}, err
	}
	var match *model.Subscription
	for i := range subs {
		if subs[i].ID == prefix {
			return subs[i], nil
		}
		if len(prefix) >= 4 && len(subs[i].ID) >= len(prefix) && subs[i].ID[:len(prefix)] == prefix {
			if match != nil {
				return model.Subscription{}, fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = &subs[i]
		}
	}
	if match == nil {
		return model.Subscription{}, fmt.Errorf("subscription %s: %w", prefix, ErrNotFound)
	}
	return *match, nil
}
