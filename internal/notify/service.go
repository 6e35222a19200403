// Package notify watches for due renewals and budget alerts.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/theirongolddev/subtrack/internal/billing"
	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/service"
	"github.com/theirongolddev/subtrack/internal/stats"
)

// AlertKind distinguishes renewal reminders from budget alerts.
type AlertKind string

// Alert kinds.
const (
	KindRenewal AlertKind = "renewal"
	KindBudget  AlertKind = "budget"
)

// Alert is one actionable notification.
type Alert struct {
	Kind      AlertKind        `json:"kind"`
	Key       string           `json:"key"` // stable identity for de-duplication
	Message   string           `json:"message"`
	Level     model.AlertLevel `json:"level"`
	Timestamp time.Time        `json:"timestamp"`
}

// Config controls the watcher runtime behavior.
type Config struct {
	Interval            time.Duration
	DefaultReminderDays int
	EventsBuffer        int
	OnAlert             func(Alert) // called outside the lock for each new alert
}

// Service polls the store on an interval and surfaces alerts that were
// not present on the previous poll.
type Service struct {
	cfg   Config
	store service.Storage
	now   func() time.Time

	mu         sync.RWMutex
	startedAt  time.Time
	lastPollAt time.Time
	pollCount  int64
	lastError  string
	seen       map[string]struct{}
	events     []Alert
}

// New returns a watcher over the given store.
func New(store service.Storage, cfg Config) *Service {
	if cfg.Interval < time.Minute {
		cfg.Interval = time.Hour
	}
	if cfg.DefaultReminderDays < 0 {
		cfg.DefaultReminderDays = 3
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	return &Service{
		cfg:       cfg,
		store:     store,
		now:       time.Now,
		startedAt: time.Now(),
		seen:      make(map[string]struct{}),
	}
}

// Run polls until ctx is canceled. The first poll happens immediately.
func (s *Service) Run(ctx context.Context) error {
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.pollOnce()
		}
	}
}

// Evaluate computes the alerts currently due, without touching watcher
// state. Used by Run and by the one-shot `subtrack remind` command.
func (s *Service) Evaluate() ([]Alert, error) {
	settings, err := s.store.Settings()
	if err != nil {
		return nil, err
	}
	subs, err := s.store.Subscriptions()
	if err != nil {
		return nil, err
	}
	budgets, err := s.store.Budgets()
	if err != nil {
		return nil, err
	}

	now := s.now()
	var alerts []Alert

	if settings.NotifyRenewals {
		for _, sub := range subs {
			if !sub.Active {
				continue
			}
			days := billing.DaysUntilRenewal(now, sub.NextBillingDate)
			if !reminderDue(days, sub.ReminderDays, s.cfg.DefaultReminderDays) {
				continue
			}
			alerts = append(alerts, Alert{
				Kind:      KindRenewal,
				Key:       fmt.Sprintf("renewal/%s/%s", sub.ID, sub.NextBillingDate.Format("2006-01-02")),
				Message:   renewalMessage(sub, days),
				Level:     renewalLevel(days),
				Timestamp: now,
			})
		}
	}

	if settings.NotifyBudgets {
		for _, bs := range stats.BudgetStatuses(budgets, subs) {
			if bs.Level != model.AlertWarning && bs.Level != model.AlertDanger {
				continue
			}
			alerts = append(alerts, Alert{
				Kind: KindBudget,
				Key:  fmt.Sprintf("budget/%s/%s", bs.Budget.ID, bs.Level),
				Message: fmt.Sprintf("budget %s at %.0f%% (%.2f of %.2f %s)",
					budgetName(bs.Budget), bs.PercentUsed, bs.Spent, bs.Budget.Amount, bs.Budget.Currency),
				Level:     bs.Level,
				Timestamp: now,
			})
		}
	}

	return alerts, nil
}

func (s *Service) pollOnce() {
	alerts, err := s.Evaluate()

	s.mu.Lock()
	s.lastPollAt = s.now()
	s.pollCount++
	if err != nil {
		s.lastError = err.Error()
		s.mu.Unlock()
		return
	}
	s.lastError = ""

	var fresh []Alert
	for _, a := range alerts {
		if _, ok := s.seen[a.Key]; ok {
			continue
		}
		s.seen[a.Key] = struct{}{}
		s.events = append(s.events, a)
		fresh = append(fresh, a)
	}
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}
	s.mu.Unlock()

	if s.cfg.OnAlert != nil {
		for _, a := range fresh {
			s.cfg.OnAlert(a)
		}
	}
}

// Events returns a copy of the retained alert history.
func (s *Service) Events() []Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Alert, len(s.events))
	copy(out, s.events)
	return out
}

// reminderDue reports whether a renewal in `days` matches any configured
// reminder offset. Subscriptions without offsets use the default. Overdue
// renewals always remind.
func reminderDue(days int, offsets []int, fallback int) bool {
	if days < 0 {
		return true
	}
	if len(offsets) == 0 {
		return days <= fallback
	}
	for _, o := range offsets {
		if days == o {
			return true
		}
	}
	return false
}

func renewalMessage(sub model.Subscription, days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%s renewal overdue by %dd (%.2f %s)", sub.Name, -days, sub.Cost, sub.Currency)
	case days == 0:
		return fmt.Sprintf("%s renews today (%.2f %s)", sub.Name, sub.Cost, sub.Currency)
	default:
		return fmt.Sprintf("%s renews in %dd (%.2f %s)", sub.Name, days, sub.Cost, sub.Currency)
	}
}

func renewalLevel(days int) model.AlertLevel {
	switch {
	case days < 0:
		return model.AlertDanger
	case days <= 1:
		return model.AlertWarning
	default:
		return model.AlertInfo
	}
}

func budgetName(b model.Budget) string {
	if b.Category != "" {
		return string(b.Type) + "/" + b.Category
	}
	return string(b.Type)
}
