// Package tui provides the interactive Bubble Tea dashboard for subtrack.
package tui

import (
	"fmt"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/subtrack/internal/model"
	"github.com/theirongolddev/subtrack/internal/service"
	"github.com/theirongolddev/subtrack/internal/stats"
	"github.com/theirongolddev/subtrack/internal/tui/components"
	"github.com/theirongolddev/subtrack/internal/tui/theme"
)

// DataLoadedMsg carries a fresh load of every collection.
type DataLoadedMsg struct {
	Subs     []model.Subscription
	Budgets  []model.Budget
	Cats     []model.Category
	Settings model.Settings
}

// ErrMsg carries a failed load or mutation.
type ErrMsg struct{ Err error }

// StatusMsg flashes a one-line confirmation in the status bar.
type StatusMsg struct{ Text string }

// Services bundles everything the dashboard needs; constructed by the
// caller so tests can pass in-memory stores.
type Services struct {
	Subs       *service.Subscriptions
	Budgets    *service.Budgets
	Categories *service.Categories
	Settings   *service.SettingsSvc
	Dispatch   *service.Dispatcher
	Horizon    int // renewal horizon in days
}

// App is the root Bubble Tea model.
type App struct {
	svc Services

	// Data
	subs     []model.Subscription
	budgets  []model.Budget
	cats     []model.Category
	settings model.Settings
	loaded   bool

	// Pre-computed for the current data
	summary  model.SummaryStats
	byCat    []model.CategoryStats
	statuses []model.BudgetStatus
	renewals []model.UpcomingRenewal

	// UI state
	width     int
	height    int
	activeTab int
	selected  int
	status    string
	err       error

	// Add-subscription form (nil when closed)
	form     *huh.Form
	formVals *formValues
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
)

// NewApp creates the dashboard model.
func NewApp(svc Services) App {
	if svc.Horizon <= 0 {
		svc.Horizon = 30
	}
	return App{svc: svc}
}

// Init loads all collections.
func (a App) Init() tea.Cmd {
	return a.loadData
}

func (a App) loadData() tea.Msg {
	subs, err := a.svc.Subs.List()
	if err != nil {
		return ErrMsg{err}
	}
	budgets, err := a.svc.Budgets.List()
	if err != nil {
		return ErrMsg{err}
	}
	cats, err := a.svc.Categories.List()
	if err != nil {
		return ErrMsg{err}
	}
	settings, err := a.svc.Settings.Get()
	if err != nil {
		return ErrMsg{err}
	}
	return DataLoadedMsg{Subs: subs, Budgets: budgets, Cats: cats, Settings: settings}
}

// Update handles messages and key presses.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.subs = msg.Subs
		a.budgets = msg.Budgets
		a.cats = msg.Cats
		a.settings = msg.Settings
		a.loaded = true
		a.err = nil
		a.recompute()
		return a, nil

	case ErrMsg:
		a.err = msg.Err
		return a, nil

	case StatusMsg:
		a.status = msg.Text
		return a, a.loadData
	}

	// While the add form is open it owns all input.
	if a.form != nil {
		return a.updateForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return a.handleKey(key)
	}
	return a, nil
}

func (a App) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		a.selected = 0
		return a, nil

	case "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		a.selected = 0
		return a, nil

	case "j", "down":
		if a.selected < a.selectionMax() {
			a.selected++
		}
		return a, nil

	case "k", "up":
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case "a":
		if a.activeTab == tabSubscriptions {
			return a.openForm()
		}

	case "p", "enter":
		if a.activeTab == tabSubscriptions {
			return a.dispatchSelected(service.ActionRecordPayment)
		}

	case " ":
		if a.activeTab == tabSubscriptions {
			if sub, ok := a.selectedSub(); ok {
				action := service.ActionDeactivate
				if !sub.Active {
					action = service.ActionActivate
				}
				return a.dispatchSelected(action)
			}
		}

	case "D":
		if a.activeTab == tabSubscriptions {
			return a.dispatchSelected(service.ActionDelete)
		}

	case "t":
		if a.activeTab == tabSettings {
			return a.cycleTheme()
		}
	}

	if len(key.String()) == 1 {
		if idx := components.TabIdxByKey(rune(key.String()[0])); idx >= 0 {
			a.activeTab = idx
			a.selected = 0
		}
	}
	return a, nil
}

// dispatchSelected routes the action for the selected row through the
// service dispatch table.
func (a App) dispatchSelected(action service.Action) (tea.Model, tea.Cmd) {
	sub, ok := a.selectedSub()
	if !ok {
		return a, nil
	}
	return a, func() tea.Msg {
		if _, err := a.svc.Dispatch.Dispatch(action, sub.ID); err != nil {
			return ErrMsg{err}
		}
		return StatusMsg{Text: fmt.Sprintf("%s: %s", action, sub.Name)}
	}
}

func (a App) cycleTheme() (tea.Model, tea.Cmd) {
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			next := theme.All[(i+1)%len(theme.All)]
			theme.SetActive(next.Name)
			settings := a.settings
			settings.Theme = next.Name
			return a, func() tea.Msg {
				if err := a.svc.Settings.Save(settings); err != nil {
					return ErrMsg{err}
				}
				return StatusMsg{Text: "theme: " + next.Name}
			}
		}
	}
	return a, nil
}

// recompute refreshes every derived view after a data change.
func (a *App) recompute() {
	now := time.Now()
	sort.Slice(a.subs, func(i, j int) bool {
		return a.subs[i].NextBillingDate.Before(a.subs[j].NextBillingDate)
	})
	a.summary = stats.Summarize(a.subs, a.settings, now)
	a.byCat = stats.ByCategory(a.subs, a.settings)
	a.statuses = stats.BudgetStatuses(a.budgets, a.subs)
	a.renewals = stats.UpcomingRenewals(a.subs, now, a.svc.Horizon)
	if a.selected > a.selectionMax() {
		a.selected = a.selectionMax()
	}
	if a.settings.Theme != "" {
		theme.SetActive(a.settings.Theme)
	}
}

func (a App) selectionMax() int {
	switch a.activeTab {
	case tabSubscriptions:
		if len(a.subs) > 0 {
			return len(a.subs) - 1
		}
	case tabBudgets:
		if len(a.statuses) > 0 {
			return len(a.statuses) - 1
		}
	}
	return 0
}

func (a App) selectedSub() (model.Subscription, bool) {
	if a.selected < 0 || a.selected >= len(a.subs) {
		return model.Subscription{}, false
	}
	return a.subs[a.selected], true
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabSubscriptions
	tabBudgets
	tabRenewals
	tabSettings
)

// View renders the full dashboard.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)\n", a.width, minTerminalWidth)
	}
	if !a.loaded {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  Loading…\n")
	}
	if a.form != nil {
		return "\n" + a.form.View()
	}

	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}

	var body string
	switch a.activeTab {
	case tabSubscriptions:
		body = a.renderSubscriptionsTab(cw)
	case tabBudgets:
		body = a.renderBudgetsTab(cw)
	case tabRenewals:
		body = a.renderRenewalsTab(cw)
	case tabSettings:
		body = a.renderSettingsTab(cw)
	default:
		body = a.renderOverviewTab(cw)
	}

	right := a.status
	if a.err != nil {
		right = lipgloss.NewStyle().Foreground(t.Red).Render(a.err.Error())
	}
	hints := "[tab]switch  [j/k]move  [a]dd  [p]ay  [space]pause  [D]elete  [q]uit"

	return components.RenderTabBar(a.activeTab) + "\n\n" +
		body + "\n" +
		components.RenderStatusBar(a.width, hints, right)
}
