package notify

import (
	"recipefridge/entities"
	"recipefridge/internal/utils"
	"recipefridge/internal/utils/mailing"
	"recipefridge/pkg/expiry"
	"recipefridge/pkg/logger"

	"context"
	"fmt"
	"sync"
	"time"
)

type (
	// Scheduler is the notification scheduling contract the inventory
	// store drives: a reminder is requested whenever an ingredient
	// acquires or changes a future expiry date, and cancelled whenever
	// the ingredient is removed or the expiry date cleared.
	Scheduler interface {
		ScheduleExpiryReminder(ingredient *entities.Ingredient)
		CancelReminder(ingredientID string)
		CancelAllReminders()
	}

	// IngredientSource supplies the persisted inventory for the initial
	// scheduling pass on startup.
	IngredientSource interface {
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
	}

	// ReminderScheduler adds the startup lifecycle to Scheduler.
	ReminderScheduler interface {
		Scheduler
		Start(ctx context.Context) error
	}
)

// The scheduler only accepts schedule/cancel requests once the initial
// inventory load has completed, so early writes cannot race the load.
type lifecycleState int

const (
	stateUninitialized lifecycleState = iota
	stateLoaded
	stateActive
)

const reminderHour = 9 // reminders fire at 09:00 local time

type reminderScheduler struct {
	mu     sync.Mutex
	state  lifecycleState
	timers map[string]*time.Timer
	source IngredientSource
	log    *logger.Logger
}

func NewReminderScheduler(source IngredientSource) ReminderScheduler {
	return &reminderScheduler{
		state:  stateUninitialized,
		timers: make(map[string]*time.Timer),
		source: source,
		log:    logger.New("notify"),
	}
}

// Start loads the persisted inventory and schedules reminders for every
// ingredient expiring within the urgency window, then activates the
// scheduler for ongoing requests.
func (s *reminderScheduler) Start(ctx context.Context) error {
	ingredients, err := s.source.GetIngredients(ctx)
	if err != nil {
		return fmt.Errorf("load ingredients for reminder scheduling: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = stateLoaded

	now := time.Now()
	for _, ingredient := range ingredients {
		if days, ok := expiry.DaysUntil(ingredient.ExpiresAt, now); ok && days >= 0 && days <= 7 {
			s.scheduleLocked(ingredient)
		}
	}

	s.state = stateActive
	s.log.Infow("reminder scheduler started", "scheduled", len(s.timers))
	return nil
}

func (s *reminderScheduler) ScheduleExpiryReminder(ingredient *entities.Ingredient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateUninitialized {
		s.log.Warnw("schedule requested before initial load, ignoring", "ingredient", ingredient.Name)
		return
	}
	s.scheduleLocked(ingredient)
}

func (s *reminderScheduler) scheduleLocked(ingredient *entities.Ingredient) {
	if ingredient.ExpiresAt == nil {
		return
	}
	if days, ok := expiry.DaysUntil(ingredient.ExpiresAt, time.Now()); !ok || days < 0 {
		return
	}

	id := ingredient.ID.String()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
	}

	name := ingredient.Name
	fireAt := reminderTime(*ingredient.ExpiresAt, time.Now())
	s.timers[id] = time.AfterFunc(time.Until(fireAt), func() {
		s.deliver(id, name)
	})
}

func (s *reminderScheduler) CancelReminder(ingredientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[ingredientID]; ok {
		timer.Stop()
		delete(s.timers, ingredientID)
	}
}

func (s *reminderScheduler) CancelAllReminders() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *reminderScheduler) deliver(ingredientID, name string) {
	s.mu.Lock()
	delete(s.timers, ingredientID)
	s.mu.Unlock()

	recipient := utils.GetConfig("REMINDER_EMAIL")
	if recipient == "" {
		s.log.Warnw("no reminder recipient configured, dropping reminder", "ingredient", name)
		return
	}

	subject := "Ingredient Expiring Soon!"
	body := fmt.Sprintf("<p><b>%s</b> will expire tomorrow. Consider using it in a recipe!</p>", name)
	if err := mailing.SendMail(recipient, subject, body); err != nil {
		s.log.Errorw("failed to send expiry reminder", "ingredient", name, "error", err)
		return
	}
	s.log.Infow("expiry reminder sent", "ingredient", name)
}

// reminderTime is one day before expiry at 09:00, pushed to tomorrow
// 09:00 when that moment has already passed.
func reminderTime(expiresAt, now time.Time) time.Time {
	fireAt := time.Date(
		expiresAt.Year(), expiresAt.Month(), expiresAt.Day(),
		reminderHour, 0, 0, 0, expiresAt.Location(),
	).AddDate(0, 0, -1)

	if fireAt.Before(now) {
		tomorrow := now.AddDate(0, 0, 1)
		fireAt = time.Date(
			tomorrow.Year(), tomorrow.Month(), tomorrow.Day(),
			reminderHour, 0, 0, 0, now.Location(),
		)
	}
	return fireAt
}
