package service

import (
	"context"
	"time"
)

// MealEventType names what happened.
type MealEventType string

const (
	MealEventFoodLogged       MealEventType = "food_logged"
	MealEventFoodRemoved      MealEventType = "food_removed"
	MealEventTargetRecomputed MealEventType = "target_recomputed"
)

// MealEvent is published after a committed write that changes daily or planned totals.
type MealEvent struct {
	RequestID      string        `json:"request_id,omitempty"` // For distributed tracing
	Type           MealEventType `json:"type"`
	UserID         string        `json:"user_id"`
	LogDate        string        `json:"log_date,omitempty"`
	MealPlanID     string        `json:"meal_plan_id,omitempty"`
	FoodName       string        `json:"food_name,omitempty"`
	Calories       float64       `json:"calories"`
	TargetCalories float64       `json:"target_calories,omitempty"`
	OccurredAt     time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMealEvent publishes a meal event for async consumers
	PublishMealEvent(ctx context.Context, event *MealEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
