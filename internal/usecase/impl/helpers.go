// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	deliverycontext "macrolog/internal/delivery/context"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/service"

	"github.com/pkg/errors"
)

// mapNotFound converts a repository sentinel into the matching domain error and
// wraps anything else with context.
func mapNotFound(err, repoErr error, domainErr *domainerrors.BaseError, msg string) error {
	if errors.Is(err, repoErr) {
		return errors.Wrap(domainErr, msg)
	}

	return errors.Wrap(err, msg)
}

func validateDate(date string) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return domainerrors.NewValidationError("date must be formatted as YYYY-MM-DD")
	}

	return nil
}

func validateNonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return domainerrors.NewValidationError(field + " must be a non-negative number")
	}

	return nil
}

func validateNutrients(n entity.Nutrients) error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"carbs", n.Carbs},
		{"fat", n.Fat},
	} {
		if err := validateNonNegative(f.name, f.value); err != nil {
			return err
		}
	}

	return nil
}

func requireName(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", domainerrors.NewValidationError(field + " is required")
	}

	return value, nil
}

func valueOr(p *float64, fallback float64) float64 {
	if p != nil {
		return *p
	}

	return fallback
}

// eventPublisher wraps a service.EventPublisher so that failures are logged
// and never surface to the caller; the triggering write is already committed.
type eventPublisher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func (p eventPublisher) publish(ctx context.Context, event *service.MealEvent) {
	if p.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := p.publisher.PublishMealEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, p.logger).Warn("Failed to publish meal event",
			slog.String("type", string(event.Type)),
			slog.String("user_id", event.UserID),
			slog.Any("error", err),
		)
	}
}
