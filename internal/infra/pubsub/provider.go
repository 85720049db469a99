package pubsub

import (
	"context"
	"log/slog"

	"macrolog/config"
	"macrolog/internal/domain/constants"
	"macrolog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops meal events when no broker is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishMealEvent(ctx context.Context, event *service.MealEvent) error {
	p.logger.Debug("[NoopPubSub] Meal event dropped, publishing disabled",
		slog.String("type", string(event.Type)),
		slog.String("user_id", event.UserID),
		slog.String("log_date", event.LogDate),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// checkedPublisher refuses meal events that consumers could not attribute to
// a user, so malformed events never reach the broker.
type checkedPublisher struct {
	service.EventPublisher
}

func (p checkedPublisher) PublishMealEvent(ctx context.Context, event *service.MealEvent) error {
	if err := validateMealEvent(event); err != nil {
		return err
	}

	return p.EventPublisher.PublishMealEvent(ctx, event)
}

func validateMealEvent(event *service.MealEvent) error {
	if event == nil {
		return errors.New("meal event is nil")
	}
	if event.UserID == "" {
		return errors.Errorf("meal event %q has no user id", event.Type)
	}

	switch event.Type {
	case service.MealEventFoodLogged:
		if event.LogDate == "" {
			return errors.Errorf("meal event %q has no log date", event.Type)
		}
	case service.MealEventFoodRemoved:
	case service.MealEventTargetRecomputed:
		if event.MealPlanID == "" {
			return errors.Errorf("meal event %q has no meal plan id", event.Type)
		}
	default:
		return errors.Errorf("unknown meal event type %q", event.Type)
	}

	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates the meal event publisher selected by pubsub.provider.
// Without a provider, events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, meal events will not be published")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := newBrokerPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing meal event publisher")

			return publisher.Close()
		},
	})

	return checkedPublisher{EventPublisher: publisher}, nil
}

func newBrokerPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing meal events to local HTTP endpoint",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Publishing meal events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
