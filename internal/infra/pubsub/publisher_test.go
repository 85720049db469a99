package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"macrolog/config"
	"macrolog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishMealEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishMealEvent(context.Background(), &service.MealEvent{
		RequestID:  "req-1",
		Type:       service.MealEventFoodLogged,
		UserID:     "user-1",
		MealPlanID: "plan-1",
		Calories:   325,
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "food_logged", received.Message.Attributes["type"])
	assert.Equal(t, "plan-1", received.Message.Attributes["meal_plan_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.MealEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, 325.0, event.Calories)
	assert.Equal(t, "user-1", event.UserID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishMealEvent(context.Background(), &service.MealEvent{Type: service.MealEventFoodRemoved})

	assert.ErrorContains(t, err, "502")
}

func TestNewEventPublisher(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	t.Run("unconfigured is noop", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(nil))
		require.NoError(t, err)
		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishMealEvent(context.Background(), &service.MealEvent{}))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local"}))
		assert.Error(t, err)
	})

	t.Run("google requires topic", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "google", ProjectID: "p"}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
		assert.ErrorContains(t, err, "kafka")
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(newParams(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://127.0.0.1:1"}))
		require.NoError(t, err)
		require.IsType(t, checkedPublisher{}, publisher)
		assert.IsType(t, &localHTTPPublisher{}, publisher.(checkedPublisher).EventPublisher)
	})
}

func TestCheckedPublisher_RejectsUnattributedEvents(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := checkedPublisher{EventPublisher: NewLocalHTTPPublisher(server.URL, discardLogger())}
	ctx := context.Background()

	tests := []struct {
		name  string
		event *service.MealEvent
	}{
		{"nil event", nil},
		{"missing user", &service.MealEvent{Type: service.MealEventFoodLogged, LogDate: "2024-03-01"}},
		{"logged without date", &service.MealEvent{Type: service.MealEventFoodLogged, UserID: "user-1"}},
		{"recompute without plan", &service.MealEvent{Type: service.MealEventTargetRecomputed, UserID: "user-1"}},
		{"unknown type", &service.MealEvent{Type: "meal_skipped", UserID: "user-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, publisher.PublishMealEvent(ctx, tt.event))
		})
	}
	assert.Zero(t, calls)

	require.NoError(t, publisher.PublishMealEvent(ctx, &service.MealEvent{
		Type:    service.MealEventFoodLogged,
		UserID:  "user-1",
		LogDate: "2024-03-01",
	}))
	require.NoError(t, publisher.PublishMealEvent(ctx, &service.MealEvent{Type: service.MealEventFoodRemoved, UserID: "user-1"}))
	assert.Equal(t, 2, calls)
}
