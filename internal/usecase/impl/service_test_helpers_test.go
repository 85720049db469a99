package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"macrolog/config"
	"macrolog/internal/domain/repository"
	mockRepo "macrolog/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(defaultDays, maxDays int) *config.Config {
	return &config.Config{
		History: &config.HistoryConfig{
			DefaultDays: defaultDays,
			MaxDays:     maxDays,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

// expectTx makes txManager run the callback once against a fresh factory that
// setup configures, returning whatever the callback returns.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
