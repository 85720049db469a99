package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "macrolog/internal/delivery/context"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/repository"
	"macrolog/internal/domain/service"
	"macrolog/internal/usecase"
	"macrolog/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// exportCustomFoodLimit bounds the custom foods included in one export.
const exportCustomFoodLimit = 1000

// exportDocument is the JSON layout of an archive.
type exportDocument struct {
	UserID       uuid.UUID              `json:"user_id"`
	GeneratedAt  time.Time              `json:"generated_at"`
	Profile      *entity.Profile        `json:"profile"`
	MealPlans    []*entity.MealPlan     `json:"meal_plans"`
	PlannedFoods []*entity.PlannedFood  `json:"planned_foods"`
	CustomFoods  []*entity.CustomFood   `json:"custom_foods"`
	History      *usecase.HistoryOutput `json:"history"`
}

// exportService implements the ExportUsecase interface.
type exportService struct {
	archive         service.ArchiveStore
	dailyLogs       usecase.DailyLogUsecase
	profileRepo     repository.ProfileRepository
	mealPlanRepo    repository.MealPlanRepository
	plannedFoodRepo repository.PlannedFoodRepository
	customFoodRepo  repository.CustomFoodRepository
	logger          *slog.Logger
	now             func() time.Time
}

// ExportServiceParams holds dependencies for ExportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	Archive         service.ArchiveStore `optional:"true"`
	DailyLogs       usecase.DailyLogUsecase
	ProfileRepo     repository.ProfileRepository
	MealPlanRepo    repository.MealPlanRepository
	PlannedFoodRepo repository.PlannedFoodRepository
	CustomFoodRepo  repository.CustomFoodRepository
	Logger          *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		archive:         params.Archive,
		dailyLogs:       params.DailyLogs,
		profileRepo:     params.ProfileRepo,
		mealPlanRepo:    params.MealPlanRepo,
		plannedFoodRepo: params.PlannedFoodRepo,
		customFoodRepo:  params.CustomFoodRepo,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *exportService) Export(ctx context.Context, userID uuid.UUID, input usecase.ExportInput) (*usecase.ExportOutput, error) {
	if srv.archive == nil {
		return nil, domainerrors.ErrArchiveUnavailable
	}

	history, err := srv.dailyLogs.History(ctx, userID, usecase.HistoryInput{Today: input.Today, Days: input.Days})
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect history")
	}

	doc := &exportDocument{
		UserID:      userID,
		GeneratedAt: srv.now().UTC(),
		History:     history,
	}

	doc.Profile, err = srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	if doc.MealPlans, err = srv.mealPlanRepo.ListByUser(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}
	if doc.PlannedFoods, err = srv.plannedFoodRepo.ListByUser(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to list planned foods")
	}
	if doc.CustomFoods, err = srv.customFoodRepo.Search(ctx, userID, "", exportCustomFoodLimit); err != nil {
		return nil, errors.Wrap(err, "failed to list custom foods")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode export")
	}

	key := fmt.Sprintf("%s/%s.json", userID, doc.GeneratedAt.Format("20060102T150405Z"))
	obj, err := srv.archive.Write(ctx, key, "application/json", data)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to write export",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrArchiveUnavailable, err.Error())
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Export written",
		slog.String("key", obj.Key),
		slog.String("size", util.FormatBytes(obj.Size)),
		slog.String("sha256", util.Checksum(data)),
	)

	return &usecase.ExportOutput{
		Key:         obj.Key,
		Size:        obj.Size,
		GeneratedAt: doc.GeneratedAt,
	}, nil
}
