package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"macrolog/config"
	deliverycontext "macrolog/internal/delivery/context"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"
	"macrolog/internal/domain/nutrition"
	"macrolog/internal/domain/repository"
	"macrolog/internal/domain/service"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dailyLogService implements the DailyLogUsecase interface.
type dailyLogService struct {
	txManager      repository.TransactionManager
	dailyLogRepo   repository.DailyLogRepository
	foodEntryRepo  repository.FoodEntryRepository
	mealPlanRepo   repository.MealPlanRepository
	customFoodRepo repository.CustomFoodRepository
	profileRepo    repository.ProfileRepository
	events         eventPublisher
	defaultDays    int
	maxDays        int
	logger         *slog.Logger
}

// DailyLogServiceParams holds dependencies for DailyLogService, injected by Fx.
type DailyLogServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DailyLogRepo   repository.DailyLogRepository
	FoodEntryRepo  repository.FoodEntryRepository
	MealPlanRepo   repository.MealPlanRepository
	CustomFoodRepo repository.CustomFoodRepository
	ProfileRepo    repository.ProfileRepository
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDailyLogService is the constructor for dailyLogService.
func NewDailyLogService(params DailyLogServiceParams) usecase.DailyLogUsecase {
	defaultDays, maxDays := 30, 60
	if params.Config != nil && params.Config.History != nil {
		if params.Config.History.MaxDays > 0 {
			maxDays = params.Config.History.MaxDays
		}
		if params.Config.History.DefaultDays > 0 {
			defaultDays = min(params.Config.History.DefaultDays, maxDays)
		}
	}

	return &dailyLogService{
		txManager:      params.TxManager,
		dailyLogRepo:   params.DailyLogRepo,
		foodEntryRepo:  params.FoodEntryRepo,
		mealPlanRepo:   params.MealPlanRepo,
		customFoodRepo: params.CustomFoodRepo,
		profileRepo:    params.ProfileRepo,
		events:         eventPublisher{publisher: params.Publisher, logger: params.Logger},
		defaultDays:    defaultDays,
		maxDays:        maxDays,
		logger:         params.Logger,
	}
}

func (srv *dailyLogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSummary aggregates one day. A day without a log yields zero totals and a nil Log.
func (srv *dailyLogService) GetSummary(ctx context.Context, userID uuid.UUID, date string) (*usecase.DailySummary, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	summary := &usecase.DailySummary{Date: date, Entries: []*entity.FoodEntry{}}

	dailyLog, err := srv.dailyLogRepo.FindByDate(ctx, userID, date)
	switch {
	case err == nil:
		summary.Log = dailyLog
		entries, err := srv.foodEntryRepo.ListByDailyLogs(ctx, userID, []uuid.UUID{dailyLog.ID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list food entries")
		}
		summary.Entries = entries
	case !errors.Is(err, repository.ErrDailyLogNotFound):
		return nil, errors.Wrap(err, "failed to find daily log")
	}

	plans, err := srv.mealPlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal plans")
	}

	summary.Totals = nutrition.SumEntries(summary.Entries)
	summary.Meals = nutrition.GroupByMeal(plans, summary.Entries)

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		targets := nutrition.ProfileTargets(profile)
		remaining := targets.CalorieGoal - summary.Totals.Calories
		summary.Targets = &targets
		summary.Remaining = &remaining
		summary.Status = nutrition.DeficitStatus(remaining)
	case !errors.Is(err, repository.ErrProfileNotFound):
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return summary, nil
}

// CreateLog returns the day's log, creating it when missing.
func (srv *dailyLogService) CreateLog(ctx context.Context, userID uuid.UUID, date string) (*entity.DailyLog, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	dailyLog, err := srv.dailyLogRepo.FindOrCreate(ctx, &entity.DailyLog{UserID: userID, LogDate: date})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create daily log")
	}

	return dailyLog, nil
}

// AddFood records a consumed food against the day's log.
func (srv *dailyLogService) AddFood(ctx context.Context, userID uuid.UUID, input usecase.AddFoodInput) (*entity.FoodEntry, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if err := validateNonNegative("quantity_grams", input.QuantityGrams); err != nil {
		return nil, err
	}

	if input.MealPlanID != nil {
		if _, err := srv.mealPlanRepo.FindByID(ctx, userID, *input.MealPlanID); err != nil {
			return nil, mapNotFound(err, repository.ErrMealPlanNotFound, domainerrors.ErrMealPlanNotFound, "failed to find meal plan")
		}
	}

	foodName := input.FoodName
	nutrients, err := srv.resolveNutrients(ctx, userID, input, &foodName)
	if err != nil {
		return nil, err
	}

	foodName, err = requireName("food_name", foodName)
	if err != nil {
		return nil, err
	}
	if err := validateNutrients(nutrients); err != nil {
		return nil, err
	}

	entry := &entity.FoodEntry{
		UserID:        userID,
		MealPlanID:    input.MealPlanID,
		FoodName:      foodName,
		QuantityGrams: input.QuantityGrams,
		Nutrients:     nutrients,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dailyLog, err := repoFactory.DailyLogRepo().FindOrCreate(ctx, &entity.DailyLog{UserID: userID, LogDate: input.Date})
		if err != nil {
			return errors.Wrap(err, "failed to find or create daily log")
		}
		entry.DailyLogID = dailyLog.ID

		return errors.Wrap(repoFactory.FoodEntryRepo().Create(ctx, entry), "failed to create food entry")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add food")
	}

	srv.log(ctx).Debug("Food logged",
		slog.String("userID", userID.String()),
		slog.String("date", input.Date),
		slog.Float64("calories", entry.Calories),
	)

	event := &service.MealEvent{
		Type:     service.MealEventFoodLogged,
		UserID:   userID.String(),
		LogDate:  input.Date,
		FoodName: entry.FoodName,
		Calories: entry.Calories,
	}
	if entry.MealPlanID != nil {
		event.MealPlanID = entry.MealPlanID.String()
	}
	srv.events.publish(ctx, event)

	return entry, nil
}

// resolveNutrients picks the nutrient source of an AddFoodInput and may fill
// in the food name from a custom food.
func (srv *dailyLogService) resolveNutrients(ctx context.Context, userID uuid.UUID, input usecase.AddFoodInput, foodName *string) (entity.Nutrients, error) {
	switch {
	case input.CustomFoodID != nil:
		food, err := srv.customFoodRepo.FindByID(ctx, userID, *input.CustomFoodID)
		if err != nil {
			return entity.Nutrients{}, mapNotFound(err, repository.ErrCustomFoodNotFound, domainerrors.ErrCustomFoodNotFound, "failed to find custom food")
		}
		if *foodName == "" {
			*foodName = food.FoodName
		}

		return food.Per100g.Scale(input.QuantityGrams), nil

	case input.Per100g != nil:
		if err := validateNutrients(*input.Per100g); err != nil {
			return entity.Nutrients{}, err
		}

		return input.Per100g.Scale(input.QuantityGrams), nil

	case input.Calories != nil:
		return entity.Nutrients{
			Calories: *input.Calories,
			Protein:  valueOr(input.Protein, 0),
			Carbs:    valueOr(input.Carbs, 0),
			Fat:      valueOr(input.Fat, 0),
		}, nil

	default:
		return entity.Nutrients{}, domainerrors.NewValidationError("calories, per_100g or custom_food_id is required")
	}
}

// UpdateLog sets weight and notes, creating the day's log when missing.
func (srv *dailyLogService) UpdateLog(ctx context.Context, userID uuid.UUID, input usecase.UpdateDailyLogInput) (*entity.DailyLog, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if input.WeightKg != nil && *input.WeightKg <= 0 {
		return nil, domainerrors.NewValidationError("weight_kg must be greater than 0")
	}

	var dailyLog *entity.DailyLog
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		logRepo := repoFactory.DailyLogRepo()

		found, err := logRepo.FindOrCreate(ctx, &entity.DailyLog{UserID: userID, LogDate: input.Date})
		if err != nil {
			return errors.Wrap(err, "failed to find or create daily log")
		}

		if input.WeightKg != nil {
			found.WeightKg = input.WeightKg
		}
		if input.Notes != nil {
			found.Notes = input.Notes
		}

		if err := logRepo.UpdateDetails(ctx, found); err != nil {
			return mapNotFound(err, repository.ErrDailyLogNotFound, domainerrors.ErrInternalError, "failed to update daily log")
		}
		dailyLog = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update daily log")
	}

	return dailyLog, nil
}

// DeleteEntry removes one of the user's food entries.
func (srv *dailyLogService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := srv.foodEntryRepo.FindByID(ctx, userID, entryID)
	if err != nil {
		return mapNotFound(err, repository.ErrFoodEntryNotFound, domainerrors.ErrFoodEntryNotFound, "failed to find food entry")
	}

	if err := srv.foodEntryRepo.Delete(ctx, userID, entryID); err != nil {
		return mapNotFound(err, repository.ErrFoodEntryNotFound, domainerrors.ErrFoodEntryNotFound, "failed to delete food entry")
	}

	event := &service.MealEvent{
		Type:     service.MealEventFoodRemoved,
		UserID:   userID.String(),
		FoodName: entry.FoodName,
		Calories: entry.Calories,
	}
	if entry.MealPlanID != nil {
		event.MealPlanID = entry.MealPlanID.String()
	}
	srv.events.publish(ctx, event)

	return nil
}

// History aggregates the window [Today-Days+1, Today].
func (srv *dailyLogService) History(ctx context.Context, userID uuid.UUID, input usecase.HistoryInput) (*usecase.HistoryOutput, error) {
	if err := validateDate(input.Today); err != nil {
		return nil, err
	}

	days := input.Days
	if days == 0 {
		days = srv.defaultDays
	}
	if days < 1 || days > srv.maxDays {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("days must be between 1 and %d", srv.maxDays))
	}
	if input.Target != nil {
		if err := validateNonNegative("target", *input.Target); err != nil {
			return nil, err
		}
	}

	window := calendarWindow(input.Today, days)
	from, to := window[0], window[len(window)-1]

	logs, err := srv.dailyLogRepo.ListBetween(ctx, userID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list daily logs")
	}

	logIDs := make([]uuid.UUID, 0, len(logs))
	for _, l := range logs {
		logIDs = append(logIDs, l.ID)
	}

	entries, err := srv.foodEntryRepo.ListByDailyLogs(ctx, userID, logIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food entries")
	}

	entriesByLog := make(map[uuid.UUID][]*entity.FoodEntry, len(logs))
	for _, e := range entries {
		entriesByLog[e.DailyLogID] = append(entriesByLog[e.DailyLogID], e)
	}

	target, err := srv.dailyTarget(ctx, userID, input.Target)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*usecase.HistoryDay, len(logs))
	historyDays := make([]usecase.HistoryDay, 0, len(logs))
	for _, l := range logs {
		dayEntries := entriesByLog[l.ID]
		if dayEntries == nil {
			dayEntries = []*entity.FoodEntry{}
		}
		historyDays = append(historyDays, usecase.HistoryDay{
			Date:          l.LogDate,
			TotalCalories: nutrition.SumEntries(dayEntries).Calories,
			Entries:       dayEntries,
		})
	}
	for i := range historyDays {
		byDate[historyDays[i].Date] = &historyDays[i]
	}

	consumption := make([]nutrition.DayConsumption, 0, len(window))
	for _, date := range window {
		day := nutrition.DayConsumption{Date: date}
		if h, ok := byDate[date]; ok {
			day.Calories = h.TotalCalories
			day.HasData = len(h.Entries) > 0
		}
		consumption = append(consumption, day)
	}

	slices.SortFunc(historyDays, func(a, b usecase.HistoryDay) int {
		switch {
		case a.Date > b.Date:
			return -1
		case a.Date < b.Date:
			return 1
		default:
			return 0
		}
	})

	return &usecase.HistoryOutput{
		From:  from,
		To:    to,
		Days:  historyDays,
		Stats: nutrition.ComputePeriodStats(consumption, target),
	}, nil
}

func (srv *dailyLogService) dailyTarget(ctx context.Context, userID uuid.UUID, override *float64) (float64, error) {
	if override != nil {
		return *override, nil
	}

	plans, err := srv.mealPlanRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list meal plans")
	}

	return nutrition.SumMealTargets(plans), nil
}

// calendarWindow returns the days dates ending at today, oldest first.
// today must already be validated.
func calendarWindow(today string, days int) []string {
	end, _ := time.Parse(entity.DateLayout, today)

	window := make([]string, days)
	for i := range days {
		window[i] = end.AddDate(0, 0, i-days+1).Format(entity.DateLayout)
	}

	return window
}
