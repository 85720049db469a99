package handler

import (
	"log/slog"
	"net/http"

	"macrolog/internal/delivery/api/response"
	"macrolog/internal/domain/entity"
	"macrolog/internal/domain/nutrition"
	"macrolog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's body metrics and goals.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpsertProfileRequest is the body of PUT/POST /profile. Omitted fields keep
// their stored value. A goal of 0 clears it.
type UpsertProfileRequest struct {
	Name          *string  `json:"name" validate:"omitempty,max=100"`
	WeightKg      *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
	HeightCm      *float64 `json:"height_cm" validate:"omitempty,gt=0"`
	Age           *int     `json:"age" validate:"omitempty,gt=0"`
	Sex           *string  `json:"sex" validate:"omitempty,oneof=male female"`
	ActivityLevel *string  `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	CalorieGoal   *float64 `json:"calorie_goal" validate:"omitempty,gte=0"`
	ProteinGoal   *float64 `json:"protein_goal" validate:"omitempty,gte=0"`
	CarbsGoal     *float64 `json:"carbs_goal" validate:"omitempty,gte=0"`
	FatGoal       *float64 `json:"fat_goal" validate:"omitempty,gte=0"`
}

// ProfileResponse is the profile plus derived targets. Profile is null until one is saved.
type ProfileResponse struct {
	Profile *entity.Profile    `json:"profile"`
	Targets *nutrition.Targets `json:"targets,omitempty"`
}

// GetProfile handles GET /profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	out, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{Profile: out.Profile, Targets: out.Targets})
}

// UpsertProfile handles PUT and POST /profile.
func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req UpsertProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.UpsertProfileInput{
		Name:        req.Name,
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		Age:         req.Age,
		CalorieGoal: req.CalorieGoal,
		ProteinGoal: req.ProteinGoal,
		CarbsGoal:   req.CarbsGoal,
		FatGoal:     req.FatGoal,
	}
	if req.Sex != nil {
		sex := entity.Sex(*req.Sex)
		input.Sex = &sex
	}
	if req.ActivityLevel != nil {
		level := entity.ActivityLevel(*req.ActivityLevel)
		input.ActivityLevel = &level
	}

	out, err := h.profileUC.UpsertProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ProfileResponse{Profile: out.Profile, Targets: out.Targets})
}
