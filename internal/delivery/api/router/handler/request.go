package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"macrolog/config"
	apimiddleware "macrolog/internal/delivery/api/middleware"
	"macrolog/internal/domain/constants"
	"macrolog/internal/domain/entity"
	domainerrors "macrolog/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeletedResponse is returned by every delete endpoint.
type DeletedResponse struct {
	Success bool `json:"success"`
}

// currentUser returns the user resolved by the auth middleware.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := apimiddleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError("id must be a valid UUID")
	}

	return id, nil
}

func optionalUUID(field, value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("%s must be a valid UUID", field))
	}

	return &id, nil
}

func optionalInt(field, value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domainerrors.NewValidationError(fmt.Sprintf("%s must be an integer", field))
	}

	return n, nil
}

func optionalFloat(field, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, domainerrors.NewValidationError(fmt.Sprintf("%s must be a number", field))
	}

	return &f, nil
}

// bindAndValidate decodes the request into req and checks its struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("request body is not valid JSON for this endpoint")
	}

	return errors.WithStack(c.Validate(req))
}

// Calendar resolves "today" in the caller's timezone: the tz query parameter,
// then the X-Timezone header, then the configured default.
type Calendar struct {
	fallback *time.Location
	now      func() time.Time
}

// NewCalendar loads the configured default timezone.
func NewCalendar(cfg *config.Config) (*Calendar, error) {
	name := cfg.Env.Timezone
	if name == "" {
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid env.timezone %q", name)
	}

	return &Calendar{fallback: loc, now: time.Now}, nil
}

// Today returns the caller's current date as YYYY-MM-DD.
func (cal *Calendar) Today(c echo.Context) (string, error) {
	loc := cal.fallback

	name := c.QueryParam("tz")
	if name == "" {
		name = c.Request().Header.Get(constants.HeaderTimezone)
	}
	if name != "" {
		l, err := time.LoadLocation(name)
		if err != nil {
			return "", domainerrors.NewValidationError(fmt.Sprintf("unknown timezone %q", name))
		}
		loc = l
	}

	return cal.now().In(loc).Format(entity.DateLayout), nil
}

// DateOrToday returns date when set, otherwise today for the caller.
func (cal *Calendar) DateOrToday(c echo.Context, date string) (string, error) {
	if date = strings.TrimSpace(date); date != "" {
		return date, nil
	}

	return cal.Today(c)
}
