package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	domainerrors "macrolog/internal/domain/errors"
	mockUsecase "macrolog/internal/mocks/usecase"
	"macrolog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newExportTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockExportUsecase, uuid.UUID) {
	exportUC := mockUsecase.NewMockExportUsecase(t)
	h := NewExportHandler(ExportHandlerParams{
		ExportUC: exportUC,
		Calendar: fixedCalendar(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)),
		Logger:   newDiscardLogger(),
	})
	userID := uuid.New()

	e := newTestEcho()
	e.POST("/exports", h.CreateExport, asUser(userID))

	return e, exportUC, userID
}

func TestExportHandler_CreateExport(t *testing.T) {
	e, exportUC, userID := newExportTestServer(t)
	generated := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	key := "exports/" + userID.String() + "/20240601T080000Z.json"

	exportUC.EXPECT().
		Export(mock.Anything, userID, usecase.ExportInput{Today: "2024-06-01", Days: 14}).
		Return(&usecase.ExportOutput{Key: key, Size: 512, GeneratedAt: generated}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/exports", `{"days":14}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var data ExportResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, key, data.Key)
	assert.Equal(t, int64(512), data.Size)
}

func TestExportHandler_EmptyBodyUsesDefaultWindow(t *testing.T) {
	e, exportUC, userID := newExportTestServer(t)

	exportUC.EXPECT().
		Export(mock.Anything, userID, usecase.ExportInput{Today: "2024-06-01"}).
		Return(&usecase.ExportOutput{Key: "k"}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/exports", "")

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestExportHandler_ArchiveDisabled(t *testing.T) {
	e, exportUC, userID := newExportTestServer(t)

	exportUC.EXPECT().
		Export(mock.Anything, userID, mock.Anything).
		Return(nil, domainerrors.ErrArchiveUnavailable).
		Once()

	rec := doRequest(e, http.MethodPost, "/exports", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "ARCHIVE_UNAVAILABLE", decodeEnvelope(t, rec).Code)
}
