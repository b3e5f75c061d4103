package listLogs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talkReserve/internal/http-server/handlers/log/listLogs/mocks"
	"talkReserve/internal/lib/logger/handlers/slogdiscard"
	"talkReserve/internal/models"
)

func TestListLogsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	createdAt := time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)
	testLogs := []models.LogEntry{
		{
			ID:        "log-1",
			EventType: "palestra.aberta",
			TalkID:    "talk-1",
			Payload:   map[string]any{"titulo": "Intro", "vagas": float64(10)},
			CreatedAt: createdAt,
		},
		{
			ID:        "log-2",
			EventType: "vaga.solicitada",
			TalkID:    "talk-1",
			UserID:    "user-a",
			CreatedAt: createdAt.Add(time.Minute),
		},
	}

	testCases := []struct {
		name      string
		mockSetup func(mock *mocks.LogsGetter)
		checkBody func(t *testing.T, body string)
	}{
		{
			name: "Success with entries",
			mockSetup: func(mock *mocks.LogsGetter) {
				mock.On("Logs").Return(testLogs)
			},
			checkBody: func(t *testing.T, body string) {
				var response LogsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Len(t, response.Logs, 2)
				assert.Equal(t, "palestra.aberta", response.Logs[0].EventType)
				assert.Equal(t, "vaga.solicitada", response.Logs[1].EventType)
			},
		},
		{
			name: "Success with empty log",
			mockSetup: func(mock *mocks.LogsGetter) {
				mock.On("Logs").Return([]models.LogEntry{})
			},
			checkBody: func(t *testing.T, body string) {
				var response LogsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Empty(t, response.Logs)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewLogsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/logs", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockGetter.AssertExpectations(t)
		})
	}
}
