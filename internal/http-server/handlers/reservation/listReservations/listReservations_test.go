package listReservations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talkReserve/internal/http-server/handlers/reservation/listReservations/mocks"
	"talkReserve/internal/lib/logger/handlers/slogdiscard"
	"talkReserve/internal/models"
)

func TestListReservationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	deadline := time.Date(2025, 8, 1, 18, 1, 0, 0, time.UTC)
	testReservations := []models.Reservation{
		{ID: "res-1", TalkID: "talk-1", UserID: "user-a", Status: models.ReservationPending, ExpiresAt: deadline},
		{ID: "res-2", TalkID: "talk-1", UserID: "user-b", Status: models.ReservationCancelled, ExpiresAt: deadline},
	}

	testCases := []struct {
		name      string
		mockSetup func(mock *mocks.ReservationsGetter)
		checkBody func(t *testing.T, body string)
	}{
		{
			name: "Success with reservations",
			mockSetup: func(mock *mocks.ReservationsGetter) {
				mock.On("Reservations").Return(testReservations)
			},
			checkBody: func(t *testing.T, body string) {
				var response ReservationsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Len(t, response.Reservations, 2)
				assert.Equal(t, "res-1", response.Reservations[0].ID)
				assert.Equal(t, models.ReservationPending, response.Reservations[0].Status)
				assert.Equal(t, models.ReservationCancelled, response.Reservations[1].Status)
			},
		},
		{
			name: "Success with no reservations",
			mockSetup: func(mock *mocks.ReservationsGetter) {
				mock.On("Reservations").Return([]models.Reservation{})
			},
			checkBody: func(t *testing.T, body string) {
				var response ReservationsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				assert.Empty(t, response.Reservations)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewReservationsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/reservations", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockGetter.AssertExpectations(t)
		})
	}
}
