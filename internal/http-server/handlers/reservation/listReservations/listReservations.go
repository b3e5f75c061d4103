package listReservations

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"talkReserve/internal/lib/api/response"
	"talkReserve/internal/models"
)

type ReservationsResponse struct {
	response.Response
	Reservations []models.Reservation `json:"reservations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationsGetter
type ReservationsGetter interface {
	Reservations() []models.Reservation
}

func New(log *slog.Logger, reservationsGetter ReservationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.reservation.listReservations.New"

		log = log.With(slog.String("op", op))

		reservations := reservationsGetter.Reservations()

		log.Info("reservations retrieved successfully", slog.Int("count", len(reservations)))

		responseOK(w, r, reservations)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, reservations []models.Reservation) {
	render.JSON(w, r, ReservationsResponse{
		Response:     response.OK(),
		Reservations: reservations,
	})
}
