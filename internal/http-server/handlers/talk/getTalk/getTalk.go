package getTalk

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"talkReserve/internal/lib/api/response"
	"talkReserve/internal/lib/logger/sl"
	"talkReserve/internal/models"
	"talkReserve/internal/storage"
)

type TalkInfoResponse struct {
	response.Response
	Talk         *models.Talk         `json:"talk"`
	Reservations []models.Reservation `json:"reservations"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TalkGetter
type TalkGetter interface {
	TalkWithReservations(talkID string) (*models.Talk, []models.Reservation, error)
}

func New(log *slog.Logger, info TalkGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.talk.getTalk.New"

		log = log.With(slog.String("op", op))

		talkID := chi.URLParam(r, "id")
		if talkID == "" {
			log.Error("talk id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("talk id is required"))
			return
		}

		log = log.With(slog.String("talk_id", talkID))

		talk, reservations, err := info.TalkWithReservations(talkID)
		if err != nil {
			if errors.Is(err, storage.ErrTalkNotFound) {
				log.Warn("talk not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("talk not found"))
				return
			}

			log.Error("failed to get talk information", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get talk information"))
			return
		}

		log.Info("talk info successfully received")

		responseOK(w, r, talk, reservations)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, talk *models.Talk, reservations []models.Reservation) {
	render.JSON(w, r, TalkInfoResponse{
		Response:     response.OK(),
		Talk:         talk,
		Reservations: reservations,
	})
}
