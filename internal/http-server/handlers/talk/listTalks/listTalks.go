package listTalks

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"talkReserve/internal/lib/api/response"
	"talkReserve/internal/models"
)

type TalksResponse struct {
	response.Response
	Talks []models.Talk `json:"talks"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TalksGetter
type TalksGetter interface {
	Talks() []models.Talk
}

func New(log *slog.Logger, talksGetter TalksGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.talk.listTalks.New"

		log = log.With(slog.String("op", op))

		talks := talksGetter.Talks()

		log.Info("talks retrieved successfully", slog.Int("count", len(talks)))

		responseOK(w, r, talks)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, talks []models.Talk) {
	render.JSON(w, r, TalksResponse{
		Response: response.OK(),
		Talks:    talks,
	})
}
