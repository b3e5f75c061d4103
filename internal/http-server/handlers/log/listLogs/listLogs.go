package listLogs

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"talkReserve/internal/lib/api/response"
	"talkReserve/internal/models"
)

type LogsResponse struct {
	response.Response
	Logs []models.LogEntry `json:"logs"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=LogsGetter
type LogsGetter interface {
	Logs() []models.LogEntry
}

func New(log *slog.Logger, logsGetter LogsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.log.listLogs.New"

		log = log.With(slog.String("op", op))

		entries := logsGetter.Logs()

		log.Info("log entries retrieved successfully", slog.Int("count", len(entries)))

		responseOK(w, r, entries)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, entries []models.LogEntry) {
	render.JSON(w, r, LogsResponse{
		Response: response.OK(),
		Logs:     entries,
	})
}
