package ws

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"talkReserve/internal/config"
	"talkReserve/internal/events"
	"talkReserve/internal/lib/api/response"
	"talkReserve/internal/lib/logger/sl"
	"talkReserve/internal/models"
	"talkReserve/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Coordinator
type Coordinator interface {
	CreateTalk(title string, totalSeats int) (*models.Talk, error)
	CloseTalk(talkID string) error
	RequestSeats(talkID, userID string, quantity int) ([]models.Reservation, error)
	Decide(reservationID string, approve bool) error
	Cancel(reservationID, userID string) error
	Talks() []models.Talk
	Reservations() []models.Reservation
}

type loginData struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type openTalkData struct {
	Title string `json:"titulo" validate:"required"`
	Seats int    `json:"vagas" validate:"required,gt=0"`
}

type requestSeatsData struct {
	TalkID   string `json:"idPalestra" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
	Quantity int    `json:"quantidade" validate:"required,gt=0"`
}

type decideData struct {
	ReservationID string `json:"reservaId" validate:"required"`
	Approve       bool   `json:"aprovar"`
}

type cancelData struct {
	ReservationID string `json:"reservaId" validate:"required"`
	UserID        string `json:"userId" validate:"required"`
}

type closeTalkData struct {
	TalkID string `json:"idPalestra" validate:"required"`
}

// Dispatcher maps the closed set of inbound events onto coordinator
// operations. Each event kind decodes into its own payload struct, so
// a malformed or unknown frame never reaches the state machine.
type Dispatcher struct {
	log      *slog.Logger
	coord    Coordinator
	admin    config.Admin
	validate *validator.Validate
}

func NewDispatcher(log *slog.Logger, coord Coordinator, admin config.Admin) *Dispatcher {
	return &Dispatcher{
		log:      log,
		coord:    coord,
		admin:    admin,
		validate: validator.New(),
	}
}

// Dispatch handles one inbound frame from c. Mutations are serialized
// by the coordinator's lock, so handlers can run directly on the
// connection's reader goroutine.
func (d *Dispatcher) Dispatch(c *Client, raw []byte) {
	const op = "ws.dispatcher.Dispatch"

	log := d.log.With(slog.String("op", op), slog.String("client_id", c.ID()))

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Error("failed to decode envelope", sl.Err(err))
		c.Send(events.OperationError, events.ErrorData{Msg: "Mensagem inválida"})

		return
	}

	log = log.With(slog.String("event", env.Event))

	switch env.Event {
	case events.LoginAdmin:
		d.handleLogin(log, c, env.Data)
	case events.TalkOpened:
		d.handleOpenTalk(log, c, env.Data)
	case events.SeatRequested:
		d.handleRequestSeats(log, c, env.Data)
	case events.ReservationDecide:
		d.handleDecide(log, c, env.Data)
	case events.ReservationCancel:
		d.handleCancel(log, c, env.Data)
	case events.TalkClose:
		d.handleCloseTalk(log, c, env.Data)
	default:
		log.Warn("unknown event")
		c.Send(events.OperationError, events.ErrorData{Msg: "Evento desconhecido"})
	}
}

func (d *Dispatcher) handleLogin(log *slog.Logger, c *Client, data json.RawMessage) {
	var req loginData
	if !d.decode(log, c, data, &req) {
		return
	}

	success := req.Username == d.admin.Username && req.Password == d.admin.Password
	if success {
		c.setAdmin(true)
		log.Info("admin login accepted", slog.String("username", req.Username))
	} else {
		log.Warn("admin login refused", slog.String("username", req.Username))
	}

	c.Send(events.LoginResult, events.LoginResultData{Success: success})
}

func (d *Dispatcher) handleOpenTalk(log *slog.Logger, c *Client, data json.RawMessage) {
	if !d.requireAdmin(log, c) {
		return
	}

	var req openTalkData
	if !d.decode(log, c, data, &req) {
		return
	}

	talk, err := d.coord.CreateTalk(req.Title, req.Seats)
	if err != nil {
		log.Error("failed to create talk", sl.Err(err))
		c.Send(events.OperationError, events.ErrorData{Msg: "Número de vagas inválido"})

		return
	}

	log.Info("talk created", slog.String("talk_id", talk.ID), slog.Int("seats", talk.TotalSeats))
}

func (d *Dispatcher) handleRequestSeats(log *slog.Logger, c *Client, data json.RawMessage) {
	var req requestSeatsData
	if !d.decode(log, c, data, &req) {
		return
	}

	created, err := d.coord.RequestSeats(req.TalkID, req.UserID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTalkNotFound):
			c.Send(events.OperationError, events.ErrorData{Msg: "Palestra não encontrada"})
		case errors.Is(err, storage.ErrCapacityExceeded):
			c.Send(events.LimitReached, events.LimitReachedData{TalkID: req.TalkID})
		default:
			log.Error("failed to request seats", sl.Err(err))
			c.Send(events.OperationError, events.ErrorData{Msg: "Falha ao solicitar vaga"})
		}

		return
	}

	ids := make([]string, 0, len(created))
	for _, reservation := range created {
		ids = append(ids, reservation.ID)
	}

	c.Send(events.SeatsReceived, events.SeatsReceivedData{Reservations: ids})
}

func (d *Dispatcher) handleDecide(log *slog.Logger, c *Client, data json.RawMessage) {
	if !d.requireAdmin(log, c) {
		return
	}

	var req decideData
	if !d.decode(log, c, data, &req) {
		return
	}

	// Missing reservations and talks are silent no-ops.
	if err := d.coord.Decide(req.ReservationID, req.Approve); err != nil {
		log.Warn("decision skipped", sl.Err(err))
	}
}

func (d *Dispatcher) handleCancel(log *slog.Logger, c *Client, data json.RawMessage) {
	var req cancelData
	if !d.decode(log, c, data, &req) {
		return
	}

	// Ownership mismatches look the same as missing reservations and
	// are equally silent.
	if err := d.coord.Cancel(req.ReservationID, req.UserID); err != nil {
		log.Warn("cancellation skipped", sl.Err(err))
	}
}

func (d *Dispatcher) handleCloseTalk(log *slog.Logger, c *Client, data json.RawMessage) {
	if !d.requireAdmin(log, c) {
		return
	}

	var req closeTalkData
	if !d.decode(log, c, data, &req) {
		return
	}

	if err := d.coord.CloseTalk(req.TalkID); err != nil {
		log.Warn("close skipped", sl.Err(err))
	}
}

func (d *Dispatcher) decode(log *slog.Logger, c *Client, data json.RawMessage, dst any) bool {
	if err := json.Unmarshal(data, dst); err != nil {
		log.Error("failed to decode payload", sl.Err(err))
		c.Send(events.OperationError, events.ErrorData{Msg: "Dados inválidos"})

		return false
	}

	if err := d.validate.Struct(dst); err != nil {
		log.Error("invalid payload", sl.Err(err))

		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			c.Send(events.OperationError, events.ErrorData{Msg: response.ValidationError(validateErr).Error})
		} else {
			c.Send(events.OperationError, events.ErrorData{Msg: "Dados inválidos"})
		}

		return false
	}

	return true
}

func (d *Dispatcher) requireAdmin(log *slog.Logger, c *Client) bool {
	if c.IsAdmin() {
		return true
	}

	log.Warn("privileged event from non-admin session")
	c.Send(events.OperationError, events.ErrorData{Msg: "Operação restrita ao administrador"})

	return false
}
