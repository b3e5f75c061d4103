// Package events names the wire events exchanged with clients. The
// names are kept verbatim from the original protocol so existing
// clients keep working; the same strings double as log entry types.
package events

// Client -> server.
const (
	LoginAdmin        = "login.admin"
	TalkOpened        = "palestra.aberta"
	SeatRequested     = "vaga.solicitada"
	ReservationDecide = "reserva.atualizar"
	ReservationCancel = "reserva.cancelar"
	TalkClose         = "sistema.encerrado"
)

// Server -> clients.
const (
	StateUpdated          = "estado.atualizado"
	ReservationsUpdated   = "reservas.atualizadas"
	SystemStarted         = "sistema.iniciado"
	LoginResult           = "login.resultado"
	SeatsReceived         = "vaga.recebida"
	ReservationPending    = "reserva.pendente"
	RegistrationConfirmed = "inscricao.confirmada"
	RegistrationRejected  = "inscricao.reprovada"
	ReservationCancelled  = "reserva.cancelada"
	ReservationExpired    = "reserva.expirada"
	LimitReached          = "limite.alcancado"
	OperationError        = "erro.operacao"
	NewLog                = "novo.log"
)

// LoginResultData reports whether an admin login succeeded.
type LoginResultData struct {
	Success bool `json:"success"`
}

// SeatsReceivedData acknowledges a seat request with the ids of the
// reservations it created.
type SeatsReceivedData struct {
	Reservations []string `json:"reservas"`
}

// LimitReachedData tells the requester which talk ran out of seats.
type LimitReachedData struct {
	TalkID string `json:"id"`
}

// DecisionData announces an admin decision on one reservation.
type DecisionData struct {
	TalkID        string `json:"idPalestra"`
	UserID        string `json:"userId"`
	ReservationID string `json:"reservaId"`
}

// ErrorData carries a human-readable operation failure.
type ErrorData struct {
	Msg string `json:"msg"`
}
