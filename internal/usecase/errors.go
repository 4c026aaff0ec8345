package usecase

import "parklot/internal/pkg/errs"

// One sentinel per precondition so callers can render precise messages.
var (
	ErrConfigurationMissing     = errs.New("no active lot configuration")
	ErrLotFull                  = errs.New("lot is full")
	ErrVehicleNotFound          = errs.New("vehicle not found")
	ErrDuplicateOpenTicket      = errs.New("vehicle already has an open ticket")
	ErrTicketNotFound           = errs.New("ticket not found")
	ErrTicketAlreadyClosed      = errs.New("ticket is already closed")
	ErrReservationNotFound      = errs.New("reservation not found")
	ErrReservationNotActive     = errs.New("reservation is not active")
	ErrReservationConflict      = errs.New("stall already reserved for that window")
	ErrInvalidReservationWindow = errs.New("invalid reservation window")
	ErrOutOfReservationWindow   = errs.New("outside the reservation window")
	ErrInvalidTariffKind        = errs.New("invalid tariff kind")
	ErrInvalidStayPeriod        = errs.New("exit must be after entry")
	ErrInvalidConfiguration     = errs.New("invalid lot configuration")
	ErrStorageOperationFailed   = errs.New("storage operation failed")
)
