package httperr

import "net/http"

type Kind string

const (
	KindValidation    Kind = "validation"
	KindConflict      Kind = "conflict"
	KindTerminalState Kind = "terminal_state"
	KindNotFound      Kind = "not_found"
	KindExternal      Kind = "external"
	KindInternal      Kind = "internal"
)

const (
	CodeInvalidRequest       = "invalid_request"
	CodeInvalidDate          = "invalid_date"
	CodeInvalidTime          = "invalid_time"
	CodeInvalidTimeRange     = "invalid_time_range"
	CodeInvalidDuration      = "invalid_duration"
	CodeInvalidPrice         = "invalid_price"
	CodeInvalidMethod        = "invalid_method"
	CodeInvalidAmount        = "invalid_amount"
	CodeInvalidCurrency      = "invalid_currency"
	CodeInvalidRate          = "invalid_rate"
	CodeMissingReference     = "missing_reference"
	CodeInsufficientPayment  = "insufficient_payment"
	CodeEmptyMixedPayment    = "empty_mixed_payment"
	CodeConfirmationRequired = "confirmation_required"
	CodeWalkInProtected      = "walk_in_protected"

	CodeTimeConflict    = "time_conflict"
	CodeBarberNameTaken = "barber_name_taken"

	CodeAlreadyPaid      = "already_paid"
	CodeAlreadyCancelled = "already_cancelled"
	CodeAlreadyClosed    = "already_closed"

	CodeAppointmentNotFound = "appointment_not_found"
	CodeClientNotFound      = "client_not_found"
	CodeServiceNotFound     = "service_not_found"
	CodeBarberNotFound      = "barber_not_found"

	CodeRateUnavailable = "rate_unavailable"
	CodeArchiveDisabled = "archive_disabled"
	CodeStorageFailure  = "storage_failure"
)

type codeInfo struct {
	kind    Kind
	status  int
	message string
}

var catalogue = map[string]codeInfo{
	CodeInvalidRequest:       {KindValidation, http.StatusBadRequest, "Datos inválidos."},
	CodeInvalidDate:          {KindValidation, http.StatusBadRequest, "Fecha inválida."},
	CodeInvalidTime:          {KindValidation, http.StatusBadRequest, "Hora inválida."},
	CodeInvalidTimeRange:     {KindValidation, http.StatusBadRequest, "El horario debe terminar el mismo día y después de empezar."},
	CodeInvalidDuration:      {KindValidation, http.StatusBadRequest, "Duración inválida."},
	CodeInvalidPrice:         {KindValidation, http.StatusBadRequest, "Precio inválido."},
	CodeInvalidMethod:        {KindValidation, http.StatusBadRequest, "Método de pago inválido."},
	CodeInvalidAmount:        {KindValidation, http.StatusBadRequest, "El monto debe ser mayor que 0."},
	CodeInvalidCurrency:      {KindValidation, http.StatusBadRequest, "Moneda inválida."},
	CodeInvalidRate:          {KindValidation, http.StatusBadRequest, "La tasa debe ser mayor que 0."},
	CodeMissingReference:     {KindValidation, http.StatusUnprocessableEntity, "La referencia es obligatoria para este método."},
	CodeInsufficientPayment:  {KindValidation, http.StatusUnprocessableEntity, "El monto recibido no cubre el total."},
	CodeEmptyMixedPayment:    {KindValidation, http.StatusUnprocessableEntity, "El pago mixto no tiene pagos parciales."},
	CodeConfirmationRequired: {KindValidation, http.StatusUnprocessableEntity, "La cita ya tiene un cliente asignado; confirme la reasignación."},
	CodeWalkInProtected:      {KindValidation, http.StatusUnprocessableEntity, "El Público General no se puede editar ni tiene historial."},

	CodeTimeConflict:    {KindConflict, http.StatusConflict, "Conflicto de horario para este barbero."},
	CodeBarberNameTaken: {KindConflict, http.StatusConflict, "Ya existe un barbero con ese nombre."},

	CodeAlreadyPaid:      {KindTerminalState, http.StatusConflict, "No se puede cancelar una cita ya cobrada."},
	CodeAlreadyCancelled: {KindTerminalState, http.StatusConflict, "La cita ya está cancelada."},
	CodeAlreadyClosed:    {KindTerminalState, http.StatusConflict, "La cita ya está cerrada."},

	CodeAppointmentNotFound: {KindNotFound, http.StatusNotFound, "La cita no existe."},
	CodeClientNotFound:      {KindNotFound, http.StatusNotFound, "Cliente no encontrado."},
	CodeServiceNotFound:     {KindNotFound, http.StatusNotFound, "Servicio no encontrado."},
	CodeBarberNotFound:      {KindNotFound, http.StatusNotFound, "Barbero no encontrado."},

	CodeRateUnavailable: {KindExternal, http.StatusServiceUnavailable, "No hay tasa de cambio disponible."},
	CodeArchiveDisabled: {KindExternal, http.StatusServiceUnavailable, "El archivo de cierres no está configurado."},
	CodeStorageFailure:  {KindExternal, http.StatusServiceUnavailable, "Error de almacenamiento."},
}

func lookup(code string) codeInfo {
	if info, ok := catalogue[code]; ok {
		return info
	}
	return codeInfo{KindInternal, http.StatusInternalServerError, "Error interno."}
}

func KindOf(code string) Kind {
	return lookup(code).kind
}
