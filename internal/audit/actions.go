package audit

const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionAppointmentReassign  = "appointment_client_reassigned"
	ActionPaymentRegistered    = "payment_registered"
	ActionClientCreated        = "client_created"
	ActionClientUpdated        = "client_updated"
	ActionServiceSaved         = "service_saved"
	ActionServiceDeactivated   = "service_deactivated"
	ActionBarberCreated        = "barber_created"
	ActionBarberDeactivated    = "barber_deactivated"
	ActionHoursUpdated         = "business_hours_updated"
	ActionRateOverridden       = "rate_overridden"
	ActionClosingArchived      = "closing_archived"
)
