// Package queue defines message payloads exchanged over the message broker.
package queue

// RegistrationConfirmedEvent is published when an admin confirms a camp
// registration.  It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type RegistrationConfirmedEvent struct {
	RegistrationID   uint64  `json:"registration_id"`
	CampID           uint64  `json:"camp_id"`
	CampName         string  `json:"camp_name"`
	ParticipantEmail string  `json:"participant_email"`
	ParticipantName  string  `json:"participant_name"`
	CampFees         float64 `json:"camp_fees"`
	PaymentStatus    string  `json:"payment_status"`
	ConfirmedAt      string  `json:"confirmed_at"`
}
