package entity

import "time"

// ReservationStatus tracks a pickup reservation through its lifecycle.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"   // Created, waiting for the pharmacy to prepare it.
	ReservationReady     ReservationStatus = "ready"     // Prepared, waiting for pickup.
	ReservationCollected ReservationStatus = "collected" // Picked up at the counter.
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is a medication pickup reserved at a pharmacy for a given
// date and time slot. The QR code presented at the counter encodes its ID.
type Reservation struct {
	ID              string            `json:"id"` // "RES-" + UUID.
	UserID          string            `json:"userId"`
	MedicationID    string            `json:"medicationId"`
	MedicationName  string            `json:"medicationName"`
	PharmacyID      string            `json:"pharmacyId"`
	PharmacyName    string            `json:"pharmacyName"`
	Quantity        int               `json:"quantity"`
	UnitPriceCents  int64             `json:"unitPriceCents"`
	TotalCents      int64             `json:"totalCents"`
	PickupDate      string            `json:"pickupDate"`                // "YYYY-MM-DD".
	PickupTime      string            `json:"pickupTime"`                // Slot start, "HH:MM".
	PrescriptionRef string            `json:"prescriptionRef,omitempty"` // Reference to an uploaded prescription, if any.
	Status          ReservationStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}
