package entity

import "time"

// UrgencyTier classifies how close a dose is to its scheduled time.
type UrgencyTier string

const (
	// TierOverdue means the scheduled time has been reached or passed.
	TierOverdue UrgencyTier = "overdue"

	// TierDueSoon means the dose is due within the hour.
	TierDueSoon UrgencyTier = "due_soon"

	// TierScheduled means the dose is an hour or more away.
	TierScheduled UrgencyTier = "scheduled"

	// TierTaken means the dose has already been marked as taken.
	TierTaken UrgencyTier = "taken"
)

// DoseReminder is a scheduled medication intake tracked by time-of-day,
// independent of calendar date until evaluated against a clock.
type DoseReminder struct {
	ID            string `json:"id"`            // Reminder identifier.
	Medication    string `json:"medication"`    // Medication display name.
	Dosage        string `json:"dosage"`        // Dosage text, e.g. "1000mg".
	Frequency     string `json:"frequency"`     // Frequency text, e.g. "3x par jour".
	NextDose      string `json:"nextDose"`      // Time-of-day "HH:MM"; the next occurrence at or after now.
	Taken         bool   `json:"taken"`         // Whether the current dose was marked as taken.
	Progress      int    `json:"progress"`      // Treatment progress percentage, 0-100.
	DaysRemaining int    `json:"daysRemaining"` // Days left in the treatment, >= 0.
}

// DoseStatus is the evaluator's derived, display-only state for one dose.
// It never feeds back into the DoseReminder itself.
type DoseStatus struct {
	DoseID       string      `json:"doseId"`
	Tier         UrgencyTier `json:"tier"`
	Urgent       bool        `json:"urgent"`       // Set within 5 minutes of the scheduled time.
	MinutesUntil int         `json:"minutesUntil"` // Whole minutes until the next occurrence; 0 when overdue.
	Countdown    string      `json:"countdown"`    // Display countdown, e.g. "45 min", "2h 30min", "En retard".
	EvaluatedAt  time.Time   `json:"evaluatedAt"`
}
