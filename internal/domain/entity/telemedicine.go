package entity

import "time"

// Pharmacist is a telehealth practitioner available for chat consultations.
type Pharmacist struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	Specialty              string  `json:"specialty"`
	Rating                 float64 `json:"rating"`
	Reviews                int     `json:"reviews"`
	Online                 bool    `json:"online"`
	NextAvailable          string  `json:"nextAvailable"` // Free-form availability label, e.g. "Immédiatement".
	ConsultationPriceCents int64   `json:"consultationPriceCents"`
}

// ConsultationStatus tracks a chat consultation through its lifecycle.
type ConsultationStatus string

const (
	ConsultationActive ConsultationStatus = "active"
	ConsultationEnded  ConsultationStatus = "ended"
)

// ChatSender identifies which side of a consultation wrote a message.
type ChatSender string

const (
	SenderUser       ChatSender = "user"
	SenderPharmacist ChatSender = "pharmacist"
)

// Consultation is a chat session between a user and a pharmacist.
type Consultation struct {
	ID             string             `json:"id"` // "CHAT-" + UUID.
	UserID         string             `json:"userId"`
	PharmacistID   string             `json:"pharmacistId"`
	PharmacistName string             `json:"pharmacistName"`
	Status         ConsultationStatus `json:"status"`
	StartedAt      time.Time          `json:"startedAt"`
	EndedAt        *time.Time         `json:"endedAt,omitempty"`
}

// ChatMessage is one message within a consultation.
type ChatMessage struct {
	ID             string     `json:"id"`
	ConsultationID string     `json:"consultationId"`
	Sender         ChatSender `json:"sender"`
	Content        string     `json:"content"`
	SentAt         time.Time  `json:"sentAt"`
}
