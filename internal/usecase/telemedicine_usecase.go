package usecase

import (
	"context"

	"medifinder/internal/domain/entity"
)

// TelemedicineUsecase runs simulated chat consultations with pharmacists.
type TelemedicineUsecase interface {
	// ListPharmacists returns the telehealth practitioner directory.
	ListPharmacists(ctx context.Context) ([]*entity.Pharmacist, error)

	// StartChat opens a consultation with an online pharmacist. The
	// pharmacist greets the user immediately.
	StartChat(ctx context.Context, userID, pharmacistID string) (*entity.Consultation, error)

	// SendMessage appends a user message to an active consultation and
	// schedules the simulated pharmacist reply.
	SendMessage(ctx context.Context, consultationID, content string) (*entity.ChatMessage, error)

	// Messages returns the consultation transcript in send order.
	Messages(ctx context.Context, consultationID string) ([]*entity.ChatMessage, error)

	// Get returns one consultation.
	Get(ctx context.Context, consultationID string) (*entity.Consultation, error)

	// End closes an active consultation. Pending replies are dropped.
	End(ctx context.Context, consultationID string) (*entity.Consultation, error)

	// StopAll cancels every pending simulated reply. Called on shutdown.
	StopAll()
}
