package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"medifinder/config"
	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/domain/repository"
	"medifinder/internal/domain/service"
	"medifinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cannedReplies is the pool the simulated pharmacist answers from.
var cannedReplies = []string{
	"Je comprends votre préoccupation. Pouvez-vous me donner plus de détails ?",
	"C'est une excellente question. Laissez-moi vous expliquer...",
	"Pour ce type de symptôme, je recommande généralement...",
	"Avez-vous déjà pris ce médicament auparavant ?",
	"Je vais vous donner quelques conseils personnalisés.",
}

// telemedicineService implements the TelemedicineUsecase interface. The
// pharmacist side is simulated: every user message schedules one delayed
// reply, dropped when the consultation ends first.
type telemedicineService struct {
	pharmacists repository.PharmacistRepository
	notifier    service.Notifier
	logger      *slog.Logger
	replyDelay  time.Duration

	mu            sync.Mutex
	consultations map[string]*entity.Consultation
	transcripts   map[string][]*entity.ChatMessage
	pending       map[string]context.CancelFunc
	wg            sync.WaitGroup
}

// NewTelemedicineService is the constructor for telemedicineService.
func NewTelemedicineService(
	cfg *config.Config,
	pharmacists repository.PharmacistRepository,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.TelemedicineUsecase {
	replyDelay := 2 * time.Second
	if cfg.Telemedicine != nil && cfg.Telemedicine.ReplyDelay > 0 {
		replyDelay = cfg.Telemedicine.ReplyDelay
	}

	return &telemedicineService{
		pharmacists:   pharmacists,
		notifier:      notifier,
		logger:        logger,
		replyDelay:    replyDelay,
		consultations: make(map[string]*entity.Consultation),
		transcripts:   make(map[string][]*entity.ChatMessage),
		pending:       make(map[string]context.CancelFunc),
	}
}

// ListPharmacists returns the telehealth practitioner directory.
func (srv *telemedicineService) ListPharmacists(ctx context.Context) ([]*entity.Pharmacist, error) {
	pharmacists, err := srv.pharmacists.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list pharmacists")
	}

	return pharmacists, nil
}

// StartChat opens a consultation with an online pharmacist.
func (srv *telemedicineService) StartChat(ctx context.Context, userID, pharmacistID string) (*entity.Consultation, error) {
	if userID == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "start chat")
	}

	pharmacist, err := srv.pharmacists.FindByID(ctx, pharmacistID)
	if err != nil {
		if errors.Is(err, repository.ErrPharmacistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "pharmacist not found")
		}

		return nil, errors.Wrap(err, "find pharmacist")
	}
	if !pharmacist.Online {
		return nil, errors.Wrap(domainerrors.ErrPharmacistOffline, "start chat")
	}

	now := timeNow()
	consultation := &entity.Consultation{
		ID:             "CHAT-" + uuid.NewString(),
		UserID:         userID,
		PharmacistID:   pharmacist.ID,
		PharmacistName: pharmacist.Name,
		Status:         entity.ConsultationActive,
		StartedAt:      now,
	}
	greeting := &entity.ChatMessage{
		ID:             uuid.NewString(),
		ConsultationID: consultation.ID,
		Sender:         entity.SenderPharmacist,
		Content:        fmt.Sprintf("Bonjour ! Je suis %s. Comment puis-je vous aider aujourd'hui ?", pharmacist.Name),
		SentAt:         now,
	}

	srv.mu.Lock()
	srv.consultations[consultation.ID] = consultation
	srv.transcripts[consultation.ID] = []*entity.ChatMessage{greeting}
	srv.mu.Unlock()

	srv.logger.Info("consultation started",
		"consultationID", consultation.ID,
		"pharmacist", pharmacist.Name,
	)
	srv.notifier.Notify(ctx, "Chat démarré", "Connexion avec "+pharmacist.Name+"...")

	cp := *consultation

	return &cp, nil
}

// SendMessage appends a user message and schedules the simulated reply.
func (srv *telemedicineService) SendMessage(ctx context.Context, consultationID, content string) (*entity.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("empty message"), "send message")
	}

	srv.mu.Lock()
	consultation, ok := srv.consultations[consultationID]
	if !ok {
		srv.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrConsultationNotFound, "send message")
	}
	if consultation.Status != entity.ConsultationActive {
		srv.mu.Unlock()

		return nil, errors.Wrap(domainerrors.ErrConsultationEnded, "send message")
	}

	message := &entity.ChatMessage{
		ID:             uuid.NewString(),
		ConsultationID: consultationID,
		Sender:         entity.SenderUser,
		Content:        content,
		SentAt:         timeNow(),
	}
	srv.transcripts[consultationID] = append(srv.transcripts[consultationID], message)

	// The reply timer detaches from the request context; its lifetime is
	// bounded by End and StopAll. A newer message supersedes a pending reply.
	replyCtx, cancel := context.WithCancel(context.Background())
	if prev, exists := srv.pending[consultationID]; exists {
		prev()
	}
	srv.pending[consultationID] = cancel
	srv.mu.Unlock()

	srv.wg.Add(1)
	go srv.replyLater(replyCtx, consultationID)

	cp := *message

	return &cp, nil
}

// Messages returns the transcript in send order.
func (srv *telemedicineService) Messages(_ context.Context, consultationID string) ([]*entity.ChatMessage, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	transcript, ok := srv.transcripts[consultationID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrConsultationNotFound, "load transcript")
	}

	out := make([]*entity.ChatMessage, 0, len(transcript))
	for _, message := range transcript {
		cp := *message
		out = append(out, &cp)
	}

	return out, nil
}

// Get returns one consultation.
func (srv *telemedicineService) Get(_ context.Context, consultationID string) (*entity.Consultation, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	consultation, ok := srv.consultations[consultationID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrConsultationNotFound, "find consultation")
	}
	cp := *consultation

	return &cp, nil
}

// End closes an active consultation and drops any pending reply.
func (srv *telemedicineService) End(_ context.Context, consultationID string) (*entity.Consultation, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	consultation, ok := srv.consultations[consultationID]
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrConsultationNotFound, "end consultation")
	}
	if consultation.Status != entity.ConsultationActive {
		return nil, errors.Wrap(domainerrors.ErrConsultationEnded, "end consultation")
	}

	if cancel, exists := srv.pending[consultationID]; exists {
		cancel()
		delete(srv.pending, consultationID)
	}

	ended := timeNow()
	consultation.Status = entity.ConsultationEnded
	consultation.EndedAt = &ended
	cp := *consultation

	return &cp, nil
}

// StopAll cancels every pending reply and waits for their timers to exit.
func (srv *telemedicineService) StopAll() {
	srv.mu.Lock()
	for id, cancel := range srv.pending {
		cancel()
		delete(srv.pending, id)
	}
	srv.mu.Unlock()

	srv.wg.Wait()
}

// replyLater appends one canned pharmacist reply after the configured delay,
// unless the consultation ended or a newer message superseded it.
func (srv *telemedicineService) replyLater(ctx context.Context, consultationID string) {
	defer srv.wg.Done()

	timer := time.NewTimer(srv.replyDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	consultation, ok := srv.consultations[consultationID]
	if !ok || consultation.Status != entity.ConsultationActive {
		return
	}
	if err := ctx.Err(); err != nil {
		return
	}

	reply := &entity.ChatMessage{
		ID:             uuid.NewString(),
		ConsultationID: consultationID,
		Sender:         entity.SenderPharmacist,
		Content:        cannedReplies[rand.Intn(len(cannedReplies))],
		SentAt:         timeNow(),
	}
	srv.transcripts[consultationID] = append(srv.transcripts[consultationID], reply)
	delete(srv.pending, consultationID)
}
