package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"medifinder/config"
	"medifinder/internal/domain/entity"
	domainerrors "medifinder/internal/domain/errors"
	"medifinder/internal/infra/persistence/memory"
	"medifinder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTelemedicine(t *testing.T, replyDelay time.Duration) (usecase.TelemedicineUsecase, *recordingNotifier) {
	t.Helper()

	cfg := &config.Config{Telemedicine: &config.TelemedicineConfig{ReplyDelay: replyDelay}}
	notifier := &recordingNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewTelemedicineService(cfg, memory.NewPharmacistRepository(), notifier, logger)
	t.Cleanup(svc.StopAll)

	return svc, notifier
}

func TestTelemedicineListPharmacists(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 10*time.Millisecond)

	pharmacists, err := svc.ListPharmacists(context.Background())
	require.NoError(t, err)
	require.Len(t, pharmacists, 3)

	assert.Equal(t, "Dr. Sophie Martin", pharmacists[0].Name)
	assert.True(t, pharmacists[0].Online)
	assert.False(t, pharmacists[2].Online)
}

func TestTelemedicineStartChat(t *testing.T) {
	svc, notifier := newTestTelemedicine(t, 10*time.Millisecond)

	consultation, err := svc.StartChat(context.Background(), "user-1", "1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(consultation.ID, "CHAT-"))
	assert.Equal(t, "user-1", consultation.UserID)
	assert.Equal(t, "Dr. Sophie Martin", consultation.PharmacistName)
	assert.Equal(t, entity.ConsultationActive, consultation.Status)
	assert.Contains(t, notifier.last(), "Chat démarré")

	// The pharmacist greets before the user says anything.
	messages, err := svc.Messages(context.Background(), consultation.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, entity.SenderPharmacist, messages[0].Sender)
	assert.Contains(t, messages[0].Content, "Dr. Sophie Martin")
}

func TestTelemedicineStartChatRequiresUser(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 10*time.Millisecond)

	_, err := svc.StartChat(context.Background(), "", "1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "UNAUTHENTICATED", appErr.ErrorCode())
}

func TestTelemedicineStartChatUnknownPharmacist(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 10*time.Millisecond)

	_, err := svc.StartChat(context.Background(), "user-1", "404")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestTelemedicineStartChatOfflinePharmacist(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 10*time.Millisecond)

	// Dr. Marie Leroy is seeded offline.
	_, err := svc.StartChat(context.Background(), "user-1", "3")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PHARMACIST_OFFLINE", appErr.ErrorCode())
}

func TestTelemedicineSendMessageGetsSimulatedReply(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 10*time.Millisecond)

	consultation, err := svc.StartChat(context.Background(), "user-1", "1")
	require.NoError(t, err)

	message, err := svc.SendMessage(context.Background(), consultation.ID, "J'ai mal à la tête.")
	require.NoError(t, err)
	assert.Equal(t, entity.SenderUser, message.Sender)

	require.Eventually(t, func() bool {
		messages, err := svc.Messages(context.Background(), consultation.ID)
		if err != nil {
			return false
		}

		return len(messages) == 3 && messages[2].Sender == entity.SenderPharmacist
	}, time.Second, 5*time.Millisecond, "expected a pharmacist reply after the delay")
}

func TestTelemedicineSendMessageValidatesContent(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 10*time.Millisecond)

	consultation, err := svc.StartChat(context.Background(), "user-1", "1")
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), consultation.ID, "   ")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestTelemedicineSendMessageUnknownConsultation(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 10*time.Millisecond)

	_, err := svc.SendMessage(context.Background(), "CHAT-missing", "Bonjour")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONSULTATION_NOT_FOUND", appErr.ErrorCode())
}

func TestTelemedicineEndDropsPendingReply(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 20*time.Millisecond)

	consultation, err := svc.StartChat(context.Background(), "user-1", "1")
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), consultation.ID, "Bonjour")
	require.NoError(t, err)

	ended, err := svc.End(context.Background(), consultation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ConsultationEnded, ended.Status)
	require.NotNil(t, ended.EndedAt)

	// No reply lands after the consultation is closed.
	time.Sleep(60 * time.Millisecond)
	messages, err := svc.Messages(context.Background(), consultation.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	_, err = svc.SendMessage(context.Background(), consultation.ID, "Encore là ?")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONSULTATION_ENDED", appErr.ErrorCode())
}

func TestTelemedicineEndTwice(t *testing.T) {
	svc, _ := newTestTelemedicine(t, 10*time.Millisecond)

	consultation, err := svc.StartChat(context.Background(), "user-1", "1")
	require.NoError(t, err)

	_, err = svc.End(context.Background(), consultation.ID)
	require.NoError(t, err)

	_, err = svc.End(context.Background(), consultation.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONSULTATION_ENDED", appErr.ErrorCode())
}

func TestTelemedicineStopAllCancelsReplies(t *testing.T) {
	svc, _ := newTestTelemedicine(t, time.Hour)

	consultation, err := svc.StartChat(context.Background(), "user-1", "1")
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), consultation.ID, "Bonjour")
	require.NoError(t, err)

	// Returns promptly even with an hour-long reply timer pending.
	done := make(chan struct{})
	go func() {
		svc.StopAll()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StopAll did not cancel the pending reply")
	}
}
