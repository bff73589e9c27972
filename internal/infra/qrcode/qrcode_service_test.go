package qrcode

import (
	"bytes"
	"encoding/json"
	"testing"

	"medifinder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *qrcodeService {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "medium"}}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestGeneratePickupQRProducesPNG(t *testing.T) {
	svc := newTestService()

	png, err := svc.GeneratePickupQR("RES-123")
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestPickupQRPayloadRoundTrip(t *testing.T) {
	svc := newTestService()

	payload, err := json.Marshal(QRCodeData{ReservationID: "RES-123", Type: "pickup"})
	require.NoError(t, err)

	id, err := svc.ParsePickupQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "RES-123", id)
}

func TestParsePickupQRRejectsBadPayloads(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "hello"},
		{name: "wrong type", data: `{"reservation_id":"RES-123","type":"loyalty"}`},
		{name: "missing id", data: `{"type":"pickup"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParsePickupQR(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestQRCodeDefaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, 256, svc.size)

	png, err := svc.GeneratePickupQR("RES-123")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
