package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"medifinder/config"
	"medifinder/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ReservationID string `json:"reservation_id"`
	Type          string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := "medium"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			levelName = cfg.QRCode.ErrorCorrectionLevel
		}
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToLower(levelName) {
	case "l", "low":
		level = qrcode.Low
	case "m", "medium":
		level = qrcode.Medium
	case "q", "high":
		level = qrcode.High
	case "h", "highest":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePickupQR generates the QR code presented at the pharmacy counter
func (s *qrcodeService) GeneratePickupQR(reservationID string) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		ReservationID: reservationID,
		Type:          "pickup",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR parses QR code data and returns the reservation ID
func (s *qrcodeService) ParsePickupQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "pickup" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.ReservationID == "" {
		return "", fmt.Errorf("missing reservation id in QR code data")
	}

	return data.ReservationID, nil
}
