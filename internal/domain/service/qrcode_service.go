package service

// QRCodeService generates and parses the pickup QR codes presented at the
// pharmacy counter to collect a reservation.
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code encoding the reservation id.
	GeneratePickupQR(reservationID string) ([]byte, error)

	// ParsePickupQR decodes the QR payload and returns the reservation id.
	ParsePickupQR(qrData string) (string, error)
}
