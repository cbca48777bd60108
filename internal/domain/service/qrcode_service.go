package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProductQR renders a PNG QR code that links to a product page.
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ProductQRData returns the payload encoded into a product QR code.
	ProductQRData(productID uuid.UUID) string

	// ParseProductQR parses QR code data and returns the product ID.
	ParseProductQR(qrData string) (uuid.UUID, error)
}
