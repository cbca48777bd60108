package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"gsale/config"
	"gsale/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256

	// qrTypeProduct tags payloads so scanners can reject foreign QR codes.
	qrTypeProduct = "product"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	errorCorrectionLevel := ""
	baseURL := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		errorCorrectionLevel = cfg.QRCode.ErrorCorrectionLevel
		baseURL = strings.TrimSuffix(cfg.QRCode.BaseURL, "/")
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateProductQR renders a PNG QR code carrying the product payload.
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ProductQRData(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ProductQRData returns the JSON payload encoded into a product QR code.
func (s *qrcodeService) ProductQRData(productID uuid.UUID) string {
	data := QRCodeData{
		ProductID: productID.String(),
		Type:      qrTypeProduct,
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/products/%s", s.baseURL, productID)
	}

	// QRCodeData marshals without error; json tags only reference plain strings.
	jsonData, _ := json.Marshal(data)

	return string(jsonData)
}

// ParseProductQR parses QR code data and returns the product ID
func (s *qrcodeService) ParseProductQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != qrTypeProduct {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Parse UUID
	productID, err := uuid.Parse(data.ProductID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse product ID: %w", err)
	}

	return productID, nil
}
