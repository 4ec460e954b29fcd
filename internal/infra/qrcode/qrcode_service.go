// Package qrcode renders authorization URLs as PNG QR codes.
package qrcode

import (
	"fmt"
	"strings"

	"dreamtree/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size          int
	recoveryLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service. The level is one of L/M/Q/H;
// unknown values fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:          size,
		recoveryLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateConnectQR renders an authorization URL as a PNG QR code so the user
// can finish approving the connection on another device.
func (s *qrcodeService) GenerateConnectQR(authURL string) ([]byte, error) {
	if strings.TrimSpace(authURL) == "" {
		return nil, fmt.Errorf("authorization URL must not be empty")
	}

	qrCode, err := qrcode.New(authURL, s.recoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
