package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateConnectQR renders an authorization URL as a PNG QR code so the
	// user can finish the approval on another device.
	GenerateConnectQR(authURL string) ([]byte, error)
}
