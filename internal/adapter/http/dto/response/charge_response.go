package response

import "pix_checkout/internal/domain/entities"

// ChargeResponse is the shape the checkout frontend consumes.
type ChargeResponse struct {
	Success       bool   `json:"success" example:"true"`
	TransactionID string `json:"transaction_id" example:"tx_123"`
	PixCode       string `json:"pix_code" example:"00020126...6304ABCD"`
	Amount        int64  `json:"amount" example:"6473"`
	Status        string `json:"status" example:"PENDING"`
	QRCode        string `json:"qr_code,omitempty"`
	InvoiceURL    string `json:"invoice_url,omitempty"`
}

type StatusResponse struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"PAID"`
}

// ErrorResponse documents the failure body; extra diagnostics keys vary by
// failure class.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Code    string `json:"code" example:"GATEWAY_ERROR"`
	Message string `json:"message" example:"Falha ao criar PIX"`
}

func FromCharge(c entities.Charge) ChargeResponse {
	return ChargeResponse{
		Success:       true,
		TransactionID: c.TransactionID,
		PixCode:       c.PixCode,
		Amount:        c.AmountCents,
		Status:        c.Status,
		QRCode:        c.QRCode,
		InvoiceURL:    c.InvoiceURL,
	}
}

func FromStatus(s entities.PaymentStatus) StatusResponse {
	return StatusResponse{Success: true, Status: s.Status}
}
