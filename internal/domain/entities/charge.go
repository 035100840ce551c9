package entities

// ChargeStatusPending is reported whenever the gateway omits a status.
const ChargeStatusPending = "PENDING"

// ChargeInput is the customer data received from the checkout frontend.
//
// Document (CPF) and Name are mandatory; the remaining fields fall back to
// configured defaults. MotherName is accepted for compatibility and ignored.
// Amount is kept as text because the frontend sends Brazilian formatting
// ("64,73").
type ChargeInput struct {
	Document   string
	Name       string
	MotherName string
	Email      string
	Phone      string
	Amount     string
	Title      string
}

// Charge is the normalized result of a PIX charge creation.
//
// Invariant: a Charge is only returned when both TransactionID and PixCode
// are non-empty.
type Charge struct {
	TransactionID string
	PixCode       string
	AmountCents   int64
	Status        string
	QRCode        string
	InvoiceURL    string
}

// PaymentStatus is the normalized result of a status poll.
type PaymentStatus struct {
	TransactionID string
	Status        string
}
