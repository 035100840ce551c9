package normalizer

import (
	"fmt"
	"strings"

	"pix_checkout/internal/domain/entities"
)

const (
	DialectTopLevel     = "top-level"
	DialectDataEnvelope = "data-envelope"
	DialectMercadoPago  = "mercadopago"
	DialectAuto         = "auto"
)

// FlagPolicy says how the body-level `success` flag is judged.
type FlagPolicy int

const (
	// FlagIgnored accepts any body; the transport status decides.
	FlagIgnored FlagPolicy = iota
	// FlagRequired demands `success: true`.
	FlagRequired
	// FlagIfPresent demands `success: true` only when the key exists.
	FlagIfPresent
)

// Dialect is an ordered set of probes per normalized field. Probes are tried
// in order and the first non-empty match wins.
type Dialect struct {
	Name          string
	SuccessFlag   FlagPolicy
	TransactionID []Path
	PixCode       []Path
	Amount        []Path
	Status        []Path
	QRCode        []Path
	InvoiceURL    []Path
	PaymentStatus []Path
}

// ChargeFields is what a creation response yielded. Empty strings mean the
// field was not found.
type ChargeFields struct {
	TransactionID string
	PixCode       string
	Status        string
	QRCode        string
	InvoiceURL    string
	Amount        int64
	HasAmount     bool
}

// TopLevel reads `{id, amount, status, pix:{qrcode|copyPaste|brCode}}`.
var TopLevel = Dialect{
	Name:          DialectTopLevel,
	SuccessFlag:   FlagIgnored,
	TransactionID: []Path{P("id")},
	PixCode:       []Path{P("pix", "qrcode"), P("pix", "copyPaste"), P("pix", "brCode")},
	Amount:        []Path{P("amount")},
	Status:        []Path{P("status")},
	QRCode:        []Path{P("pix", "qrcode")},
	PaymentStatus: []Path{P("status")},
}

// DataEnvelope reads `{success, data:{transactionId, amount, status,
// invoiceUrl, paymentData:{copyPaste|copy_paste|pixCode|qrCode}}}`.
var DataEnvelope = Dialect{
	Name:          DialectDataEnvelope,
	SuccessFlag:   FlagRequired,
	TransactionID: []Path{P("data", "transactionId")},
	PixCode: []Path{
		P("data", "paymentData", "copyPaste"),
		P("data", "paymentData", "copy_paste"),
		P("data", "paymentData", "pixCode"),
		P("data", "paymentData", "qrCode"),
	},
	Amount:        []Path{P("data", "amount")},
	Status:        []Path{P("data", "status")},
	InvoiceURL:    []Path{P("data", "invoiceUrl")},
	PaymentStatus: []Path{P("data", "status"), P("data", "paymentStatus")},
}

// MercadoPago reads the payment resource returned by the Mercado Pago API.
// transaction_amount is in major units, so amount is left to the caller.
var MercadoPago = Dialect{
	Name:          DialectMercadoPago,
	SuccessFlag:   FlagIgnored,
	TransactionID: []Path{P("id")},
	PixCode:       []Path{P("point_of_interaction", "transaction_data", "qr_code")},
	Status:        []Path{P("status")},
	QRCode:        []Path{P("point_of_interaction", "transaction_data", "qr_code_base64")},
	InvoiceURL:    []Path{P("point_of_interaction", "transaction_data", "ticket_url")},
	PaymentStatus: []Path{P("status")},
}

// Auto tries the top-level shape first, then the data envelope.
var Auto = Dialect{
	Name:          DialectAuto,
	SuccessFlag:   FlagIfPresent,
	TransactionID: concat(TopLevel.TransactionID, DataEnvelope.TransactionID),
	PixCode:       concat(TopLevel.PixCode, DataEnvelope.PixCode),
	Amount:        concat(TopLevel.Amount, DataEnvelope.Amount),
	Status:        concat(TopLevel.Status, DataEnvelope.Status),
	QRCode:        TopLevel.QRCode,
	InvoiceURL:    DataEnvelope.InvoiceURL,
	PaymentStatus: concat(DataEnvelope.PaymentStatus, TopLevel.PaymentStatus),
}

// ByName resolves a configured dialect name.
func ByName(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DialectTopLevel:
		return TopLevel, nil
	case DialectDataEnvelope:
		return DataEnvelope, nil
	case DialectMercadoPago:
		return MercadoPago, nil
	case DialectAuto:
		return Auto, nil
	}
	return Dialect{}, fmt.Errorf("unknown response dialect %q", name)
}

// Accepts applies the dialect's success-flag policy to a body.
func (d Dialect) Accepts(body map[string]any) bool {
	value, present := SuccessFlag(body)
	switch d.SuccessFlag {
	case FlagRequired:
		return value
	case FlagIfPresent:
		return !present || value
	}
	return true
}

func (d Dialect) ExtractCharge(body map[string]any) ChargeFields {
	amount, hasAmount := FirstInt(body, d.Amount)
	return ChargeFields{
		TransactionID: FirstString(body, d.TransactionID),
		PixCode:       FirstString(body, d.PixCode),
		Status:        FirstString(body, d.Status),
		QRCode:        FirstString(body, d.QRCode),
		InvoiceURL:    FirstString(body, d.InvoiceURL),
		Amount:        amount,
		HasAmount:     hasAmount,
	}
}

// ExtractStatus returns the payment status of a status-query body,
// defaulting to PENDING.
func (d Dialect) ExtractStatus(body map[string]any) string {
	if s := FirstString(body, d.PaymentStatus); s != "" {
		return s
	}
	return entities.ChargeStatusPending
}

func concat(groups ...[]Path) []Path {
	var out []Path
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
