package entities

// GatewayPayload is the transaction-creation body shared by the PIX gateways.
//
// Expiry is gateway dependent: one integration takes seconds (expiresIn),
// the other a day count (expiresInDays). Exactly one of them is set.
type GatewayPayload struct {
	Amount        int64           `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod"`
	Items         []GatewayItem   `json:"items"`
	Customer      GatewayCustomer `json:"customer"`
	Pix           GatewayPix      `json:"pix"`
	ExternalRef   string          `json:"externalRef"`
}

type GatewayItem struct {
	Title     string `json:"title"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

type GatewayCustomer struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Document GatewayDocument `json:"document"`
}

type GatewayDocument struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type GatewayPix struct {
	ExpiresIn     int `json:"expiresIn,omitempty"`
	ExpiresInDays int `json:"expiresInDays,omitempty"`
}

// GatewayReply is a raw gateway answer.
//
// OK reports a 2xx transport status. Body is the decoded JSON object; it is
// empty (never nil) when the gateway answered with something that is not a
// JSON object.
type GatewayReply struct {
	HTTPStatus int
	OK         bool
	Body       map[string]any
}
