package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"pix_checkout/internal/domain/entities"
)

// ChargeRequest is the body of the charge creation route. `nome_mae` is
// accepted for compatibility and not forwarded.
type ChargeRequest struct {
	CPF     TextOrNumber `json:"cpf" swaggertype:"string" example:"123.456.789-09"`
	Nome    TextOrNumber `json:"nome" swaggertype:"string" example:"Maria Silva"`
	NomeMae TextOrNumber `json:"nome_mae,omitempty" swaggertype:"string"`
	Email   TextOrNumber `json:"email,omitempty" swaggertype:"string" example:"maria@example.com"`
	Phone   TextOrNumber `json:"phone,omitempty" swaggertype:"string" example:"(11) 99999-9999"`
	Amount  TextOrNumber `json:"amount,omitempty" swaggertype:"string" example:"64,73"`
	Title   TextOrNumber `json:"title,omitempty" swaggertype:"string" example:"Taxa de Adesão"`
}

// FieldError names the body field that could not be decoded.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnmarshalJSON decodes field by field so a bad value is reported with its
// key. Unknown keys are ignored.
func (r *ChargeRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	targets := []struct {
		key string
		dst *TextOrNumber
	}{
		{"cpf", &r.CPF},
		{"nome", &r.Nome},
		{"nome_mae", &r.NomeMae},
		{"email", &r.Email},
		{"phone", &r.Phone},
		{"amount", &r.Amount},
		{"title", &r.Title},
	}
	for _, target := range targets {
		raw, ok := fields[target.key]
		if !ok {
			continue
		}
		if err := target.dst.UnmarshalJSON(raw); err != nil {
			return &FieldError{Field: target.key, Err: err}
		}
	}
	return nil
}

// TextOrNumber accepts a JSON string, number or null. Numbers keep their
// literal text so "64.73" and 64.73 read the same.
type TextOrNumber string

func (t *TextOrNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TextOrNumber(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = TextOrNumber(n.String())
	return nil
}

func (t TextOrNumber) String() string {
	return strings.TrimSpace(string(t))
}

func (r ChargeRequest) ToInput() entities.ChargeInput {
	return entities.ChargeInput{
		Document:   r.CPF.String(),
		Name:       r.Nome.String(),
		MotherName: r.NomeMae.String(),
		Email:      r.Email.String(),
		Phone:      r.Phone.String(),
		Amount:     r.Amount.String(),
		Title:      r.Title.String(),
	}
}

// Received is echoed back when required customer data is missing.
func (r ChargeRequest) Received() map[string]any {
	return map[string]any{
		"cpf":   string(r.CPF),
		"nome":  string(r.Nome),
		"email": string(r.Email),
		"phone": string(r.Phone),
	}
}
