package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestChargeRequest_Unmarshal(t *testing.T) {
	t.Run("string fields", func(t *testing.T) {
		var r ChargeRequest
		err := json.Unmarshal([]byte(`{"cpf":" 123.456.789-09 ","nome":"Maria","nome_mae":"Ana","amount":"64,73","title":"Taxa"}`), &r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := r.ToInput()
		if in.Document != "123.456.789-09" || in.Name != "Maria" || in.MotherName != "Ana" || in.Amount != "64,73" || in.Title != "Taxa" {
			t.Fatalf("unexpected input: %+v", in)
		}
	})

	t.Run("numeric amount and cpf", func(t *testing.T) {
		var r ChargeRequest
		if err := json.Unmarshal([]byte(`{"cpf":12345678909,"nome":"Maria","amount":64.73}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		in := r.ToInput()
		if in.Amount != "64.73" || in.Document != "12345678909" {
			t.Fatalf("unexpected input: %+v", in)
		}
	})

	t.Run("null fields", func(t *testing.T) {
		var r ChargeRequest
		if err := json.Unmarshal([]byte(`{"cpf":null,"nome":null,"amount":null}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in := r.ToInput(); in.Document != "" || in.Name != "" || in.Amount != "" {
			t.Fatalf("expected empty input, got %+v", in)
		}
	})

	t.Run("object amount rejected", func(t *testing.T) {
		var r ChargeRequest
		err := json.Unmarshal([]byte(`{"amount":{"value":1}}`), &r)
		var fe *FieldError
		if !errors.As(err, &fe) || fe.Field != "amount" {
			t.Fatalf("expected amount field error, got %v", err)
		}
	})

	t.Run("boolean cpf names the field", func(t *testing.T) {
		var r ChargeRequest
		err := json.Unmarshal([]byte(`{"cpf":true,"nome":"Maria"}`), &r)
		var fe *FieldError
		if !errors.As(err, &fe) || fe.Field != "cpf" {
			t.Fatalf("expected cpf field error, got %v", err)
		}
	})

	t.Run("non object body", func(t *testing.T) {
		var r ChargeRequest
		err := json.Unmarshal([]byte(`[1,2]`), &r)
		var fe *FieldError
		if err == nil || errors.As(err, &fe) {
			t.Fatalf("expected plain decode error, got %v", err)
		}
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		var r ChargeRequest
		if err := json.Unmarshal([]byte(`{"cpf":"1","nome":"M","extra":{"a":true}}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestChargeRequest_Received(t *testing.T) {
	r := ChargeRequest{CPF: "", Nome: "Maria", Email: "m@x.com"}
	got := r.Received()
	if got["nome"] != "Maria" || got["cpf"] != "" || got["email"] != "m@x.com" || got["phone"] != "" {
		t.Fatalf("unexpected echo: %+v", got)
	}
	if _, ok := got["amount"]; ok {
		t.Fatalf("amount must not be echoed")
	}
}
