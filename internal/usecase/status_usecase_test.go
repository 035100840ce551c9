package usecase

import (
	"context"
	"errors"
	"testing"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/normalizer"

	"go.uber.org/mock/gomock"
)

var fourCandidates = []string{"c1", "c2", "c3", "c4"}

func TestStatusUseCase_GetStatus_Validations(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewStatusUseCase(nil, normalizer.DataEnvelope)
		_, err := uc.GetStatus(context.Background(), "T1")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := newGatewayMock(ctrl)
		uc := NewStatusUseCase(gateway, normalizer.DataEnvelope)

		_, err := uc.GetStatus(context.Background(), "  ")
		if !errors.Is(err, ErrMissingTransactionID) {
			t.Fatalf("expected ErrMissingTransactionID, got %v", err)
		}
	})
}

func TestStatusUseCase_GetStatus_StopsAtFirstAcceptedCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := newGatewayMock(ctrl)
	uc := NewStatusUseCase(gateway, normalizer.DataEnvelope)

	gateway.EXPECT().StatusCandidates("T1").Return(fourCandidates)
	gomock.InOrder(
		gateway.EXPECT().QueryStatus(gomock.Any(), "c1").Return(reply(404, `{"success":false}`), nil),
		gateway.EXPECT().QueryStatus(gomock.Any(), "c2").Return(reply(200, `{"success":false,"data":{"status":"PAID"}}`), nil),
		gateway.EXPECT().QueryStatus(gomock.Any(), "c3").Return(reply(200, `{"success":true,"data":{"status":"PAID"}}`), nil),
	)
	// c4 has no expectation: calling it fails the test.

	got, err := uc.GetStatus(context.Background(), " T1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != "PAID" || got.TransactionID != "T1" {
		t.Fatalf("unexpected status: %+v", got)
	}
}

func TestStatusUseCase_GetStatus_StatusFallbacks(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "paymentStatus", body: `{"success":true,"data":{"paymentStatus":"APPROVED"}}`, want: "APPROVED"},
		{name: "default pending", body: `{"success":true,"data":{}}`, want: "PENDING"},
		{name: "no data", body: `{"success":true}`, want: "PENDING"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := newGatewayMock(ctrl)
			uc := NewStatusUseCase(gateway, normalizer.DataEnvelope)

			gateway.EXPECT().StatusCandidates("T1").Return([]string{"c1"})
			gateway.EXPECT().QueryStatus(gomock.Any(), "c1").Return(reply(200, tc.body), nil)

			got, err := uc.GetStatus(context.Background(), "T1")
			if err != nil || got.Status != tc.want {
				t.Fatalf("expected %s, got %+v err=%v", tc.want, got, err)
			}
		})
	}
}

func TestStatusUseCase_GetStatus_ExhaustedReportsLastAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := newGatewayMock(ctrl)
	uc := NewStatusUseCase(gateway, normalizer.DataEnvelope)

	gateway.EXPECT().StatusCandidates("T1").Return(fourCandidates)
	gomock.InOrder(
		gateway.EXPECT().QueryStatus(gomock.Any(), "c1").Return(reply(404, `{"n":1}`), nil),
		gateway.EXPECT().QueryStatus(gomock.Any(), "c2").Return(reply(500, `{"n":2}`), nil),
		gateway.EXPECT().QueryStatus(gomock.Any(), "c3").Return(reply(200, `{"success":false,"n":3}`), nil),
		gateway.EXPECT().QueryStatus(gomock.Any(), "c4").Return(reply(400, `{"n":4}`), nil),
	)

	_, err := uc.GetStatus(context.Background(), "T1")
	if !errors.Is(err, ErrStatusUnavailable) {
		t.Fatalf("expected ErrStatusUnavailable, got %v", err)
	}
	var su *StatusUnavailableError
	if !errors.As(err, &su) {
		t.Fatalf("expected *StatusUnavailableError, got %T", err)
	}
	if su.Attempts != 4 || su.Last.Candidate != "c4" || su.Last.HTTPStatus != 400 || su.Last.OK {
		t.Fatalf("last attempt must be the 4th candidate: %+v", su)
	}
	if n, _ := normalizer.FirstInt(su.Last.Body, []normalizer.Path{normalizer.P("n")}); n != 4 {
		t.Fatalf("expected body of 4th attempt, got %+v", su.Last.Body)
	}
}

func TestStatusUseCase_GetStatus_CallErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := newGatewayMock(ctrl)
	uc := NewStatusUseCase(gateway, normalizer.DataEnvelope)

	gateway.EXPECT().StatusCandidates("T1").Return(fourCandidates)
	gateway.EXPECT().QueryStatus(gomock.Any(), "c1").Return(entities.GatewayReply{}, errors.New("timeout"))

	_, err := uc.GetStatus(context.Background(), "T1")
	if err == nil || errors.Is(err, ErrStatusUnavailable) {
		t.Fatalf("expected plain call error, got %v", err)
	}
}

func TestStatusUseCase_GetStatus_TopLevelIgnoresFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := newGatewayMock(ctrl)
	uc := NewStatusUseCase(gateway, normalizer.TopLevel)

	gateway.EXPECT().StatusCandidates("T1").Return([]string{"c1"})
	gateway.EXPECT().QueryStatus(gomock.Any(), "c1").Return(reply(200, `{"id":"T1","status":"paid"}`), nil)

	got, err := uc.GetStatus(context.Background(), "T1")
	if err != nil || got.Status != "paid" {
		t.Fatalf("expected paid, got %+v err=%v", got, err)
	}
}
