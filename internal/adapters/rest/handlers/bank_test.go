package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarw/onlinebank/internal/application"
	"github.com/akbarw/onlinebank/internal/models"
	"github.com/akbarw/onlinebank/internal/testutils"
)

type transferReqSchema struct {
	SenderID       int     `json:"sender_id"`
	RecipientEmail string  `json:"recipient_email"`
	Sum            float64 `json:"sum"`
}

type transferRespSchema struct {
	Result struct {
		SenderID         int     `json:"sender_id"`
		RecipientID      int     `json:"recipient_id"`
		Sum              float64 `json:"sum"`
		Fee              float64 `json:"fee"`
		SenderBalance    float64 `json:"sender_balance"`
		RecipientBalance float64 `json:"recipient_balance"`
	} `json:"result"`
}

type depositReqSchema struct {
	AccountID int     `json:"account_id"`
	Email     string  `json:"email"`
	Sum       float64 `json:"sum"`
}

type depositRespSchema struct {
	Result struct {
		AccountID int     `json:"account_id"`
		Sum       float64 `json:"sum"`
		Balance   float64 `json:"balance"`
	} `json:"result"`
}

type withdrawReqSchema struct {
	AccountID int     `json:"account_id"`
	Email     string  `json:"email"`
	Card      string  `json:"card"`
	Sum       float64 `json:"sum"`
}

type withdrawRespSchema struct {
	Result struct {
		AccountID int     `json:"account_id"`
		Sum       float64 `json:"sum"`
		Fee       float64 `json:"fee"`
		Balance   float64 `json:"balance"`
	} `json:"result"`
}

func mustRegister(
	t *testing.T, app *application.App,
	name, email string, balance float64, card models.CardType,
) models.Account {
	t.Helper()
	a, err := app.AccountService.Register(
		context.TODO(), name, email, "secret", decimal.NewFromFloat(balance), card,
	)
	require.NoError(t, err)
	return a
}

func TestHandler_TransferFunds_OK(t *testing.T) {
	ts, app, _, cancel := testutils.PrepareTestServer()
	defer cancel()

	sender := mustRegister(t, app, "Sender", "sender@example.com", 1000, models.CardTypeNonPremium)
	recipient := mustRegister(t, app, "Recipient", "recipient@example.com", 300, models.CardTypeNonPremium)

	resp, body := testutils.DoTestRequest(
		t, ts, http.MethodPost, "/api/bank/transfer",
		bytes.NewReader(testutils.MustJSONMarshal(transferReqSchema{
			SenderID:       sender.ID,
			RecipientEmail: "recipient@example.com",
			Sum:            100,
		})),
	)
	assert.Equal(t, 200, resp.StatusCode)

	var respJSON transferRespSchema
	require.NoError(t, json.Unmarshal([]byte(body), &respJSON))
	assert.Equal(t, sender.ID, respJSON.Result.SenderID)
	assert.Equal(t, recipient.ID, respJSON.Result.RecipientID)
	assert.Equal(t, 100.0, respJSON.Result.Sum)
	assert.Equal(t, 5.0, respJSON.Result.Fee)
	assert.Equal(t, 895.0, respJSON.Result.SenderBalance)
	assert.Equal(t, 400.0, respJSON.Result.RecipientBalance)
}

func TestHandler_TransferFunds_Errors(t *testing.T) {
	tests := []struct {
		name       string
		senderID   int
		recipient  string
		sum        float64
		wantStatus int
	}{
		{
			"positive case",
			1,
			"recipient@example.com",
			100,
			200,
		},
		{
			"unknown sender",
			999,
			"recipient@example.com",
			100,
			404,
		},
		{
			"unknown recipient",
			1,
			"stranger@example.com",
			100,
			404,
		},
		{
			"insufficient funds",
			1,
			"recipient@example.com",
			1000.01,
			402,
		},
		{
			"zero sum",
			1,
			"recipient@example.com",
			0,
			400,
		},
		{
			"negative sum",
			1,
			"recipient@example.com",
			-100,
			400,
		},
		{
			"invalid recipient email",
			1,
			"not-an-email",
			100,
			400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, app, _, cancel := testutils.PrepareTestServer()
			defer cancel()

			sender := mustRegister(t, app, "Sender", "sender@example.com", 1000, models.CardTypeNonPremium)
			require.Equal(t, 1, sender.ID)
			mustRegister(t, app, "Recipient", "recipient@example.com", 300, models.CardTypeNonPremium)

			resp, _ := testutils.DoTestRequest(
				t, ts, http.MethodPost, "/api/bank/transfer",
				bytes.NewReader(testutils.MustJSONMarshal(transferReqSchema{
					SenderID:       tt.senderID,
					RecipientEmail: tt.recipient,
					Sum:            tt.sum,
				})),
			)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandler_DepositFunds_OK(t *testing.T) {
	ts, app, _, cancel := testutils.PrepareTestServer()
	defer cancel()

	a := mustRegister(t, app, "Customer", "customer@example.com", 1000, models.CardTypeNonPremium)

	resp, body := testutils.DoTestRequest(
		t, ts, http.MethodPost, "/api/bank/deposit",
		bytes.NewReader(testutils.MustJSONMarshal(depositReqSchema{
			AccountID: a.ID,
			Email:     "customer@example.com",
			Sum:       250.5,
		})),
	)
	assert.Equal(t, 200, resp.StatusCode)

	var respJSON depositRespSchema
	require.NoError(t, json.Unmarshal([]byte(body), &respJSON))
	assert.Equal(t, a.ID, respJSON.Result.AccountID)
	assert.Equal(t, 250.5, respJSON.Result.Sum)
	assert.Equal(t, 1250.5, respJSON.Result.Balance)
}

func TestHandler_DepositFunds_Errors(t *testing.T) {
	tests := []struct {
		name       string
		accountID  int
		email      string
		sum        float64
		wantStatus int
	}{
		{
			"positive case",
			1,
			"customer@example.com",
			100,
			200,
		},
		{
			"unknown account",
			999,
			"customer@example.com",
			100,
			404,
		},
		{
			"email belongs to another account",
			1,
			"other@example.com",
			100,
			400,
		},
		{
			"zero sum",
			1,
			"customer@example.com",
			0,
			400,
		},
		{
			"negative sum",
			1,
			"customer@example.com",
			-100,
			400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, app, _, cancel := testutils.PrepareTestServer()
			defer cancel()

			customer := mustRegister(t, app, "Customer", "customer@example.com", 1000, models.CardTypeNonPremium)
			require.Equal(t, 1, customer.ID)
			mustRegister(t, app, "Other", "other@example.com", 1000, models.CardTypeNonPremium)

			resp, _ := testutils.DoTestRequest(
				t, ts, http.MethodPost, "/api/bank/deposit",
				bytes.NewReader(testutils.MustJSONMarshal(depositReqSchema{
					AccountID: tt.accountID,
					Email:     tt.email,
					Sum:       tt.sum,
				})),
			)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandler_WithdrawFunds_FeeDependsOnCardType(t *testing.T) {
	tests := []struct {
		name        string
		card        models.CardType
		balance     float64
		sum         float64
		wantFee     float64
		wantBalance float64
	}{
		{
			"non-premium card pays a five percent fee",
			models.CardTypeNonPremium,
			1000,
			500,
			25,
			475,
		},
		{
			"premium card withdraws for free",
			models.CardTypePremium,
			60000,
			500,
			0,
			59500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, app, _, cancel := testutils.PrepareTestServer()
			defer cancel()

			a := mustRegister(t, app, "Customer", "customer@example.com", tt.balance, tt.card)

			resp, body := testutils.DoTestRequest(
				t, ts, http.MethodPost, "/api/bank/withdraw",
				bytes.NewReader(testutils.MustJSONMarshal(withdrawReqSchema{
					AccountID: a.ID,
					Email:     "customer@example.com",
					Card:      string(tt.card),
					Sum:       tt.sum,
				})),
			)
			assert.Equal(t, 200, resp.StatusCode)

			var respJSON withdrawRespSchema
			require.NoError(t, json.Unmarshal([]byte(body), &respJSON))
			assert.Equal(t, a.ID, respJSON.Result.AccountID)
			assert.Equal(t, tt.sum, respJSON.Result.Sum)
			assert.Equal(t, tt.wantFee, respJSON.Result.Fee)
			assert.Equal(t, tt.wantBalance, respJSON.Result.Balance)
		})
	}
}

func TestHandler_WithdrawFunds_Errors(t *testing.T) {
	tests := []struct {
		name       string
		accountID  int
		email      string
		card       string
		sum        float64
		wantStatus int
	}{
		{
			"positive case",
			1,
			"customer@example.com",
			"non-premium",
			100,
			200,
		},
		{
			"unknown account",
			999,
			"customer@example.com",
			"non-premium",
			100,
			404,
		},
		{
			"email belongs to another account",
			1,
			"other@example.com",
			"non-premium",
			100,
			400,
		},
		{
			"card type does not match",
			1,
			"customer@example.com",
			"premium",
			100,
			400,
		},
		{
			"sum plus fee exceeds the balance",
			1,
			"customer@example.com",
			"non-premium",
			1000,
			402,
		},
		{
			"zero sum",
			1,
			"customer@example.com",
			"non-premium",
			0,
			400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, app, _, cancel := testutils.PrepareTestServer()
			defer cancel()

			customer := mustRegister(t, app, "Customer", "customer@example.com", 1000, models.CardTypeNonPremium)
			require.Equal(t, 1, customer.ID)
			mustRegister(t, app, "Other", "other@example.com", 1000, models.CardTypeNonPremium)

			resp, _ := testutils.DoTestRequest(
				t, ts, http.MethodPost, "/api/bank/withdraw",
				bytes.NewReader(testutils.MustJSONMarshal(withdrawReqSchema{
					AccountID: tt.accountID,
					Email:     tt.email,
					Card:      tt.card,
					Sum:       tt.sum,
				})),
			)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestHandler_TransferFunds_FeeMayOverdraw(t *testing.T) {
	ts, app, _, cancel := testutils.PrepareTestServer()
	defer cancel()

	sender := mustRegister(t, app, "Sender", "sender@example.com", 100, models.CardTypeNonPremium)
	mustRegister(t, app, "Recipient", "recipient@example.com", 0.01, models.CardTypeNonPremium)

	// sufficiency is checked against the sum alone, the fee may overdraw
	resp, body := testutils.DoTestRequest(
		t, ts, http.MethodPost, "/api/bank/transfer",
		bytes.NewReader(testutils.MustJSONMarshal(transferReqSchema{
			SenderID:       sender.ID,
			RecipientEmail: "recipient@example.com",
			Sum:            100,
		})),
	)
	assert.Equal(t, 200, resp.StatusCode)

	var respJSON transferRespSchema
	require.NoError(t, json.Unmarshal([]byte(body), &respJSON))
	assert.Equal(t, -5.0, respJSON.Result.SenderBalance)
	assert.Equal(t, 100.01, respJSON.Result.RecipientBalance)
}
