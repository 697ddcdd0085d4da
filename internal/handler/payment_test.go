package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/medical-camp-registration/internal/payments/stub"
	"github.com/iliyamo/medical-camp-registration/internal/repository"
)

func TestCreateIntentConvertsFeesToCents(t *testing.T) {
	provider := stub.New()
	h := NewPaymentHandler(newFakePaymentStore(), newFakeRegStore(), provider)

	rec := request(http.MethodPost, "/create-payment-intent", "/create-payment-intent",
		`{"fees":49.99}`, h.CreateIntent)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["clientSecret"])

	// 49.99 scales to 4999 minor units by flooring after *100.
	assert.EqualValues(t, 4999, provider.LastAmountCents)
	assert.Equal(t, "usd", provider.LastCurrency)
}

func TestCreateIntentRejectsNonPositiveFees(t *testing.T) {
	h := NewPaymentHandler(newFakePaymentStore(), newFakeRegStore(), stub.New())
	for _, body := range []string{`{"fees":0}`, `{"fees":-3}`, `{}`} {
		rec := request(http.MethodPost, "/create-payment-intent", "/create-payment-intent", body, h.CreateIntent)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	provider := stub.New()
	provider.Err = errors.New("gateway down")
	h := NewPaymentHandler(newFakePaymentStore(), newFakeRegStore(), provider)

	rec := request(http.MethodPost, "/create-payment-intent", "/create-payment-intent",
		`{"fees":10}`, h.CreateIntent)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecordPaymentAppendsAndMarksPaid(t *testing.T) {
	store := newFakePaymentStore()
	regs := newFakeRegStore()
	_, err := regs.Create(context.Background(), repository.Registration{
		CampID: 3, ParticipantEmail: "alice@example.com",
	})
	require.NoError(t, err)
	h := NewPaymentHandler(store, regs, stub.New())

	body := `{"email":"alice@example.com","campId":3,"amount":25.50,"transactionId":"pi_123"}`
	rec := request(http.MethodPost, "/payments", "/payments", body, h.Record)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Payment readable back with the same amount.
	list, err := store.ListByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 25.50, list[0].Amount)
	assert.Equal(t, "pi_123", list[0].TransactionID)

	// Matching registration flipped to Paid.
	reg, err := regs.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Paid", reg.PaymentStatus)
}

func TestRecordPaymentValidation(t *testing.T) {
	h := NewPaymentHandler(newFakePaymentStore(), newFakeRegStore(), stub.New())
	for _, body := range []string{
		`{"campId":3,"amount":10}`,                     // missing email
		`{"email":"nope","campId":3,"amount":10}`,      // bad email
		`{"email":"a@b.com","amount":10}`,              // missing campId
		`{"email":"a@b.com","campId":3,"amount":-1}`,   // negative amount
	} {
		rec := request(http.MethodPost, "/payments", "/payments", body, h.Record)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestListPaymentsByEmail(t *testing.T) {
	store := newFakePaymentStore()
	_, err := store.Create(context.Background(), repository.Payment{Email: "alice@example.com", CampID: 1, Amount: 10})
	require.NoError(t, err)
	_, err = store.Create(context.Background(), repository.Payment{Email: "bob@example.com", CampID: 1, Amount: 20})
	require.NoError(t, err)
	h := NewPaymentHandler(store, newFakeRegStore(), stub.New())

	rec := request(http.MethodGet, "/payments/alice@example.com", "/payments/:email", "", h.ListByEmail)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []repository.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "alice@example.com", list[0].Email)
}
