package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayer() PayerInfo {
	return PayerInfo{
		Name:  "Maria Silva",
		Phone: "(11) 98765-4321",
		Email: "maria@example.com",
		TaxID: "123.456.789-09",
	}
}

func TestPayerValidation(t *testing.T) {
	assert.NoError(t, validPayer().Validate())

	p := validPayer()
	p.Name = "  Jo "
	assert.ErrorIs(t, p.Validate(), ErrNameTooShort)

	p = validPayer()
	p.Phone = "123-456"
	assert.ErrorIs(t, p.Validate(), ErrInvalidPhone)

	p = validPayer()
	p.Email = "maria.example.com"
	assert.ErrorIs(t, p.Validate(), ErrInvalidEmail)

	p = validPayer()
	p.TaxID = "123.456.789"
	assert.ErrorIs(t, p.Validate(), ErrInvalidTaxID)

	// Digit count is all that is checked on the tax id; a formatted
	// value with 11 digits passes even without a valid check digit.
	p = validPayer()
	p.TaxID = "111.111.111-11"
	assert.NoError(t, p.Validate())
}

func TestCreateCharge(t *testing.T) {
	var got createBillingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/billing/create", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		resp := map[string]interface{}{
			"data": map[string]interface{}{
				"id":  "bill_123",
				"url": "https://pay.example.com/bill_123",
				"pix": map[string]string{
					"qrCode":      "qr-text",
					"qrCodeImage": "data:image/png;base64,abc",
					"copyPaste":   "00020126pix",
				},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	charge, err := c.CreateCharge(context.Background(), validPayer(), 69.90, "pizza-order-7")
	require.NoError(t, err)

	assert.Equal(t, "bill_123", charge.BillingID)
	assert.Equal(t, "qr-text", charge.QRCode)
	assert.Equal(t, "data:image/png;base64,abc", charge.QRCodeImage)
	assert.Equal(t, "00020126pix", charge.CopyPaste)
	assert.Equal(t, "https://pay.example.com/bill_123", charge.URL)

	// The provider receives one PIX product priced in cents with the
	// payer's digits stripped of formatting.
	require.Len(t, got.Products, 1)
	assert.Equal(t, int64(6990), got.Products[0].Price)
	assert.Equal(t, "pizza-order-7", got.Products[0].ExternalID)
	assert.Equal(t, []string{"PIX"}, got.Methods)
	assert.Equal(t, "ONE_TIME", got.Frequency)
	assert.Equal(t, "11987654321", got.Customer.Cellphone)
	assert.Equal(t, "12345678909", got.Customer.TaxID)
}

func TestCreateChargeProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "tax id rejected"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.CreateCharge(context.Background(), validPayer(), 10, "ref")
	require.Error(t, err)
	assert.EqualError(t, err, "tax id rejected")
}

func TestCreateChargeValidatesBeforeCalling(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")

	payer := validPayer()
	payer.TaxID = "123"
	_, err := c.CreateCharge(context.Background(), payer, 10, "ref")
	assert.ErrorIs(t, err, ErrInvalidTaxID)

	_, err = c.CreateCharge(context.Background(), validPayer(), 0, "ref")
	assert.Error(t, err)

	assert.False(t, called, "invalid input must not reach the provider")
}
