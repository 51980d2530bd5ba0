// Package payment talks to the PIX billing provider. The provider owns
// QR code generation and payment settlement; this client only creates
// charges and relays what the provider returns. Payment confirmation is
// a manual customer action, there is no webhook wired back into orders.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.abacatepay.com"

var (
	ErrNameTooShort = errors.New("name must have at least 3 characters")
	ErrInvalidPhone = errors.New("phone must have at least 10 digits")
	ErrInvalidEmail = errors.New("email must contain @")
	ErrInvalidTaxID = errors.New("tax id must have exactly 11 digits")
)

// PayerInfo identifies who the charge is billed to.
type PayerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	TaxID string `json:"tax_id"`
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate applies the same format checks the checkout form applies.
// The tax id is checked for digit count only, not for a valid check
// digit.
func (p PayerInfo) Validate() error {
	if len(strings.TrimSpace(p.Name)) < 3 {
		return ErrNameTooShort
	}
	if len(digits(p.Phone)) < 10 {
		return ErrInvalidPhone
	}
	if !strings.Contains(p.Email, "@") {
		return ErrInvalidEmail
	}
	if len(digits(p.TaxID)) != 11 {
		return ErrInvalidTaxID
	}
	return nil
}

// Charge is what the provider hands back for a created PIX billing.
type Charge struct {
	BillingID   string `json:"billing_id"`
	QRCode      string `json:"qr_code,omitempty"`
	QRCodeImage string `json:"qr_code_image,omitempty"`
	CopyPaste   string `json:"copy_paste,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Client creates PIX charges against the billing provider.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type billingProduct struct {
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"` // cents
}

type billingCustomer struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Cellphone string `json:"cellphone"`
	TaxID     string `json:"taxId"`
}

type createBillingRequest struct {
	Frequency string           `json:"frequency"`
	Methods   []string         `json:"methods"`
	Products  []billingProduct `json:"products"`
	Customer  billingCustomer  `json:"customer"`
	ReturnURL string           `json:"returnUrl,omitempty"`
}

type createBillingResponse struct {
	Data struct {
		ID  string `json:"id"`
		URL string `json:"url"`
		Pix struct {
			QRCode      string `json:"qrCode"`
			QRCodeImage string `json:"qrCodeImage"`
			CopyPaste   string `json:"copyPaste"`
		} `json:"pix"`
	} `json:"data"`
	Message string `json:"message"`
}

// CreateCharge validates the payer, converts the amount to cents and
// requests a one-time PIX billing. orderRef ties the charge to an
// order for reconciliation on the provider side.
func (c *Client) CreateCharge(ctx context.Context, payer PayerInfo, amount float64, orderRef string) (*Charge, error) {
	if err := payer.Validate(); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	reqBody := createBillingRequest{
		Frequency: "ONE_TIME",
		Methods:   []string{"PIX"},
		Products: []billingProduct{{
			ExternalID: orderRef,
			Name:       "Pedido Pizzaria",
			Quantity:   1,
			Price:      int64(math.Round(amount * 100)),
		}},
		Customer: billingCustomer{
			Name:      strings.TrimSpace(payer.Name),
			Email:     payer.Email,
			Cellphone: digits(payer.Phone),
			TaxID:     digits(payer.TaxID),
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/billing/create", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	var out createBillingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("payment provider returned an unreadable response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := out.Message
		if msg == "" {
			msg = "failed to create PIX payment"
		}
		return nil, errors.New(msg)
	}

	return &Charge{
		BillingID:   out.Data.ID,
		QRCode:      out.Data.Pix.QRCode,
		QRCodeImage: out.Data.Pix.QRCodeImage,
		CopyPaste:   out.Data.Pix.CopyPaste,
		URL:         out.Data.URL,
	}, nil
}
