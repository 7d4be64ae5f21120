package request

import (
	"encoding/json"
	"net"
	"net/url"
	"regexp"
	"strings"

	"payment-proxy/internal/domain/entities"
	"payment-proxy/internal/domain/format"
)

// ValidationError carries the first violated field's message, returned
// verbatim to the caller with HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(message string) error { return &ValidationError{Message: message} }

var (
	monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	yearPattern  = regexp.MustCompile(`^[0-9]{2,4}$`)
	cvvPattern   = regexp.MustCompile(`^[0-9]{3}$`)
	digitPattern = regexp.MustCompile(`^[0-9]+$`)
)

type CardRequest struct {
	Owner       string `json:"owner"`
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

type CustomerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

type ProductRequest struct {
	Name      string      `json:"name"`
	Count     int         `json:"count"`
	UnitPrice json.Number `json:"unitPrice"`
}

// PaymentRequest is the inbound payload of the pay-request route. Amount and
// unit prices arrive as provider minor units (integer cents).
type PaymentRequest struct {
	ReturnURL    string           `json:"returnUrl"`
	OrderID      string           `json:"orderId"`
	ClientIP     string           `json:"clientIp"`
	Installment  int              `json:"installment"`
	Amount       json.Number      `json:"amount"`
	Is3D         *bool            `json:"is3D"`
	IsAutoCommit *bool            `json:"isAutoCommit"`
	ReflectCost  *bool            `json:"reflectCost"`
	Card         *CardRequest     `json:"card"`
	Customer     *CustomerRequest `json:"customer"`
	Products     []ProductRequest `json:"products"`
}

// Validate schema-checks the payload and returns the normalized payment
// order, or the first violated field's message.
func (r PaymentRequest) Validate() (entities.PaymentRequest, error) {
	var out entities.PaymentRequest

	u, err := url.ParseRequestURI(strings.TrimSpace(r.ReturnURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return out, invalid("returnUrl must be a valid URL")
	}
	if net.ParseIP(strings.TrimSpace(r.ClientIP)) == nil {
		return out, invalid("clientIp must be a valid IP address")
	}
	if r.Installment < 1 {
		return out, invalid("installment must be a positive integer")
	}
	amount, err := r.Amount.Float64()
	if err != nil || amount <= 0 {
		return out, invalid("amount must be a positive number")
	}
	if r.Is3D == nil {
		return out, invalid("is3D is required and must be a boolean")
	}
	if r.IsAutoCommit == nil {
		return out, invalid("isAutoCommit is required and must be a boolean")
	}
	if r.Card == nil {
		return out, invalid("card is required")
	}
	if strings.TrimSpace(r.Card.Owner) == "" {
		return out, invalid("card.owner is required")
	}
	number := format.CardNumber(r.Card.Number)
	if len(number) < 13 || len(number) > 19 || !digitPattern.MatchString(number) {
		return out, invalid("card.number must be 13-19 digits")
	}
	if !monthPattern.MatchString(r.Card.ExpiryMonth) {
		return out, invalid("card.expiryMonth must be a 2-digit month between 01 and 12")
	}
	if !yearPattern.MatchString(r.Card.ExpiryYear) {
		return out, invalid("card.expiryYear must be 2-4 digits")
	}
	if !cvvPattern.MatchString(r.Card.CVV) {
		return out, invalid("card.cvv must be exactly 3 digits")
	}

	out = entities.PaymentRequest{
		ReturnURL:    strings.TrimSpace(r.ReturnURL),
		OrderID:      format.OrderID(r.OrderID),
		ClientIP:     strings.TrimSpace(r.ClientIP),
		Installment:  r.Installment,
		Amount:       format.Amount(r.Amount),
		Is3D:         *r.Is3D,
		IsAutoCommit: *r.IsAutoCommit,
		ReflectCost:  r.ReflectCost,
		Card: entities.CardInfo{
			Owner:       format.CardOwner(r.Card.Owner),
			Number:      number,
			ExpiryMonth: r.Card.ExpiryMonth,
			ExpiryYear:  r.Card.ExpiryYear,
			CVV:         r.Card.CVV,
		},
	}
	if r.Customer != nil {
		out.Customer = &entities.CustomerInfo{
			Name:        r.Customer.Name,
			Phone:       r.Customer.Phone,
			Email:       r.Customer.Email,
			Address:     r.Customer.Address,
			Description: r.Customer.Description,
		}
	}
	for _, p := range r.Products {
		if strings.TrimSpace(p.Name) == "" {
			return out, invalid("products[].name is required")
		}
		if p.Count < 1 {
			return out, invalid("products[].count must be a positive integer")
		}
		unit, err := p.UnitPrice.Float64()
		if err != nil || unit <= 0 {
			return out, invalid("products[].unitPrice must be a positive number")
		}
		out.Products = append(out.Products, entities.LineItem{
			Name:      p.Name,
			Count:     p.Count,
			UnitPrice: format.Amount(p.UnitPrice),
		})
	}
	return out, nil
}
