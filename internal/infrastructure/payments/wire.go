package payments

import (
	"strings"

	"payment-proxy/internal/domain/entities"
)

// Wire payloads reproduce the provider's PascalCase field names exactly.
// ReflectCost is omitted unless the caller set it explicitly.

type wireCard struct {
	CardOwner  string `json:"CardOwner"`
	CardNumber string `json:"CardNumber"`
	ExpMonth   string `json:"ExpMonth"`
	ExpYear    string `json:"ExpYear"`
	Cvv        string `json:"Cvv"`
}

type wireCustomer struct {
	Name        string `json:"Name"`
	Phone       string `json:"Phone"`
	Email       string `json:"Email"`
	Address     string `json:"Address"`
	Description string `json:"Description"`
}

type wireProduct struct {
	Name      string `json:"Name"`
	Count     int    `json:"Count"`
	UnitPrice string `json:"UnitPrice"`
}

type paymentPayload struct {
	ReturnUrl    string        `json:"ReturnUrl"`
	OrderId      string        `json:"OrderId,omitempty"`
	ClientIp     string        `json:"ClientIp"`
	Installment  int           `json:"Installment"`
	Amount       string        `json:"Amount"`
	Is3D         bool          `json:"Is3D"`
	IsAutoCommit bool          `json:"IsAutoCommit"`
	ReflectCost  *bool         `json:"ReflectCost,omitempty"`
	CardInfo     wireCard      `json:"CardInfo"`
	CustomerInfo *wireCustomer `json:"CustomerInfo,omitempty"`
	Products     []wireProduct `json:"Products,omitempty"`
}

type completePayload struct {
	UID string `json:"Uid"`
	Key string `json:"Key"`
}

type resultPayload struct {
	UID     string `json:"Uid,omitempty"`
	OrderID string `json:"OrderId,omitempty"`
}

type refundPayload struct {
	UID         string `json:"Uid"`
	Amount      string `json:"Amount"`
	Description string `json:"Description,omitempty"`
}

func buildPaymentPayload(req entities.PaymentRequest) paymentPayload {
	p := paymentPayload{
		ReturnUrl:    req.ReturnURL,
		OrderId:      req.OrderID,
		ClientIp:     req.ClientIP,
		Installment:  req.Installment,
		Amount:       req.Amount,
		Is3D:         req.Is3D,
		IsAutoCommit: req.IsAutoCommit,
		ReflectCost:  req.ReflectCost,
		CardInfo: wireCard{
			CardOwner:  req.Card.Owner,
			CardNumber: req.Card.Number,
			ExpMonth:   req.Card.ExpiryMonth,
			ExpYear:    req.Card.ExpiryYear,
			Cvv:        req.Card.CVV,
		},
	}
	if req.Customer != nil {
		p.CustomerInfo = &wireCustomer{
			Name:        req.Customer.Name,
			Phone:       req.Customer.Phone,
			Email:       req.Customer.Email,
			Address:     req.Customer.Address,
			Description: req.Customer.Description,
		}
	}
	for _, item := range req.Products {
		p.Products = append(p.Products, wireProduct{Name: item.Name, Count: item.Count, UnitPrice: item.UnitPrice})
	}
	return p
}

// maskPaymentPayload rebuilds the payload with the card number masked and the
// CVV blanked, for logging only.
func maskPaymentPayload(p paymentPayload) paymentPayload {
	masked := p
	masked.CardInfo.CardNumber = maskPAN(p.CardInfo.CardNumber)
	masked.CardInfo.Cvv = "***"
	return masked
}

func maskPAN(n string) string {
	if len(n) < 13 {
		return strings.Repeat("*", len(n))
	}
	return n[:6] + strings.Repeat("*", len(n)-10) + n[len(n)-4:]
}
