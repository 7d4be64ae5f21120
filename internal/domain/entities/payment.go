package entities

// CardInfo holds the card data forwarded to the provider for a single call.
//
// Never persisted anywhere in this service; any log line must go through
// the masking helpers in infrastructure/payments before touching Number/CVV.
type CardInfo struct {
	Owner       string
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string
}

type CustomerInfo struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	Description string
}

type LineItem struct {
	Name      string
	Count     int
	UnitPrice string
}

// PaymentRequest is the normalized, already-formatted payment order.
//
// Amount and LineItem.UnitPrice are fixed 2-decimal strings (minor units
// divided by 100) before the request ever reaches the provider client.
type PaymentRequest struct {
	ReturnURL    string
	OrderID      string
	ClientIP     string
	Installment  int
	Amount       string
	Is3D         bool
	IsAutoCommit bool
	ReflectCost  *bool
	Card         CardInfo
	Customer     *CustomerInfo
	Products     []LineItem
}

type RefundRequest struct {
	UID         string
	Amount      string
	Description string
}
