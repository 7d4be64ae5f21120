package interfaces

import "context"

// ISMSGateway abstracts the SMS gateway used by the one-time-code proxy.
type ISMSGateway interface {
	// SendSMS delivers one message and returns the gateway's campaign id.
	SendSMS(ctx context.Context, phoneNumber, message string) (campaignID string, err error)

	Configured() bool
}
