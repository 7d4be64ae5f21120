package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"

	"payment-proxy/internal/usecase/interfaces"
)

var ErrMissingSMSCredentials = errors.New("sms gateway credentials missing")

const otpPlaceholder = "{code}"

// OTPResult is the one-time-code delivery summary returned to the caller.
type OTPResult struct {
	OTP        string
	CampaignID string
}

type ISMSUseCase interface {
	SendOTP(ctx context.Context, phoneNumber, messageTemplate string) (OTPResult, error)
}

type SMSUseCase struct {
	gateway interfaces.ISMSGateway
}

var _ ISMSUseCase = (*SMSUseCase)(nil)

func NewSMSUseCase(gateway interfaces.ISMSGateway) *SMSUseCase {
	return &SMSUseCase{gateway: gateway}
}

// SendOTP generates a 6-digit code, renders the message and forwards it to
// the SMS gateway. The template's {code} placeholder is substituted when
// present; an empty template falls back to a default text.
func (u *SMSUseCase) SendOTP(ctx context.Context, phoneNumber, messageTemplate string) (OTPResult, error) {
	if u.gateway == nil || !u.gateway.Configured() {
		log.Printf("[sms][usecase] rejected: gateway credentials missing")
		return OTPResult{}, ErrMissingSMSCredentials
	}

	otp, err := generateOTP()
	if err != nil {
		return OTPResult{}, err
	}

	message := strings.TrimSpace(messageTemplate)
	switch {
	case message == "":
		message = fmt.Sprintf("Your verification code is %s", otp)
	case strings.Contains(message, otpPlaceholder):
		message = strings.ReplaceAll(message, otpPlaceholder, otp)
	default:
		message = message + " " + otp
	}

	log.Printf("[sms][usecase] send start phone=%s", maskPhone(phoneNumber))
	campaignID, err := u.gateway.SendSMS(ctx, phoneNumber, message)
	if err != nil {
		log.Printf("[sms][usecase] send failed phone=%s err=%v", maskPhone(phoneNumber), err)
		return OTPResult{}, err
	}
	log.Printf("[sms][usecase] send success phone=%s campaign_id=%s", maskPhone(phoneNumber), campaignID)

	return OTPResult{OTP: otp, CampaignID: campaignID}, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
