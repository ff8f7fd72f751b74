package service

import (
	"bookshop-api/internal/client"
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// minor units per major unit; exact for the two-decimal currencies this
// shop charges in
const minorUnitsMultiplier = 100

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrPaymentProcessing = errors.New("payment processing failed")
)

const DefaultCurrency = "usd"

// CheckoutService validates a charge amount and brokers a payment
// intent against the processor. The intent's final state belongs to the
// processor; only the creation step is observed here.
type CheckoutService interface {
	// CreateIntent takes the amount in major units ($10 = 10) and
	// returns the client-side confirmation secret.
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (string, error)
}

type checkoutServiceImpl struct {
	stripeClient client.StripeClient
}

func NewCheckoutService(stripeClient client.StripeClient) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
	}
}

func (s *checkoutServiceImpl) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (string, error) {
	// exact decimal arithmetic: amounts that do not land on a whole
	// minor unit are rejected, never rounded
	minorUnits := amount.Mul(decimal.NewFromInt(minorUnitsMultiplier))
	if amount.Sign() <= 0 || !minorUnits.IsInteger() {
		return "", ErrInvalidAmount
	}
	// the wire format is int64 minor units; an amount that does not fit
	// would wrap negative on truncation
	if !minorUnits.BigInt().IsInt64() {
		return "", ErrInvalidAmount
	}

	if currency == "" {
		currency = DefaultCurrency
	}

	// a client disconnect must not abandon the processor call halfway;
	// the HTTP client's own timeout still bounds it
	intent, err := s.stripeClient.CreatePaymentIntent(context.WithoutCancel(ctx), minorUnits.IntPart(), currency)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPaymentProcessing, err)
	}

	return intent.ClientSecret, nil
}
