package entities

// PaymentEventType names the provider events the fulfillment handler reacts to.
type PaymentEventType string

const (
	PaymentEventCheckoutCompleted      PaymentEventType = "checkout.session.completed"
	PaymentEventPaymentIntentSucceeded PaymentEventType = "payment_intent.succeeded"
	PaymentEventPaymentIntentFailed    PaymentEventType = "payment_intent.payment_failed"
	PaymentEventPaymentApproved        PaymentEventType = "payment.approved"
	PaymentEventPaymentUpdated         PaymentEventType = "payment.updated"
)

// PaymentEvent is a provider webhook reduced to what order fulfillment needs.
//
// OrderID is the client-supplied correlation id (Stripe client_reference_id,
// Mercado Pago external_reference). It may be empty.
type PaymentEvent struct {
	ID               string
	Provider         string
	Type             PaymentEventType
	OrderID          string
	PaymentReference string
	Status           string
}

// CheckoutLine is one priced line of a checkout session.
type CheckoutLine struct {
	ProductID     string
	Name          string
	StripePriceID string
	UnitAmount    int64
	Currency      Currency
	Quantity      int64
}

// CheckoutSessionInput is everything a provider needs to open a hosted checkout.
type CheckoutSessionInput struct {
	OrderID       string
	Lines         []CheckoutLine
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
}

// CheckoutSession is the provider's hosted checkout handle.
type CheckoutSession struct {
	ID       string
	URL      string
	Provider string
}
