package response

// ErrorResponse is the flat error body kept by the storefront endpoints
// (/create-order and /create-checkout-session).
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WebhookAck acknowledges a payment provider delivery.
type WebhookAck struct {
	Received bool `json:"received"`
}
