package store

// Delivery status ENUMs
const (
	DeliveryStatusPending   = "pending"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
)

// Recipient type ENUMs
const (
	RecipientTypeEmail   = "email"
	RecipientTypeAddress = "address"
	RecipientTypeENS     = "ens"
)
