package domain

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type Type string

const (
	TypeOneTime   Type = "one-time"
	TypeRecurring Type = "recurring"
)

// DefaultCurrency is the ISO currency code donations are billed in.
const DefaultCurrency = "etb"

// Donation is a sponsorship of an orphan by a donor. Recurring donations
// are backed by a stripe subscription.
type Donation struct {
	ID                   string    `firestore:"-" json:"id"`
	DonorID              string    `firestore:"donorId" json:"donorId"`
	OrphanID             string    `firestore:"orphanId" json:"orphanId"`
	Amount               int64     `firestore:"amount" json:"amount"`
	Currency             string    `firestore:"currency" json:"currency"`
	Type                 Type      `firestore:"type" json:"type"`
	Status               Status    `firestore:"status" json:"status"`
	StripeSubscriptionID string     `firestore:"stripeSubscriptionId" json:"-"`
	LastPaymentDate      *time.Time `firestore:"lastPaymentDate" json:"lastPaymentDate"`
	CreatedAt            time.Time  `firestore:"createdAt,serverTimestamp" json:"createdAt"`
	UpdatedAt            time.Time  `firestore:"updatedAt,serverTimestamp" json:"updatedAt"`
}

// SubscribeRequest is the payload for starting a recurring donation.
type SubscribeRequest struct {
	OrphanID string `json:"orphanId" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

// SubscribeResult is returned to the client so it can confirm the first
// payment with the stripe client secret.
type SubscribeResult struct {
	DonationID     string `json:"donationId"`
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret"`
}

// CancelRequest is the payload for cancelling a recurring donation.
type CancelRequest struct {
	DonationID string `json:"donationId" binding:"required"`
}
