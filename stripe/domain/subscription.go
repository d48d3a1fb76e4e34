package domain

// Subscription is the result of creating a recurring payment. The client
// secret is used by the web app to confirm the first payment.
type Subscription struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}
