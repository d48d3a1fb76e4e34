package domain

type Role string

const (
	RoleDonor Role = "donor"
	RoleAdmin Role = "admin"
)

// Donor is a registered user that can sponsor orphans.
type Donor struct {
	ID               string `firestore:"-"`
	Email            string `firestore:"email"`
	DisplayName      string `firestore:"displayName"`
	Role             Role   `firestore:"role"`
	StripeCustomerID string `firestore:"stripeCustomerId"`
}
