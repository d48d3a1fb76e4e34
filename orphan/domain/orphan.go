package domain

// Orphan is a child available for sponsorship. CurrentDonors is an
// aggregate maintained from the donations collection.
type Orphan struct {
	ID            string `firestore:"-"`
	Name          string `firestore:"name"`
	CurrentDonors int64  `firestore:"currentDonors"`
}
