package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ummah-orphan-care/donations/donation/domain"
	"github.com/ummah-orphan-care/donations/framework/connection"
)

const (
	donationsCollection = "donations"

	fieldDonorID              = "donorId"
	fieldType                 = "type"
	fieldStatus               = "status"
	fieldCreatedAt            = "createdAt"
	fieldLastPaymentDate      = "lastPaymentDate"
	fieldStripeSubscriptionID = "stripeSubscriptionId"
)

// DonationsFirestore is used to interact with donations stored on Firestore.
type DonationsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewDonationsFirestore returns a new DonationsFirestore instance with given project id.
func NewDonationsFirestore(ctx context.Context, projectID string) (*DonationsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewDonationsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		}), nil
}

// NewDonationsFirestoreWithClient returns a new DonationsFirestore using given client.
func NewDonationsFirestoreWithClient(fun connection.FirestoreFromContextFun) *DonationsFirestore {
	return &DonationsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *DonationsFirestore) donationsCollectionRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(donationsCollection)
}

// GetRef returns the firestore document reference of the donation.
func (d *DonationsFirestore) GetRef(ctx context.Context, donationID string) *firestore.DocumentRef {
	return d.donationsCollectionRef(ctx).Doc(donationID)
}

func (d *DonationsFirestore) Create(ctx context.Context, donation *domain.Donation) (string, error) {
	docRef := d.donationsCollectionRef(ctx).NewDoc()

	if _, err := docRef.Create(ctx, donation); err != nil {
		return "", err
	}

	return docRef.ID, nil
}

func (d *DonationsFirestore) Get(ctx context.Context, donationID string) (*domain.Donation, error) {
	docSnap, err := d.GetRef(ctx, donationID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return toDonation(docSnap)
}

func (d *DonationsFirestore) GetBySubscriptionID(ctx context.Context, subscriptionID string) (*domain.Donation, error) {
	iter := d.donationsCollectionRef(ctx).
		Where(fieldStripeSubscriptionID, "==", subscriptionID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	docSnap, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return toDonation(docSnap)
}

func (d *DonationsFirestore) GetByDonor(ctx context.Context, donorID string) ([]*domain.Donation, error) {
	iter := d.donationsCollectionRef(ctx).
		Where(fieldDonorID, "==", donorID).
		OrderBy(fieldCreatedAt, firestore.Desc).
		Documents(ctx)

	return donationsFromIterator(iter)
}

func (d *DonationsFirestore) GetActiveRecurring(ctx context.Context) ([]*domain.Donation, error) {
	iter := d.donationsCollectionRef(ctx).
		Where(fieldType, "==", string(domain.TypeRecurring)).
		Where(fieldStatus, "==", string(domain.StatusActive)).
		Documents(ctx)

	return donationsFromIterator(iter)
}

func (d *DonationsFirestore) GetCreatedInRange(ctx context.Context, start, end time.Time) ([]*domain.Donation, error) {
	iter := d.donationsCollectionRef(ctx).
		Where(fieldCreatedAt, ">=", start).
		Where(fieldCreatedAt, "<", end).
		Documents(ctx)

	return donationsFromIterator(iter)
}

func (d *DonationsFirestore) UpdateStatus(ctx context.Context, donationID string, donationStatus domain.Status) error {
	if _, err := d.GetRef(ctx, donationID).Update(ctx, []firestore.Update{
		{
			Path:  fieldStatus,
			Value: string(donationStatus),
		},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return err
	}

	return nil
}

// UpdateLastPaymentDate stamps the donation's last payment date. Payment
// events never touch the donation status.
func (d *DonationsFirestore) UpdateLastPaymentDate(ctx context.Context, donationID string, paymentDate time.Time) error {
	if _, err := d.GetRef(ctx, donationID).Update(ctx, []firestore.Update{
		{
			Path:  fieldLastPaymentDate,
			Value: paymentDate,
		},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return err
	}

	return nil
}

func toDonation(docSnap *firestore.DocumentSnapshot) (*domain.Donation, error) {
	var donation domain.Donation

	if err := docSnap.DataTo(&donation); err != nil {
		return nil, err
	}

	donation.ID = docSnap.Ref.ID

	return &donation, nil
}

func donationsFromIterator(iter *firestore.DocumentIterator) ([]*domain.Donation, error) {
	defer iter.Stop()

	donations := make([]*domain.Donation, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		donation, err := toDonation(docSnap)
		if err != nil {
			return nil, err
		}

		donations = append(donations, donation)
	}

	return donations, nil
}
