package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ummah-orphan-care/donations/donor/domain"
	"github.com/ummah-orphan-care/donations/framework/connection"
)

const (
	donorsCollection = "users"

	fieldRole             = "role"
	fieldStripeCustomerID = "stripeCustomerId"
)

// DonorsFirestore is used to interact with donors stored on Firestore.
type DonorsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewDonorsFirestore returns a new DonorsFirestore instance with given project id.
func NewDonorsFirestore(ctx context.Context, projectID string) (*DonorsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewDonorsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		}), nil
}

// NewDonorsFirestoreWithClient returns a new DonorsFirestore using given client.
func NewDonorsFirestoreWithClient(fun connection.FirestoreFromContextFun) *DonorsFirestore {
	return &DonorsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *DonorsFirestore) donorsCollectionRef(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(donorsCollection)
}

// GetRef returns the firestore document reference of the donor.
func (d *DonorsFirestore) GetRef(ctx context.Context, donorID string) *firestore.DocumentRef {
	return d.donorsCollectionRef(ctx).Doc(donorID)
}

func (d *DonorsFirestore) Get(ctx context.Context, donorID string) (*domain.Donor, error) {
	docSnap, err := d.GetRef(ctx, donorID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var donor domain.Donor

	if err := docSnap.DataTo(&donor); err != nil {
		return nil, err
	}

	donor.ID = docSnap.Ref.ID

	return &donor, nil
}

func (d *DonorsFirestore) UpdateStripeCustomerID(ctx context.Context, donorID, stripeCustomerID string) error {
	if _, err := d.GetRef(ctx, donorID).Update(ctx, []firestore.Update{
		{
			Path:  fieldStripeCustomerID,
			Value: stripeCustomerID,
		},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return err
	}

	return nil
}

func (d *DonorsFirestore) GetAdmins(ctx context.Context) ([]*domain.Donor, error) {
	iter := d.donorsCollectionRef(ctx).
		Where(fieldRole, "==", string(domain.RoleAdmin)).
		Documents(ctx)
	defer iter.Stop()

	admins := make([]*domain.Donor, 0)

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, err
		}

		var donor domain.Donor

		if err := docSnap.DataTo(&donor); err != nil {
			return nil, err
		}

		donor.ID = docSnap.Ref.ID
		admins = append(admins, &donor)
	}

	return admins, nil
}
