package dal

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ummah-orphan-care/donations/framework/connection"
	"github.com/ummah-orphan-care/donations/orphan/domain"
)

const (
	orphansCollection = "orphans"

	fieldCurrentDonors = "currentDonors"
)

// OrphansFirestore is used to interact with orphans stored on Firestore.
type OrphansFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

// NewOrphansFirestore returns a new OrphansFirestore instance with given project id.
func NewOrphansFirestore(ctx context.Context, projectID string) (*OrphansFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewOrphansFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		}), nil
}

// NewOrphansFirestoreWithClient returns a new OrphansFirestore using given client.
func NewOrphansFirestoreWithClient(fun connection.FirestoreFromContextFun) *OrphansFirestore {
	return &OrphansFirestore{
		firestoreClientFun: fun,
	}
}

// GetRef returns the firestore document reference of the orphan.
func (d *OrphansFirestore) GetRef(ctx context.Context, orphanID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(orphansCollection).Doc(orphanID)
}

func (d *OrphansFirestore) Get(ctx context.Context, orphanID string) (*domain.Orphan, error) {
	docSnap, err := d.GetRef(ctx, orphanID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, err
	}

	var orphan domain.Orphan

	if err := docSnap.DataTo(&orphan); err != nil {
		return nil, err
	}

	orphan.ID = docSnap.Ref.ID

	return &orphan, nil
}

func (d *OrphansFirestore) UpdateCurrentDonors(ctx context.Context, orphanID string, currentDonors int64) error {
	if _, err := d.GetRef(ctx, orphanID).Update(ctx, []firestore.Update{
		{
			Path:  fieldCurrentDonors,
			Value: currentDonors,
		},
	}); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return err
	}

	return nil
}
