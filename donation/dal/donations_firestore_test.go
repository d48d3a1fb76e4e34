package dal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ummah-orphan-care/donations/common"
)

func TestNewDonationsFirestoreDAL(t *testing.T) {
	ctx := context.Background()
	_, err := NewDonationsFirestore(ctx, common.TestProjectID)
	assert.NoError(t, err)

	d := NewDonationsFirestoreWithClient(nil)
	assert.NotNil(t, d)
}
