package clinics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "medical-practice/internal/adapters/storage/memory"
	"medical-practice/internal/domain/clinics"
)

const doctorID = "doc-1"

func TestCreateUpdateDelete(t *testing.T) {
	svc := clinics.NewService(mem.NewClinicsRepo())
	ctx := context.Background()

	c, err := svc.Create(ctx, doctorID, clinics.CreateInput{
		Name:  "  Clínica Central  ",
		Phone: "(11) 3333-4444",
	})
	require.NoError(t, err)
	assert.Equal(t, "Clínica Central", c.Name)
	assert.Equal(t, "1133334444", c.Phone)

	_, err = svc.Create(ctx, doctorID, clinics.CreateInput{Name: "   "})
	assert.ErrorIs(t, err, clinics.ErrInvalidInput)

	addr := "Av. Paulista 1000"
	got, err := svc.Update(ctx, doctorID, c.ID, clinics.UpdateInput{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "Av. Paulista 1000", got.Address)
	assert.Equal(t, "Clínica Central", got.Name)

	_, err = svc.Update(ctx, "doc-2", c.ID, clinics.UpdateInput{Address: &addr})
	assert.ErrorIs(t, err, clinics.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, doctorID, c.ID))
	list, err := svc.List(ctx, doctorID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
