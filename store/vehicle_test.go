package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsback/models"
)

func newVehicle(i int) models.Vehicle {
	return models.Vehicle{
		VIN:     fmt.Sprintf("1HGCM82633A%06d", i),
		Make:    "Honda",
		Model:   "Civic",
		Year:    2020,
		Color:   "Blue",
		Mileage: 1000,
		Price:   15000,
		Status:  models.VehicleAvailable,
	}
}

func TestVehicleCreateAndGet(t *testing.T) {
	s := NewVehicleStore(testDB(t))

	v := models.Vehicle{
		VIN:     "5YJ3E1EA8KF000001",
		Make:    "Tesla",
		Model:   "Model 3",
		Year:    2023,
		Color:   "Red",
		Mileage: 8120,
		Price:   36700.50,
		Status:  models.VehicleAvailable,
	}
	require.NoError(t, s.Create(ctx(), &v))
	require.NotZero(t, v.ID)

	got, err := s.GetByID(ctx(), v.ID)
	require.NoError(t, err)
	// round-trip: every field comes back unchanged
	assert.Equal(t, "5YJ3E1EA8KF000001", got.VIN)
	assert.Equal(t, "Tesla", got.Make)
	assert.Equal(t, "Model 3", got.Model)
	assert.Equal(t, 2023, got.Year)
	assert.Equal(t, "Red", got.Color)
	assert.Equal(t, int64(8120), got.Mileage)
	assert.Equal(t, 36700.50, got.Price)
	assert.Equal(t, models.VehicleAvailable, got.Status)

	byVIN, err := s.GetByVIN(ctx(), "5YJ3E1EA8KF000001")
	require.NoError(t, err)
	assert.Equal(t, v.ID, byVIN.ID)

	_, err = s.GetByID(ctx(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetByVIN(ctx(), "0000000000000000X")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleDuplicateVIN(t *testing.T) {
	s := NewVehicleStore(testDB(t))

	a := newVehicle(1)
	require.NoError(t, s.Create(ctx(), &a))

	b := newVehicle(1) // same VIN
	err := s.Create(ctx(), &b)
	require.Error(t, err, "duplicate VIN must be rejected by the store")
}

func TestVehicleListOrderAndDelete(t *testing.T) {
	s := NewVehicleStore(testDB(t))

	var ids []uint
	for i := 1; i <= 5; i++ {
		v := newVehicle(i)
		require.NoError(t, s.Create(ctx(), &v))
		ids = append(ids, v.ID)
	}

	all, err := s.List(ctx())
	require.NoError(t, err)
	require.Len(t, all, 5)
	// newest first
	assert.Equal(t, ids[4], all[0].ID)
	assert.Equal(t, ids[0], all[4].ID)

	removed, err := s.Delete(ctx(), ids[2])
	require.NoError(t, err)
	assert.True(t, removed)

	all, err = s.List(ctx())
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = s.GetByID(ctx(), ids[2])
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err = s.Delete(ctx(), ids[2])
	require.NoError(t, err)
	assert.False(t, removed, "second delete removes nothing")
}

func TestVehiclePartialUpdate(t *testing.T) {
	s := NewVehicleStore(testDB(t))

	v := newVehicle(1)
	require.NoError(t, s.Create(ctx(), &v))

	status := models.VehicleRented
	mileage := int64(2222)
	got, err := s.Update(ctx(), v.ID, VehicleUpdate{Status: &status, Mileage: &mileage})
	require.NoError(t, err)
	assert.Equal(t, models.VehicleRented, got.Status)
	assert.Equal(t, int64(2222), got.Mileage)
	// untouched fields survive
	assert.Equal(t, v.VIN, got.VIN)
	assert.Equal(t, "Honda", got.Make)

	// an empty update is not-found, never the unchanged row
	_, err = s.Update(ctx(), v.ID, VehicleUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Update(ctx(), 9999, VehicleUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVehicleSearchAndMakes(t *testing.T) {
	s := NewVehicleStore(testDB(t))

	tesla := models.Vehicle{VIN: "5YJ3E1EA8KF000010", Make: "Tesla", Model: "Model 3", Year: 2023}
	honda := models.Vehicle{VIN: "1HGCM82633A000011", Make: "Honda", Model: "Accord", Year: 2021}
	require.NoError(t, s.Create(ctx(), &tesla))
	require.NoError(t, s.Create(ctx(), &honda))

	for _, q := range []string{"tesla", "TESLA", "esl"} {
		out, err := s.Search(ctx(), q)
		require.NoError(t, err)
		require.Len(t, out, 1, "query %q", q)
		assert.Equal(t, tesla.ID, out[0].ID)
	}

	out, err := s.Search(ctx(), "ccord")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, honda.ID, out[0].ID)

	makes, err := s.Makes(ctx())
	require.NoError(t, err)
	assert.Equal(t, []string{"Honda", "Tesla"}, makes)
}
