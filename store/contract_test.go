package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dsback/models"
)

type contractFixture struct {
	db        *gorm.DB
	contracts *ContractStore
	images    *ContractImageStore
	vehicle   models.Vehicle
	customer  models.Customer
}

func newContractFixture(t *testing.T) *contractFixture {
	t.Helper()
	db := testDB(t)
	f := &contractFixture{
		db:        db,
		contracts: NewContractStore(db),
		images:    NewContractImageStore(db),
		vehicle:   models.Vehicle{VIN: "1HGCM82633A004352", Make: "Honda", Model: "Accord", Year: 2021},
		customer:  models.Customer{FirstName: "Sarah", LastName: "Johnson", Phone: "555-0101"},
	}
	require.NoError(t, db.Create(&f.vehicle).Error)
	require.NoError(t, db.Create(&f.customer).Error)
	return f
}

func (f *contractFixture) newContract(i int) models.Contract {
	return models.Contract{
		ContractNumber: fmt.Sprintf("CN-2026-%04d", i),
		VehicleID:      f.vehicle.ID,
		CustomerID:     f.customer.ID,
		VINNumber:      f.vehicle.VIN,
		CustomerName:   "Sarah Johnson",
		CustomerPhone:  "555-0101",
		StartDate:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		PaymentAmount:  499.99,
		TaxAmount:      40,
		DepositAmount:  500,
		Status:         models.ContractActive,
	}
}

func TestContractCreateAndJoinedGet(t *testing.T) {
	f := newContractFixture(t)

	ct := f.newContract(1)
	require.NoError(t, f.contracts.Create(ctx(), &ct))

	got, err := f.contracts.GetByID(ctx(), ct.ID)
	require.NoError(t, err)

	assert.Equal(t, "CN-2026-0001", got.ContractNumber)
	assert.Equal(t, 499.99, got.PaymentAmount)
	assert.Equal(t, float64(40), got.TaxAmount)
	assert.Equal(t, float64(500), got.DepositAmount)
	assert.Equal(t, "1HGCM82633A004352", got.VINNumber)
	assert.Equal(t, "Sarah Johnson", got.CustomerName)

	// nested objects carry the referenced rows
	require.NotNil(t, got.Vehicle)
	assert.Equal(t, f.vehicle.ID, got.Vehicle.ID)
	assert.Equal(t, "Honda", got.Vehicle.Make)
	require.NotNil(t, got.Customer)
	assert.Equal(t, f.customer.ID, got.Customer.ID)
	assert.Equal(t, "Sarah", got.Customer.FirstName)

	// the files list is a placeholder, never null
	require.NotNil(t, got.Images)
	assert.Empty(t, got.Images)
}

func TestContractDuplicateNumber(t *testing.T) {
	f := newContractFixture(t)

	a := f.newContract(1)
	require.NoError(t, f.contracts.Create(ctx(), &a))
	b := f.newContract(1) // same contract number
	require.Error(t, f.contracts.Create(ctx(), &b))
}

func TestContractPagination(t *testing.T) {
	f := newContractFixture(t)

	var ids []uint
	for i := 1; i <= 5; i++ {
		ct := f.newContract(i)
		require.NoError(t, f.contracts.Create(ctx(), &ct))
		ids = append(ids, ct.ID)
	}

	page1, err := f.contracts.List(ctx(), 0, 2)
	require.NoError(t, err)
	page2, err := f.contracts.List(ctx(), 2, 2)
	require.NoError(t, err)
	page3, err := f.contracts.List(ctx(), 4, 2)
	require.NoError(t, err)

	require.Len(t, page1, 2)
	require.Len(t, page2, 2)
	require.Len(t, page3, 1)

	seen := map[uint]bool{}
	var order []uint
	for _, p := range [][]models.Contract{page1, page2, page3} {
		for _, ct := range p {
			assert.False(t, seen[ct.ID], "no overlap between pages")
			seen[ct.ID] = true
			order = append(order, ct.ID)
		}
	}
	// descending creation order across pages
	assert.Equal(t, []uint{ids[4], ids[3], ids[2], ids[1], ids[0]}, order)
}

func TestContractSearchAndNumberLookup(t *testing.T) {
	f := newContractFixture(t)

	ct := f.newContract(7)
	require.NoError(t, f.contracts.Create(ctx(), &ct))

	byNumber, err := f.contracts.GetByNumber(ctx(), "CN-2026-0007")
	require.NoError(t, err)
	assert.Equal(t, ct.ID, byNumber.ID)

	for _, q := range []string{"cn-2026", "0007", "1hgcm"} {
		out, err := f.contracts.Search(ctx(), q)
		require.NoError(t, err)
		require.Len(t, out, 1, "query %q", q)
		assert.Equal(t, ct.ID, out[0].ID)
	}
}

func TestContractStatusUnrestricted(t *testing.T) {
	f := newContractFixture(t)

	ct := f.newContract(1)
	require.NoError(t, f.contracts.Create(ctx(), &ct))

	// no transition graph: any status may follow any other
	for _, status := range []string{
		models.ContractCancelled,
		models.ContractActive,
		models.ContractCompleted,
		models.ContractReturned,
	} {
		s := status
		got, err := f.contracts.Update(ctx(), ct.ID, ContractUpdate{Status: &s})
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}

	_, err := f.contracts.Update(ctx(), ct.ID, ContractUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContractDeleteCascadesFiles(t *testing.T) {
	f := newContractFixture(t)

	ct := f.newContract(1)
	require.NoError(t, f.contracts.Create(ctx(), &ct))

	img := models.ContractImage{
		ContractID:  ct.ID,
		FileName:    "signed.pdf",
		FileURL:     "https://cdn.example.com/bucket/contracts/1/files/1_signed.pdf",
		FileSize:    1024,
		MimeType:    "application/pdf",
		StoragePath: "contracts/1/files/1_signed.pdf",
	}
	require.NoError(t, f.images.Create(ctx(), &img))

	removed, err := f.contracts.Delete(ctx(), ct.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	var count int64
	require.NoError(t, f.db.Model(&models.ContractImage{}).Where("contract_id = ?", ct.ID).Count(&count).Error)
	assert.Zero(t, count, "file rows must not survive their contract")

	_, err = f.contracts.GetByID(ctx(), ct.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContractImageListNewestFirst(t *testing.T) {
	f := newContractFixture(t)

	ct := f.newContract(1)
	require.NoError(t, f.contracts.Create(ctx(), &ct))

	var ids []uint
	for i := 1; i <= 3; i++ {
		img := models.ContractImage{
			ContractID:  ct.ID,
			FileName:    fmt.Sprintf("photo%d.jpg", i),
			FileURL:     fmt.Sprintf("https://cdn.example.com/b/contracts/%d/files/%d_photo%d.jpg", ct.ID, i, i),
			MimeType:    "image/jpeg",
			StoragePath: fmt.Sprintf("contracts/%d/files/%d_photo%d.jpg", ct.ID, i, i),
		}
		require.NoError(t, f.images.Create(ctx(), &img))
		ids = append(ids, img.ID)
	}

	out, err := f.images.ListByContract(ctx(), ct.ID)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, ids[2], out[0].ID)

	removed, err := f.images.Delete(ctx(), ids[0])
	require.NoError(t, err)
	assert.True(t, removed)

	out, err = f.images.ListByContract(ctx(), ct.ID)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
