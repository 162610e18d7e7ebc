package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edievo/edsis-api/internal/application/dto"
	"github.com/edievo/edsis-api/internal/application/usecase"
	"github.com/edievo/edsis-api/internal/domain"
	"github.com/edievo/edsis-api/internal/domain/entity"
)

// fakeUnitRepo is an in-memory UnitRepository whose UpdateStatus applies
// the same compare-and-set guard the postgres implementation does: the
// write only lands while the stored status still matches expected.
type fakeUnitRepo struct {
	mu    sync.Mutex
	units map[string]*entity.InventoryUnit
}

func newFakeUnitRepo(units ...*entity.InventoryUnit) *fakeUnitRepo {
	r := &fakeUnitRepo{units: make(map[string]*entity.InventoryUnit)}
	for _, u := range units {
		r.units[u.ID] = u
	}
	return r
}

func (r *fakeUnitRepo) Create(unit *entity.InventoryUnit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units[unit.ID] = unit
	return nil
}

func (r *fakeUnitRepo) GetByID(id string) (*entity.InventoryUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.units[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUnitRepo) ListByProduct(productID string) ([]*entity.InventoryUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.InventoryUnit
	for _, u := range r.units {
		if u.ProductID == productID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) ListByStatus(status entity.UnitStatus) ([]*entity.InventoryUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.InventoryUnit
	for _, u := range r.units {
		if u.Status == status {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) Update(unit *entity.InventoryUnit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.units[unit.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *unit
	r.units[unit.ID] = &cp
	return nil
}

func (r *fakeUnitRepo) UpdateStatus(id string, expected entity.UnitStatus, unit *entity.InventoryUnit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.units[id]
	if !ok {
		return domain.ErrNotFound
	}
	if current.Status != expected {
		return domain.ErrConflict
	}
	cp := *unit
	r.units[id] = &cp
	return nil
}

func (r *fakeUnitRepo) DeleteByProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, u := range r.units {
		if u.ProductID == productID {
			delete(r.units, id)
		}
	}
	return nil
}

// failingUnitRepo fails the conditional write for one unit ID,
// simulating a transient storage error mid-batch.
type failingUnitRepo struct {
	*fakeUnitRepo
	failID string
}

func (r *failingUnitRepo) UpdateStatus(id string, expected entity.UnitStatus, unit *entity.InventoryUnit) error {
	if id == r.failID {
		return errors.New("write timeout")
	}
	return r.fakeUnitRepo.UpdateStatus(id, expected, unit)
}

// fakeCounterRepo records the last stock rollup written per product.
type fakeCounterRepo struct {
	mu       sync.Mutex
	counters map[string][3]int
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{counters: make(map[string][3]int)}
}

func (r *fakeCounterRepo) Create(*entity.Product) error { return nil }

func (r *fakeCounterRepo) GetByID(string) (*entity.Product, error) { return nil, domain.ErrNotFound }

func (r *fakeCounterRepo) List() ([]*entity.Product, error) { return nil, nil }

func (r *fakeCounterRepo) ListCodes() (map[string]struct{}, error) { return nil, nil }

func (r *fakeCounterRepo) Update(*entity.Product) error { return nil }

func (r *fakeCounterRepo) UpdateDiscounts(string, []entity.DiscountSnapshot) error { return nil }

func (r *fakeCounterRepo) UpdateLastSequence(string, int) error { return nil }

func (r *fakeCounterRepo) Delete(string) error { return nil }

func (r *fakeCounterRepo) UpdateStockCounters(id string, total, booked, sold int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[id] = [3]int{total, booked, sold}
	return nil
}

func availableFakeUnit(id string) *entity.InventoryUnit {
	return &entity.InventoryUnit{
		ID:              id,
		ProductID:       "p1",
		ProductName:     "SLAMP - Aria",
		SerialCode:      "SLAM-CHAN-ARIA-0001",
		Status:          entity.StatusAvailable,
		CurrentLocation: "Warehouse (New)",
	}
}

func bookRequest() dto.BookUnitRequest {
	return dto.BookUnitRequest{
		BookedBy:  "Mr. Laurent",
		ExpiresAt: time.Now().Add(72 * time.Hour),
	}
}

func TestBook_PersistsHoldAndRecountsStock(t *testing.T) {
	units := newFakeUnitRepo(availableFakeUnit("u1"))
	products := newFakeCounterRepo()
	uc := usecase.NewBookingUseCase(units, products, nil)

	resp, err := uc.Book(context.Background(), "u1", "dewi", bookRequest())
	require.NoError(t, err)

	assert.Equal(t, string(entity.StatusBooked), resp.Status)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "dewi", resp.Booking.BookedByStaff)
	assert.Equal(t, 59, resp.Booking.ExpiresAt.Minute(), "expiry pinned to end of day")

	assert.Equal(t, [3]int{1, 1, 0}, products.counters["p1"])
}

func TestBook_SecondHoldLoses(t *testing.T) {
	units := newFakeUnitRepo(availableFakeUnit("u1"))
	uc := usecase.NewBookingUseCase(units, newFakeCounterRepo(), nil)

	_, err := uc.Book(context.Background(), "u1", "dewi", bookRequest())
	require.NoError(t, err)

	_, err = uc.Book(context.Background(), "u1", "made", bookRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBook_ConcurrentHoldsExactlyOneWins(t *testing.T) {
	units := newFakeUnitRepo(availableFakeUnit("u1"))
	uc := usecase.NewBookingUseCase(units, newFakeCounterRepo(), nil)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Book(context.Background(), "u1", "staff", bookRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	wins := 0
	for err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, wins, "the conditional write admits exactly one winner")
}

func TestRelease_ThenUnitBookableAgain(t *testing.T) {
	units := newFakeUnitRepo(availableFakeUnit("u1"))
	uc := usecase.NewBookingUseCase(units, newFakeCounterRepo(), nil)

	_, err := uc.Book(context.Background(), "u1", "dewi", bookRequest())
	require.NoError(t, err)

	resp, err := uc.Release(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusAvailable), resp.Status)
	assert.Nil(t, resp.Booking)

	_, err = uc.Book(context.Background(), "u1", "made", bookRequest())
	assert.NoError(t, err)
}

func TestSell_ConsumesHoldAndRecountsStock(t *testing.T) {
	units := newFakeUnitRepo(availableFakeUnit("u1"))
	products := newFakeCounterRepo()
	uc := usecase.NewBookingUseCase(units, products, nil)

	_, err := uc.Book(context.Background(), "u1", "dewi", bookRequest())
	require.NoError(t, err)

	resp, err := uc.Sell(context.Background(), "u1", dto.SellUnitRequest{PONumber: "PO-1042"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.StatusSold), resp.Status)
	assert.Equal(t, "PO-1042", resp.PONumber)
	assert.Equal(t, [3]int{1, 0, 1}, products.counters["p1"])
}

func TestSweepExpired_ReleasesOnlyLapsedHolds(t *testing.T) {
	expired := availableFakeUnit("u1")
	expired.Status = entity.StatusBooked
	expired.Booking = &entity.Booking{BookedBy: "A", ExpiresAt: time.Now().Add(-time.Hour)}

	live := availableFakeUnit("u2")
	live.Status = entity.StatusBooked
	live.Booking = &entity.Booking{BookedBy: "B", ExpiresAt: time.Now().Add(time.Hour)}

	units := newFakeUnitRepo(expired, live)
	uc := usecase.NewBookingUseCase(units, newFakeCounterRepo(), nil)

	resp, err := uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Checked)
	assert.Equal(t, 1, resp.Released)

	u1, _ := units.GetByID("u1")
	assert.Equal(t, entity.StatusAvailable, u1.Status)
	last := u1.HistoryLog[len(u1.HistoryLog)-1]
	assert.Equal(t, entity.ActionAutoReleased, last.Action)

	u2, _ := units.GetByID("u2")
	assert.Equal(t, entity.StatusBooked, u2.Status)
}

func TestSweepExpired_SecondRunIsNoOp(t *testing.T) {
	expired := availableFakeUnit("u1")
	expired.Status = entity.StatusBooked
	expired.Booking = &entity.Booking{BookedBy: "A", ExpiresAt: time.Now().Add(-time.Hour)}

	units := newFakeUnitRepo(expired)
	uc := usecase.NewBookingUseCase(units, newFakeCounterRepo(), nil)

	first, err := uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Released)

	second, err := uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Released)
}

func TestSweepExpired_OneFailureDoesNotAbortBatch(t *testing.T) {
	bad := availableFakeUnit("u1")
	bad.Status = entity.StatusBooked
	bad.Booking = &entity.Booking{BookedBy: "A", ExpiresAt: time.Now().Add(-time.Hour)}

	good := availableFakeUnit("u2")
	good.Status = entity.StatusBooked
	good.Booking = &entity.Booking{BookedBy: "B", ExpiresAt: time.Now().Add(-time.Hour)}

	units := &failingUnitRepo{fakeUnitRepo: newFakeUnitRepo(bad, good), failID: "u1"}
	uc := usecase.NewBookingUseCase(units, newFakeCounterRepo(), nil)

	resp, err := uc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Checked)
	assert.Equal(t, 1, resp.Released)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "u1")

	u1, _ := units.GetByID("u1")
	assert.Equal(t, entity.StatusBooked, u1.Status, "failed unit left for the next run")
	u2, _ := units.GetByID("u2")
	assert.Equal(t, entity.StatusAvailable, u2.Status)
}

func TestActiveBookings_FlagsLapsedHolds(t *testing.T) {
	expired := availableFakeUnit("u1")
	expired.Status = entity.StatusBooked
	expired.Booking = &entity.Booking{BookedBy: "A", ExpiresAt: time.Now().Add(-time.Hour)}

	units := newFakeUnitRepo(expired)
	uc := usecase.NewBookingUseCase(units, newFakeCounterRepo(), nil)

	list, err := uc.ActiveBookings()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Expired)
	assert.Equal(t, "SLAM-CHAN-ARIA-0001", list[0].SerialCode)
}

func TestBook_UnknownUnit(t *testing.T) {
	uc := usecase.NewBookingUseCase(newFakeUnitRepo(), newFakeCounterRepo(), nil)
	_, err := uc.Book(context.Background(), "missing", "dewi", bookRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
