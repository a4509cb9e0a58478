package repository_test

import (
	"context"
	"testing"
	"time"

	"fieldbooking/internal/database"
	"fieldbooking/internal/domain"
	"fieldbooking/internal/repository"
	"fieldbooking/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func seedSlots(t *testing.T, repo *repository.TimeSlotRepository) {
	t.Helper()
	_, err := database.SeedTimeSlots(context.Background(), repo)
	require.NoError(t, err)
}

func TestTimeSlotRepository_SeedTwiceKeepsTen(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := repository.NewTimeSlotRepository(db)
	ctx := context.Background()

	seedSlots(t, repo)
	created, err := database.SeedTimeSlots(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)

	slots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, slots, 10)
	assert.Equal(t, "Shift 1", slots[0].ShiftName)
	assert.Equal(t, "06:00", slots[0].StartTime)
	assert.Equal(t, 800000.0, slots[9].Price)
}

func TestBookingRepository_CreateListAndJoin(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	slots := repository.NewTimeSlotRepository(db)
	bookings := repository.NewBookingRepository(db)
	ctx := context.Background()
	seedSlots(t, slots)

	for i, name := range []string{"An", "Binh", "Chi"} {
		b := &domain.Booking{
			CustomerName: name,
			Email:        name + "@example.com",
			Phone:        "+84901234567",
			BookingDate:  date("2024-06-01"),
			TimeSlotID:   int64(i + 1),
			Status:       domain.BookingBooked,
		}
		require.NoError(t, bookings.Create(ctx, b))
		require.NotNil(t, b.TimeSlot)
		assert.Equal(t, int64(i+1), b.TimeSlot.ID)
		assert.False(t, b.CreatedAt.IsZero())
	}

	page, err := bookings.List(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Binh", page[0].CustomerName)
	assert.Equal(t, "Chi", page[1].CustomerName)
	assert.Equal(t, "Shift 3", page[1].TimeSlot.ShiftName)
	assert.True(t, page[0].BookingDate.Equal(date("2024-06-01")))
}

func TestBookingRepository_ActiveSlotIndex(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	slots := repository.NewTimeSlotRepository(db)
	bookings := repository.NewBookingRepository(db)
	ctx := context.Background()
	seedSlots(t, slots)

	newBooking := func() *domain.Booking {
		return &domain.Booking{
			CustomerName: "An",
			Email:        "an@example.com",
			Phone:        "0901234567",
			BookingDate:  date("2024-06-01"),
			TimeSlotID:   1,
			Status:       domain.BookingBooked,
		}
	}

	first := newBooking()
	require.NoError(t, bookings.Create(ctx, first))

	held, err := bookings.HasActiveBooking(ctx, date("2024-06-01"), 1)
	require.NoError(t, err)
	assert.True(t, held)

	err = bookings.Create(ctx, newBooking())
	require.Error(t, err)
	assert.True(t, repository.IsUniqueViolation(err), "got %v", err)

	require.NoError(t, bookings.UpdateStatus(ctx, first.ID, domain.BookingCancelled))
	held, err = bookings.HasActiveBooking(ctx, date("2024-06-01"), 1)
	require.NoError(t, err)
	assert.False(t, held)

	second := newBooking()
	require.NoError(t, bookings.Create(ctx, second))

	err = bookings.UpdateStatus(ctx, first.ID, domain.BookingDepositPaid)
	assert.True(t, repository.IsUniqueViolation(err), "got %v", err)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	slots := repository.NewTimeSlotRepository(db)
	bookings := repository.NewBookingRepository(db)
	ctx := context.Background()
	seedSlots(t, slots)

	b := &domain.Booking{
		CustomerName: "An",
		Email:        "an@example.com",
		Phone:        "0901234567",
		BookingDate:  date("2024-06-02"),
		TimeSlotID:   4,
		Status:       domain.BookingBooked,
	}
	require.NoError(t, bookings.Create(ctx, b))
	before := b.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, bookings.UpdateStatus(ctx, b.ID, domain.BookingDone))

	got, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingDone, got.Status)
	assert.True(t, got.UpdatedAt.After(before))

	err = bookings.UpdateStatus(ctx, 9999, domain.BookingDone)
	assert.True(t, repository.IsNotFound(err))
}

func TestUserRepository_LoginTimestamps(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	users := repository.NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Username: "boss", Email: "Boss@Field.vn", PasswordHash: "x", Role: domain.RoleOwner}
	require.NoError(t, users.Create(ctx, u))
	assert.Equal(t, "boss@field.vn", u.Email)

	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, users.TouchLastLogin(ctx, u.ID, at))
	require.NoError(t, users.TouchLastLogout(ctx, u.ID, at.Add(time.Hour)))

	got, err := users.GetByEmail(ctx, " BOSS@field.vn ")
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	require.NotNil(t, got.LastLogout)
	assert.True(t, got.LastLogin.Equal(at))
	assert.True(t, got.LastLogout.Equal(at.Add(time.Hour)))

	_, err = users.GetByEmail(ctx, "nobody@field.vn")
	assert.True(t, repository.IsNotFound(err))
}

func TestUserRepository_Upsert(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	users := repository.NewUserRepository(db)
	ctx := context.Background()

	u := &domain.User{Username: "mgr", Email: "mgr@field.vn", PasswordHash: "h1", Role: domain.RoleManager}
	require.NoError(t, users.Upsert(ctx, u))
	id := u.ID

	again := &domain.User{Username: "mgr", Email: "mgr@field.vn", PasswordHash: "h2", Role: domain.RoleAdmin}
	require.NoError(t, users.Upsert(ctx, again))
	assert.Equal(t, id, again.ID)
	assert.Equal(t, domain.RoleAdmin, again.Role)
	assert.Equal(t, "h2", again.PasswordHash)
}

func TestInventoryRepository_LatestByCheckDate(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	users := repository.NewUserRepository(db)
	inv := repository.NewInventoryRepository(db)
	ctx := context.Background()

	_, err := inv.Latest(ctx)
	assert.True(t, repository.IsNotFound(err))

	u := &domain.User{Username: "mgr", Email: "mgr@field.vn", PasswordHash: "x", Role: domain.RoleManager}
	require.NoError(t, users.Create(ctx, u))

	for _, d := range []string{"2024-06-03", "2024-06-10", "2024-06-01"} {
		require.NoError(t, inv.Create(ctx, &domain.Inventory{
			Balls: 10, Shoes: 4, Jerseys: 20, Gloves: 2,
			CheckDate: date(d), UpdatedBy: u.ID,
		}))
	}

	latest, err := inv.Latest(ctx)
	require.NoError(t, err)
	assert.True(t, latest.CheckDate.Equal(date("2024-06-10")))
	assert.Equal(t, u.ID, latest.UpdatedBy)
}
