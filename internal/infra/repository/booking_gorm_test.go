package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domain "github.com/BruksfildServices01/barberops/internal/domain/booking"
	dbpkg "github.com/BruksfildServices01/barberops/internal/db"
	"github.com/BruksfildServices01/barberops/internal/logger"
	"github.com/BruksfildServices01/barberops/internal/models"
)

func setupRepo(t *testing.T) (*BookingGormRepository, *gorm.DB) {
	t.Helper()
	logger.Init()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	return NewBookingGormRepository(db), db
}

func seedStaff(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	shop := models.Shop{Name: "Barbearia Teste", Slug: "barbearia-teste"}
	require.NoError(t, db.Create(&shop).Error)

	user := models.User{
		ShopID:       shop.ID,
		Name:         "João",
		Email:        "joao@teste.com",
		PasswordHash: "x",
		Role:         "barber",
		Active:       true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestCreate_NormalizesTime(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	b := models.Booking{
		ShopID:       staff.ShopID,
		StaffID:      staff.ID,
		CustomerName: "Carlos",
		Service:      "Corte",
		Price:        50,
		Date:         "2026-03-10",
		Time:         "14:30:00",
		Status:       "scheduled",
	}
	require.NoError(t, repo.Create(context.Background(), &b))

	got, err := repo.GetByID(context.Background(), staff.ShopID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "14:30", got.Time)
}

func TestListByDate_OrdersByTime(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	for _, tm := range []string{"15:00", "09:15", "11:30"} {
		require.NoError(t, repo.Create(context.Background(), &models.Booking{
			ShopID:       staff.ShopID,
			StaffID:      staff.ID,
			CustomerName: "Cliente " + tm,
			Service:      "Corte",
			Date:         "2026-03-10",
			Time:         tm,
			Status:       "scheduled",
		}))
	}

	list, err := repo.ListByDate(context.Background(), staff.ShopID, "2026-03-10", nil)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "09:15", list[0].Time)
	assert.Equal(t, "11:30", list[1].Time)
	assert.Equal(t, "15:00", list[2].Time)
}

func TestListByDateRange_InclusiveBounds(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	for _, d := range []string{"2026-02-28", "2026-03-01", "2026-03-31", "2026-04-01"} {
		require.NoError(t, repo.Create(context.Background(), &models.Booking{
			ShopID:       staff.ShopID,
			StaffID:      staff.ID,
			CustomerName: "Cliente",
			Service:      "Corte",
			Date:         d,
			Time:         "10:00",
			Status:       "scheduled",
		}))
	}

	list, err := repo.ListByDateRange(context.Background(), staff.ShopID, "2026-03-01", "2026-03-31", nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-03-01", list[0].Date)
	assert.Equal(t, "2026-03-31", list[1].Date)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	b := models.Booking{
		ShopID:       staff.ShopID,
		StaffID:      staff.ID,
		CustomerName: "Ana",
		Service:      "Corte",
		Price:        50,
		Date:         "2026-03-10",
		Time:         "10:00",
		Status:       "scheduled",
	}
	require.NoError(t, repo.Create(context.Background(), &b))

	newTime := "11:45:00"
	newPrice := 65.0
	got, err := repo.Update(context.Background(), staff.ShopID, b.ID, domain.UpdateFields{
		Time:  &newTime,
		Price: &newPrice,
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "11:45", got.Time)
	assert.Equal(t, 65.0, got.Price)
	// campos não enviados ficam intactos
	assert.Equal(t, "Ana", got.CustomerName)
	assert.Equal(t, "2026-03-10", got.Date)
}

func TestUpdate_StatusThenListByDate(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	b := models.Booking{
		ShopID:       staff.ShopID,
		StaffID:      staff.ID,
		CustomerName: "Bruno",
		Service:      "Barba",
		Price:        35,
		Date:         "2026-03-12",
		Time:         "09:30",
		Status:       "scheduled",
	}
	require.NoError(t, repo.Create(context.Background(), &b))

	status := "completed"
	updated, err := repo.Update(context.Background(), staff.ShopID, b.ID, domain.UpdateFields{
		Status: &status,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	// a listagem do dia reflete o novo status e mantém o resto intacto
	list, err := repo.ListByDate(context.Background(), staff.ShopID, "2026-03-12", nil)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, "Bruno", got.CustomerName)
	assert.Equal(t, "Barba", got.Service)
	assert.Equal(t, 35.0, got.Price)
	assert.Equal(t, "09:30", got.Time)
	assert.Equal(t, "2026-03-12", got.Date)
}

func TestUpdate_MissingIDReturnsNilNil(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	notes := "x"
	got, err := repo.Update(context.Background(), staff.ShopID, 9999, domain.UpdateFields{
		Notes: &notes,
	})
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestDelete_IsHardDelete(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	b := models.Booking{
		ShopID:       staff.ShopID,
		StaffID:      staff.ID,
		CustomerName: "Ana",
		Service:      "Corte",
		Date:         "2026-03-10",
		Time:         "10:00",
		Status:       "scheduled",
	}
	require.NoError(t, repo.Create(context.Background(), &b))
	require.NoError(t, repo.Delete(context.Background(), staff.ShopID, b.ID))

	var count int64
	db.Model(&models.Booking{}).Where("id = ?", b.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestFindOrCreateCustomerByName(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	first, err := repo.FindOrCreateCustomerByName(
		context.Background(), staff.ShopID, "Pedro Silva", "(11) 99999-0001", "pedro@teste.com")
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	assert.Equal(t, "11999990001", first.Phone)

	// mesmo nome (case-insensitive) reusa o cliente
	second, err := repo.FindOrCreateCustomerByName(
		context.Background(), staff.ShopID, "pedro silva", "", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.Customer{}).Where("shop_id = ?", staff.ShopID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestFindOrCreateCustomerByName_ScopedToShop(t *testing.T) {
	repo, db := setupRepo(t)
	staff := seedStaff(t, db)

	other := models.Shop{Name: "Outra", Slug: "outra"}
	require.NoError(t, db.Create(&other).Error)

	a, err := repo.FindOrCreateCustomerByName(context.Background(), staff.ShopID, "Lucas", "", "")
	require.NoError(t, err)
	b, err := repo.FindOrCreateCustomerByName(context.Background(), other.ID, "Lucas", "", "")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
