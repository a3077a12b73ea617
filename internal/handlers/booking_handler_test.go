package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barberops/internal/audit"
	dbpkg "github.com/BruksfildServices01/barberops/internal/db"
	infraRepo "github.com/BruksfildServices01/barberops/internal/infra/repository"
	"github.com/BruksfildServices01/barberops/internal/logger"
	"github.com/BruksfildServices01/barberops/internal/middleware"
	"github.com/BruksfildServices01/barberops/internal/models"
	"github.com/BruksfildServices01/barberops/internal/settings"
	ucBooking "github.com/BruksfildServices01/barberops/internal/usecase/booking"
)

type bookingTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	shop   models.Shop
	user   models.User
}

func setupBookingEnv(t *testing.T) *bookingTestEnv {
	t.Helper()
	logger.Init()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	shop := models.Shop{Name: "Barbearia Aurora", Slug: "aurora", Timezone: "America/Sao_Paulo"}
	require.NoError(t, db.Create(&shop).Error)

	user := models.User{
		ShopID:       shop.ID,
		Name:         "Rafa",
		Email:        "rafa@aurora.com",
		PasswordHash: "x",
		Role:         "owner",
		Active:       true,
	}
	require.NoError(t, db.Create(&user).Error)

	repo := infraRepo.NewBookingGormRepository(db)
	resolver := settings.NewResolver(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	handler := NewBookingHandler(
		db,
		ucBooking.NewCreateBooking(repo, dispatcher),
		ucBooking.NewTransition(repo, dispatcher),
		ucBooking.NewListBookingsByDate(repo),
		ucBooking.NewListBookingsByMonth(repo),
		ucBooking.NewGetAvailability(repo, resolver),
		repo,
	)

	r := gin.New()
	// injeta a identidade que o AuthMiddleware colocaria no contexto
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, user.ID)
		c.Set(middleware.ContextShopID, shop.ID)
		c.Set(middleware.ContextUserRole, user.Role)
		c.Next()
	})

	r.POST("/me/bookings", handler.Create)
	r.GET("/me/bookings", handler.ListByDate)
	r.GET("/me/bookings/month", handler.ListByMonth)
	r.GET("/me/bookings/availability", handler.Availability)
	r.PATCH("/me/bookings/:id", handler.Update)
	r.DELETE("/me/bookings/:id", handler.Delete)
	r.PATCH("/me/bookings/:id/complete", handler.Complete)
	r.PATCH("/me/bookings/:id/cancel", handler.Cancel)
	r.PATCH("/me/bookings/:id/payment", handler.SetPayment)

	return &bookingTestEnv{db: db, router: r, shop: shop, user: user}
}

func (e *bookingTestEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestBookingCreate_WithNewCustomerName(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
		"customer_name": "Marcos Paulo",
		"service":       "Corte + Barba",
		"price":         85.0,
		"date":          "2026-09-10",
		"time":          "14:30:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "14:30", created.Time)
	assert.Equal(t, "scheduled", created.Status)
	assert.Equal(t, "pending", created.PaymentStatus)
	assert.Equal(t, env.user.ID, created.StaffID)

	// o cliente foi criado e vinculado
	require.NotNil(t, created.CustomerID)
	var customer models.Customer
	require.NoError(t, env.db.First(&customer, *created.CustomerID).Error)
	assert.Equal(t, "Marcos Paulo", customer.Name)
}

func TestBookingCreate_MissingCustomer(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
		"service": "Corte",
		"date":    "2026-09-10",
		"time":    "14:30",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_customer")
}

func TestBookingCreate_InvalidTime(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
		"customer_name": "Ana",
		"service":       "Corte",
		"date":          "2026-09-10",
		"time":          "25:99",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_date_or_time")
}

func TestBookingCreate_DoubleBookingAllowed(t *testing.T) {
	env := setupBookingEnv(t)

	for _, name := range []string{"Primeiro", "Segundo"} {
		w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
			"customer_name": name,
			"service":       "Corte",
			"date":          "2026-09-10",
			"time":          "10:00",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var count int64
	env.db.Model(&models.Booking{}).
		Where("shop_id = ? AND date = ? AND time = ?", env.shop.ID, "2026-09-10", "10:00").
		Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestBookingListByDate(t *testing.T) {
	env := setupBookingEnv(t)

	for _, tm := range []string{"16:00", "09:15"} {
		w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
			"customer_name": "Cliente " + tm,
			"service":       "Corte",
			"date":          "2026-09-11",
			"time":          tm,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, http.MethodGet, "/me/bookings?date=2026-09-11", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "09:15", out[0]["time"])
	assert.Equal(t, "16:00", out[1]["time"])
}

func TestBookingAvailability_OverlaysBookings(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
		"customer_name": "Ocupado",
		"service":       "Corte",
		"date":          "2026-09-12",
		"time":          "09:00:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/me/bookings/availability?date=2026-09-12", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		Date  string `json:"date"`
		Slots []struct {
			Time     string           `json:"time"`
			Bookings []map[string]any `json:"bookings"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	// grade default 09:00–20:00 em passos de 15 minutos
	require.Len(t, out.Slots, 44)
	assert.Equal(t, "09:00", out.Slots[0].Time)
	assert.Len(t, out.Slots[0].Bookings, 1)
	assert.Empty(t, out.Slots[1].Bookings)
}

func TestBookingComplete_ThenCompleteAgainFails(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
		"customer_name": "Ciclo",
		"service":       "Corte",
		"date":          "2026-09-13",
		"time":          "11:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/me/bookings/%d/complete", created.ID)

	w = env.do(t, http.MethodPatch, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var completed models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &completed))
	assert.Equal(t, "completed", completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	// concluir o atendimento marca a última visita do cliente
	require.NotNil(t, completed.CustomerID)
	var customer models.Customer
	require.NoError(t, env.db.First(&customer, *completed.CustomerID).Error)
	require.NotNil(t, customer.LastVisit)
	assert.Equal(t, "2026-09-13", *customer.LastVisit)

	w = env.do(t, http.MethodPatch, path, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_state")
}

func TestBookingCancel_FromCompletedFails(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
		"customer_name": "Fechado",
		"service":       "Corte",
		"date":          "2026-09-13",
		"time":          "12:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(t, http.MethodPatch, fmt.Sprintf("/me/bookings/%d/complete", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPatch, fmt.Sprintf("/me/bookings/%d/cancel", created.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_state")
}

func TestBookingSetPayment(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
		"customer_name": "Pagante",
		"service":       "Corte",
		"date":          "2026-09-14",
		"time":          "13:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/me/bookings/%d/payment", created.ID)

	w = env.do(t, http.MethodPatch, path, gin.H{"payment_status": "paid"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "paid", updated.PaymentStatus)

	w = env.do(t, http.MethodPatch, path, gin.H{"payment_status": "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_payment_status")
}

func TestBookingUpdate_NotFound(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPatch, "/me/bookings/9999", gin.H{"notes": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "booking_not_found")
}

func TestBookingDelete(t *testing.T) {
	env := setupBookingEnv(t)

	w := env.do(t, http.MethodPost, "/me/bookings", gin.H{
		"customer_name": "Sai",
		"service":       "Corte",
		"date":          "2026-09-15",
		"time":          "10:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/me/bookings/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	env.db.Model(&models.Booking{}).Where("id = ?", created.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}
