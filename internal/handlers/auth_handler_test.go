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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barberops/internal/config"
	dbpkg "github.com/BruksfildServices01/barberops/internal/db"
	"github.com/BruksfildServices01/barberops/internal/logger"
	"github.com/BruksfildServices01/barberops/internal/models"
)

func setupAuthEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	logger.Init()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret", DefaultTimezone: "America/Sao_Paulo"}
	handler := NewAuthHandler(db, cfg)

	r := gin.New()
	r.POST("/auth/login", handler.Login)
	return r, db
}

func seedLoginUser(t *testing.T, db *gorm.DB, active bool) models.User {
	t.Helper()

	shop := models.Shop{Name: "Navalha", Slug: "navalha", Timezone: "America/Sao_Paulo"}
	require.NoError(t, db.Create(&shop).Error)

	hashed, err := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		ShopID:       shop.ID,
		Name:         "Dona",
		Email:        "dona@navalha.com",
		PasswordHash: string(hashed),
		Role:         "owner",
		Active:       active,
	}
	require.NoError(t, db.Create(&user).Error)
	if !active {
		// o default:true da coluna engole o zero value no insert
		require.NoError(t, db.Model(&user).Update("active", false).Error)
	}
	return user
}

func postLogin(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_ReturnsSessionPayload(t *testing.T) {
	r, db := setupAuthEnv(t)
	seedLoginUser(t, db, true)

	w := postLogin(t, r, gin.H{"email": "Dona@Navalha.com", "password": "segredo1"})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
		Shop struct {
			Slug     string `json:"slug"`
			Timezone string `json:"timezone"`
		} `json:"shop"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	assert.Equal(t, "dona@navalha.com", out.User.Email)
	assert.Equal(t, "owner", out.User.Role)
	assert.Equal(t, "navalha", out.Shop.Slug)
	assert.Equal(t, "America/Sao_Paulo", out.Shop.Timezone)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	r, db := setupAuthEnv(t)
	seedLoginUser(t, db, true)

	w := postLogin(t, r, gin.H{"email": "dona@navalha.com", "password": "errada99"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	r, _ := setupAuthEnv(t)

	w := postLogin(t, r, gin.H{"email": "ninguem@navalha.com", "password": "segredo1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestLogin_DeactivatedUser(t *testing.T) {
	r, db := setupAuthEnv(t)
	seedLoginUser(t, db, false)

	w := postLogin(t, r, gin.H{"email": "dona@navalha.com", "password": "segredo1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user_deactivated")
}
