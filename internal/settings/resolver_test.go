package settings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/barberops/internal/db"
	"github.com/BruksfildServices01/barberops/internal/logger"
	"github.com/BruksfildServices01/barberops/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Init()

	// banco em memória isolado por teste
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func TestGet_CreatesDefaultsOnFirstAccess(t *testing.T) {
	db := setupDB(t)
	r := NewResolver(db)

	s := r.Get(context.Background(), "Barbearia Central")

	assert.Equal(t, DefaultOpeningTime, s.OpeningTime)
	assert.Equal(t, DefaultClosingTime, s.ClosingTime)

	// a linha default foi persistida
	var count int64
	db.Model(&models.ShopSettings{}).
		Where("shop_name = ?", "Barbearia Central").
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGet_IsIdempotent(t *testing.T) {
	db := setupDB(t)
	r := NewResolver(db)

	first := r.Get(context.Background(), "Navalha de Ouro")
	second := r.Get(context.Background(), "Navalha de Ouro")

	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&models.ShopSettings{}).
		Where("shop_name = ?", "Navalha de Ouro").
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGet_BackfillsMissingHours(t *testing.T) {
	db := setupDB(t)
	r := NewResolver(db)

	require.NoError(t, db.Create(&models.ShopSettings{
		ShopName:    "Sem Horário",
		OpeningTime: "",
		ClosingTime: "",
	}).Error)

	s := r.Get(context.Background(), "Sem Horário")
	assert.Equal(t, DefaultOpeningTime, s.OpeningTime)
	assert.Equal(t, DefaultClosingTime, s.ClosingTime)

	var stored models.ShopSettings
	require.NoError(t, db.Where("shop_name = ?", "Sem Horário").First(&stored).Error)
	assert.Equal(t, DefaultOpeningTime, stored.OpeningTime)
	assert.Equal(t, DefaultClosingTime, stored.ClosingTime)
}

func TestSave_PartialKeepsUntouchedFields(t *testing.T) {
	db := setupDB(t)
	r := NewResolver(db)

	// cria a linha default primeiro
	_ = r.Get(context.Background(), "Parcial")

	opening := "08:00"
	require.NoError(t, r.Save(context.Background(), "Parcial", SavePartial{
		OpeningTime: &opening,
	}))

	s := r.Get(context.Background(), "Parcial")
	assert.Equal(t, "08:00", s.OpeningTime)
	assert.Equal(t, DefaultClosingTime, s.ClosingTime)
	assert.Equal(t, Defaults("Parcial").DailyTarget, s.DailyTarget)
}

func TestGet_DegradesToInMemoryDefaultsOnDBError(t *testing.T) {
	db := setupDB(t)
	r := NewResolver(db)

	// derruba a tabela para simular falha de banco
	require.NoError(t, db.Migrator().DropTable(&models.ShopSettings{}))

	s := r.Get(context.Background(), "Quebrada")
	assert.Equal(t, DefaultOpeningTime, s.OpeningTime)
	assert.Equal(t, DefaultClosingTime, s.ClosingTime)
}
