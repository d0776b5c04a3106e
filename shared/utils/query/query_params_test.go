package query

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParseQueryParamsFilters(t *testing.T) {
	c := testContext(t, "filters[status]=published&filters[user_id]=abc&unrelated=1")

	params := ParseQueryParams(c)
	assert.Equal(t, "published", params.Filters["status"])
	assert.Equal(t, "abc", params.Filters["user_id"])
	assert.Len(t, params.Filters, 2)
}

func TestParseQueryParamsSortDefaultsToDesc(t *testing.T) {
	c := testContext(t, "sort[field]=start_time&sort[order]=sideways")

	params := ParseQueryParams(c)
	assert.Equal(t, "start_time", params.Sort.Field)
	assert.Equal(t, "desc", params.Sort.Order)
}

func TestParseQueryParamsPaginationDefaults(t *testing.T) {
	c := testContext(t, "")

	params := ParseQueryParams(c)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 100, params.Limit)
}

func TestParseQueryParamsPaginationClamps(t *testing.T) {
	c := testContext(t, "page=0&limit=9999")

	params := ParseQueryParams(c)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 500, params.Limit)

	c = testContext(t, "page=3&limit=-5")
	params = ParseQueryParams(c)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 1, params.Limit)
}

type row struct {
	ID     int
	Status string
}

func TestApplyFiltersWhitelist(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&row{}))
	require.NoError(t, db.Create(&[]row{{1, "a"}, {2, "b"}, {3, "a"}}).Error)

	allowed := map[string]string{"status": "status"}

	var got []row
	q := ApplyFilters(db.Model(&row{}), map[string]string{
		"status": "a",
		"id":     "2", // not whitelisted, must be ignored
	}, allowed)
	require.NoError(t, q.Find(&got).Error)
	assert.Len(t, got, 2)
}

func TestApplySortFallsBackToDefault(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&row{}))
	require.NoError(t, db.Create(&[]row{{2, "b"}, {1, "a"}, {3, "c"}}).Error)

	var got []row
	q := ApplySort(db.Model(&row{}), SortParams{Field: "nope", Order: "asc"},
		map[string]string{"id": "id"}, "id asc")
	require.NoError(t, q.Find(&got).Error)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)

	got = nil
	q = ApplySort(db.Model(&row{}), SortParams{Field: "id", Order: "desc"},
		map[string]string{"id": "id"}, "id asc")
	require.NoError(t, q.Find(&got).Error)
	assert.Equal(t, 3, got[0].ID)
}

func TestApplyPaginationWindows(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&row{}))
	require.NoError(t, db.Create(&[]row{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}, {5, "e"}}).Error)

	var got []row
	q := ApplyPagination(db.Model(&row{}).Order("id asc"), Params{Page: 2, Limit: 2})
	require.NoError(t, q.Find(&got).Error)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}
