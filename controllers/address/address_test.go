package addressControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/harperco/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Address{}))
	return db
}

// newTestRouter wires the address handlers behind a stub auth middleware
// that injects the given user id.
func newTestRouter(db *gorm.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := func(c *gin.Context) { c.Set("user_id", userID) }
	grp := r.Group("/addresses", auth)
	grp.GET("/", ListAddresses(db))
	grp.GET("/:addressID", GetAddressByID(db))
	grp.POST("/", CreateAddress(db))
	grp.PUT("/:addressID", UpdateAddress(db))
	grp.DELETE("/:addressID", DeleteAddress(db))
	return r
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.NewString(),
		Username: "casey",
		Email:    uuid.NewString() + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedAddress(t *testing.T, db *gorm.DB, userID, city string, isDefault bool) models.Address {
	t.Helper()
	address := models.Address{
		UserID:       userID,
		FullName:     "Casey Lin",
		Phone:        "555-0188",
		AddressLine1: "88 Birch St",
		City:         city,
		State:        "WA",
		ZipCode:      "98101",
		Country:      "USA",
		IsDefault:    isDefault,
	}
	require.NoError(t, db.Create(&address).Error)
	return address
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateDefaultAddressUnsetsPrevious(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	previous := seedAddress(t, db, user.ID, "Seattle", true)

	// Another user's default must stay untouched
	other := seedUser(t, db)
	otherDefault := seedAddress(t, db, other.ID, "Spokane", true)

	r := newTestRouter(db, user.ID)
	w := doJSON(t, r, http.MethodPost, "/addresses/", CreateAddressInput{
		FullName:     "Casey Lin",
		Phone:        "555-0188",
		AddressLine1: "14 Cedar Ave",
		City:         "Tacoma",
		State:        "WA",
		ZipCode:      "98402",
		IsDefault:    true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Address
	require.NoError(t, db.First(&got, previous.ID).Error)
	assert.False(t, got.IsDefault)

	var defaults int64
	require.NoError(t, db.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", user.ID, true).
		Count(&defaults).Error)
	assert.EqualValues(t, 1, defaults)

	got = models.Address{}
	require.NoError(t, db.First(&got, otherDefault.ID).Error)
	assert.True(t, got.IsDefault)
}

func TestUpdateAddressTogglesDefault(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	a := seedAddress(t, db, user.ID, "Seattle", true)
	b := seedAddress(t, db, user.ID, "Tacoma", false)

	r := newTestRouter(db, user.ID)
	isDefault := true
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/addresses/%d", b.ID), UpdateAddressInput{
		IsDefault: &isDefault,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Address
	require.NoError(t, db.First(&got, a.ID).Error)
	assert.False(t, got.IsDefault)
	got = models.Address{}
	require.NoError(t, db.First(&got, b.ID).Error)
	assert.True(t, got.IsDefault)
}

func TestUpdateAddressFields(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	a := seedAddress(t, db, user.ID, "Seattle", false)

	r := newTestRouter(db, user.ID)
	city := "Olympia"
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/addresses/%d", a.ID), UpdateAddressInput{
		City: &city,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Address
	require.NoError(t, db.First(&got, a.ID).Error)
	assert.Equal(t, "Olympia", got.City)
	// Untouched fields survive a partial update
	assert.Equal(t, "88 Birch St", got.AddressLine1)
}

func TestAddressOwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db)
	address := seedAddress(t, db, owner.ID, "Seattle", false)

	intruder := seedUser(t, db)
	r := newTestRouter(db, intruder.ID)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/addresses/%d", address.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/addresses/%d", address.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Address{}).Where("user_id = ?", owner.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteAddress(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	address := seedAddress(t, db, user.ID, "Seattle", false)

	r := newTestRouter(db, user.ID)
	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/addresses/%d", address.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Address{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListAddresses(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	seedAddress(t, db, user.ID, "Seattle", true)
	seedAddress(t, db, user.ID, "Tacoma", false)

	r := newTestRouter(db, user.ID)
	w := doJSON(t, r, http.MethodGet, "/addresses/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Addresses []models.Address `json:"addresses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Addresses, 2)
}
