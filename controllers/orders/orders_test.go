package ordersControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/q3rmos/imperial-gems/models"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
	))

	r := gin.New()
	r.GET("/admin/orders", GetAllOrdersHandler(db))
	r.GET("/admin/orders/:orderID", GetOrderByIDHandler(db))
	r.DELETE("/admin/orders/:orderID", DeleteOrderHandler(db))
	return r, db
}

func seedOrder(t *testing.T, db *gorm.DB, ref string) models.Order {
	t.Helper()
	cat := models.Category{Name: "Rings"}
	require.NoError(t, db.Create(&cat).Error)
	p := models.Product{
		Name:       "Gold Ring",
		Price:      decimal.RequireFromString("19.99"),
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(&p).Error)

	order := models.Order{
		OrderRef:   ref,
		FullName:   "Anna Petrova",
		Email:      "anna@example.com",
		Phone:      "79991234567",
		Country:    "Russia",
		Region:     "Moscow",
		City:       "Moscow",
		PostalCode: "101000",
		Address:    "Tverskaya st. 1",
		Items:      []models.OrderItem{{ProductID: p.ID, Quantity: 2}},
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetOrderByNumericID(t *testing.T) {
	r, db := setup(t)
	order := seedOrder(t, db, "20250908130500-test-ref")

	w := get(t, r, "/admin/orders/1")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, order.OrderRef, got.OrderRef)
	require.Len(t, got.Items, 1)
}

func TestGetOrderByRef(t *testing.T) {
	r, db := setup(t)
	// Non-numeric refs must query order_ref only; comparing them
	// against the integer id column errors on postgres.
	order := seedOrder(t, db, "20250908130500-9f2c1f9e-ref")

	w := get(t, r, "/admin/orders/"+order.OrderRef)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, order.ID, got.ID)
}

func TestGetOrderUnknownRef(t *testing.T) {
	r, db := setup(t)
	seedOrder(t, db, "20250908130500-known")

	w := get(t, r, "/admin/orders/no-such-ref")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrder(t *testing.T) {
	r, db := setup(t)
	order := seedOrder(t, db, "20250908130500-delete-me")

	req := httptest.NewRequest(http.MethodDelete, "/admin/orders/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	require.Zero(t, n)
	require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&n).Error)
	require.Zero(t, n)
}

func TestDeleteOrderNotFound(t *testing.T) {
	r, _ := setup(t)

	req := httptest.NewRequest(http.MethodDelete, "/admin/orders/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "order not found")
}
