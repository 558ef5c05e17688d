package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/q3rmos/imperial-gems/models"
)

const adminKey = "test-admin-key"

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_API_KEY", adminKey)
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.GuestSession{}, &models.Category{}, &models.Product{},
		&models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{},
	))

	r := gin.New()
	SetupRoutes(r, db)
	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path, contentType, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createSession(t *testing.T, r *gin.Engine) map[string]string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/session", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		SessionID string `json:"session_id"`
		Token     string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return map[string]string{"Authorization": "Bearer " + resp.Token}
}

func seedCatalog(t *testing.T, r *gin.Engine) models.Product {
	t.Helper()
	admin := map[string]string{"X-API-KEY": adminKey}

	w := doJSON(t, r, http.MethodPost, "/admin/categories", map[string]any{"name": "Rings"}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	var cat models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))

	w = doJSON(t, r, http.MethodPost, "/admin/products", map[string]any{
		"name":        "Gold Ring",
		"price":       "19.99",
		"category_id": cat.ID,
	}, admin)
	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCartRequiresSession(t *testing.T) {
	r, _ := setupServer(t)
	w := do(t, r, http.MethodGet, "/cart", "", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiresAPIKey(t *testing.T) {
	r, _ := setupServer(t)
	w := doJSON(t, r, http.MethodPost, "/admin/categories", map[string]any{"name": "Rings"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCartUpdateContract(t *testing.T) {
	r, _ := setupServer(t)
	p := seedCatalog(t, r)
	session := createSession(t, r)

	w := do(t, r, http.MethodPost, "/cart/add/1", "", "", session)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/cart/update/1", "application/x-www-form-urlencoded", "quantity=3", session)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success    bool            `json:"success"`
		Quantity   int             `json:"quantity"`
		TotalPrice decimal.Decimal `json:"total_price"`
		CartTotal  decimal.Decimal `json:"cart_total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, 3, resp.Quantity)
	require.True(t, resp.TotalPrice.Equal(p.Price.Mul(decimal.NewFromInt(3))), "got %s", resp.TotalPrice)
	require.True(t, resp.CartTotal.Equal(resp.TotalPrice))
}

func TestCartUpdateInvalidMethod(t *testing.T) {
	r, _ := setupServer(t)
	seedCatalog(t, r)
	session := createSession(t, r)

	// Every non-POST verb gets the same fixed body, never a 404.
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		w := do(t, r, method, "/cart/update/1", "", "", session)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code, method)

		var resp struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), method)
		require.False(t, resp.Success, method)
		require.Equal(t, "Invalid request", resp.Error, method)
	}
}

func TestCheckoutFlow(t *testing.T) {
	r, db := setupServer(t)
	seedCatalog(t, r)
	session := createSession(t, r)

	// Empty cart: refused before any validation.
	w := do(t, r, http.MethodPost, "/checkout",
		"application/x-www-form-urlencoded", "full_name=Anna", session)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "cart is empty")

	w = do(t, r, http.MethodPost, "/cart/add/1", "", "", session)
	require.Equal(t, http.StatusOK, w.Code)

	// Invalid phone: field error, nothing persisted.
	badForm := "full_name=Anna+Petrova&email=anna%40example.com&phone=abc&country=Russia&region=Moscow&city=Moscow&postal_code=101000&address=Tverskaya+1"
	w = do(t, r, http.MethodPost, "/checkout", "application/x-www-form-urlencoded", badForm, session)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var failure struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &failure))
	require.Contains(t, failure.Errors, "phone")

	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	require.Zero(t, n)

	// GET serves the declarative form configuration.
	w = do(t, r, http.MethodGet, "/checkout", "", "", session)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"fields"`)
	require.Contains(t, w.Body.String(), "full_name")

	// Valid submission: thank-you payload, cart cleared.
	goodForm := strings.Replace(badForm, "phone=abc", "phone=79991234567", 1)
	w = do(t, r, http.MethodPost, "/checkout", "application/x-www-form-urlencoded", goodForm, session)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Thank you for your order!")

	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	require.EqualValues(t, 1, n)

	w = do(t, r, http.MethodGet, "/cart", "", "", session)
	require.Equal(t, http.StatusOK, w.Code)
	var cartResp struct {
		Items []models.CartItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResp))
	require.Empty(t, cartResp.Items)
}
