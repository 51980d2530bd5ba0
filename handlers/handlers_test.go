package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/visourastudio-blip/pizza-do-ze/cart"
	"github.com/visourastudio-blip/pizza-do-ze/config"
	"github.com/visourastudio-blip/pizza-do-ze/middleware"
	"github.com/visourastudio-blip/pizza-do-ze/models"
	"github.com/visourastudio-blip/pizza-do-ze/payment"
	"github.com/visourastudio-blip/pizza-do-ze/routes"
)

// setupRouter builds the full route tree over a fresh in-memory
// database, the way main does at startup.
func setupRouter(t *testing.T) *gin.Engine {
	return setupRouterWithPix(t, "http://invalid.localhost")
}

func setupRouterWithPix(t *testing.T, pixBaseURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	carts := cart.NewManager(cart.NewMemoryStore())
	pix := payment.NewClient(pixBaseURL, "test")

	r := gin.New()
	routes.SetupRoutes(r, carts, pix)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// registerCustomer signs up a fresh customer and returns their token.
func registerCustomer(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test Customer",
		"email":    email,
		"password": "secret123",
		"phone":    "(11) 98765-4321",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

// createAdmin provisions an admin directly, the way ops would.
func createAdmin(t *testing.T) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := models.User{
		Name:         "Kitchen Admin",
		Email:        "admin@pizzadoze.test",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	require.NoError(t, config.DB.Create(&admin).Error)
	token, err := middleware.GenerateToken(&admin)
	require.NoError(t, err)
	return token
}

// addBeverage puts a drink in the customer's cart.
func addBeverage(t *testing.T, r *gin.Engine, token, itemID string, qty int) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/customer/cart/beverages", token, gin.H{
		"item_id":  itemID,
		"quantity": qty,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func orderPath(id uint) string {
	return "/api/customer/orders/" + strconv.FormatUint(uint64(id), 10)
}

func orderStatusPath(id uint) string {
	return "/api/admin/orders/" + strconv.FormatUint(uint64(id), 10) + "/status"
}

// checkout places an order and returns its id.
func checkout(t *testing.T, r *gin.Engine, token string, fulfillment models.FulfillmentType) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/customer/orders", token, gin.H{
		"fulfillment":    fulfillment,
		"payment_method": "pix",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode(t, w)["order"].(map[string]interface{})
	return uint(order["id"].(float64))
}
