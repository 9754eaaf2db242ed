package adminControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"smartkart/models"
	"smartkart/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func getDashboard(t *testing.T, db *gorm.DB) DashboardResponse {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	GetDashboard(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var resp DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func createOrder(t *testing.T, db *gorm.DB, userID uint, total int64, status models.OrderStatus) {
	t.Helper()
	order := models.Order{
		UserID:      userID,
		TotalAmount: decimal.NewFromInt(total),
		Status:      status,
	}
	require.NoError(t, db.Create(&order).Error)
}

func TestGetDashboardEmpty(t *testing.T) {
	db := testutil.OpenDB(t)

	resp := getDashboard(t, db)
	require.Zero(t, resp.TotalUsers)
	require.Zero(t, resp.TotalOrders)
	require.True(t, resp.TotalRevenue.IsZero())
}

func TestGetDashboardAggregates(t *testing.T) {
	db := testutil.OpenDB(t)
	alice := testutil.CreateUser(t, db, "alice@example.com")
	testutil.CreateUser(t, db, "bob@example.com")
	testutil.CreateProduct(t, db, "In Stock", 100, 5)
	testutil.CreateProduct(t, db, "Sold Out", 50, 0)

	createOrder(t, db, alice.ID, 100, models.OrderStatusPending)
	createOrder(t, db, alice.ID, 200, models.OrderStatusProcessing)
	createOrder(t, db, alice.ID, 300, models.OrderStatusDelivered)
	// cancelled orders count toward totals but never toward revenue
	createOrder(t, db, alice.ID, 999, models.OrderStatusCancelled)

	resp := getDashboard(t, db)
	require.Equal(t, int64(2), resp.TotalUsers)
	require.Equal(t, int64(2), resp.TotalProducts)
	require.Equal(t, int64(4), resp.TotalOrders)
	require.Equal(t, int64(2), resp.PendingOrders)
	require.Equal(t, int64(1), resp.OutOfStockProducts)
	require.True(t, resp.TotalRevenue.Equal(decimal.NewFromInt(600)),
		"expected revenue 600, got %s", resp.TotalRevenue)
}
