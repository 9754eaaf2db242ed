package wishlistControllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"smartkart/models"
	"smartkart/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func callWithProduct(db *gorm.DB, handler func(*gorm.DB) gin.HandlerFunc, method string, userID uint, productID string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/wishlist", nil)
	c.Params = gin.Params{{Key: "product_id", Value: productID}}
	c.Set("user_id", userID)
	handler(db)(c)
	return w
}

func TestAddToWishlist(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "wisher@example.com")
	p := testutil.CreateProduct(t, db, "Widget", 100, 5)
	pid := strconv.Itoa(int(p.ID))

	w := callWithProduct(db, AddToWishlist, http.MethodPost, user.ID, pid)
	require.Equal(t, http.StatusOK, w.Code)

	// adding the same product again fails and leaves exactly one entry
	w = callWithProduct(db, AddToWishlist, http.MethodPost, user.ID, pid)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already in wishlist")

	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestAddToWishlistMissingProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "wisher@example.com")

	w := callWithProduct(db, AddToWishlist, http.MethodPost, user.ID, "999")
	require.Equal(t, http.StatusNotFound, w.Code)

	// a non-numeric id answers not-found, never a database error
	w = callWithProduct(db, AddToWishlist, http.MethodPost, user.ID, "abc")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveFromWishlist(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "wisher@example.com")
	p := testutil.CreateProduct(t, db, "Widget", 100, 5)
	pid := strconv.Itoa(int(p.ID))

	require.Equal(t, http.StatusOK,
		callWithProduct(db, AddToWishlist, http.MethodPost, user.ID, pid).Code)
	require.Equal(t, http.StatusOK,
		callWithProduct(db, RemoveFromWishlist, http.MethodDelete, user.ID, pid).Code)

	// removing an absent item answers 404
	require.Equal(t, http.StatusNotFound,
		callWithProduct(db, RemoveFromWishlist, http.MethodDelete, user.ID, pid).Code)
}

func TestIsInWishlist(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "wisher@example.com")
	p := testutil.CreateProduct(t, db, "Widget", 100, 5)
	pid := strconv.Itoa(int(p.ID))

	w := callWithProduct(db, IsInWishlist, http.MethodGet, user.ID, pid)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"in_wishlist":false`)

	require.Equal(t, http.StatusOK,
		callWithProduct(db, AddToWishlist, http.MethodPost, user.ID, pid).Code)

	w = callWithProduct(db, IsInWishlist, http.MethodGet, user.ID, pid)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"in_wishlist":true`)
}

func TestWishlistsAreScopedPerUser(t *testing.T) {
	db := testutil.OpenDB(t)
	alice := testutil.CreateUser(t, db, "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob@example.com")
	p := testutil.CreateProduct(t, db, "Widget", 100, 5)
	pid := strconv.Itoa(int(p.ID))

	require.Equal(t, http.StatusOK,
		callWithProduct(db, AddToWishlist, http.MethodPost, alice.ID, pid).Code)

	w := callWithProduct(db, IsInWishlist, http.MethodGet, bob.ID, pid)
	require.Contains(t, w.Body.String(), `"in_wishlist":false`)
}

func TestClearWishlist(t *testing.T) {
	db := testutil.OpenDB(t)
	user := testutil.CreateUser(t, db, "wisher@example.com")
	p := testutil.CreateProduct(t, db, "Widget", 100, 5)
	q := testutil.CreateProduct(t, db, "Gadget", 50, 5)

	for _, id := range []uint{p.ID, q.ID} {
		require.Equal(t, http.StatusOK,
			callWithProduct(db, AddToWishlist, http.MethodPost, user.ID, strconv.Itoa(int(id))).Code)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/wishlist/clear", nil)
	c.Set("user_id", user.ID)
	ClearWishlist(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&count).Error)
	require.Zero(t, count)
}
