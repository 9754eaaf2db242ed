package productController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
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

func createCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func listProducts(t *testing.T, db *gorm.DB, query url.Values) []models.Product {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/products?"+query.Encode(), nil)
	GetProducts(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	electronics := createCategory(t, db, "Electronics")
	clothing := createCategory(t, db, "Clothing")

	rows := []models.Product{
		{Name: "Wireless Mouse", Description: "USB receiver included", Price: decimal.NewFromInt(25), CategoryID: electronics.ID, Brand: "Logi", Stock: 10, Images: models.ImageList{}},
		{Name: "Mechanical Keyboard", Description: "Clicky switches", Price: decimal.NewFromInt(80), CategoryID: electronics.ID, Brand: "Keych", Stock: 5, Images: models.ImageList{}},
		{Name: "Cotton Shirt", Description: "Plain white shirt", Price: decimal.NewFromInt(15), CategoryID: clothing.ID, Brand: "Wear", Stock: 20, Images: models.ImageList{}},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func TestGetProductsFilters(t *testing.T) {
	db := testutil.OpenDB(t)
	seedCatalog(t, db)

	all := listProducts(t, db, url.Values{})
	require.Len(t, all, 3)

	byCategory := listProducts(t, db, url.Values{"category": {"Electronics"}})
	require.Len(t, byCategory, 2)

	byBrand := listProducts(t, db, url.Values{"brand": {"Wear"}})
	require.Len(t, byBrand, 1)
	require.Equal(t, "Cotton Shirt", byBrand[0].Name)

	byPrice := listProducts(t, db, url.Values{"min_price": {"20"}, "max_price": {"50"}})
	require.Len(t, byPrice, 1)
	require.Equal(t, "Wireless Mouse", byPrice[0].Name)

	// search is case-insensitive across name, description and brand
	bySearch := listProducts(t, db, url.Values{"search": {"KEYBOARD"}})
	require.Len(t, bySearch, 1)
	bySearch = listProducts(t, db, url.Values{"search": {"receiver"}})
	require.Len(t, bySearch, 1)
	require.Equal(t, "Wireless Mouse", bySearch[0].Name)
}

func TestGetProductsRejectsBadPrice(t *testing.T) {
	db := testutil.OpenDB(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/products?min_price=cheap", nil)
	GetProducts(db)(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductByID(t *testing.T) {
	db := testutil.OpenDB(t)
	p := testutil.CreateProduct(t, db, "Widget", 100, 5)

	get := func(id string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/products/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		GetProductByID(db)(c)
		return w
	}

	require.Equal(t, http.StatusOK, get(strconv.Itoa(int(p.ID))).Code)
	require.Equal(t, http.StatusNotFound, get("999").Code)
	// a non-numeric id answers not-found, never a database error
	require.Equal(t, http.StatusNotFound, get("abc").Code)
}

func postProduct(t *testing.T, db *gorm.DB, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	CreateProduct(db)(c)
	return w
}

func TestCreateProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	category := createCategory(t, db, "Electronics")

	w := postProduct(t, db, gin.H{
		"name":        "Webcam",
		"price":       "49.99",
		"category_id": category.ID,
		"stock":       7,
		"images":      []string{" https://img.example.com/a.jpg ", "", "https://img.example.com/b.jpg"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.True(t, created.Price.Equal(decimal.RequireFromString("49.99")))
	// blank entries dropped, whitespace trimmed
	require.Equal(t, models.ImageList{
		"https://img.example.com/a.jpg",
		"https://img.example.com/b.jpg",
	}, created.Images)
}

func TestCreateProductValidation(t *testing.T) {
	db := testutil.OpenDB(t)
	category := createCategory(t, db, "Electronics")

	// unknown category
	w := postProduct(t, db, gin.H{"name": "Webcam", "price": "10", "category_id": 999})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid category")

	// negative price
	w = postProduct(t, db, gin.H{"name": "Webcam", "price": "-1", "category_id": category.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// missing name
	w = postProduct(t, db, gin.H{"price": "10", "category_id": category.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	category := createCategory(t, db, "Electronics")
	p := models.Product{Name: "Old Name", Price: decimal.NewFromInt(10), CategoryID: category.ID, Stock: 1, Images: models.ImageList{}}
	require.NoError(t, db.Create(&p).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload, err := json.Marshal(gin.H{
		"name":        "New Name",
		"price":       "12.50",
		"category_id": category.ID,
		"stock":       4,
	})
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPut, "/admin/products/1", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: strconv.Itoa(int(p.ID))}}
	UpdateProduct(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, p.ID).Error)
	require.Equal(t, "New Name", reloaded.Name)
	require.True(t, reloaded.Price.Equal(decimal.RequireFromString("12.50")))
	require.Equal(t, 4, reloaded.Stock)
}

func TestUpdateStock(t *testing.T) {
	db := testutil.OpenDB(t)
	p := testutil.CreateProduct(t, db, "Widget", 100, 5)

	put := func(id string, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/admin/products/"+id+"/stock",
			bytes.NewReader([]byte(body)))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "id", Value: id}}
		UpdateStock(db)(c)
		return w
	}

	require.Equal(t, http.StatusOK, put(strconv.Itoa(int(p.ID)), `{"stock": 42}`).Code)
	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, p.ID).Error)
	require.Equal(t, 42, reloaded.Stock)

	require.Equal(t, http.StatusNotFound, put("999", `{"stock": 1}`).Code)
	require.Equal(t, http.StatusBadRequest, put(strconv.Itoa(int(p.ID)), `{"stock": -1}`).Code)
}

func TestDeleteProduct(t *testing.T) {
	db := testutil.OpenDB(t)
	p := testutil.CreateProduct(t, db, "Widget", 100, 5)

	del := func(id string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/admin/products/"+id, nil)
		c.Params = gin.Params{{Key: "id", Value: id}}
		DeleteProduct(db)(c)
		return w
	}

	require.Equal(t, http.StatusOK, del(strconv.Itoa(int(p.ID))).Code)
	require.Equal(t, http.StatusNotFound, del(strconv.Itoa(int(p.ID))).Code)
}

func TestCategories(t *testing.T) {
	db := testutil.OpenDB(t)
	seedCatalog(t, db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/categories", nil)
	GetCategories(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	byName := map[string]int64{}
	for _, cat := range categories {
		byName[cat.Name] = cat.ProductCount
	}
	require.Equal(t, int64(2), byName["Electronics"])
	require.Equal(t, int64(1), byName["Clothing"])
}

func TestCreateCategoryRejectsDuplicate(t *testing.T) {
	db := testutil.OpenDB(t)
	createCategory(t, db, "Electronics")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin/categories",
		bytes.NewReader([]byte(`{"name": "Electronics"}`)))
	c.Request.Header.Set("Content-Type", "application/json")
	CreateCategory(db)(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}

func TestGetBrands(t *testing.T) {
	db := testutil.OpenDB(t)
	seedCatalog(t, db)
	// a second product under an existing brand must not duplicate it
	extra := models.Product{Name: "Trackball", Price: decimal.NewFromInt(30), Brand: "Logi", Stock: 2, Images: models.ImageList{}}
	require.NoError(t, db.Create(&extra).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/brands", nil)
	GetBrands(db)(c)
	require.Equal(t, http.StatusOK, w.Code)

	var brands []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &brands))
	require.Equal(t, []string{"Keych", "Logi", "Wear"}, brands)
}
