package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smartkart/database"
	"smartkart/models"
)

// OpenDB returns a migrated in-memory database for one test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleCustomer,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func CreateProduct(t *testing.T, db *gorm.DB, name string, price int64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:   name,
		Price:  decimal.NewFromInt(price),
		Brand:  "Acme",
		Stock:  stock,
		Images: models.ImageList{},
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func AddToCart(t *testing.T, db *gorm.DB, userID, productID uint, quantity int) models.Cart {
	t.Helper()
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		cart = models.Cart{UserID: userID}
		require.NoError(t, db.Create(&cart).Error)
	} else {
		require.NoError(t, err)
	}
	item := models.CartItem{CartID: cart.CartID, ProductID: productID, Quantity: quantity}
	require.NoError(t, db.Create(&item).Error)
	return cart
}
