package cartControllers

import (
	"testing"

	"github.com/noOne-33/stylora-api/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testItem(color, size string, qty int, price float64) models.CartItem {
	productID := primitive.NewObjectID()
	return models.CartItem{
		ProductID: productID,
		CartKey:   models.MakeCartKey(productID, color, size),
		Name:      "Linen Shirt",
		Price:     price,
		Color:     color,
		Size:      size,
		Quantity:  qty,
	}
}

func TestMergeItemAddsNewLine(t *testing.T) {
	items := []models.CartItem{testItem("Red", "M", 1, 40)}

	next := mergeItem(items, testItem("Blue", "L", 2, 40))

	assert.Len(t, next, 2)
	assert.Equal(t, 2, next[1].Quantity)
}

func TestMergeItemIncreasesQuantityOnSameKey(t *testing.T) {
	existing := testItem("Red", "M", 2, 40)
	items := []models.CartItem{existing}

	add := existing
	add.Quantity = 3
	next := mergeItem(items, add)

	assert.Len(t, next, 1)
	assert.Equal(t, 5, next[0].Quantity)
}

func TestMergeItemVariantsAreSeparateLines(t *testing.T) {
	productID := primitive.NewObjectID()
	red := models.CartItem{ProductID: productID, CartKey: models.MakeCartKey(productID, "Red", "M"), Quantity: 1}
	blue := models.CartItem{ProductID: productID, CartKey: models.MakeCartKey(productID, "Blue", "M"), Quantity: 1}

	next := mergeItem([]models.CartItem{red}, blue)

	assert.Len(t, next, 2)
}

func TestSetQuantity(t *testing.T) {
	item := testItem("Red", "M", 2, 40)

	next := setQuantity([]models.CartItem{item}, item.CartKey, 7)
	assert.Equal(t, 7, next[0].Quantity)

	// unknown key leaves the list untouched
	next = setQuantity([]models.CartItem{item}, "missing", 7)
	assert.Equal(t, 2, next[0].Quantity)
}

func TestSetQuantityZeroOrBelowRemovesLine(t *testing.T) {
	item := testItem("Red", "M", 2, 40)

	next := setQuantity([]models.CartItem{item}, item.CartKey, 0)
	assert.Empty(t, next)

	next = setQuantity([]models.CartItem{item}, item.CartKey, -3)
	assert.Empty(t, next)
}

func TestRemoveItem(t *testing.T) {
	a := testItem("Red", "M", 1, 40)
	b := testItem("Blue", "L", 1, 50)

	next := removeItem([]models.CartItem{a, b}, a.CartKey)

	assert.Len(t, next, 1)
	assert.Equal(t, b.CartKey, next[0].CartKey)
}

func TestSubtotal(t *testing.T) {
	items := []models.CartItem{
		testItem("Red", "M", 2, 19.99),
		testItem("Blue", "L", 1, 35.50),
	}
	assert.InDelta(t, 75.48, subtotal(items), 0.001)
	assert.Zero(t, subtotal(nil))
}
