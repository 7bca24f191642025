package productcontroller

import (
	"testing"

	"github.com/noOne-33/stylora-api/models"
	"github.com/stretchr/testify/assert"
)

func TestRegexQuoteMeta(t *testing.T) {
	assert.Equal(t, "linen shirt", regexQuoteMeta("linen shirt"))
	assert.Equal(t, `2\.0 \(new\)`, regexQuoteMeta("2.0 (new)"))
	assert.Equal(t, `a\+b\*c`, regexQuoteMeta("a+b*c"))
}

func TestWithPricing(t *testing.T) {
	view := withPricing(models.Product{
		Name:          "Denim Jacket",
		Price:         100,
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 20,
	})
	assert.Equal(t, 80.0, view.EffectivePrice)
	assert.Equal(t, "20% OFF", view.DiscountText)

	// fixed discount at or above the price is ignored
	view = withPricing(models.Product{
		Name:          "Denim Jacket",
		Price:         100,
		DiscountType:  models.DiscountFixed,
		DiscountValue: 150,
	})
	assert.Equal(t, 100.0, view.EffectivePrice)
	assert.Empty(t, view.DiscountText)
}
