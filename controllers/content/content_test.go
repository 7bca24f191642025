package contentControllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "summer-lookbook-2026", slugify("Summer Lookbook 2026"))
	assert.Equal(t, "5-ways-to-style-linen", slugify("5 Ways to Style Linen!"))
	assert.Equal(t, "sale", slugify("  --Sale--  "))
}

func TestHeroSlideInputDisplayOrderCoercion(t *testing.T) {
	var input HeroSlideInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","imageUrl":"u","displayOrder":"3"}`), &input))
	assert.Equal(t, 3, input.displayOrder())

	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","imageUrl":"u","displayOrder":2}`), &input))
	assert.Equal(t, 2, input.displayOrder())

	var absent HeroSlideInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","imageUrl":"u"}`), &absent))
	assert.Equal(t, 0, absent.displayOrder())
}

func TestHeroSlideInputActiveDefaultsTrue(t *testing.T) {
	var input HeroSlideInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","imageUrl":"u"}`), &input))
	assert.True(t, input.active())

	require.NoError(t, json.Unmarshal([]byte(`{"title":"t","imageUrl":"u","active":false}`), &input))
	assert.False(t, input.active())
}
