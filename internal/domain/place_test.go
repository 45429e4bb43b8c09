package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceUnmarshalJSON(t *testing.T) {
	t.Run("complete coordinate pair is kept", func(t *testing.T) {
		var p Place
		err := json.Unmarshal([]byte(`{
			"id": "1",
			"nome": "Pet Shop A",
			"categoria": "pets",
			"coordenadas": {"latitude": -23.55, "longitude": -46.63}
		}`), &p)
		require.NoError(t, err)
		require.NotNil(t, p.Coordinates)
		assert.Equal(t, -23.55, p.Coordinates.Latitude)
		assert.Equal(t, -46.63, p.Coordinates.Longitude)
	})

	t.Run("partial pair is treated as absent", func(t *testing.T) {
		var p Place
		err := json.Unmarshal([]byte(`{
			"id": "2",
			"nome": "Pet Shop B",
			"categoria": "pets",
			"coordenadas": {"latitude": -23.55}
		}`), &p)
		require.NoError(t, err)
		assert.Nil(t, p.Coordinates)
	})

	t.Run("missing coordinates stay absent", func(t *testing.T) {
		var p Place
		err := json.Unmarshal([]byte(`{"id": "3", "nome": "Salao X", "categoria": "beleza"}`), &p)
		require.NoError(t, err)
		assert.Nil(t, p.Coordinates)
	})
}

func TestRatingOrZero(t *testing.T) {
	rating := 4.5
	withRating := Place{Rating: &rating}
	withoutRating := Place{}

	assert.Equal(t, 4.5, withRating.RatingOrZero())
	assert.Equal(t, 0.0, withoutRating.RatingOrZero())
}

func TestParseSortCriterion(t *testing.T) {
	t.Run("empty yields default", func(t *testing.T) {
		c, ok := ParseSortCriterion("")
		require.True(t, ok)
		assert.Equal(t, DefaultSort, c)
	})

	t.Run("known criteria", func(t *testing.T) {
		for _, s := range []string{"distance-asc", "rating-desc", "rating-asc", "name-asc", "name-desc"} {
			c, ok := ParseSortCriterion(s)
			require.True(t, ok, s)
			assert.Equal(t, SortCriterion(s), c)
		}
	})

	t.Run("unknown rejected", func(t *testing.T) {
		_, ok := ParseSortCriterion("price-asc")
		assert.False(t, ok)
	})
}

func TestIsKnownCategory(t *testing.T) {
	assert.True(t, IsKnownCategory("pets"))
	assert.True(t, IsKnownCategory("alimentacao"))
	assert.False(t, IsKnownCategory("hotelaria"))
}
