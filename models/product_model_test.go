package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProduct_AddReview(t *testing.T) {
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	carol := primitive.NewObjectID()

	t.Run("ComputesTwoDecimalMean", func(t *testing.T) {
		p := Product{}
		require.NoError(t, p.AddReview(Review{User: alice, Rating: 4}))
		require.NoError(t, p.AddReview(Review{User: bob, Rating: 5}))

		assert.Equal(t, 2, p.NumReviews)
		assert.Equal(t, 4.5, p.Rating)

		require.NoError(t, p.AddReview(Review{User: carol, Rating: 3}))
		assert.Equal(t, 3, p.NumReviews)
		assert.Equal(t, 4.0, p.Rating)
	})

	t.Run("RoundsToTwoDecimals", func(t *testing.T) {
		p := Product{}
		require.NoError(t, p.AddReview(Review{User: alice, Rating: 5}))
		require.NoError(t, p.AddReview(Review{User: bob, Rating: 5}))
		require.NoError(t, p.AddReview(Review{User: carol, Rating: 4}))

		// 14/3 = 4.666... -> 4.67
		assert.Equal(t, 4.67, p.Rating)
	})

	t.Run("RejectsSecondReviewBySameUser", func(t *testing.T) {
		p := Product{}
		require.NoError(t, p.AddReview(Review{User: alice, Rating: 4}))

		err := p.AddReview(Review{User: alice, Rating: 1})
		assert.ErrorIs(t, err, ErrAlreadyReviewed)

		// the failed call must not change the derived fields
		assert.Equal(t, 1, p.NumReviews)
		assert.Equal(t, 4.0, p.Rating)
	})
}

func TestProductPatch_Apply(t *testing.T) {
	base := func() Product {
		return Product{Name: "widget", Description: "a widget", Price: 9.99, Stock: 5, Category: "tools"}
	}

	t.Run("AbsentFieldsKeepValues", func(t *testing.T) {
		p := base()
		name := "gadget"
		ProductPatch{Name: &name}.Apply(&p)

		assert.Equal(t, "gadget", p.Name)
		assert.Equal(t, 9.99, p.Price)
		assert.Equal(t, 5, p.Stock)
		assert.Equal(t, "tools", p.Category)
	})

	t.Run("ProvidedZeroValuesAreApplied", func(t *testing.T) {
		p := base()
		price := 0.0
		stock := 0
		ProductPatch{Price: &price, Stock: &stock}.Apply(&p)

		assert.Equal(t, 0.0, p.Price)
		assert.Equal(t, 0, p.Stock)
	})
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, int64(2), PageCount(15, 10))
	assert.Equal(t, int64(1), PageCount(10, 10))
	assert.Equal(t, int64(0), PageCount(0, 10))
	assert.Equal(t, int64(5), PageCount(5, 1))
	assert.Equal(t, int64(0), PageCount(5, 0))
}
