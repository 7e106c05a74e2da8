package cart

import (
	"testing"

	"github.com/farmbasket/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_SingleProducer(t *testing.T) {
	producerA := uuid.New()
	producerB := uuid.New()

	t.Run("empty cart is not single producer", func(t *testing.T) {
		assert.False(t, Cart{}.SingleProducer())
	})

	t.Run("one line is single producer", func(t *testing.T) {
		c := Cart{Lines: []Line{
			{ProductID: uuid.New(), Quantity: 1, ProducerID: producerA},
		}}
		assert.True(t, c.SingleProducer())
		assert.Equal(t, producerA, c.ProducerID())
	})

	t.Run("all lines same producer", func(t *testing.T) {
		c := Cart{Lines: []Line{
			{ProductID: uuid.New(), Quantity: 2, ProducerID: producerA},
			{ProductID: uuid.New(), Quantity: 1, ProducerID: producerA},
			{ProductID: uuid.New(), Quantity: 3, ProducerID: producerA},
		}}
		assert.True(t, c.SingleProducer())
	})

	t.Run("mixed producers", func(t *testing.T) {
		c := Cart{Lines: []Line{
			{ProductID: uuid.New(), Quantity: 2, ProducerID: producerA},
			{ProductID: uuid.New(), Quantity: 1, ProducerID: producerB},
		}}
		assert.False(t, c.SingleProducer())
		assert.Equal(t, uuid.Nil, c.ProducerID())
	})
}

func TestCart_Validate(t *testing.T) {
	producerA := uuid.New()

	t.Run("valid cart", func(t *testing.T) {
		c := Cart{Lines: []Line{
			{ProductID: uuid.New(), Quantity: 2, ProducerID: producerA},
			{ProductID: uuid.New(), Quantity: 1, ProducerID: producerA},
		}}
		assert.NoError(t, c.Validate())
	})

	t.Run("empty cart", func(t *testing.T) {
		err := Cart{}.Validate()
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMPTY_CART", domainErr.Code)
	})

	t.Run("zero quantity", func(t *testing.T) {
		c := Cart{Lines: []Line{
			{ProductID: uuid.New(), Quantity: 0, ProducerID: producerA},
		}}
		var domainErr *shared.DomainError
		require.ErrorAs(t, c.Validate(), &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("negative quantity", func(t *testing.T) {
		c := Cart{Lines: []Line{
			{ProductID: uuid.New(), Quantity: -1, ProducerID: producerA},
		}}
		assert.Error(t, c.Validate())
	})

	t.Run("missing product id", func(t *testing.T) {
		c := Cart{Lines: []Line{
			{ProductID: uuid.Nil, Quantity: 1, ProducerID: producerA},
		}}
		assert.Error(t, c.Validate())
	})

	t.Run("multi producer checked after quantities", func(t *testing.T) {
		c := Cart{Lines: []Line{
			{ProductID: uuid.New(), Quantity: 1, ProducerID: producerA},
			{ProductID: uuid.New(), Quantity: 1, ProducerID: uuid.New()},
		}}
		var domainErr *shared.DomainError
		require.ErrorAs(t, c.Validate(), &domainErr)
		assert.Equal(t, "MULTI_PRODUCER_CART", domainErr.Code)
	})
}

func TestCart_TotalQuantity(t *testing.T) {
	producerA := uuid.New()
	c := Cart{Lines: []Line{
		{ProductID: uuid.New(), Quantity: 2, ProducerID: producerA},
		{ProductID: uuid.New(), Quantity: 3, ProducerID: producerA},
	}}
	assert.Equal(t, int64(5), c.TotalQuantity())
	assert.Equal(t, int64(0), Cart{}.TotalQuantity())
}
