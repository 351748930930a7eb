package order_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MiniOrders/internal/order"
	"MiniOrders/pkg/kit"
)

func TestError_Projection(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		err := order.ErrNotFound()

		assert.Equal(t, http.StatusNotFound, err.StatusCode())
		assert.Equal(t, kit.ErrorResponse{Message: "Order not found"}, err.Body())
		assert.Equal(t, "Order not found", err.Error())
	})

	t.Run("bad request", func(t *testing.T) {
		err := order.BadRequest("invalid id")

		assert.Equal(t, http.StatusBadRequest, err.StatusCode())
		assert.Equal(t, kit.ErrorResponse{Message: "Invalid input: invalid id"}, err.Body())
		assert.Equal(t, "Invalid input: invalid id", err.Error())
	})

	t.Run("validation", func(t *testing.T) {
		fields := order.FieldErrors{}
		fields.Add("customer", "customer name must not be empty")
		err := order.Validation(fields)

		assert.Equal(t, http.StatusBadRequest, err.StatusCode())
		assert.Equal(t, "Validation failed", err.Body().Message)
		assert.Equal(t,
			map[string][]string{"customer": {"customer name must not be empty"}},
			err.Body().Details)
	})

	t.Run("internal hides its cause", func(t *testing.T) {
		cause := errors.New("disk on fire")
		err := order.Internal(cause)

		assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
		assert.Equal(t, kit.ErrorResponse{Message: "Internal server error"}, err.Body())
		assert.Contains(t, err.Error(), "disk on fire")
		require.ErrorIs(t, err, cause)
	})
}

func TestError_Sentinels(t *testing.T) {
	require.ErrorIs(t, order.ErrNotFound(), order.ErrOrderNotFound)
	require.ErrorIs(t, order.BadRequest("x"), order.ErrBadRequest)
	require.ErrorIs(t, order.Validation(order.FieldErrors{}), order.ErrValidation)
	require.ErrorIs(t, order.Internal(nil), order.ErrInternal)

	assert.NotErrorIs(t, order.ErrNotFound(), order.ErrBadRequest)
}

func TestAsError(t *testing.T) {
	nf := order.ErrNotFound()
	assert.Same(t, nf, order.AsError(nf))

	plain := errors.New("boom")
	got := order.AsError(plain)
	assert.Equal(t, order.KindInternal, got.Kind)
	require.ErrorIs(t, got, plain)
}

func TestFieldErrors_AddKeepsOrder(t *testing.T) {
	fe := order.FieldErrors{}
	fe.Add("items", "first")
	fe.Add("items", "second")

	assert.Equal(t, []string{"first", "second"}, fe["items"])
}
