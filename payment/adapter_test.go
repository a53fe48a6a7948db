package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premstore/storefront-api/payment/razorpay"
)

func mockClient() *razorpay.Client {
	return razorpay.New("rzp_test_key", "")
}

func TestAdapterHappyPath(t *testing.T) {
	adapter := NewAdapter(mockClient())
	assert.Equal(t, StatusIdle, adapter.Status())

	order, err := adapter.Begin(499.50, "ORD-1", map[string]string{"orderId": "ORD-1"})
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, adapter.Status())

	result, err := adapter.Complete(WidgetResponse{
		OrderID:   order.ID,
		PaymentID: "pay_test_1",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, adapter.Status())

	assert.True(t, result.Success)
	assert.Equal(t, "pay_test_1", result.PaymentID)
	assert.Equal(t, order.ID, result.OrderID)
	assert.Equal(t, 499.50, result.Amount)
	assert.Equal(t, "Razorpay", result.Method)
	assert.Equal(t, "mock", result.Details["mode"])

	// A settled payment cannot be restarted.
	_, err = adapter.Begin(10, "ORD-1", nil)
	assert.ErrorIs(t, err, ErrDone)
}

func TestAdapterCompleteRequiresProcessing(t *testing.T) {
	adapter := NewAdapter(mockClient())
	_, err := adapter.Complete(WidgetResponse{OrderID: "o", PaymentID: "p", Signature: "s"})
	assert.ErrorIs(t, err, ErrNotProcessing)
}

func TestAdapterCancelAllowsRetry(t *testing.T) {
	adapter := NewAdapter(mockClient())

	assert.ErrorIs(t, adapter.Cancel(), ErrNotProcessing)

	_, err := adapter.Begin(100, "ORD-2", nil)
	require.NoError(t, err)
	require.NoError(t, adapter.Cancel())
	assert.Equal(t, StatusFailed, adapter.Status())
	assert.Equal(t, CancelledByUser, adapter.LastError())

	// Dismissal is a failure, not a terminal state.
	_, err = adapter.Begin(100, "ORD-2", nil)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, adapter.Status())
	assert.Empty(t, adapter.LastError())
}

func TestAdapterRejectsDoubleBegin(t *testing.T) {
	adapter := NewAdapter(mockClient())
	_, err := adapter.Begin(100, "ORD-3", nil)
	require.NoError(t, err)
	_, err = adapter.Begin(100, "ORD-3", nil)
	assert.Error(t, err)
}

func TestRegistryTracksAdaptersByProviderOrder(t *testing.T) {
	registry := NewRegistry(mockClient())

	order, err := registry.Begin(250, "ORD-4", nil)
	require.NoError(t, err)

	adapter, ok := registry.Lookup(order.ID)
	require.True(t, ok)
	assert.Equal(t, StatusProcessing, adapter.Status())

	result, err := registry.Complete(WidgetResponse{OrderID: order.ID, PaymentID: "pay_4", Signature: "sig"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 250.0, result.Amount)
	assert.Equal(t, StatusSuccess, adapter.Status())

	// Settled attempts leave the registry.
	_, ok = registry.Lookup(order.ID)
	assert.False(t, ok)
}

func TestRegistryCancelDropsAttempt(t *testing.T) {
	registry := NewRegistry(mockClient())

	assert.ErrorIs(t, registry.Cancel("order_unknown"), ErrUnknownOrder)

	order, err := registry.Begin(100, "ORD-5", nil)
	require.NoError(t, err)
	require.NoError(t, registry.Cancel(order.ID))

	_, ok := registry.Lookup(order.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, registry.Cancel(order.ID), ErrUnknownOrder)
}

func TestRegistryVerifiesUnknownOrdersStatelessly(t *testing.T) {
	registry := NewRegistry(mockClient())

	result, err := registry.Complete(WidgetResponse{OrderID: "order_before_restart", PaymentID: "pay_5", Signature: "sig"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Zero(t, result.Amount)
}

func TestRegistryRejectsForgedCallbackInLiveMode(t *testing.T) {
	live := razorpay.New("rzp_live_key", "super-secret")
	registry := NewRegistry(live)

	_, err := registry.Complete(WidgetResponse{OrderID: "order_x", PaymentID: "pay_x", Signature: "forged"})
	assert.EqualError(t, err, "payment verification failed")

	result, err := registry.Complete(WidgetResponse{
		OrderID:   "order_x",
		PaymentID: "pay_x",
		Signature: live.Signature("order_x", "pay_x"),
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "live", result.Details["mode"])
}
