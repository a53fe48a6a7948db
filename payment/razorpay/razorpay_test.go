package razorpay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClientCreatesLocalOrders(t *testing.T) {
	client := New("rzp_test_key", "")
	require.False(t, client.Live())

	order, err := client.CreateOrder(250, "INR", "ORD-1", map[string]string{"orderId": "ORD-1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "order_"))
	assert.Equal(t, "order", order.Entity)
	assert.Equal(t, int64(25000), order.Amount)
	assert.Equal(t, int64(25000), order.AmountDue)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "ORD-1", order.Receipt)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderRoundsToWholePaise(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{19.99, 1999},
		{79.99, 7999},
		{299.99, 29999},
		{0.01, 1},
		{100, 10000},
		{499.50, 49950},
	}

	client := New("rzp_test_key", "")
	for _, tt := range tests {
		order, err := client.CreateOrder(tt.amount, "INR", "ORD-r", nil)
		require.NoError(t, err)
		assert.Equalf(t, tt.want, order.Amount, "amount for %v INR", tt.amount)
	}
}

func TestMockClientDefaultsCurrency(t *testing.T) {
	client := New("rzp_test_key", "")
	order, err := client.CreateOrder(10, "", "ORD-2", nil)
	require.NoError(t, err)
	assert.Equal(t, "INR", order.Currency)
}

func TestMockVerifyAlwaysPasses(t *testing.T) {
	client := New("rzp_test_key", "")

	v, err := client.Verify("order_abc", "pay_abc", "whatever")
	require.NoError(t, err)
	assert.True(t, v.Verified)
	assert.Equal(t, "captured", v.Status)
	assert.Equal(t, "mock", v.Mode)
	assert.Equal(t, "pay_abc", v.PaymentID)
	assert.Equal(t, "order_abc", v.OrderID)
}

func TestVerifyRejectsMissingFields(t *testing.T) {
	client := New("rzp_test_key", "")

	_, err := client.Verify("", "pay_abc", "sig")
	assert.Error(t, err)
	_, err = client.Verify("order_abc", "", "sig")
	assert.Error(t, err)
	_, err = client.Verify("order_abc", "pay_abc", "")
	assert.Error(t, err)
}

func TestLiveSignatureVerification(t *testing.T) {
	client := New("rzp_live_key", "super-secret")
	require.True(t, client.Live())

	sig := client.Signature("order_abc", "pay_abc")
	assert.True(t, client.VerifySignature("order_abc", "pay_abc", sig))
	assert.False(t, client.VerifySignature("order_abc", "pay_abc", sig+"00"))
	assert.False(t, client.VerifySignature("order_other", "pay_abc", sig))

	other := New("rzp_live_key", "different-secret")
	assert.False(t, other.VerifySignature("order_abc", "pay_abc", sig))
}

func TestLiveVerifyChecksSignature(t *testing.T) {
	client := New("rzp_live_key", "super-secret")

	good, err := client.Verify("order_abc", "pay_abc", client.Signature("order_abc", "pay_abc"))
	require.NoError(t, err)
	assert.True(t, good.Verified)
	assert.Equal(t, "captured", good.Status)
	assert.Equal(t, "live", good.Mode)

	bad, err := client.Verify("order_abc", "pay_abc", "forged")
	require.NoError(t, err)
	assert.False(t, bad.Verified)
	assert.Equal(t, "failed", bad.Status)
	assert.Equal(t, "live", bad.Mode)
}
