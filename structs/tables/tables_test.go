package tables

import (
	"testing"

	"ollacart_server/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListCodec(t *testing.T) {
	t.Parallel()

	list := StringList{"user_1", "user_2"}
	value, err := list.Value()
	require.NoError(t, err)
	assert.Equal(t, `["user_1","user_2"]`, value)

	var scanned StringList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, list, scanned)

	var fromNil StringList
	require.NoError(t, fromNil.Scan(nil))
	assert.Empty(t, fromNil)

	emptyValue, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", emptyValue, "nil encodes as an empty array, never NULL")
}

func TestStringListHelpers(t *testing.T) {
	t.Parallel()

	list := StringList{"a", "b", "a"}
	assert.True(t, list.Contains("a"))
	assert.False(t, list.Contains("c"))
	assert.Equal(t, StringList{"b"}, list.Without("a"))
	assert.Equal(t, StringList{"a", "b", "a"}, list, "Without does not mutate the receiver")
}

func TestPhotoListCodec(t *testing.T) {
	t.Parallel()

	photos := PhotoList{{URL: "https://cdn.example.com/a.jpg", Small: "https://cdn.example.com/a_s.jpg"}}
	value, err := photos.Value()
	require.NoError(t, err)

	var scanned PhotoList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, photos, scanned)
}

func TestPrimaryPhoto(t *testing.T) {
	t.Parallel()

	p := Product{PhotoURL: "u", PhotoSmall: "s", PhotoNormal: "n"}
	assert.Equal(t, structs.Photo{URL: "u", Small: "s", Normal: "n"}, p.PrimaryPhoto())
}

func TestCartTypeValid(t *testing.T) {
	t.Parallel()

	assert.True(t, CartShopping.Valid())
	assert.True(t, CartShare.Valid())
	assert.True(t, CartSale.Valid())
	assert.False(t, CartType("wishlist").Valid())
	assert.False(t, CartType("").Valid())
}

func TestPaymentStatusTransitions(t *testing.T) {
	t.Parallel()

	assert.True(t, PaymentPending.CanTransitionTo(PaymentSucceeded))
	assert.True(t, PaymentPending.CanTransitionTo(PaymentFailed))
	assert.True(t, PaymentPending.CanTransitionTo(PaymentCanceled))

	for _, terminal := range []PaymentStatus{PaymentSucceeded, PaymentFailed, PaymentCanceled} {
		assert.False(t, terminal.CanTransitionTo(PaymentPending), "%s is terminal", terminal)
		assert.False(t, terminal.CanTransitionTo(PaymentSucceeded))
	}

	assert.False(t, PaymentStatus("bogus").CanTransitionTo(PaymentSucceeded))
}
