package keys

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangbaolong/gotron/types"
)

func testAddress(fill byte) Address {
	var a Address
	a[0] = AddressPrefix
	for i := 1; i < AddressLength; i++ {
		a[i] = fill
	}
	return a
}

func TestAddress_RoundTrip(t *testing.T) {
	addr := testAddress(0x5a)

	encoded := addr.String()
	require.NotEmpty(t, encoded)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, addr, decoded)
	assert.Equal(t, byte(AddressPrefix), decoded[0])
}

func TestAddress_DistinctAddressesDistinctStrings(t *testing.T) {
	a := testAddress(0x01)
	b := testAddress(0x02)
	assert.NotEqual(t, a.String(), b.String())
}

func TestDecode_CorruptedChecksum(t *testing.T) {
	encoded := testAddress(0x7f).String()

	// Swap two distinct characters: the payload changes but the appended
	// checksum does not follow, so validation must fail.
	runes := []byte(encoded)
	var i, j int
	for j = 1; j < len(runes); j++ {
		if runes[j] != runes[0] {
			i = 0
			break
		}
	}
	require.Less(t, j, len(runes))
	runes[i], runes[j] = runes[j], runes[i]

	_, err := Decode(string(runes))
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestDecode_NotBase58(t *testing.T) {
	// '0', 'O', 'I' and 'l' are outside the base58 alphabet.
	_, err := Decode("0OIl")
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestDecode_TooShort(t *testing.T) {
	_, err := Decode("")
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = Decode("1")
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestDecode_WrongPayloadLength(t *testing.T) {
	// A correctly checksummed payload of the wrong length must still be
	// rejected. Build one by hand: 10 payload bytes plus valid checksum.
	payload := make([]byte, 10)
	for i := range payload {
		payload[i] = byte(i + 1)
	}
	buf := append(append([]byte{}, payload...), checksum(payload)...)

	_, err := Decode(base58.Encode(buf))
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestFromBytes(t *testing.T) {
	raw := testAddress(0x33).Bytes()

	addr, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, addr.Bytes())

	_, err = FromBytes(raw[:20])
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = FromBytes(append(raw, 0x00))
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}
