package address_test

import (
	"errors"
	"testing"

	"github.com/openweb3-io/bankclient/blockchain/evm/address"
	xc "github.com/openweb3-io/bankclient/types"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	addr, err := address.FromHex(xc.DefaultContractAddress)
	require.NoError(t, err)
	require.Equal(t, "0x9D7f74d0C41E726EC95884E0e97Fa6129e3b5E99", addr.Hex())

	addr, err = address.FromHex("9d7f74d0c41e726ec95884e0e97fa6129e3b5e99")
	require.NoError(t, err)
	require.Equal(t, xc.Address("0x9D7f74d0C41E726EC95884E0e97Fa6129e3b5E99"), address.Checksum(addr))
}

func TestFromHexInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"0x1234",
		"not an address",
		// checksum broken by lowering one letter
		"0x9d7f74d0C41E726EC95884E0e97Fa6129e3b5E99",
	} {
		_, err := address.FromHex(input)
		require.Error(t, err, input)
		require.True(t, errors.Is(err, xc.ErrInvalidAddress), input)
	}
}
