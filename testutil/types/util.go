package testutil

import (
	"fmt"

	xc_types "github.com/openweb3-io/bankclient/types"
)

// Uint256Hex renders units the way eth_call returns a single uint256.
func Uint256Hex(units xc_types.BigInt) string {
	return fmt.Sprintf(`"0x%064x"`, units.Int())
}

// Uint256Bytes is the ABI encoding of a single uint256.
func Uint256Bytes(units xc_types.BigInt) []byte {
	bz := make([]byte, 32)
	units.Int().FillBytes(bz)
	return bz
}
