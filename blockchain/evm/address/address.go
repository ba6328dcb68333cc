package address

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	xc "github.com/openweb3-io/bankclient/types"
)

// FromHex parses a 0x-prefixed (or bare) hex address. Mixed case input must
// carry a valid EIP-55 checksum.
func FromHex[T ~string](address T) (common.Address, error) {
	str := strings.TrimSpace(string(address))
	if !strings.HasPrefix(str, "0x") && !strings.HasPrefix(str, "0X") {
		str = "0x" + str
	}
	if !common.IsHexAddress(str) {
		return common.Address{}, xc.WrapErr(xc.ErrInvalidAddress, fmt.Errorf("%s is not a valid address", address))
	}
	mixed, err := common.NewMixedcaseAddressFromString(str)
	if err != nil {
		return common.Address{}, xc.WrapErr(xc.ErrInvalidAddress, err)
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(str, "0x"), "0X")
	if hex != strings.ToLower(hex) && hex != strings.ToUpper(hex) && !mixed.ValidChecksum() {
		return common.Address{}, xc.WrapErr(xc.ErrInvalidAddress, fmt.Errorf("%s has an invalid checksum", address))
	}
	return mixed.Address(), nil
}

// Checksum returns the EIP-55 form of a valid address.
func Checksum(addr common.Address) xc.Address {
	return xc.Address(addr.Hex())
}
