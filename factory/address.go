package factory

import (
	"github.com/openweb3-io/bankclient/blockchain/evm/address"
	"github.com/openweb3-io/bankclient/types"
)

// NormalizeAddress validates an address and returns its checksummed form
func (f *Factory) NormalizeAddress(addressStr string) (types.Address, error) {
	addr, err := address.FromHex(addressStr)
	if err != nil {
		return "", err
	}
	return address.Checksum(addr), nil
}

// MustAddress coverts a string to Address, panic if error
func (f *Factory) MustAddress(addressStr string) types.Address {
	addr, err := f.NormalizeAddress(addressStr)
	if err != nil {
		panic(err)
	}
	return addr
}
