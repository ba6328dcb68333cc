// Package bank binds the ABI of the deployed bank contract.
package bank

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	xc "github.com/openweb3-io/bankclient/types"
	"golang.org/x/crypto/sha3"
)

const BankABI = `[
	{
		"inputs": [],
		"name": "getBalance",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"internalType": "uint256", "name": "amount", "type": "uint256"}],
		"name": "deposit",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	},
	{
		"inputs": [{"internalType": "uint256", "name": "amount", "type": "uint256"}],
		"name": "withdraw",
		"outputs": [],
		"stateMutability": "nonpayable",
		"type": "function"
	}
]`

const (
	MethodGetBalance = "getBalance"
	MethodDeposit    = "deposit"
	MethodWithdraw   = "withdraw"
)

var Bank abi.ABI

func init() {
	var err error
	Bank, err = abi.JSON(strings.NewReader(BankABI))
	if err != nil {
		panic(err)
	}
}

// MethodID is the 4 byte selector of a canonical signature like "deposit(uint256)".
func MethodID(signature string) []byte {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(signature))
	return hash.Sum(nil)[:4]
}

var (
	getBalanceID = MethodID("getBalance()")
	depositID    = MethodID("deposit(uint256)")
	withdrawID   = MethodID("withdraw(uint256)")
)

func PackGetBalance() ([]byte, error) {
	return Bank.Pack(MethodGetBalance)
}

// PackCall encodes deposit(amount) or withdraw(amount).
func PackCall(kind xc.OperationKind, amount xc.BigInt) ([]byte, error) {
	// the packer wraps out of range integers instead of failing
	if amount.Sign() < 0 || amount.Int().BitLen() > xc.MaxUint256Bits {
		return nil, xc.WrapErr(xc.ErrInvalidAmount, fmt.Errorf("%s is not a uint256", amount.String()))
	}
	switch kind {
	case xc.Deposit:
		return Bank.Pack(MethodDeposit, amount.Int())
	case xc.Withdraw:
		return Bank.Pack(MethodWithdraw, amount.Int())
	}
	return nil, fmt.Errorf("unsupported contract call: %q", kind)
}

func UnpackBalance(data []byte) (xc.BigInt, error) {
	if len(data) == 0 {
		// no code at the address, or the node dropped the return data
		return xc.BigInt{}, fmt.Errorf("empty response from %s", MethodGetBalance)
	}
	out, err := Bank.Unpack(MethodGetBalance, data)
	if err != nil {
		return xc.BigInt{}, err
	}
	balance := *abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	return xc.BigInt(balance), nil
}

// ParseCall decodes calldata produced by PackCall.
func ParseCall(data []byte) (xc.OperationKind, xc.BigInt, error) {
	if len(data) != 4+32 {
		return "", xc.BigInt{}, fmt.Errorf("payload is not deposit(uint256) or withdraw(uint256)")
	}
	var kind xc.OperationKind
	switch {
	case bytes.Equal(data[:4], depositID):
		kind = xc.Deposit
	case bytes.Equal(data[:4], withdrawID):
		kind = xc.Withdraw
	default:
		return "", xc.BigInt{}, fmt.Errorf("unknown method id %x", data[:4])
	}
	amount := new(big.Int).SetBytes(data[4:])
	return kind, xc.BigInt(*amount), nil
}

// IsGetBalance reports whether data is a getBalance() call.
func IsGetBalance(data []byte) bool {
	return len(data) == 4 && bytes.Equal(data, getBalanceID)
}
