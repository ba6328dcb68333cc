package types

// Address is an account address as the chain renders it (0x-prefixed hex for EVM).
type Address string

// ContractAddress is the address of a deployed contract.
type ContractAddress Address

// The bank contract the client talks to unless configured otherwise.
const DefaultContractAddress ContractAddress = "0x9D7f74d0C41E726EC95884E0e97Fa6129e3b5E99"
