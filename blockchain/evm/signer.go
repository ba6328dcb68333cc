package evm

import (
	"context"
	"crypto/ecdsa"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/openweb3-io/bankclient/signer"
	xc "github.com/openweb3-io/bankclient/types"
	"github.com/pkg/errors"
)

type LocalSigner struct {
	key *ecdsa.PrivateKey
}

var _ signer.Signer = &LocalSigner{}

func NewLocalSigner(key *ecdsa.PrivateKey) *LocalSigner {
	return &LocalSigner{key}
}

// NewLocalSignerFromHex loads a secp256k1 key from hex, with or without 0x.
func NewLocalSignerFromHex(keyHex string) (*LocalSigner, error) {
	keyHex = strings.TrimSpace(keyHex)
	keyHex = strings.TrimPrefix(strings.TrimPrefix(keyHex, "0x"), "0X")
	key, err := crypto.HexToECDSA(keyHex)
	if err != nil {
		return nil, errors.Wrap(err, "invalid private key")
	}
	return NewLocalSigner(key), nil
}

// NewLocalSignerFromKeystore decrypts a geth keystore (V3) JSON file.
func NewLocalSignerFromKeystore(path string, passphrase string) (*LocalSigner, error) {
	keyJson, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keystore %s", path)
	}
	key, err := keystore.DecryptKey(keyJson, passphrase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt keystore")
	}
	return NewLocalSigner(key.PrivateKey), nil
}

func (s *LocalSigner) PublicKey(ctx context.Context) ([]byte, error) {
	pubkey := s.key.Public().(*ecdsa.PublicKey)
	return crypto.FromECDSAPub(pubkey), nil
}

func (s *LocalSigner) Address() xc.Address {
	return xc.Address(crypto.PubkeyToAddress(s.key.PublicKey).Hex())
}

func (s *LocalSigner) Sign(payload xc.TxDataToSign) (xc.TxSignature, error) {
	return crypto.Sign(payload, s.key)
}

// AddressFromPublicKey derives the account of an uncompressed secp256k1 public key.
func AddressFromPublicKey(publicKey []byte) (xc.Address, error) {
	pub, err := crypto.UnmarshalPubkey(publicKey)
	if err != nil {
		return "", errors.Wrap(err, "invalid public key")
	}
	return xc.Address(crypto.PubkeyToAddress(*pub).Hex()), nil
}

// HexSignerCreator builds signers from hex private keys.
func HexSignerCreator(ctx context.Context, key string) (signer.Signer, error) {
	return NewLocalSignerFromHex(key)
}

// KeystoreSignerCreator builds signers from a keystore file and its passphrase.
func KeystoreSignerCreator(path string) signer.SignerCreator {
	return func(ctx context.Context, passphrase string) (signer.Signer, error) {
		return NewLocalSignerFromKeystore(path, passphrase)
	}
}
