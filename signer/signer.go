package signer

import (
	"context"

	"github.com/openweb3-io/bankclient/types"
)

type Signer interface {
	PublicKey(ctx context.Context) ([]byte, error)
	Sign(payload types.TxDataToSign) (types.TxSignature, error)
}
