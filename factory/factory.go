package factory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/openweb3-io/bankclient/bank"
	"github.com/openweb3-io/bankclient/blockchain/evm"
	evmbuilder "github.com/openweb3-io/bankclient/blockchain/evm/builder"
	evmclient "github.com/openweb3-io/bankclient/blockchain/evm/client"
	evmwallet "github.com/openweb3-io/bankclient/blockchain/evm/wallet"
	xcbuilder "github.com/openweb3-io/bankclient/builder"
	"github.com/openweb3-io/bankclient/factory/defaults/networks"
	"github.com/openweb3-io/bankclient/signer"
	xc "github.com/openweb3-io/bankclient/types"
	"github.com/openweb3-io/bankclient/wallet"
)

type IFactory interface {
	GetNetwork(name string) (*xc.ChainConfig, error)
	NewClient(chain *xc.ChainConfig) (*evmclient.Client, error)
	NewTxBuilder(chain *xc.ChainConfig) (evmbuilder.TxBuilder, error)
	NewSigner(ctx context.Context, chain *xc.ChainConfig, key string) (signer.Signer, error)
	NewWallet(chain *xc.ChainConfig, s signer.Signer, authorize evmwallet.Authorizer, options ...xcbuilder.BuilderOption) (*evmwallet.LocalWallet, error)
	NewBankClient(contract *xc.ContractConfig, provider wallet.Provider) *bank.Client
}

type Factory struct {
	Networks map[string]*xc.ChainConfig
	signers  signer.SignerProvider
}

var _ IFactory = &Factory{}

func NewFactory(nets map[string]*xc.ChainConfig) *Factory {
	return &Factory{
		Networks: nets,
		// every network is EVM, unknown ones fall back to hex keys
		signers: signer.NewSignerProvider(signer.WithFailoverSignerCreator(evm.HexSignerCreator)),
	}
}

// NewDefaultFactory knows the embedded networks.
func NewDefaultFactory() *Factory {
	return NewFactory(networks.Networks)
}

func (f *Factory) GetNetwork(name string) (*xc.ChainConfig, error) {
	chain, ok := f.Networks[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown network %q, expected one of %s", name, strings.Join(f.NetworkNames(), ", "))
	}
	copied := *chain
	return &copied, nil
}

func (f *Factory) NetworkNames() []string {
	names := make([]string, 0, len(f.Networks))
	for name := range f.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (f *Factory) NewClient(chain *xc.ChainConfig) (*evmclient.Client, error) {
	if chain.URL == "" {
		return nil, fmt.Errorf("no rpc url configured for %s", chain.Network)
	}
	return evmclient.NewClient(chain)
}

func (f *Factory) NewTxBuilder(chain *xc.ChainConfig) (evmbuilder.TxBuilder, error) {
	return evmbuilder.NewTxBuilder(chain)
}

// RegisterSigner overrides how keys are turned into signers on a network.
func (f *Factory) RegisterSigner(network string, creator signer.SignerCreator) {
	f.signers.Register(network, creator)
}

func (f *Factory) NewSigner(ctx context.Context, chain *xc.ChainConfig, key string) (signer.Signer, error) {
	return f.signers.Provide(ctx, chain.Network, key)
}

func (f *Factory) NewWallet(chain *xc.ChainConfig, s signer.Signer, authorize evmwallet.Authorizer, options ...xcbuilder.BuilderOption) (*evmwallet.LocalWallet, error) {
	client, err := f.NewClient(chain)
	if err != nil {
		return nil, err
	}
	txBuilder, err := f.NewTxBuilder(chain)
	if err != nil {
		return nil, err
	}
	return evmwallet.NewLocalWallet(client, txBuilder, s, authorize, options...), nil
}

func (f *Factory) NewBankClient(contract *xc.ContractConfig, provider wallet.Provider) *bank.Client {
	return bank.NewClient(provider,
		bank.WithContract(contract.GetContract()),
		bank.WithDecimals(contract.GetDecimals()),
	)
}
