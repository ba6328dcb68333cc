package setup

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/openweb3-io/bankclient/bank"
	"github.com/openweb3-io/bankclient/blockchain/evm"
	evmwallet "github.com/openweb3-io/bankclient/blockchain/evm/wallet"
	"github.com/openweb3-io/bankclient/config"
	"github.com/openweb3-io/bankclient/factory"
	"github.com/openweb3-io/bankclient/signer"
	"github.com/openweb3-io/bankclient/types"
	"github.com/openweb3-io/bankclient/wallet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PromptAuthorizer asks on the terminal before exposing the account.
func PromptAuthorizer(ctx context.Context, account types.Address) (bool, error) {
	approve := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Connect account?").
				Description(fmt.Sprintf("%s will be able to sign bank transactions.", account)).
				Affirmative("Connect").
				Negative("Reject").
				Value(&approve),
		),
	).RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return approve, nil
}

// LoadSigner returns nil when no key is configured.
func LoadSigner(ctx context.Context, bankFactory *factory.Factory, chain *types.ChainConfig, cfg *config.Config) (signer.Signer, error) {
	var key string
	var err error
	switch {
	case cfg.Keystore != "":
		bankFactory.RegisterSigner(chain.Network, evm.KeystoreSignerCreator(cfg.Keystore))
		key, err = cfg.KeystorePassword.Load()
		if err != nil {
			return nil, errors.Wrap(err, "loading keystore password")
		}
	case cfg.PrivateKey.IsSet():
		key, err = cfg.PrivateKey.Load()
		if err != nil {
			return nil, errors.Wrap(err, "loading private key")
		}
	default:
		return nil, nil
	}
	return bankFactory.NewSigner(ctx, chain, key)
}

// LoadBank builds the bank client. Without a signer the client has no wallet
// provider and reports every call as provider unavailable.
func LoadBank(ctx context.Context, bankFactory *factory.Factory, chain *types.ChainConfig, cfg *config.Config) (*bank.Client, error) {
	s, err := LoadSigner(ctx, bankFactory, chain, cfg)
	if err != nil {
		return nil, err
	}

	var provider wallet.Provider
	if s != nil {
		authorize := evmwallet.Authorizer(PromptAuthorizer)
		if cfg.AutoApprove {
			authorize = evmwallet.AutoApprove
		}
		localWallet, err := bankFactory.NewWallet(chain, s, authorize, cfg.CallOptions()...)
		if err != nil {
			return nil, err
		}
		provider = localWallet
	} else {
		logrus.Warn("no private key or keystore configured, wallet provider unavailable")
	}

	contract := cfg.ContractConfig(chain)
	if _, err := bankFactory.NormalizeAddress(string(contract.Address)); err != nil {
		return nil, err
	}
	return bankFactory.NewBankClient(contract, provider), nil
}

// AccountBalance reads the native balance of account, used to show what the
// connected account can still deposit.
func AccountBalance(ctx context.Context, bankFactory *factory.Factory, chain *types.ChainConfig, account types.Address) (types.AmountHumanReadable, error) {
	client, err := bankFactory.NewClient(chain)
	if err != nil {
		return types.AmountHumanReadable{}, err
	}
	balance, err := client.FetchNativeBalance(ctx, account)
	if err != nil {
		return types.AmountHumanReadable{}, errors.Wrap(err, "fetching account balance")
	}
	return balance.ToHuman(chain.GetDecimals()), nil
}
