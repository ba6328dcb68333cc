package signer

import (
	"context"
	"fmt"
	"sync"
)

type Options struct {
	failoverSignerCreator SignerCreator
}

type Option func(*Options)

func WithFailoverSignerCreator(v SignerCreator) Option {
	return func(o *Options) {
		o.failoverSignerCreator = v
	}
}

// SignerCreator builds a signer from key material, typically a hex private
// key or an encrypted keystore.
type SignerCreator = func(ctx context.Context, key string) (Signer, error)

type signerProvider struct {
	opts       *Options
	mu         sync.RWMutex
	creatorMap map[string]SignerCreator
}

func NewSignerProvider(o ...Option) SignerProvider {
	opts := &Options{}

	for _, opt := range o {
		opt(opts)
	}

	return &signerProvider{
		opts:       opts,
		creatorMap: make(map[string]SignerCreator),
	}
}

func (p *signerProvider) Register(network string, creator SignerCreator) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.creatorMap[network] = creator
}

func (p *signerProvider) Provide(ctx context.Context, network, key string) (Signer, error) {
	p.mu.RLock()
	creator, ok := p.creatorMap[network]
	p.mu.RUnlock()
	if !ok {
		if p.opts.failoverSignerCreator == nil {
			return nil, fmt.Errorf("signer creator for network %s not found", network)
		}

		creator = p.opts.failoverSignerCreator
	}

	return creator(ctx, key)
}
