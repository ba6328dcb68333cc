package networks

import (
	_ "embed"

	xc "github.com/openweb3-io/bankclient/types"
	"gopkg.in/yaml.v3"
)

type Document struct {
	Network  string                     `yaml:"network"`
	Networks map[string]*xc.ChainConfig `yaml:"networks"`
}

func init() {
	doc, err := Unmarshal(networksData)
	if err != nil {
		panic(err)
	}
	Default = doc.Network
	Networks = doc.Networks
}

// Unmarshal parses a networks document; a network without a name is named
// after its key.
func Unmarshal(data []byte) (*Document, error) {
	doc := &Document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, err
	}
	for name, chain := range doc.Networks {
		if chain.Network == "" {
			chain.Network = name
		}
		if chain.Decimals == 0 {
			chain.Decimals = xc.DefaultDecimals
		}
	}
	return doc, nil
}

//go:embed networks.yaml
var networksData []byte

var Default string
var Networks map[string]*xc.ChainConfig
