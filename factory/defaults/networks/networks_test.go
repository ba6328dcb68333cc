package networks_test

import (
	"testing"
	"time"

	"github.com/openweb3-io/bankclient/factory/defaults/networks"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	require.Equal(t, "sepolia", networks.Default)
	require.Len(t, networks.Networks, 4)

	sepolia := networks.Networks["sepolia"]
	require.EqualValues(t, 11155111, sepolia.ChainID)
	require.EqualValues(t, 18, sepolia.Decimals)
	require.Equal(t, 3*time.Minute, sepolia.ConfirmationTimeout)

	local := networks.Networks["local"]
	require.Equal(t, "http://127.0.0.1:8545", local.URL)
	require.Equal(t, 250*time.Millisecond, local.ConfirmationPollInterval)

	for name, chain := range networks.Networks {
		require.Equal(t, name, chain.Network)
		require.NotEmpty(t, chain.URL, name)
		require.NotZero(t, chain.ChainID, name)
	}
}

func TestUnmarshal(t *testing.T) {
	doc, err := networks.Unmarshal([]byte(`
networks:
  devnet:
    url: http://10.0.0.1:8545
    decimals: 6
`))
	require.NoError(t, err)
	require.Equal(t, "devnet", doc.Networks["devnet"].Network)
	require.EqualValues(t, 6, doc.Networks["devnet"].Decimals)

	_, err = networks.Unmarshal([]byte("networks: [1, 2"))
	require.Error(t, err)
}
