package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetwork_Key(t *testing.T) {
	n := Network{Technology: "ethereum", Blockchain: "poa", Network: "core"}

	require.Equal(t, "ethereum/poa/core", n.Key())
	require.Equal(t, "Network(ethereum/poa/core)", n.String())
}

func TestNetwork_IconURL(t *testing.T) {
	require.Equal(t,
		"https://api.anyblock.tools/ethereum/ethereum/mainnet/icon",
		EthereumMainnet.IconURL(),
	)
}

func TestFind(t *testing.T) {
	n, ok := Find("ethereum/xdai/mainnet")
	require.True(t, ok)
	require.Equal(t, XDaiMainnet, n)

	_, ok = Find("ethereum/bitcoin/mainnet")
	require.False(t, ok)
}

func TestKnown(t *testing.T) {
	known := Known()
	require.NotEmpty(t, known)

	seen := map[string]bool{}
	for _, n := range known {
		assert.False(t, seen[n.Key()], "duplicate key %s", n.Key())
		seen[n.Key()] = true

		assert.NotEmpty(t, n.Title, "%s has no title", n.Key())
		if n.Role == RoleMainnet {
			assert.NotNil(t, n.Currency, "%s has no currency", n.Key())
		}
	}
}
