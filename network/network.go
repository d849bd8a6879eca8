package network

import (
	"fmt"

	"github.com/CaronSch/ethdenver-bufficornanalytics/currency"
)

// apiRoot is the public (unauthenticated) root of the AnyBlock API, used for
// auxiliary resources such as network icons.
const apiRoot = "https://api.anyblock.tools"

// Role tells mainnets and testnets apart.
type Role string

const (
	RoleMainnet Role = "MAINNET"
	RoleTestnet Role = "TESTNET"
)

// Network identifies one blockchain network served by the AnyBlock analytics
// API. Technology is the platform family, Blockchain the chain within that
// family and Network the named deployment; the three together route to a
// distinct search endpoint.
type Network struct {
	Technology string
	Blockchain string
	Network    string
	Role       Role
	Title      string
	Currency   *currency.Currency
}

// Key returns the unique per-network key used for endpoint routing and
// client caching. Two descriptors share a key only if they name the same
// network target.
func (n Network) Key() string {
	return fmt.Sprintf("%s/%s/%s", n.Technology, n.Blockchain, n.Network)
}

// IconURL returns the public icon endpoint for the network.
func (n Network) IconURL() string {
	return fmt.Sprintf("%s/%s/%s/%s/icon", apiRoot, n.Technology, n.Blockchain, n.Network)
}

func (n Network) String() string {
	return fmt.Sprintf("Network(%s)", n.Key())
}
