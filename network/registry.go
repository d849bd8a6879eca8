package network

import "github.com/CaronSch/ethdenver-bufficornanalytics/currency"

// Networks indexed by the AnyBlock API.
var (
	EthereumMainnet = Network{
		Technology: "ethereum",
		Blockchain: "ethereum",
		Network:    "mainnet",
		Role:       RoleMainnet,
		Title:      "Ethereum Mainnet",
		Currency:   &currency.ETH,
	}

	EthereumGoerli = Network{
		Technology: "ethereum",
		Blockchain: "ethereum",
		Network:    "goerli",
		Role:       RoleTestnet,
		Title:      "Ethereum Goerli Testnet",
	}

	XDaiMainnet = Network{
		Technology: "ethereum",
		Blockchain: "xdai",
		Network:    "mainnet",
		Role:       RoleMainnet,
		Title:      "Gnosis Chain (xDai)",
		Currency:   &currency.DAI,
	}

	EnergyWebMainnet = Network{
		Technology: "ethereum",
		Blockchain: "ewc",
		Network:    "mainnet",
		Role:       RoleMainnet,
		Title:      "Energy Web Chain",
		Currency:   &currency.EWT,
	}

	POACore = Network{
		Technology: "ethereum",
		Blockchain: "poa",
		Network:    "core",
		Role:       RoleMainnet,
		Title:      "POA Network Core",
		Currency:   &currency.POA,
	}

	EllaismMainnet = Network{
		Technology: "ethereum",
		Blockchain: "ellaism",
		Network:    "mainnet",
		Role:       RoleMainnet,
		Title:      "Ellaism",
		Currency:   &currency.ELLA,
	}
)

// Known returns all registered networks in display order.
func Known() []Network {
	return []Network{
		EthereumMainnet,
		EthereumGoerli,
		XDaiMainnet,
		EnergyWebMainnet,
		POACore,
		EllaismMainnet,
	}
}

// Find looks a registered network up by its key.
func Find(key string) (Network, bool) {
	for _, n := range Known() {
		if n.Key() == key {
			return n, true
		}
	}

	return Network{}, false
}
