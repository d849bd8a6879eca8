package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	bufficorn "github.com/CaronSch/ethdenver-bufficornanalytics"
	"github.com/CaronSch/ethdenver-bufficornanalytics/anyblock"
	"github.com/CaronSch/ethdenver-bufficornanalytics/config"
	"github.com/CaronSch/ethdenver-bufficornanalytics/log"
	"github.com/CaronSch/ethdenver-bufficornanalytics/network"
)

const appName = "bufficorn-analytics"

const pingTimeout = 10 * time.Second

var (
	configFileFlag = cli.StringFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration `FILE`",
		Required: false,
	}
	apiKeyFlag = cli.StringFlag{
		Name:     "api-key",
		Aliases:  []string{"k"},
		Usage:    "AnyBlock API `KEY` (overrides the configured one)",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = bufficorn.Version
	app.Usage = "explore the AnyBlock analytics endpoints used by the bufficorn workshop"
	app.Commands = []*cli.Command{
		{
			Name:   "networks",
			Usage:  "List the known AnyBlock networks",
			Action: listNetworks,
			Flags:  []cli.Flag{&configFileFlag},
		},
		{
			Name:      "endpoint",
			Usage:     "Print the Elasticsearch endpoint URL for a network",
			ArgsUsage: "NETWORK-KEY",
			Action:    showEndpoint,
			Flags:     []cli.Flag{&configFileFlag, &apiKeyFlag},
		},
		{
			Name:      "ping",
			Usage:     "Check connectivity against a network's endpoint",
			ArgsUsage: "NETWORK-KEY",
			Action:    pingNetwork,
			Flags:     []cli.Flag{&configFileFlag, &apiKeyFlag},
		},
		{
			Name:   "contracts",
			Usage:  "Print the workshop contract addresses",
			Action: showContracts,
			Flags:  []cli.Flag{&configFileFlag},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// setup loads the configuration, initializes logging and builds the client
// factory.
func setup(cliCtx *cli.Context) (*config.Config, *anyblock.Factory, error) {
	c, err := config.Load(cliCtx)
	if err != nil {
		return nil, nil, err
	}

	if err := log.Init(c.Log); err != nil {
		return nil, nil, err
	}

	apiKey := c.AnyBlock.APIKey
	if flagKey := cliCtx.String(apiKeyFlag.Name); flagKey != "" {
		apiKey = flagKey
	}

	return c, anyblock.NewFactory(apiKey), nil
}

// resolveNetwork maps the command argument onto a registered network.
func resolveNetwork(cliCtx *cli.Context) (network.Network, error) {
	key := cliCtx.Args().First()
	if key == "" {
		return network.Network{}, fmt.Errorf("missing NETWORK-KEY argument, e.g. %q", network.EthereumMainnet.Key())
	}

	n, ok := network.Find(key)
	if !ok {
		return network.Network{}, fmt.Errorf("unknown network %q, run '%s networks' for the known keys", key, appName)
	}

	return n, nil
}

func listNetworks(cliCtx *cli.Context) error {
	if _, _, err := setup(cliCtx); err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintFunc()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", bold("KEY"), bold("TITLE"), bold("ROLE"), bold("CURRENCY"))
	for _, n := range network.Known() {
		currencyCode := "-"
		if n.Currency != nil {
			currencyCode = n.Currency.Code
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.Key(), n.Title, n.Role, currencyCode)
	}

	return w.Flush()
}

func showEndpoint(cliCtx *cli.Context) error {
	_, factory, err := setup(cliCtx)
	if err != nil {
		return err
	}

	n, err := resolveNetwork(cliCtx)
	if err != nil {
		return err
	}

	fmt.Println(factory.Endpoint(n))

	return nil
}

func pingNetwork(cliCtx *cli.Context) error {
	_, factory, err := setup(cliCtx)
	if err != nil {
		return err
	}

	n, err := resolveNetwork(cliCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cliCtx.Context, pingTimeout)
	defer cancel()

	result, err := factory.Ping(ctx, n)
	if err != nil {
		return err
	}

	log.Infof("%s is reachable: cluster %s, version %s", n.Key(), result.ClusterName, result.Version.Number)

	return nil
}

func showContracts(cliCtx *cli.Context) error {
	c, _, err := setup(cliCtx)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintFunc()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", bold("CONTRACT"), bold("ADDRESS"))
	fmt.Fprintf(w, "%s\t%s\n", "NFT (Bufficorn Buidl Brigade)", c.Workshop.NFTContract.Hex())
	fmt.Fprintf(w, "%s\t%s\n", "POAP", c.Workshop.POAPContract.Hex())

	return w.Flush()
}
