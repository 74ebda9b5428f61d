package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fleshka4/weighted-pool/internal/logging"
)

var Version = "v0.1.0"

func main() {
	logger, err := logging.New(os.Stderr, os.Getenv("LOG_LEVEL"))
	if err != nil {
		logger, _ = logging.New(os.Stderr, "info")
	}

	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("wpcalc failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "wpcalc"
	app.Version = Version
	app.Usage = "Offline weighted pool calculator"
	app.Description = "Quotes swaps, single-asset and proportional joins and exits of a weighted pool " +
		"from balances, weights and fees given on the command line. Amounts are integers in atomic " +
		"units, weights and fees are fractions written as n/d."
	app.Commands = []*cli.Command{
		SpotPriceCommand(),
		OutGivenInCommand(),
		InGivenOutCommand(),
		PoolOutGivenSingleInCommand(),
		SingleInGivenPoolOutCommand(),
		SingleOutGivenPoolInCommand(),
		PoolInGivenSingleOutCommand(),
		ProportionalDepositsCommand(),
		ProportionalWithdrawCommand(),
	}
	return app
}
