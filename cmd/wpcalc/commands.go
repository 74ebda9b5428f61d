package main

import (
	"fmt"
	"math/big"

	"github.com/urfave/cli/v2"

	"github.com/fleshka4/weighted-pool/internal/fraction"
	"github.com/fleshka4/weighted-pool/internal/weightedmath"
)

func amountArg(name, usage string) cli.Flag {
	return &cli.StringFlag{Name: name, Usage: usage + " (integer, atomic units)", Required: true}
}

func fractionArg(name, usage string) cli.Flag {
	return &cli.StringFlag{Name: name, Usage: usage + " (n/d)", Required: true}
}

func feeArg(name, usage string) cli.Flag {
	return &cli.StringFlag{Name: name, Usage: usage + " (n/d)", Value: "0"}
}

func tokensArg() cli.Flag {
	return &cli.StringSliceFlag{Name: "token", Usage: "pool token as id:balance, repeat for every token", Required: true}
}

// flagReader parses flags until the first error, which it keeps.
type flagReader struct {
	c   *cli.Context
	err error
}

func (r *flagReader) amount(name string) *big.Int {
	if r.err != nil {
		return nil
	}
	v, err := amountFlag(r.c, name)
	r.err = err
	return v
}

func (r *flagReader) fraction(name string) fraction.Fraction {
	if r.err != nil {
		return fraction.Fraction{}
	}
	v, err := fractionFlag(r.c, name)
	r.err = err
	return v
}

func printAmount(c *cli.Context, v *big.Int) error {
	_, err := fmt.Fprintln(c.App.Writer, v.String())
	return err
}

// SpotPriceCommand returns the spot-price subcommand
func SpotPriceCommand() *cli.Command {
	return &cli.Command{
		Name:  "spot-price",
		Usage: "Price of the out token in units of the in token, fee included",
		Flags: []cli.Flag{
			amountArg("balance-in", "pool balance of the in token"),
			fractionArg("weight-in", "weight of the in token"),
			amountArg("balance-out", "pool balance of the out token"),
			fractionArg("weight-out", "weight of the out token"),
			feeArg("fee", "swap fee"),
			&cli.BoolFlag{Name: "exact", Usage: "print the exact reduced fraction instead of an 18-decimal integer"},
		},
		Action: func(c *cli.Context) error {
			r := &flagReader{c: c}
			balanceIn, weightIn := r.amount("balance-in"), r.fraction("weight-in")
			balanceOut, weightOut := r.amount("balance-out"), r.fraction("weight-out")
			fee := r.fraction("fee")
			if r.err != nil {
				return r.err
			}

			if c.Bool("exact") {
				p, err := weightedmath.SpotPrice(balanceIn, weightIn, balanceOut, weightOut, fee)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.App.Writer, p.Reduce().String())
				return err
			}

			p, err := weightedmath.SpotPriceFixed(balanceIn, weightIn, balanceOut, weightOut, fee)
			if err != nil {
				return err
			}
			return printAmount(c, p)
		},
	}
}

// OutGivenInCommand returns the out-given-in subcommand
func OutGivenInCommand() *cli.Command {
	return &cli.Command{
		Name:  "out-given-in",
		Usage: "Amount of the out token received for an exact amount in",
		Flags: []cli.Flag{
			amountArg("amount-in", "amount of the in token"),
			amountArg("balance-in", "pool balance of the in token"),
			fractionArg("weight-in", "weight of the in token"),
			amountArg("balance-out", "pool balance of the out token"),
			fractionArg("weight-out", "weight of the out token"),
			feeArg("fee", "swap fee"),
		},
		Action: func(c *cli.Context) error {
			r := &flagReader{c: c}
			amountIn := r.amount("amount-in")
			balanceIn, weightIn := r.amount("balance-in"), r.fraction("weight-in")
			balanceOut, weightOut := r.amount("balance-out"), r.fraction("weight-out")
			fee := r.fraction("fee")
			if r.err != nil {
				return r.err
			}

			out, err := weightedmath.OutGivenIn(amountIn, balanceIn, weightIn, balanceOut, weightOut, fee)
			if err != nil {
				return err
			}
			return printAmount(c, out)
		},
	}
}

// InGivenOutCommand returns the in-given-out subcommand
func InGivenOutCommand() *cli.Command {
	return &cli.Command{
		Name:  "in-given-out",
		Usage: "Amount of the in token required for an exact amount out",
		Flags: []cli.Flag{
			amountArg("amount-out", "amount of the out token"),
			amountArg("balance-out", "pool balance of the out token"),
			fractionArg("weight-out", "weight of the out token"),
			amountArg("balance-in", "pool balance of the in token"),
			fractionArg("weight-in", "weight of the in token"),
			feeArg("fee", "swap fee"),
		},
		Action: func(c *cli.Context) error {
			r := &flagReader{c: c}
			amountOut := r.amount("amount-out")
			balanceOut, weightOut := r.amount("balance-out"), r.fraction("weight-out")
			balanceIn, weightIn := r.amount("balance-in"), r.fraction("weight-in")
			fee := r.fraction("fee")
			if r.err != nil {
				return r.err
			}

			in, err := weightedmath.InGivenOut(amountOut, balanceOut, weightOut, balanceIn, weightIn, fee)
			if err != nil {
				return err
			}
			return printAmount(c, in)
		},
	}
}

func singleAssetFlags(amountName, amountUsage string, exit bool) []cli.Flag {
	flags := []cli.Flag{
		amountArg(amountName, amountUsage),
		amountArg("balance", "pool balance of the token"),
		amountArg("supply", "LP token supply"),
		fractionArg("weight", "weight of the token"),
		fractionArg("total-weight", "sum of all pool weights"),
		feeArg("fee", "swap fee"),
	}
	if exit {
		flags = append(flags, feeArg("exit-fee", "exit fee on burned LP tokens"))
	}
	return flags
}

type singleAssetArgs struct {
	amount, balance, supply *big.Int
	weight, totalWeight     fraction.Fraction
	fee, exitFee            fraction.Fraction
}

func readSingleAsset(c *cli.Context, amountName string, exit bool) (singleAssetArgs, error) {
	r := &flagReader{c: c}
	a := singleAssetArgs{
		amount:      r.amount(amountName),
		balance:     r.amount("balance"),
		supply:      r.amount("supply"),
		weight:      r.fraction("weight"),
		totalWeight: r.fraction("total-weight"),
		fee:         r.fraction("fee"),
	}
	if exit {
		a.exitFee = r.fraction("exit-fee")
	}
	return a, r.err
}

// PoolOutGivenSingleInCommand returns the pool-out-given-single-in subcommand
func PoolOutGivenSingleInCommand() *cli.Command {
	return &cli.Command{
		Name:  "pool-out-given-single-in",
		Usage: "LP tokens minted for a single-token deposit",
		Flags: singleAssetFlags("amount-in", "deposited amount", false),
		Action: func(c *cli.Context) error {
			a, err := readSingleAsset(c, "amount-in", false)
			if err != nil {
				return err
			}
			out, err := weightedmath.PoolMintedGivenSingleIn(a.amount, a.balance, a.supply, a.weight, a.totalWeight, a.fee)
			if err != nil {
				return err
			}
			return printAmount(c, out)
		},
	}
}

// SingleInGivenPoolOutCommand returns the single-in-given-pool-out subcommand
func SingleInGivenPoolOutCommand() *cli.Command {
	return &cli.Command{
		Name:  "single-in-given-pool-out",
		Usage: "Single-token deposit required to mint an exact amount of LP tokens",
		Flags: singleAssetFlags("pool-out", "LP tokens to mint", false),
		Action: func(c *cli.Context) error {
			a, err := readSingleAsset(c, "pool-out", false)
			if err != nil {
				return err
			}
			in, err := weightedmath.SingleInGivenPoolOut(a.amount, a.balance, a.supply, a.weight, a.totalWeight, a.fee)
			if err != nil {
				return err
			}
			return printAmount(c, in)
		},
	}
}

// SingleOutGivenPoolInCommand returns the single-out-given-pool-in subcommand
func SingleOutGivenPoolInCommand() *cli.Command {
	return &cli.Command{
		Name:  "single-out-given-pool-in",
		Usage: "Single-token withdrawal for burning an exact amount of LP tokens",
		Flags: singleAssetFlags("pool-in", "LP tokens to burn", true),
		Action: func(c *cli.Context) error {
			a, err := readSingleAsset(c, "pool-in", true)
			if err != nil {
				return err
			}
			out, err := weightedmath.SingleOutGivenPoolIn(a.amount, a.balance, a.supply, a.weight, a.totalWeight, a.fee, a.exitFee)
			if err != nil {
				return err
			}
			return printAmount(c, out)
		},
	}
}

// PoolInGivenSingleOutCommand returns the pool-in-given-single-out subcommand
func PoolInGivenSingleOutCommand() *cli.Command {
	return &cli.Command{
		Name:  "pool-in-given-single-out",
		Usage: "LP tokens burned to withdraw an exact amount of one token",
		Flags: singleAssetFlags("amount-out", "withdrawn amount", true),
		Action: func(c *cli.Context) error {
			a, err := readSingleAsset(c, "amount-out", true)
			if err != nil {
				return err
			}
			in, err := weightedmath.PoolInGivenSingleOut(a.amount, a.balance, a.supply, a.weight, a.totalWeight, a.fee, a.exitFee)
			if err != nil {
				return err
			}
			return printAmount(c, in)
		},
	}
}

func printTokens(c *cli.Context, args []tokenArg, amounts []weightedmath.TokenEntry) error {
	for i, a := range amounts {
		if _, err := fmt.Fprintf(c.App.Writer, "%s %s\n", args[i].label, a.Amount); err != nil {
			return err
		}
	}
	return nil
}

func entries(args []tokenArg) []weightedmath.TokenEntry {
	out := make([]weightedmath.TokenEntry, 0, len(args))
	for _, a := range args {
		out = append(out, a.entry)
	}
	return out
}

// ProportionalDepositsCommand returns the proportional-deposits subcommand
func ProportionalDepositsCommand() *cli.Command {
	return &cli.Command{
		Name:  "proportional-deposits",
		Usage: "Deposit of every token required to mint an exact amount of LP tokens",
		Flags: []cli.Flag{
			amountArg("supply", "LP token supply"),
			amountArg("pool-out", "LP tokens to mint"),
			tokensArg(),
		},
		Action: func(c *cli.Context) error {
			r := &flagReader{c: c}
			supply, poolOut := r.amount("supply"), r.amount("pool-out")
			if r.err != nil {
				return r.err
			}
			tokens, err := parseTokens(c.StringSlice("token"))
			if err != nil {
				return err
			}

			deposits, err := weightedmath.ProportionalDepositsGivenPoolOut(supply, poolOut, entries(tokens))
			if err != nil {
				return err
			}
			return printTokens(c, tokens, deposits)
		},
	}
}

// ProportionalWithdrawCommand returns the proportional-withdraw subcommand
func ProportionalWithdrawCommand() *cli.Command {
	return &cli.Command{
		Name:  "proportional-withdraw",
		Usage: "Withdrawal of every token for burning an exact amount of LP tokens",
		Flags: []cli.Flag{
			amountArg("supply", "LP token supply"),
			amountArg("pool-in", "LP tokens to burn"),
			feeArg("exit-fee", "exit fee on burned LP tokens"),
			tokensArg(),
		},
		Action: func(c *cli.Context) error {
			r := &flagReader{c: c}
			supply, poolIn := r.amount("supply"), r.amount("pool-in")
			exitFee := r.fraction("exit-fee")
			if r.err != nil {
				return r.err
			}
			tokens, err := parseTokens(c.StringSlice("token"))
			if err != nil {
				return err
			}

			withdrawals, err := weightedmath.ProportionalWithdrawGivenPoolIn(supply, poolIn, exitFee, entries(tokens))
			if err != nil {
				return err
			}
			return printTokens(c, tokens, withdrawals)
		},
	}
}
