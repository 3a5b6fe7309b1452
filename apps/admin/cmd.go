package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"golang.org/x/term"

	"github.com/trezcool/schoolfees/core/fee"
)

var (
	readFileFunc   = ioutil.ReadFile // mockable
	isTerminalFunc = isTerminal      // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	feeSvc *fee.Service
	in     io.Reader
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  rank -label LABEL - show the rank & tier of a class label")
	fmt.Fprintln(cli.out, "  sort -file PATH|- - print JSON class records in class order")
	fmt.Fprintln(cli.out, "  fees -kind class|bus|hostel [-year YYYY-YYYY] [-search TEXT] [-tier TIER] - list fees in class order")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	rankCmd := cli.newFlagSet("rank")
	rankLabel := rankCmd.String("label", "", "The class label, eg. \"Class IX\" or \"Nursery\".")

	sortCmd := cli.newFlagSet("sort")
	sortFile := sortCmd.String("file", "", "A JSON file holding an array of records (class_name, academic_year). \"-\" reads stdin.")

	feesCmd := cli.newFlagSet("fees")
	feesKind := feesCmd.String("kind", "", "The fee kind: class, bus or hostel.")
	feesYear := feesCmd.String("year", "", "Only list fees of this academic year, eg. 2024-2025.")
	feesSearch := feesCmd.String("search", "", "Only list fees whose class name contains this text.")
	feesTier := feesCmd.String("tier", "", "Only list fees of this tier, eg. LKG or \"Class 5\".")

	switch args[1] {
	case "rank":
		if err := cli.parse(rankCmd, args[2:]); err != nil {
			return err
		}
		if !flagPassed(rankCmd, "label") {
			rankCmd.Usage()
			return errHelp
		}
		return cli.rank(*rankLabel)
	case "sort":
		if err := cli.parse(sortCmd, args[2:]); err != nil {
			return err
		}
		if *sortFile == "" {
			sortCmd.Usage()
			return errHelp
		}
		return cli.sort(*sortFile)
	case "fees":
		if err := cli.parse(feesCmd, args[2:]); err != nil {
			return err
		}
		if *feesKind == "" {
			feesCmd.Usage()
			return errHelp
		}
		return cli.fees(*feesKind, fee.QueryFilter{AcademicYear: *feesYear, Search: *feesSearch, Tier: *feesTier})
	default:
		cli.printUsage()
		return errHelp
	}
}

func flagPassed(fs *flag.FlagSet, name string) bool {
	var passed bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
