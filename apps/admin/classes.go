package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolfees/core/classorder"
)

func (cli *commandLine) rank(label string) error {
	rank := classorder.Classify(label)
	fmt.Fprintf(cli.out, "%q: rank %d (%s)\n", label, rank, rank.Tier())
	if suggestion, ok := classorder.Suggest(label); ok {
		fmt.Fprintf(cli.out, "did you mean %q?\n", suggestion)
	}
	return nil
}

func (cli *commandLine) sort(path string) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = ioutil.ReadAll(cli.in)
	} else {
		data, err = readFileFunc(path)
	}
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	var raws []json.RawMessage
	if err = json.Unmarshal(data, &raws); err != nil {
		return errors.Wrap(err, "records must be a JSON array")
	}
	records, err := classorder.SortRaw(raws)
	if err != nil {
		return err
	}

	if !isTerminalFunc(cli.out) {
		if raws == nil {
			raws = []json.RawMessage{}
		}
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(raws)
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tACADEMIC YEAR\tTIER")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ClassName, r.AcademicYear, classorder.Classify(r.ClassName).Tier())
	}
	return tw.Flush()
}
