package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/trezcool/schoolfees/core/fee"
)

func (cli *commandLine) fees(kindName string, filter fee.QueryFilter) error {
	kind, err := fee.ParseKind(kindName)
	if err != nil {
		return err
	}
	fees, err := cli.feeSvc.List(context.Background(), kind, filter)
	if err != nil {
		return err
	}

	if !isTerminalFunc(cli.out) {
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(fees)
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tACADEMIC YEAR\tAMOUNT\tFREQUENCY\tDETAIL\tID")
	for _, f := range fees {
		detail := f.Route
		if kind == fee.KindHostel {
			detail = f.Hostel
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n", f.ClassName, f.AcademicYear, f.Amount, f.Frequency, detail, f.ID)
	}
	return tw.Flush()
}
