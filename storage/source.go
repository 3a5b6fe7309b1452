// Package storage picks the fee.Source the apps run on.
package storage

import (
	"github.com/pkg/errors"

	"github.com/trezcool/schoolfees/core"
	"github.com/trezcool/schoolfees/core/fee"
	"github.com/trezcool/schoolfees/storage/inmem"
	"github.com/trezcool/schoolfees/storage/rest"
)

// OpenFeeSource returns the source configured by conf.Backend.Kind.
func OpenFeeSource(conf *core.Config) (fee.Source, error) {
	switch conf.Backend.Kind {
	case core.BackendMemory:
		return inmemdb.NewFeeSource(inmemdb.Open()), nil
	case core.BackendREST:
		return restdb.NewFeeSource(restdb.NewClient(conf.Backend)), nil
	default:
		return nil, errors.Errorf("unknown backend %q", conf.Backend.Kind)
	}
}
