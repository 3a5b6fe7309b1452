package inmemdb

import (
	"sync"

	"github.com/trezcool/schoolfees/core/fee"
)

type feeTable struct {
	mutex sync.RWMutex
	rows  map[fee.Kind]map[string]*fee.Fee // {kind: {id: fee}}
	order map[fee.Kind][]string            // insertion order, the order the backend would list them in
}

type DB struct {
	fee *feeTable
}

func Open() *DB {
	return &DB{
		fee: &feeTable{
			rows:  make(map[fee.Kind]map[string]*fee.Fee, len(fee.Kinds)),
			order: make(map[fee.Kind][]string, len(fee.Kinds)),
		},
	}
}
