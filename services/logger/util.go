package logsvc

import (
	"log"
	"os"

	"github.com/trezcool/schoolfees/core"
)

var exit = os.Exit // mockable

// splitCaller pulls the first core.Caller (value or pointer) out of args.
func splitCaller(args []interface{}) (*core.Caller, []interface{}) {
	var caller *core.Caller
	rest := make([]interface{}, 0, len(args))
	for _, arg := range args {
		switch c := arg.(type) {
		case core.Caller:
			if caller == nil {
				caller = &c
			}
		case *core.Caller:
			if caller == nil && c != nil {
				caller = c
			}
		default:
			rest = append(rest, arg)
		}
	}
	return caller, rest
}

func printTo(std *log.Logger, msg string, args []interface{}) {
	caller, rest := splitCaller(args)
	if caller != nil && (caller.ID != "" || caller.RemoteIP != "") {
		msg += " [" + caller.RemoteIP
		if caller.ID != "" {
			msg += " " + caller.ID
		}
		msg += "]"
	}
	std.Println(msg)
	for _, arg := range rest {
		std.Printf("%+v\n", arg)
	}
}
