// SPDX-License-Identifier: MIT

// Command algotrace serves the trace engine over HTTP and runs single
// algorithms from the command line.
//
//	algotrace serve --config algotrace.yaml
//	algotrace sort quick 5 3 8 1
//	algotrace search binary 8 1 3 5 8
//	algotrace graph dijkstra --generate random --nodes 6 --seed 1 --end 4
//	algotrace tree insert:50 insert:30 search:30
//	algotrace heap create:3,9,4 extractMax
//	algotrace gen graph --topology wheel --nodes 7
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
