// Command datakit splits tabular data into balanced folds and partitions
// and generates noise data sets resembling it.
//
//	datakit fold -in data.csv -out folds.csv -k 5 -cat diagnosis -id participant
//	datakit partition -in data.xlsx -out-dir splits -p 0.2,0.3
//	datakit noise -in data.csv -out noise.csv -dist gaussian -label class
//
// Settings shared by every command are read from DATAKIT_* environment
// variables, optionally loaded from a .env file with -env.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
