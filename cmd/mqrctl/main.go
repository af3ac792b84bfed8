// Command mqrctl bulk-loads rectangles into an MQR-Tree from a JSONL file
// and runs ad-hoc region or k-NN queries against it, printing results as a
// table.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	appName    = "mqrctl"
	appVersion = "1.0.0"
)

func main() {
	app := &cli.App{
		Name:    appName,
		Usage:   "Load and query an in-memory MQR-Tree spatial index",
		Version: appVersion,
		Commands: []*cli.Command{
			{
				Name:      "load",
				Usage:     "Bulk-load rectangles from a JSONL file and run a query against the result",
				ArgsUsage: "<file.jsonl>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "sort-morton", Usage: "pre-sort input rectangles by Morton (z-order) code before inserting"},
					&cli.StringFlag{Name: "bbox", Usage: "run a region query after loading: min_x,max_x,min_y,max_y"},
					&cli.StringFlag{Name: "knn", Usage: "run a k-NN query after loading: x,y,k"},
				},
				Action: runLoad,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func die(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
