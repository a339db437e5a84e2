// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwbus runs a small demo circuit: a clock driving a counter whose
// output is shown on two displays, one of them with reversed bit order.
//
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	ticksKey = "ticks"
	widthKey = "width"
	infoKey  = "info"
	benchKey = "bench"
)

func main() {
	cmd := &cli.Command{
		Name:  "hwbus",
		Usage: "Run the hwbus counter demo circuit",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  ticksKey,
				Usage: "Number of clock ticks to run",
				Value: 16,
			},
			&cli.UintFlag{
				Name:  widthKey,
				Usage: "Counter width in bits (4 to 63)",
				Value: 8,
			},
			&cli.BoolFlag{
				Name:  infoKey,
				Usage: "Print the pin count of each component",
			},
			&cli.BoolFlag{
				Name:  benchKey,
				Usage: "Measure tick latency instead of printing display output",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	ticks := int(cmd.Uint(ticksKey))
	width := int(cmd.Uint(widthKey))

	if cmd.Bool(benchKey) {
		return bench(os.Stdout, width, ticks)
	}

	d, err := build(os.Stdout, width)
	if err != nil {
		return err
	}
	if cmd.Bool(infoKey) {
		info(os.Stdout, d.c)
	}
	d.c.Reset()
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.clk.Tick()
	}
	return nil
}
