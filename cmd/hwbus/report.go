// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/db47h/hwbus"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
)

// info prints the signals and pin count of each component in c.
//
func info(w io.Writer, c *hwbus.Circuit) {
	tbl := table.NewWriter()
	tbl.SetTitle("Components")
	tbl.SetOutputMirror(w)
	tbl.AppendHeader(table.Row{"component", "signals", "pins"})
	for _, comp := range c.Components() {
		var names []string
		n := 0
		for _, s := range c.Signals(comp) {
			names = append(names, s.View().Name())
			n += s.Width()
		}
		tbl.AppendRow(table.Row{comp.Name(), strings.Join(names, " "), n})
	}
	st := c.Stats()
	tbl.AppendFooter(table.Row{
		humanize.Comma(int64(st.Components)) + " components",
		humanize.Comma(int64(st.Signals)) + " signals",
		humanize.Comma(int64(st.Pins)) + " pins / " + humanize.Comma(int64(st.Nets)) + " nets",
	})
	tbl.Render()
}

// bench runs the demo circuit for the given number of ticks and reports tick
// latency.
//
func bench(w io.Writer, width, ticks int) error {
	if ticks <= 0 {
		return nil
	}
	d, err := build(io.Discard, width)
	if err != nil {
		return err
	}
	d.c.Reset()

	tach := tachymeter.New(&tachymeter.Config{Size: ticks})
	start := time.Now()
	for i := 0; i < ticks; i++ {
		t := time.Now()
		d.clk.Tick()
		tach.AddTime(time.Since(t))
	}
	elapsed := time.Since(start)
	calc := tach.Calc()

	rate := float64(ticks) / elapsed.Seconds()
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"ticks", "width", "avg", "min", "p75", "p99", "max", "ticks/s"})
	tbl.Append([]string{
		humanize.Comma(int64(ticks)),
		fmt.Sprint(width),
		fmt.Sprint(calc.Time.Avg),
		fmt.Sprint(calc.Time.Min),
		fmt.Sprint(calc.Time.P75),
		fmt.Sprint(calc.Time.P99),
		fmt.Sprint(calc.Time.Max),
		humanize.Comma(int64(rate)),
	})
	tbl.Render()
	return nil
}
