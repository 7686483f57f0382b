/*
Command ropedemo exercises ropes from the command line.

Without arguments it builds a small rope by appending and inserting, and
prints the rope's text, length and tree structure after every step. With
flag -file it loads a text file (or, with -html, the text of an HTML file)
as a rope and prints word and line counts together with the formatted text.

Usage:

	ropedemo [-trace level] [-width n] [-color] [-dot] [-file name [-html]]

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/npillmayer/ropes"
	"github.com/npillmayer/ropes/formatter"
	"github.com/npillmayer/ropes/html"
	"github.com/npillmayer/ropes/metrics"
	"github.com/npillmayer/ropes/textfile"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uax/uax11"
)

func tracer() tracing.Trace {
	return tracing.Select("ropes")
}

var (
	headline = color.New(color.FgGreen, color.Bold)
	failure  = color.New(color.FgRed)
)

func main() {
	tlevel := flag.String("trace", "Error", "trace level [Debug|Info|Error]")
	width := flag.Int("width", 0, "line width for formatted output (0 = terminal width)")
	colored := flag.Bool("color", false, "color text by fragments")
	dot := flag.Bool("dot", false, "output the rope's tree in Graphviz DOT format")
	filename := flag.String("file", "", "text file to load")
	isHTML := flag.Bool("html", false, "extract the text of an HTML file")
	flag.Parse()
	//
	if err := initTracing(*tlevel); err != nil {
		failure.Fprintf(os.Stderr, "cannot initialize tracing: %v\n", err)
		os.Exit(2)
	}
	defer trace2go.Teardown()
	config := formatter.ConfigFromTerminal()
	config.Context = uax11.ContextFromEnvironment()
	if *width > 0 {
		config.LineWidth = *width
	}
	if *colored {
		config.Colors = formatter.DefaultPalette()
	} else {
		config.Colors = nil
	}
	//
	var err error
	if *filename == "" {
		err = demo(os.Stdout, config, *dot)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = showFile(ctx, os.Stdout, *filename, *isHTML, config, *dot)
		stop()
	}
	if err != nil {
		tracer().Errorf("ropedemo: %v", err)
		failure.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// initTracing configures the root tracer and the 'ropes' tracer to log to
// stderr with a given level.
func initTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.root":      level,
		"trace.ropes":     level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().SetOutput(os.Stderr)
	return nil
}

// demo builds a rope step by step and shows it after every step.
// If dot is set, the final tree is output in Graphviz DOT format instead of
// the formatted text.
func demo(w io.Writer, config *formatter.Config, dot bool) error {
	text := ropes.New()
	show := func(step string) error {
		headline.Fprintf(w, "%s\n", step)
		fmt.Fprintf(w, "text   = %q\nlength = %d\n", text.String(), text.Len())
		return text.Dump(w)
	}
	for _, s := range []string{"ab", "cd", "fg"} {
		text.Append(s)
		if err := show(fmt.Sprintf("append %q", s)); err != nil {
			return err
		}
	}
	text.Insert(4, "e")
	if err := show(`insert "e" at 4`); err != nil {
		return err
	}
	text.Insert(0, "_")
	if err := show(`insert "_" at 0`); err != nil {
		return err
	}
	if dot {
		return ropes.Rope2Dot(text, w)
	}
	headline.Fprintln(w, "formatted")
	return formatter.Print(w, text, config)
}

// showFile loads a file as a rope and outputs statistics and the formatted text.
func showFile(ctx context.Context, w io.Writer, name string, isHTML bool, config *formatter.Config, dot bool) error {
	var text *ropes.Rope
	var err error
	if isHTML {
		var f *os.File
		if f, err = os.Open(name); err != nil {
			return err
		}
		defer f.Close()
		text, err = html.TextFromHTML(f)
	} else {
		text, err = textfile.Load(ctx, name, 0)
	}
	if err != nil {
		return err
	}
	if dot {
		return ropes.Rope2Dot(text, w)
	}
	words, err := metrics.Count(text, 0, text.Len(), metrics.Words())
	if err != nil {
		return err
	}
	lines, err := metrics.Count(text, 0, text.Len(), metrics.Lines())
	if err != nil {
		return err
	}
	headline.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "bytes = %d, fragments = %d, height = %d, words = %d, lines = %d\n",
		text.Len(), text.FragmentCount(), text.Height(), words, lines)
	return formatter.Print(w, text, config)
}
