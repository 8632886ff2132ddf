// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/opdump/optable"
)

// Default location of the QuickJS opcode header.
const defaultHeader = "/opt/quickjs/quickjs-opcode.h"

func main() {
	var input string
	var output string
	var match string
	var dump bool
	var verbose bool

	flag.StringVar(&input, "f", defaultHeader, "Opcode header to scan")
	flag.StringVar(&output, "o", "-", "Listing output")
	flag.StringVar(&match, "m", "", "Starlark match expression")
	flag.BoolVar(&dump, "d", false, "Dump the parsed table, do not list")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	sc := &optable.Scanner{Verbose: verbose}
	if len(match) != 0 {
		sc.Filter = &optable.Filter{Expr: match}
	}

	in := os.Stdin
	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		in = inf
	}

	tab, err := sc.Parse(in)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	if dump {
		spew.Fdump(out, tab)
		return
	}

	if err := tab.Dump(out); err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose {
		for _, tag := range tab.UnknownFormats() {
			log.Printf("format %v is never declared by a FMT() row", tag)
		}
	}
}
