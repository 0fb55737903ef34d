package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/keycalc"
	"github.com/zephyrtronium/keycalc/internal/tui"
)

// ascii translates keyboard stand-ins for the keypad operators.
var ascii = strings.NewReplacer("*", "×", "/", "÷")

func main() {
	log.SetFlags(0)
	var (
		inname, verb      string
		echo, finite, pad bool
	)
	flag.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting verb (default calculator display)")
	flag.BoolVar(&echo, "echo", false, "print expressions in postfix order")
	flag.BoolVar(&finite, "finite", false, "treat NaN and infinite results as errors")
	flag.BoolVar(&pad, "tui", false, "run the keypad even if stdin is not a terminal")
	flag.Parse()

	var opts []keycalc.EvalOption
	if finite {
		opts = append(opts, keycalc.Finite())
	}

	if flag.NArg() == 0 && inname == "" && (pad || term.IsTerminal(int(os.Stdin.Fd()))) {
		if err := tui.Run(keycalc.NewSession(opts...)); err != nil {
			log.Fatal(err)
		}
		return
	}

	var srcs []string
	if f, err := infile(inname, flag.NArg() == 0); err != nil {
		log.Fatal(err)
	} else if f != nil {
		srcs, err = lines(f)
		if err != nil {
			log.Fatal(err)
		}
	}
	srcs = append(srcs, flag.Args()...)

	failed := false
	for _, src := range srcs {
		src = ascii.Replace(strings.TrimSpace(src))
		if src == "" {
			continue
		}
		if !run(src, verb, echo, opts) {
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// run evaluates and prints one expression. The result is false if it failed.
func run(src, verb string, echo bool, opts []keycalc.EvalOption) bool {
	infix, err := keycalc.ValidateString(src)
	if err != nil {
		fmt.Printf("%s: %v\n", src, err)
		return false
	}
	if echo {
		if postfix, err := keycalc.ToPostfix(infix); err == nil {
			fmt.Printf("%v : ", postfix)
		}
	}
	r, err := keycalc.Evaluate(infix, opts...)
	if err != nil {
		fmt.Printf("%s: %v\n", src, err)
		return false
	}
	if verb == "" {
		fmt.Println(keycalc.FormatResult(r))
		return true
	}
	fmt.Printf(verb+"\n", r)
	return true
}

func lines(r io.Reader) ([]string, error) {
	var v []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		v = append(v, scan.Text())
	}
	return v, scan.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return f, nil
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
