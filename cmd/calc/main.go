package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb string
		nl, echo     bool
		strict       bool
		places       int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&places, "places", calc.DefaultPlaces, "decimal places to round results to (negative to disable)")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print normalized expressions and parse trees")
	flag.BoolVar(&strict, "strict", false, "reject whitespace in expressions")
	flag.Parse()

	var ins []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if c, ok := f.(io.Closer); ok && f != os.Stdin {
		defer c.Close()
	}
	if f != nil {
		v, err := readExprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		ins = append(ins, v...)
	}
	ins = append(ins, flag.Args()...)

	opts := []calc.Option{calc.Places(places)}
	if strict {
		opts = append(opts, calc.Strict())
	}
	s := calc.NewSession(opts...)
	verb += "\n"
	for _, in := range ins {
		in = splice(s, in)
		if echo {
			fmt.Print(trace(in), " : ")
		}
		r, err := s.Eval(in)
		switch {
		case calc.IsEmpty(err):
			if echo {
				fmt.Println()
			}
			continue
		case err != nil:
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

// splice replaces each "ans" in an expression with the session's last
// answer. Each replacement is made the way the answer key would insert it.
func splice(s *calc.Session, in string) string {
	if _, ok := s.Answer(); !ok {
		return in
	}
	parts := strings.Split(in, "ans")
	if len(parts) == 1 {
		return in
	}
	r := parts[0]
	for _, p := range parts[1:] {
		r = s.Splice(r) + p
	}
	return r
}

// trace renders the normalized form and tree of an expression for -echo.
func trace(in string) string {
	norm := calc.Normalize(in)
	toks, err := calc.Tokenize(norm)
	if err != nil {
		return norm
	}
	n, err := calc.Build(toks)
	if err != nil {
		return norm
	}
	return norm + " = " + n.String()
}

// readExprs reads the whole input as one expression, or one per line if nl is
// set. Blank lines are skipped.
func readExprs(in io.Reader, nl bool) ([]string, error) {
	if !nl {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimSpace(string(b))}, nil
	}
	var v []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if t := strings.TrimSpace(sc.Text()); t != "" {
			v = append(v, t)
		}
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return v, nil
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
