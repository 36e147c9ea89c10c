package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	mathex "github.com/ExeVirus/MathEx"
)

func main() {
	log.SetFlags(0)
	var (
		arglist string
		eps     float64
	)
	flag.StringVar(&arglist, "args", "0.1,0.2,0.3", "comma-separated argument values")
	flag.Float64Var(&eps, "eps", mathex.DefaultEpsilon, "truth threshold magnitude")
	flag.Parse()

	args, err := parseArgs(arglist)
	if err != nil {
		log.Fatal(err)
	}

	exprs := flag.Args()
	if len(exprs) == 0 {
		exprs = []string{"max(1,!2)"}
	}
	for _, src := range exprs {
		r, err := mathex.Evaluate(src, args, mathex.Epsilon(eps))
		if err != nil {
			log.Fatalf("%s : %v", src, err)
		}
		v := "FALSE"
		if r {
			v = "TRUE"
		}
		fmt.Printf("%s : %s\n", src, v)
	}
}

func parseArgs(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	args := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %q is not a number", p)
		}
		args = append(args, f)
	}
	return args, nil
}
