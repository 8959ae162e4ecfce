// Command satgo is a DPLL-family SAT solver CLI: it reads a DIMACS CNF
// file and reports satisfiability, a witnessing assignment, and timing and
// memory statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/vishalkevat007/satgo"
	"github.com/vishalkevat007/satgo/internal/memstat"
)

func main() {
	log.SetFlags(0)

	variantFlag := flag.String("variant", "d3", "solver variant: d1 (DPLL only), d2 (+ conflict learning), d3 (+ VSIDS)")
	verbose := flag.Bool("v", false, "verbose mode: dump solver stats to stderr")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `satgo: a DPLL-family SAT solver.

Usage:

  satgo [-variant d1|d2|d3] [-v] <input.cnf>

satgo reads a single problem specification in the DIMACS CNF format from
the given path, which must end in ".cnf" and exist.
`)
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	path := flag.Arg(0)
	if !validCNFPath(path) {
		log.Println("Error: Input file must be a valid .cnf file and must exist.")
		os.Exit(1)
	}

	variant, err := parseVariant(*variantFlag)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalln("Error opening input file:", err)
	}
	defer f.Close()

	problem, err := satgo.ParseDIMACS(f)
	if err != nil {
		log.Fatalln("Error reading input file as DIMACS CNF:", err)
	}

	solver, err := satgo.New(problem, satgo.DefaultConfig(variant))
	if err != nil {
		log.Fatalln(err)
	}

	start := time.Now()
	assignment, sat := solver.Solve()
	elapsed := time.Since(start)

	memKB, memErr := memstat.RSSKB()

	if *verbose {
		printStats(solver.Stats())
	}

	// The D3 build prints no variant header; D1 and D2 identify themselves.
	if variant != satgo.D3 {
		fmt.Printf("[%s]\n", variant)
	}
	result := "UNSAT"
	if sat {
		result = "SAT"
	}
	fmt.Printf("RESULT: %s\n", result)
	if sat {
		printAssignment(assignment)
	}
	fmt.Printf("Time taken: %.7f seconds\n", elapsed.Seconds())
	if memErr != nil {
		fmt.Fprintln(os.Stderr, "Error:", memErr)
		fmt.Println("Memory used: -1 KB")
	} else {
		fmt.Printf("Memory used: %d KB\n", memKB)
	}
}

func parseVariant(s string) (satgo.Variant, error) {
	switch s {
	case "d1":
		return satgo.D1, nil
	case "d2":
		return satgo.D2, nil
	case "d3":
		return satgo.D3, nil
	default:
		return 0, fmt.Errorf("Error: unknown -variant %q (want d1, d2, or d3)", s)
	}
}

func validCNFPath(path string) bool {
	if len(path) < 4 || path[len(path)-4:] != ".cnf" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// printAssignment reports every variable 1..N in ascending order on a
// single "ASSIGNMENT: 1=<0|1> 2=<0|1> ..." line.
func printAssignment(assignment satgo.Assignment) {
	vars := make([]int, 0, len(assignment))
	for v := range assignment {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	fmt.Print("ASSIGNMENT: ")
	for _, v := range vars {
		fmt.Printf("%d=%d ", v, assignment[v])
	}
	fmt.Println()
}

func printStats(stats map[string]any) {
	keys := make([]string, 0, len(stats))
	maxKeyLen := 0
	for key := range stats {
		keys = append(keys, key)
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(os.Stderr, "%*s %v\n", maxKeyLen, key, stats[key])
	}
}
