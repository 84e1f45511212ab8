// Package main counts move-tree leaves for a position, optionally split by
// root move and checked against an independent generator.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"chessrules/internal/board"
	"chessrules/internal/oracle"
)

func main() {
	var (
		fen    = flag.String("fen", board.StartingFEN, "Position to search")
		depth  = flag.Int("depth", 4, "Search depth in plies")
		divide = flag.Bool("divide", false, "Print counts per root move")
		verify = flag.Bool("verify", false, "Compare per-move counts with dragontoothmg")
	)
	flag.Parse()

	b, err := board.FromFEN(*fen)
	if err != nil {
		log.Fatalf("Invalid FEN: %v", err)
	}
	if *depth < 0 {
		log.Fatal("Error: -depth must not be negative")
	}

	start := time.Now()
	if !*divide && !*verify {
		nodes := b.Perft(*depth)
		fmt.Printf("perft(%d) = %d (%s)\n", *depth, nodes, time.Since(start).Round(time.Millisecond))
		return
	}

	counts := b.Divide(*depth)
	var total uint64
	for _, move := range sortedKeys(counts) {
		total += counts[move]
		if *divide {
			fmt.Printf("%s: %d\n", move, counts[move])
		}
	}
	fmt.Printf("perft(%d) = %d (%s)\n", *depth, total, time.Since(start).Round(time.Millisecond))

	if !*verify {
		return
	}
	mismatches := diff(counts, oracle.Divide(b.PositionFEN(), *depth))
	if len(mismatches) == 0 {
		fmt.Println("verify: ok")
		return
	}
	for _, line := range mismatches {
		fmt.Println(line)
	}
	os.Exit(1)
}

// diff lists root moves whose counts disagree with the reference.
func diff(got, want map[string]uint64) []string {
	var out []string
	keys := sortedKeys(got)
	for k := range want {
		if _, ok := got[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		g, inGot := got[k]
		w, inWant := want[k]
		switch {
		case !inWant:
			out = append(out, fmt.Sprintf("%s: %d, not a legal move for the reference", k, g))
		case !inGot:
			out = append(out, fmt.Sprintf("%s: missing, reference has %d", k, w))
		case g != w:
			out = append(out, fmt.Sprintf("%s: %d, reference has %d", k, g, w))
		}
	}
	return out
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
