// Package main prints the mood transition graph as Graphviz source,
// for piping into dot.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/easeaico/emomind/internal/mood"
)

func main() {
	active := flag.String("active", string(mood.Neutral), "state to highlight as active")
	flag.Parse()

	machine := mood.NewMachine()
	if _, err := machine.TransitionTo(mood.State(*active)); err != nil {
		log.Fatalf("unknown state %q (valid: %v)", *active, mood.States())
	}

	src, err := machine.Graph().DOT()
	if err != nil {
		log.Fatalf("failed to render graph: %v", err)
	}
	fmt.Println(src)
}
