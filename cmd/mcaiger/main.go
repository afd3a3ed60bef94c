// Command mcaiger is a bounded model checker for sequential circuits
// expressed as AIGER And-Inverter Graphs: it searches for an input sequence
// driving the circuit's single safety output true, and in parallel attempts
// to prove none exists via k-induction strengthened with simple-path
// constraints.
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcaiger-go/mcaiger/internal/satsolver"
	"github.com/mcaiger-go/mcaiger/pkg/aig"
	"github.com/mcaiger-go/mcaiger/pkg/engine"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	parsed, err := ParseArgs(argv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, usage)
		return 1
	}
	if parsed.help {
		fmt.Fprint(stdout, usage)
		return 0
	}

	src := stdin
	if parsed.path != "" {
		f, err := os.Open(parsed.path)
		if err != nil {
			fmt.Fprintf(stderr, "[mcaiger] %v\n", err)
			return 1
		}
		defer f.Close()
		src = f
	}

	circuit, err := aig.Parse(src)
	if err != nil {
		fmt.Fprintf(stderr, "[mcaiger] %v\n", err)
		return 1
	}

	backend := satsolver.NewGini()
	ctx, _, err := engine.NewContext(circuit, backend, parsed.cfg)
	if err != nil {
		fmt.Fprintf(stderr, "[mcaiger] %v\n", err)
		return 1
	}
	ctx.SetOutput(stderr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case s := <-sig:
			ctx.DumpStats()
			signal.Reset(s.(syscall.Signal))
			proc, findErr := os.FindProcess(os.Getpid())
			if findErr == nil {
				proc.Signal(s)
			}
		case <-done:
		}
	}()

	verdict := ctx.Run()
	ctx.DumpStats()

	fmt.Fprintln(stdout, verdict.Token)
	if verdict.Witness != nil {
		fmt.Fprint(stdout, verdict.Witness.String())
	}
	return verdict.ExitCode
}
