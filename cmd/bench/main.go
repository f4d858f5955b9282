package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"petal/internal"
)

var source string = `
func fib(n, a, b) {
    let next = a + b;
    next
}

func step(state) {
    state.count = state.count + 1
    state.total = fib(state.count, state.total, 1)
    state
}

let s = { count: 0, total: 0 };
step(step(step(step(step(s)))))
s.total * 2 - s.count % 3
`

// quietPrinter drops program output so only evaluation is timed
type quietPrinter struct{}

func (quietPrinter) Println(a ...interface{}) (n int, err error) {
	return 0, nil
}

func (quietPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (quietPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	iterations := flag.Int("n", 10000, "number of runs")
	file := flag.String("file", "", "benchmark this source file instead of the built-in program")
	flag.Parse()

	logger := logrus.New()
	logger.Out = os.Stderr

	if *iterations <= 0 {
		logger.Fatalf("-n must be positive, got %d", *iterations)
	}

	if *file != "" {
		b, err := ioutil.ReadFile(*file)
		if err != nil {
			logger.Fatal(err)
		}
		source = string(b)
	}

	program, err := internal.ProduceAST(source)
	if err != nil {
		logger.Fatal(err)
	}

	start := time.Now()
	for i := 0; i < *iterations; i++ {
		interp := internal.NewInterpreter(internal.WithPrinter(quietPrinter{}))
		if _, err := internal.Evaluate(program, interp.Globals()); err != nil {
			logger.Fatal(err)
		}
	}
	elapsed := time.Since(start)

	logger.WithFields(logrus.Fields{
		"runs":    *iterations,
		"elapsed": elapsed,
		"per_run": elapsed / time.Duration(*iterations),
	}).Info("done")
}
