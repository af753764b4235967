// Package main provides the dualfit CLI: demonstration training runs of a
// feed-forward network differentiated with dual numbers.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/dualfit/internal/nn"
	"github.com/born-ml/dualfit/internal/parallel"
	"github.com/born-ml/dualfit/internal/train"
)

const version = "v0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Printf("dualfit %s\n", version)
			return
		case "info":
			printInfo()
			return
		case "train":
			args = args[1:]
		}
	}

	if err := run(args); err != nil {
		log.Fatalf("dualfit: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	name := fs.String("scenario", "xor", "Scenario to train: "+strings.Join(scenarioNames(), ", "))
	iters := fs.Int("iters", 0, "Training iterations (0 = scenario default)")
	lr := fs.Float64("lr", 0, "Learning rate (0 = scenario default)")
	samples := fs.Int("samples", 0, "Training samples for generated scenarios (0 = scenario default)")
	test := fs.Int("test", 0, "Out-of-sample inputs to print (0 = scenario default)")
	seed := fs.Int64("seed", 0, "Random seed (0 = random)")
	workers := fs.Int("workers", 1, "Worker goroutines for per-sample evaluation (0 = all cores)")
	activation := fs.String("activation", "sine", "Neuron activation: sine, leaky_relu")
	every := fs.Int("every", 1, "Print cost every N iterations")
	quiet := fs.Bool("quiet", false, "Only print the final results")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := lookupScenario(*name)
	if err != nil {
		return err
	}
	if *iters == 0 {
		*iters = s.iterations
	}
	if *lr == 0 {
		*lr = s.lr
	}
	if *samples == 0 {
		*samples = s.samples
	}
	if *test == 0 {
		*test = s.test
	}
	if *seed == 0 {
		*seed = rand.Int63() //nolint:gosec // Seed only needs to vary between runs
	}

	act, err := nn.ActivationByName(*activation)
	if err != nil {
		return err
	}

	net, err := nn.New(s.layers, nn.Config{Activation: act, Seed: *seed})
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // Reproducible sample generation
	inputs, targets, probe := s.data(rng, *samples, *test)

	fmt.Printf("Scenario: %s - %s\n", s.name, s.description)
	fmt.Printf("Network: %v, %d weights + %d biases = %d variables, activation %s\n",
		net.Layers(), net.NumWeights(), net.NumBiases(), net.NumVars(), act.Name())
	fmt.Printf("Training: %d iterations, lr=%g, %d samples, seed %d\n\n", *iters, *lr, len(inputs), *seed)

	cfg := train.Config{
		Iterations: *iters,
		LR:         *lr,
		Parallel:   parallelConfig(*workers),
	}
	if !*quiet {
		cfg.Progress = func(iter, total int, cost float64) {
			if iter%max(*every, 1) == 0 || iter == total-1 {
				fmt.Printf("%d/%d\t%g\n", iter, total, cost)
			}
		}
	}

	cost, err := train.New(cfg).Train(net, inputs, targets)
	if err != nil {
		return err
	}

	fmt.Println()
	for _, in := range probe {
		out := net.ForwardReal(in)
		line := formatVector(in) + ":\t" + formatVector(out)
		if s.fn != nil {
			line += "\treal: " + formatVector(s.fn(in))
		}
		fmt.Println(line)
	}
	fmt.Printf("\nFinal cost: %g\n", cost)

	return nil
}

// parallelConfig maps the -workers flag onto a parallel.Config.
func parallelConfig(workers int) parallel.Config {
	if workers == 1 {
		return parallel.Config{}
	}
	cfg := parallel.DefaultConfig()
	if workers > 1 {
		cfg.NumWorkers = workers
		cfg.Enabled = true
	}
	return cfg
}

func printInfo() {
	fmt.Printf("dualfit %s\n", version)
	fmt.Printf("CPU: %s\n", cpuid.CPU.BrandName)
	fmt.Printf("Cores: %d physical, %d logical\n", cpuid.CPU.PhysicalCores, parallel.Cores())
	fmt.Printf("Scenarios: %s\n", strings.Join(scenarioNames(), ", "))
}

// formatVector prints a vector as "[ a, b, c ]".
func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', 6, 64)
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}
