// Command lvnet loads a model, optionally trains it on a dataset, reports
// accuracy and writes the updated model.
//
// Usage:
//
//	lvnet -model net.model [-train train.txt] [-test test.txt]
//	      [-epochs 1] [-batch 1] [-lr 0.1] [-seed 0] [-init normal|xavier|he]
//	      [-traversal topological|frontier] [-out trained.model]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvnet/builder"
	"github.com/katalvlaran/lvnet/dataset"
	"github.com/katalvlaran/lvnet/model"
	"github.com/katalvlaran/lvnet/network"
)

var (
	// errNoModel is returned when -model is missing.
	errNoModel = errors.New("lvnet: -model is required")

	errUnknownInit = errors.New("lvnet: unknown weight initializer")
)

// config holds the parsed command line.
type config struct {
	modelPath string
	trainPath string
	testPath  string
	outPath   string
	traversal string
	init      string
	epochs    int
	batch     int
	lr        float64
	seed      int64
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvnet: ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("%v", err)
	}
}

// parseFlags reads args into a config.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("lvnet", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.modelPath, "model", "", "Model file to load (required)")
	fs.StringVar(&cfg.trainPath, "train", "", "Training examples (features then label per line)")
	fs.StringVar(&cfg.testPath, "test", "", "Examples to report accuracy on")
	fs.StringVar(&cfg.outPath, "out", "", "Write the model here after training")
	fs.StringVar(&cfg.traversal, "traversal", network.Topological.String(), "Node scheduling: topological or frontier")
	fs.IntVar(&cfg.epochs, "epochs", 1, "Training epochs")
	fs.IntVar(&cfg.batch, "batch", 1, "Examples per update")
	fs.Float64Var(&cfg.lr, "lr", network.DefaultLearningRate, "Learning rate")
	fs.Int64Var(&cfg.seed, "seed", 0, "Seed for initial weights (0 = time based)")
	fs.StringVar(&cfg.init, "init", "normal", "Initial weights for connections absent from the model: normal, xavier or he")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.modelPath == "" {
		fs.Usage()
		return cfg, errNoModel
	}

	return cfg, nil
}

// run executes one CLI invocation, writing reports to stdout.
func run(args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	order, err := network.ParseTraversal(cfg.traversal)
	if err != nil {
		return err
	}
	if cfg.lr < 0 {
		return fmt.Errorf("lvnet: negative learning rate %g", cfg.lr)
	}

	initOpt, err := initOption(cfg.init)
	if err != nil {
		return err
	}
	bopts := []builder.BuilderOption{initOpt}
	if cfg.seed != 0 {
		bopts = append(bopts, builder.WithSeed(cfg.seed))
	}
	f, err := os.Open(cfg.modelPath)
	if err != nil {
		return err
	}
	g, err := model.LoadGraph(f, bopts...)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.modelPath, err)
	}
	n, err := network.New(g, network.WithLearningRate(cfg.lr), network.WithTraversal(order))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "model: %d layers, %d nodes, %d connections\n", g.LayerCount(), g.NodeCount(), g.EdgeCount())

	if cfg.trainPath != "" {
		if err = train(n, cfg, stdout); err != nil {
			return err
		}
	}
	if cfg.testPath != "" {
		test, err := dataset.LoadFile(cfg.testPath)
		if err != nil {
			return err
		}
		acc, err := n.Assess(test)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "accuracy: %.4f (%d examples)\n", acc, len(test))
	}
	if cfg.outPath != "" {
		if err = model.SaveFile(cfg.outPath, n); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved: %s\n", cfg.outPath)
	}

	return nil
}

// train fits n on the training file and reports the loss before and after.
func train(n *network.Network, cfg config, stdout io.Writer) error {
	examples, err := dataset.LoadFile(cfg.trainPath)
	if err != nil {
		return err
	}
	before, err := n.Loss(examples)
	if err != nil {
		return err
	}
	updates, err := n.Fit(examples, cfg.batch, cfg.epochs)
	if err != nil {
		return err
	}
	after, err := n.Loss(examples)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "train: %d examples, %d epochs, %d updates, loss %.6f -> %.6f\n",
		len(examples), cfg.epochs, updates, before, after)

	return nil
}

// initOption maps an -init name to its builder option.
func initOption(name string) (builder.BuilderOption, error) {
	switch name {
	case "normal":
		return builder.WithWeightFn(builder.StandardNormalWeightFn), nil
	case "xavier":
		return builder.WithXavierWeight(), nil
	case "he":
		return builder.WithHeWeight(), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownInit, name)
	}
}
