package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey   = "count"
	delegateOutKey  = "delegate-out"
	signalsOutKey   = "signals-out"
	minArityCount   = 2
	defaultDelegate = "delegate/actions.go"
	defaultSignals  = "sigslot/arity.go"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate fixed arity delegates and signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Largest number of signal arguments to generate",
				Value: 3,
			},
			&cli.StringFlag{
				Name:  delegateOutKey,
				Usage: "Output path of the delegate shapes",
				Value: defaultDelegate,
			},
			&cli.StringFlag{
				Name:  signalsOutKey,
				Usage: "Output path of the fixed arity signals",
				Value: defaultSignals,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for slotparty started !")
	defer func() {
		log.Printf("Codegen for slotparty finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	if count < minArityCount {
		return fmt.Errorf("--%s must be at least %d, got %d", arityCountKey, minArityCount, count)
	}
	log.Printf("Max arity: %d", count)

	if err := writeSource(cmd.String(delegateOutKey), templates.DelegateGen(count)); err != nil {
		return err
	}
	return writeSource(cmd.String(signalsOutKey), templates.SignalsGen(count))
}

func writeSource(path, contents string) error {
	src, err := format.Source([]byte(contents))
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return err
	}
	log.Printf("Wrote %s", path)
	return nil
}
