package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/delaneyj/slotparty/sigslot"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	seedKey    = "seed"
	repeatsKey = "repeats"
)

func main() {
	cmd := &cli.Command{
		Name:  "churn",
		Usage: "Benchmark emissions whose receivers connect and disconnect while running",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  seedKey,
				Usage: "Seed of the random churn",
				Value: 0,
			},
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per config, the best one is reported",
				Value: 5,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type churnConfig struct {
	name           string  // friendly name for the test, should be unique
	signals        int     // signals in the graph
	receivers      int     // receivers shared by every signal
	fanOut         int     // connections per signal at start
	forwardPercent float64 // fraction of connections that forward to a later signal
	churnPercent   float64 // chance that a delivery disconnects or reconnects something
	iterations     int64   // emissions per run
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting churn benchmark, please wait...")
	defer log.Print("Finished churn benchmark")

	cfgs := []churnConfig{
		{name: "static", signals: 1, receivers: 10, fanOut: 10, iterations: 200_000},
		{name: "light churn", signals: 4, receivers: 100, fanOut: 50, forwardPercent: 0.05, churnPercent: 0.01, iterations: 20_000},
		{name: "heavy churn", signals: 4, receivers: 100, fanOut: 50, forwardPercent: 0.05, churnPercent: 0.25, iterations: 20_000},
		{name: "wide", signals: 2, receivers: 1_000, fanOut: 1_000, forwardPercent: 0.01, churnPercent: 0.05, iterations: 2_000},
		{name: "deep forward", signals: 16, receivers: 10, fanOut: 4, forwardPercent: 0.25, churnPercent: 0.05, iterations: 5_000},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "signals", "receivers", "fan out", "forward%", "churn%",
		"emits", "time", "deliveries", "deliveries/ms", "connections", "targets",
	})

	repeats := int(cmd.Uint(repeatsKey))
	if repeats < 1 {
		return fmt.Errorf("--%s must be at least 1", repeatsKey)
	}
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		var best *churnResult
		for i := 0; i < repeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, repeats, (i+1)*100/repeats)
			res, err := runChurn(cfg, cmd.Int(seedKey))
			if err != nil {
				return fmt.Errorf("%s: %w", cfg.name, err)
			}
			if best == nil || res.duration < best.duration {
				best = res
			}
		}

		rate := float64(best.deliveries) / (float64(best.duration) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.signals),
			humanize.Comma(int64(cfg.receivers)),
			humanize.Comma(int64(cfg.fanOut)),
			fmt.Sprint(100 * cfg.forwardPercent),
			fmt.Sprint(100 * cfg.churnPercent),
			humanize.Comma(cfg.iterations),
			fmt.Sprint(best.duration),
			humanize.Comma(best.deliveries),
			humanize.Comma(int64(rate)),
			humanize.Comma(int64(best.stats.Connections)),
			humanize.Comma(int64(best.stats.Targets)),
		})
	}
	table.Render()
	return nil
}

type churnResult struct {
	duration   time.Duration
	deliveries int64
	stats      sigslot.Stats
}

type churner struct {
	sigslot.Trackable

	world *world
}

type world struct {
	rand       *rand.Rand
	signals    []*sigslot.Signal[int]
	receivers  []*churner
	churn      float64
	deliveries int64
}

func (c *churner) OnValue(v int, slot *sigslot.Slot) {
	w := c.world
	w.deliveries++
	if w.rand.Float64() >= w.churn {
		return
	}
	switch w.rand.Intn(3) {
	case 0:
		c.UnbindSignal(slot)
	case 1:
		sig := w.signals[w.rand.Intn(len(w.signals))]
		sig.Connect(sigslot.Method(w.receivers[w.rand.Intn(len(w.receivers))], (*churner).OnValue))
	default:
		if sig := sigslot.EmitterOf[int](slot); sig != nil {
			sig.DisconnectRange(w.rand.Intn(sig.CountConnections()+1), 1)
		}
	}
}

func runChurn(cfg churnConfig, seed int64) (*churnResult, error) {
	w := &world{
		rand:    rand.New(rand.NewSource(seed)),
		churn:   cfg.churnPercent,
		signals: make([]*sigslot.Signal[int], cfg.signals),
	}
	for i := range w.signals {
		w.signals[i] = &sigslot.Signal[int]{}
	}
	w.receivers = make([]*churner, cfg.receivers)
	for i := range w.receivers {
		w.receivers[i] = &churner{world: w}
	}

	for i, sig := range w.signals {
		for j := 0; j < cfg.fanOut; j++ {
			// forwarding only goes to later signals so the graph stays acyclic
			if i < len(w.signals)-1 && w.rand.Float64() < cfg.forwardPercent {
				sig.ConnectSignal(w.signals[i+1+w.rand.Intn(len(w.signals)-1-i)])
				continue
			}
			sig.Connect(sigslot.Method(w.receivers[w.rand.Intn(len(w.receivers))], (*churner).OnValue))
		}
	}

	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		w.signals[int(i)%len(w.signals)].Emit(int(i))
	}
	duration := time.Since(start)

	all := make([]sigslot.Receiver, 0, len(w.signals)+len(w.receivers))
	for _, sig := range w.signals {
		all = append(all, sig)
	}
	for _, r := range w.receivers {
		all = append(all, r)
	}
	if err := sigslot.Check(all...); err != nil {
		return nil, err
	}

	res := &churnResult{
		duration:   duration,
		deliveries: w.deliveries,
		stats:      w.signals[0].Stats(),
	}
	for _, sig := range w.signals {
		sig.Destroy()
	}
	return res, nil
}
