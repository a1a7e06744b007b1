package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotparty/sigslot"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = flag.Int("iters", 100, "emissions measured per grid cell")
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkFanOut(false)
	benchmarkFanOut(true)
	benchmarkSelfDisconnect(true)
}

type counter struct {
	sigslot.Trackable
	total int
}

func (c *counter) OnValue(v int, _ *sigslot.Slot) {
	c.total += v
}

// reconnect drops itself on every call and is connected again before the
// next emission.
type reconnect struct {
	sigslot.Trackable
}

func (r *reconnect) OnValue(_ int, slot *sigslot.Slot) {
	r.UnbindSignal(slot)
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// benchmarkFanOut emits on a source signal that fans out to w chains, each
// forwarding through h signals before reaching a receiver.
func benchmarkFanOut(shouldRender bool) {
	tbl := newTable("Emit: fan out * forwarding depth")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: *iters})

			var src sigslot.Signal[int]
			sink := &counter{}
			chains := make([]sigslot.Signal[int], w*h)
			for i := 0; i < w; i++ {
				last := &src
				for j := 0; j < h; j++ {
					next := &chains[i*h+j]
					last.ConnectSignal(next)
					last = next
				}
				last.Connect(sigslot.Method(sink, (*counter).OnValue))
			}

			for i := 0; i < *iters; i++ {
				start := time.Now()
				src.Emit(1)
				tach.AddTime(time.Since(start))
			}
			if want := w * *iters; sink.total != want {
				log.Panicf("fan out %d * %d delivered %d, want %d", w, h, sink.total, want)
			}

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
			src.Destroy()
			sink.Destroy()
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkSelfDisconnect measures emissions in which every receiver drops
// its own connection.
func benchmarkSelfDisconnect(shouldRender bool) {
	tbl := newTable("Emit: every receiver disconnects itself")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: *iters})
		var src sigslot.Signal[int]
		rs := make([]reconnect, w)

		for i := 0; i < *iters; i++ {
			for j := range rs {
				src.Connect(sigslot.Method(&rs[j], (*reconnect).OnValue))
			}
			start := time.Now()
			src.Emit(1)
			tach.AddTime(time.Since(start))
			if n := src.CountConnections(); n != 0 {
				log.Panicf("%d connections survived self disconnect", n)
			}
		}

		appendCalc(tbl, fmt.Sprintf("self disconnect: %d", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}
