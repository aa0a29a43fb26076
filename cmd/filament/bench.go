package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/filament/pkg/filament/header"
)

type benchOptions struct {
	tables int
	names  int
	values int
}

type tableResult struct {
	table    int
	names    int
	values   int
	capacity int
	level    header.Level
	elapsed  time.Duration
}

func newBenchCommand(root *rootOptions) *cobra.Command {
	opts := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Fill independent header maps in parallel and report their state",
		Long: "Fill --tables maps concurrently, one goroutine per map, each with --names " +
			"distinct names of --values values each. Prints per-map timing and danger " +
			"level followed by the collected metrics.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			defer cfg.Logger.Sync() //nolint:errcheck

			reg := prometheus.NewRegistry()
			cfg.Metrics = header.NewMetrics(reg)

			results, err := opts.run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := writeResults(out, results); err != nil {
				return err
			}
			return writeMetrics(out, reg)
		},
	}
	cmd.Flags().IntVar(&opts.tables, "tables", 4, "number of maps filled in parallel")
	cmd.Flags().IntVar(&opts.names, "names", 1000, "distinct names per map")
	cmd.Flags().IntVar(&opts.values, "values", 1, "values appended per name")
	return cmd
}

// run fills one map per goroutine. Maps are never shared; cfg is shared and
// must already be validated.
func (o *benchOptions) run(ctx context.Context, cfg *header.Config) ([]tableResult, error) {
	if o.tables < 1 || o.names < 0 || o.values < 1 {
		return nil, errors.New("bench: tables and values must be positive, names non-negative")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]tableResult, o.tables)
	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < o.tables; t++ {
		g.Go(func() error {
			m, err := header.NewWithConfig(cfg)
			if err != nil {
				return err
			}
			prefix := "x-bench-" + strconv.Itoa(t) + "-"
			v := header.StaticValue("v")

			start := time.Now()
			for i := 0; i < o.names; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				name, err := header.ParseName(prefix + strconv.Itoa(i))
				if err != nil {
					return err
				}
				for j := 0; j < o.values; j++ {
					if err := m.Append(name, v); err != nil {
						return fmt.Errorf("table %d: %w", t, err)
					}
				}
			}
			results[t] = tableResult{
				table:    t,
				names:    m.Len(),
				values:   m.ValuesLen(),
				capacity: m.Capacity(),
				level:    m.DangerLevel(),
				elapsed:  time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeResults(w io.Writer, results []tableResult) error {
	for _, r := range results {
		_, err := fmt.Fprintf(w, "table=%d names=%d values=%d capacity=%d danger=%s elapsed=%s\n",
			r.table, r.names, r.values, r.capacity, r.level, r.elapsed)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeMetrics prints one line per gathered series: counters by value,
// histograms by sample count and sum.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := ""
			for _, lp := range metric.GetLabel() {
				labels += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				_, err = fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				h := metric.GetHistogram()
				_, err = fmt.Fprintf(w, "%s%s count=%d sum=%g\n", mf.GetName(), labels, h.GetSampleCount(), h.GetSampleSum())
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
