package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dynpgm/builder"
	"github.com/katalvlaran/dynpgm/pgm"
)

var errSweepRange = errors.New("invalid sweep range")

type sweepFlags struct {
	minHorizon    int
	maxHorizon    int
	minComplexity int
	maxComplexity int
	jobs          int
}

// sweepJob is one (n, j) pair of a sweep.
type sweepJob struct {
	n, j int
}

func newSweepCmd(out *outputFlags) *cobra.Command {
	var flags sweepFlags

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Write every valid (n, j) model in a range",
		Long: "Writes one model per pair with min-horizon <= n <= max-horizon and\n" +
			"min-complexity <= j <= max-complexity. Pairs whose query would reach past\n" +
			"the horizon (j-2 > n) are skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, format, err := out.resolve(cmd)
			if err != nil {
				return err
			}
			jobs, err := planSweep(flags)
			if err != nil {
				return err
			}
			paths, err := runSweep(cmd.Context(), log, out, format, jobs, flags.jobs)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote to %s\n", p)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&flags.minHorizon, "min-horizon", 0, "Smallest horizon n")
	f.IntVar(&flags.maxHorizon, "max-horizon", 0, "Largest horizon n (required)")
	f.IntVar(&flags.minComplexity, "min-complexity", builder.MinComplexity, "Smallest query complexity j")
	f.IntVar(&flags.maxComplexity, "max-complexity", 0, "Largest query complexity j (required)")
	f.IntVar(&flags.jobs, "jobs", runtime.NumCPU(), "Models generated concurrently")

	_ = cmd.MarkFlagRequired("max-horizon")
	_ = cmd.MarkFlagRequired("max-complexity")

	return cmd
}

// planSweep lists the valid pairs in n-major order.
func planSweep(f sweepFlags) ([]sweepJob, error) {
	if f.minHorizon < builder.MinHorizon || f.maxHorizon < f.minHorizon {
		return nil, fmt.Errorf("horizon [%d, %d]: %w: %w", f.minHorizon, f.maxHorizon, errSweepRange, builder.ErrInvalidHorizon)
	}
	if f.minComplexity < builder.MinComplexity || f.maxComplexity < f.minComplexity {
		return nil, fmt.Errorf("complexity [%d, %d]: %w: %w", f.minComplexity, f.maxComplexity, errSweepRange, builder.ErrInvalidComplexity)
	}
	if f.jobs < 1 {
		return nil, fmt.Errorf("jobs must be >= 1, got %d: %w", f.jobs, errSweepRange)
	}

	var jobs []sweepJob
	for n := f.minHorizon; n <= f.maxHorizon; n++ {
		for j := f.minComplexity; j <= f.maxComplexity; j++ {
			if builder.Validate(n, j) != nil {
				continue
			}
			jobs = append(jobs, sweepJob{n: n, j: j})
		}
	}

	return jobs, nil
}

// runSweep generates and writes jobs with at most limit in flight. The
// returned paths follow job order. The first failure cancels the rest.
func runSweep(ctx context.Context, log *slog.Logger, out *outputFlags, format pgm.Format, jobs []sweepJob, limit int) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	paths := make([]string, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			m, err := pgm.Generate(job.n, job.j)
			if err != nil {
				return err
			}
			data, err := pgm.Marshal(m, format)
			if err != nil {
				return err
			}
			path, err := out.write(pgm.FileName(job.n, job.j, format), data)
			if err != nil {
				log.Error("write model", "path", path, "error", err)
				return err
			}
			log.Debug("wrote model", "path", path, "bytes", len(data))
			paths[i] = path

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Info("sweep done", "models", len(jobs))

	return paths, nil
}
