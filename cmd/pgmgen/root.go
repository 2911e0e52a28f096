package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dynpgm"
	"github.com/katalvlaran/dynpgm/internal/logging"
	"github.com/katalvlaran/dynpgm/pgm"
)

const usageLine = "usage: pgmgen <n: size> <j: query complexity>"

// outputFlags are shared by the root command and sweep.
type outputFlags struct {
	outDir   string
	format   string
	mkdir    bool
	stdout   bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "pgmgen <n> <j>",
		Short: "Generate dynamic Bayesian network models with an expectation query",
		Long: "pgmgen writes dynamic_<n>_query_<j>.pgm: three variable chains over a\n" +
			"horizon of n time steps and one weighted expectation query over j variables.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &flags, args)
		},
	}
	cmd.Version = dynpgm.Version

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.outDir, "out-dir", "models", "Directory the model files are written to")
	pf.StringVar(&flags.format, "format", "pgm", "Output format: pgm or yaml")
	pf.BoolVar(&flags.mkdir, "mkdir", false, "Create --out-dir if it does not exist")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "Write the model to stdout instead of a file")

	cmd.AddCommand(newSweepCmd(&flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *outputFlags, args []string) error {
	// Fewer than two arguments is informational, not a failure.
	if len(args) < 2 {
		fmt.Fprintln(cmd.OutOrStdout(), usageLine)
		return nil
	}
	if len(args) > 2 {
		return fmt.Errorf("expected 2 arguments, got %d", len(args))
	}

	n, err := parseInt("n", args[0])
	if err != nil {
		return err
	}
	j, err := parseInt("j", args[1])
	if err != nil {
		return err
	}

	log, format, err := flags.resolve(cmd)
	if err != nil {
		return err
	}

	m, err := pgm.Generate(n, j)
	if err != nil {
		return err
	}
	log.Debug("generated model", "name", m.Name,
		"variables", m.Network.VariableCount(), "edges", m.Network.EdgeCount())

	data, err := pgm.Marshal(m, format)
	if err != nil {
		return err
	}

	if flags.stdout {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := flags.write(pgm.FileName(n, j, format), data)
	if err != nil {
		log.Error("write model", "path", path, "error", err)
		return err
	}
	log.Info("wrote model", "path", path, "bytes", len(data))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote to %s\n", path)

	return nil
}

// resolve parses the log level and output format.
func (o *outputFlags) resolve(cmd *cobra.Command) (*slog.Logger, pgm.Format, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, 0, err
	}
	format, err := pgm.ParseFormat(o.format)
	if err != nil {
		return nil, 0, err
	}

	return logging.New(cmd.ErrOrStderr(), level), format, nil
}

// write stores data as <out-dir>/<name> and returns the path.
func (o *outputFlags) write(name string, data []byte) (string, error) {
	path := filepath.Join(o.outDir, name)
	if o.mkdir {
		if err := os.MkdirAll(o.outDir, 0o755); err != nil {
			return path, fmt.Errorf("create %s: %w: %w", o.outDir, pgm.ErrWrite, err)
		}
	}

	return path, pgm.WriteFile(path, data)
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}

	return v, nil
}
