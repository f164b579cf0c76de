package main

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/ryanpbrewster/flexss"
	"github.com/ryanpbrewster/flexss/internal/fleethash"
	"github.com/spf13/cobra"
	"github.com/yeqown/log"
)

var logger = newLogger()

func main() {
	var (
		hashName string
		hashSeed uint64
		verbose  bool
	)

	rootCmd := &cobra.Command{
		Use:   "flexctl",
		Short: "Drive and inspect multi-tenant backend picker algorithms",
		Long: heredoc.Doc(`
			flexctl is a batch harness for the flexss picker family: it
			registers a synthetic fleet against one algorithm, issues
			picks on behalf of synthetic tenants, and reports what
			happened. It is not an interactive shell.
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLogLevel(log.LevelDebug)
				logger.SetCallerReporter(true)
			}

			hf, err := hashFuncByName(hashName, hashSeed)
			if err != nil {
				return errors.Wrap(err, "resolving --hash")
			}
			flexss.SetHashFunc(hf)
			logger.Debugf("using hash function %s (seed=%d)", hashName, hashSeed)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&hashName, "hash", "stable", "identifier hash: stable(default), murmur3")
	rootCmd.PersistentFlags().Uint64Var(&hashSeed, "hash-seed", 0, "seed for --hash=murmur3")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newListPickersCommand(),
		newRunCommand(),
		newBenchCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func hashFuncByName(name string, seed uint64) (fleethash.Func, error) {
	switch name {
	case "stable":
		return fleethash.Stable{}, nil
	case "murmur3":
		return fleethash.NewMurmur3(seed), nil
	default:
		return nil, fmt.Errorf("unknown hash %q, want stable or murmur3", name)
	}
}

func newLogger() *log.Logger {
	l, err := log.NewLogger(
		log.WithLevel(log.LevelInfo),
		log.WithTimeFormat(true, "2006-01-02 15:04:05"),
	)
	if err != nil {
		panic(err)
	}

	return l
}
