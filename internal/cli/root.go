// Package cli is the find4 command tree.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "dev"

const envPrefix = "FIND4"

// app carries what every subcommand shares.
type app struct {
	v      *viper.Viper
	out    io.Writer
	logger log.Logger
}

// NewRootCommand builds the command tree writing results to out and logs to
// errOut. With no subcommand it runs check and then bench.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, logger: log.NewNopLogger()}

	var cfgFile string
	root := &cobra.Command{
		Use:           "find4",
		Short:         "find4 checks and benchmarks a 4-byte SAD substring scanner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(cfgFile); err != nil {
				return err
			}
			logger, err := newLogger(errOut, a.v.GetString("log.format"), a.v.GetString("log.level"))
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.runCheck(); err != nil {
				return err
			}
			return a.runBench(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.find4.yaml)")
	root.PersistentFlags().String("log.level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().String("log.format", "logfmt", "log format: logfmt, json")
	cobra.CheckErr(a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log.level")))
	cobra.CheckErr(a.v.BindPFlag("log.format", root.PersistentFlags().Lookup("log.format")))

	root.AddCommand(
		a.newCheckCommand(),
		a.newBenchCommand(),
		a.newVersionCommand(),
	)
	return root
}

// Execute runs the command tree on the process arguments. SIGINT and SIGTERM
// cancel a running benchmark.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root := NewRootCommand(os.Stdout, os.Stderr)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

func (a *app) initConfig(cfgFile string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", cfgFile)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigType("yaml")
	a.v.SetConfigName(".find4")

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading config")
	}
	return nil
}
