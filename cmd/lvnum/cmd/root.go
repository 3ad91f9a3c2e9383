// SPDX-License-Identifier: MIT

// Package cmd holds the lvnum command tree.
package cmd

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvnum/number"
)

// Configuration keys, shared by flags, LVNUM_* environment variables and the
// YAML config file.
const (
	keyLayout   = "layout"
	keyAccuracy = "accuracy"
	keySmart    = "smart"
	keyVerbose  = "verbose"

	envPrefix = "LVNUM"
)

// settings is the resolved configuration every subcommand reads.
type settings struct {
	layout   number.Layout
	accuracy int
	smart    bool
	log      logr.Logger
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns a fresh lvnum command tree. Each call owns its own
// viper instance, so trees are independent (tests build one per case).
func NewRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()
	s := &settings{log: logr.Discard()}

	root := &cobra.Command{
		Use:   "lvnum",
		Short: "Real and complex number calculator",
		Long: `lvnum evaluates and formats real and complex numbers.

Numbers are written as 5, -0.25, 2e3, i, -i, 3.5i or 1+2i.
Configuration is read from flags, LVNUM_* environment variables and an
optional YAML file (--config), in that order of precedence.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.load(cmd, v, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "YAML config file")
	pf.String(keyLayout, number.DefaultPattern, "output layout, e.g. 0.00 or #0.###")
	pf.Int(keyAccuracy, number.DefaultAccuracy, "decimals results are rounded to (0-15)")
	pf.Bool(keySmart, false, "snap results to simple fractions")
	pf.BoolP(keyVerbose, "v", false, "trace evaluation steps")

	root.AddCommand(
		newEvalCmd(s),
		newFmtCmd(s),
		newPolarCmd(s),
		newGCDCmd(s),
		newVersionCmd(),
	)

	return root
}

// load resolves settings from flags, environment and the config file.
func (s *settings) load(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %q: %w", cfgFile, err)
		}
	}

	layout, err := number.ParseLayout(v.GetString(keyLayout))
	if err != nil {
		return err
	}
	accuracy := v.GetInt(keyAccuracy)
	if accuracy < 0 || accuracy > number.MaxAccuracy {
		return fmt.Errorf("%w: %d", errAccuracyRange, accuracy)
	}

	log, err := newLogger(v.GetBool(keyVerbose))
	if err != nil {
		return err
	}

	s.layout = layout
	s.accuracy = accuracy
	s.smart = v.GetBool(keySmart)
	s.log = log

	return nil
}

// newLogger builds a zap development logger behind logr. Verbose mode
// enables V(1), which zapr maps to zap's debug level.
func newLogger(verbose bool) (logr.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("build logger: %w", err)
	}

	return zapr.NewLogger(zl), nil
}

// format renders n with the configured layout.
func (s *settings) format(n number.Number) string {
	return number.FormatWith(n, number.WithLayout(s.layout))
}

// finish applies the configured rounding to a command result.
func (s *settings) finish(n number.Number) number.Number {
	n = number.RoundWith(n, number.WithAccuracy(s.accuracy))
	if s.smart {
		n = n.SmartRound()
	}

	return n
}
