package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agenthands/gitcat/internal/logger"
	"github.com/agenthands/gitcat/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config keys, also usable as GITCAT_* environment variables.
const (
	cfgGitDir         = "git-dir"
	cfgVerify         = "verify"
	cfgLogLevel       = "log-level"
	cfgMaxObjectBytes = "max-object-bytes"
	cfgConfigFile     = "config"
)

// exitError carries a process exit code. Silent errors are not printed.
type exitError struct {
	code   int
	silent bool
	err    error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "gitcat",
		Short: "Read objects from a git-style loose object store",
		Long: `gitcat initializes a repository skeleton and prints the contents of
zlib-compressed loose objects stored under <git-dir>/objects.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String(cfgGitDir, ".git", "repository directory")
	pf.Bool(cfgVerify, false, "check that object content hashes to the requested id")
	pf.String(cfgLogLevel, "warn", "log level (debug, info, warn, error)")
	pf.Uint64(cfgMaxObjectBytes, core.DefaultMaxObjectBytes, "refuse objects declaring a larger payload")
	pf.StringP(cfgConfigFile, "c", "", "config file (yaml, json or toml)")

	root.AddCommand(
		newInitCommand(a),
		newCatFileCommand(a),
		newCIDCommand(a),
	)
	return root
}

// setup loads configuration from flags, GITCAT_* variables and an optional
// config file, then builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix("gitcat")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := a.v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return bindErr
	}

	if cfgFile := a.v.GetString(cfgConfigFile); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	l, err := logger.New(a.v.GetString(cfgLogLevel))
	if err != nil {
		return err
	}
	a.log = l

	return nil
}

func (a *app) storeConfig() core.Config {
	return core.Config{
		Dir:    a.v.GetString(cfgGitDir),
		Verify: a.v.GetBool(cfgVerify),
		Limits: core.LimitsConfig{
			MaxObjectBytes: a.v.GetUint64(cfgMaxObjectBytes),
		},
	}
}
