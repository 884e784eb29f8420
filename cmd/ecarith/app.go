package main

import (
	"io"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	root   *cobra.Command
	viper  *viper.Viper
	stdout io.Writer
	stderr io.Writer

	cfg    *config.Config
	logger *zap.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{
		viper:  config.NewViper(),
		stdout: stdout,
		stderr: stderr,
	}

	// The main command describes the tool and
	// defaults to printing the help message.
	root := &cobra.Command{
		Use:               "ecarith",
		Short:             "Point arithmetic on short Weierstrass curves over prime fields",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a config file (yaml, json or toml)")
	flags.String("curve", "", "Name of a registered curve (see 'ecarith curves')")
	flags.Int64("a", 0, "Curve coefficient a")
	flags.Int64("b", 0, "Curve coefficient b")
	flags.Int64("p", 0, "Prime field modulus")
	flags.String("log-level", logging.DefaultLevel, "Logging level (debug, info, warn, error)")

	a.viper.BindPFlag(config.KeyConfigFile, flags.Lookup("config"))
	a.viper.BindPFlag(config.KeyCurve, flags.Lookup("curve"))
	a.viper.BindPFlag(config.KeyA, flags.Lookup("a"))
	a.viper.BindPFlag(config.KeyB, flags.Lookup("b"))
	a.viper.BindPFlag(config.KeyP, flags.Lookup("p"))
	a.viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		a.demoCmd(),
		a.addCmd(),
		a.doubleCmd(),
		a.checkCmd(),
		a.inverseCmd(),
		a.pointsCmd(),
		a.curvesCmd(),
	)

	a.root = root
	return a
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.viper)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, a.stderr, zap.AddStacktrace(zapcore.DPanicLevel))
	if err != nil {
		return err
	}
	a.logger = logger.Named(cmd.Name())
	return nil
}

// curve builds the configured curve and logs its parameters.
func (a *app) curve() (*curves.Curve, error) {
	c, err := a.cfg.NewCurve()
	if err != nil {
		return nil, err
	}

	ca, cb, cp := c.Params()
	a.logger.Debug("using curve",
		zap.String("name", c.Name()),
		zap.Int64("a", ca),
		zap.Int64("b", cb),
		zap.Int64("p", cp),
	)
	if err := c.Validate(); err != nil {
		a.logger.Warn("curve parameters are not a valid elliptic curve", zap.Error(err))
	}
	return c, nil
}

func (a *app) fallbackLogger() *zap.Logger {
	logger, err := logging.New(logging.DefaultLevel, a.stderr, zap.AddStacktrace(zapcore.DPanicLevel))
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
