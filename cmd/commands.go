// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tridiag/config"
	"github.com/katalvlaran/tridiag/server"
	"github.com/katalvlaran/tridiag/service"
)

type runFunc func(ctx context.Context, arg string) (service.Result, error)

// single prints the Result of one run; a failed run still prints its Result.
func (a *app) single(cmd *cobra.Command, arg string, byID, byPath runFunc) error {
	ctx, cancel := a.context(cmd)
	defer cancel()

	var (
		res service.Result
		err error
	)
	if isPath(arg) {
		res, err = byPath(ctx, arg)
	} else {
		res, err = byID(ctx, arg)
	}
	if werr := writeJSON(cmd.OutOrStdout(), res); werr != nil {
		return werr
	}
	if err != nil {
		return errFailed
	}

	return nil
}

func (a *app) solveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <id|file>",
		Short: "Check T1/T2, solve and report the residual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byPath := func(ctx context.Context, p string) (service.Result, error) {
				return a.runner.RunFile(ctx, p, p)
			}
			return a.single(cmd, args[0], a.runner.Run, byPath)
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <id|file>",
		Short: "Evaluate the T1/T2 sufficient conditions without solving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			byPath := func(ctx context.Context, p string) (service.Result, error) {
				return a.runner.CheckFile(ctx, p, p)
			}
			return a.single(cmd, args[0], a.runner.Check, byPath)
		},
	}
}

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch [ids...]",
		Short: "Solve several fixtures in parallel (all fixtures when no ids are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			results, err := a.runner.RunBatch(ctx, args)
			if err != nil {
				return err
			}
			if err = writeJSON(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			for _, res := range results {
				if res.Error != "" {
					return errFailed
				}
			}

			return nil
		},
	}
}

func (a *app) fixturesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "List fixture ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := a.runner.Store().List()
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), ids)
		},
	}
}

func (a *app) serveCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve verification runs over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.logger.Info("starting server",
				zap.String("address", a.cfg.Address),
				zap.String("backend", a.cfg.Backend),
				zap.String("fixtures", a.cfg.FixturesDir),
			)

			return server.New(a.runner, a.logger).Run(ctx, a.cfg.Address)
		},
	}
	c.Flags().String("address", config.DefaultAddress, "listen address")
	_ = a.v.BindPFlag(config.KeyAddress, c.Flags().Lookup("address"))

	return c
}
