package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Push a run of sequential integers and report window, stats and metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := flags.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runSimulate(cmd.OutOrStdout(), cfg, count, logger)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 100, "Number of values to push")
	return cmd
}

func runSimulate(out io.Writer, cfg Config, count int, logger *logrus.Logger) error {
	if count < 0 {
		return fmt.Errorf("count %d must not be negative", count)
	}

	reg := prometheus.NewRegistry()
	w, err := newWindow(cfg, reg, logger)
	if err != nil {
		return err
	}

	for _, v := range lo.Range(count) {
		w.Push(float64(v))
	}

	if w.Filled() {
		row, err := snapshotRow(count, float64(count-1), w)
		if err != nil {
			return err
		}
		table := newTable(out, "#", "Value", "First", "Last", "Window")
		table.Append(row)
		table.Render()
	} else {
		logger.WithFields(logrus.Fields{
			"window": cfg.Name,
			"pushed": count,
			"size":   cfg.Size,
		}).Warn("window not filled")
	}

	renderStats(out, cfg, w)
	return renderMetrics(out, reg)
}
