package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newStreamCmd(flags *rootFlags) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Push numbers read line by line through the window",
		Long:  "Push numbers read line by line from stdin (or --input) through the window and print a row with the window contents every N pushes once it is filled.",
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

			in := cmd.InOrStdin()
			if input != "" {
				f, err := os.Open(input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runStream(cmd.OutOrStdout(), in, cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "File with one number per line (default stdin)")
	return cmd
}

func runStream(out io.Writer, in io.Reader, cfg Config, logger *logrus.Logger) error {
	reg := prometheus.NewRegistry()
	w, err := newWindow(cfg, reg, logger)
	if err != nil {
		return err
	}

	table := newTable(out, "#", "Value", "First", "Last", "Window")
	scanner := bufio.NewScanner(in)
	line, pushed := 0, 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		w.Push(value)
		pushed++
		if !w.Filled() || pushed%cfg.Every != 0 {
			continue
		}
		row, err := snapshotRow(pushed, value, w)
		if err != nil {
			return err
		}
		table.Append(row)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"window": cfg.Name,
		"pushed": pushed,
		"filled": w.Filled(),
	}).Info("stream finished")

	table.Render()
	renderStats(out, cfg, w)
	return nil
}
