package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/samber/lo"

	slidingwindow "github.com/jonoton/go-slidingwindow"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatValues(values []float64) string {
	return strings.Join(lo.Map(values, func(v float64, _ int) string { return formatFloat(v) }), " ")
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

// snapshotRow renders the window after push number n. The window must be filled.
func snapshotRow(n int, value float64, w *slidingwindow.Window[float64]) ([]string, error) {
	first, err := w.First()
	if err != nil {
		return nil, err
	}
	last, err := w.Last()
	if err != nil {
		return nil, err
	}
	values, err := w.Slice()
	if err != nil {
		return nil, err
	}
	return []string{strconv.Itoa(n), formatFloat(value), formatFloat(first), formatFloat(last), formatValues(values)}, nil
}

func renderStats(out io.Writer, cfg Config, w *slidingwindow.Window[float64]) {
	stats := w.Stats()
	table := newTable(out, "Backend", "Size", "Capacity", "Pushes", "Rewinds", "Filled")
	table.Append([]string{
		cfg.Backend,
		strconv.Itoa(w.Size()),
		strconv.Itoa(w.Capacity()),
		strconv.FormatUint(stats.Pushes, 10),
		strconv.FormatUint(stats.Rewinds, 10),
		strconv.FormatBool(w.Filled()),
	})
	table.Render()
}

// renderMetrics prints every counter and gauge gathered from reg.
func renderMetrics(out io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}

	table := newTable(out, "Metric", "Labels", "Value")
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			labels := lo.Map(m.GetLabel(), func(l *dto.LabelPair, _ int) string { return l.GetName() + "=" + l.GetValue() })
			table.Append([]string{mf.GetName(), strings.Join(labels, ","), formatFloat(value)})
		}
	}
	table.Render()
	return nil
}
