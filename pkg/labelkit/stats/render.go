package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText renders the report as a human-readable table.
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "records: %d\n", r.Total); err != nil {
		return err
	}
	for _, ls := range r.Labels {
		if _, err := fmt.Fprintf(w, "\n%s: %d\n", ls.Label, ls.Count); err != nil {
			return err
		}
		if len(ls.Samples) > 0 {
			fmt.Fprintf(w, "  samples: %s\n", strings.Join(ls.Samples, " | "))
		}
		// A counted label always carries samples in both series, but an
		// empty group must never render a meaningless statistic line.
		if ls.TextLength.N > 0 {
			fmt.Fprintf(w, "  length:     mean %.1f  min %.0f  max %.0f\n",
				ls.TextLength.Mean, ls.TextLength.Min, ls.TextLength.Max)
		}
		if ls.Confidence.N > 0 {
			fmt.Fprintf(w, "  confidence: mean %.3f  min %.3f  max %.3f\n",
				ls.Confidence.Mean, ls.Confidence.Min, ls.Confidence.Max)
		}
	}
	return nil
}

// WriteCSV renders one row per label for spreadsheet review.
func (r Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{
		"label", "count",
		"len_mean", "len_min", "len_max",
		"conf_mean", "conf_min", "conf_max",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, ls := range r.Labels {
		row := []string{ls.Label, strconv.FormatInt(ls.Count, 10)}
		row = append(row, seriesFields(ls.TextLength)...)
		row = append(row, seriesFields(ls.Confidence)...)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func seriesFields(s Series) []string {
	if s.N == 0 {
		return []string{"", "", ""}
	}
	return []string{
		strconv.FormatFloat(s.Mean, 'f', -1, 64),
		strconv.FormatFloat(s.Min, 'f', -1, 64),
		strconv.FormatFloat(s.Max, 'f', -1, 64),
	}
}
