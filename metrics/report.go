package metrics

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
	"time"
)

// WriteReport prints a performance summary in the plain text layout the CLI
// uses. Values are rounded here, at the presentation boundary.
func WriteReport(w io.Writer, window string, s Summary) {
	s = s.Rounded()

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Performance Summary")
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "Window:        %s\n", window)
	fmt.Fprintf(w, "Closed Trades: %d\n", s.TotalTrades)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Results")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Profit Factor: %.2f\n", s.ProfitFactor)
	fmt.Fprintf(w, "Total Profit:  %.2f\n", s.TotalProfit)
	fmt.Fprintf(w, "Total Loss:    %.2f\n", s.TotalLoss)
	fmt.Fprintf(w, "Average P/L:   %.2f\n", s.AverageProfitLoss)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Extremes")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Best Trade:    %.2f\n", s.BestTrade)
	fmt.Fprintf(w, "Worst Trade:   %.2f\n", s.WorstTrade)
	fmt.Fprintf(w, "Max Win Run:   %d\n", s.ConsecutiveWins)
	fmt.Fprintf(w, "Max Loss Run:  %d\n", s.ConsecutiveLosses)
	fmt.Fprintln(w)
}

var reportOrgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

type orgReport struct {
	Window  string
	Created time.Time
	Summary
}

// ReportOrg renders the summary as an Org-mode block with a PROPERTIES
// drawer, matching the journal's trade export format.
func ReportOrg(window string, s Summary, created time.Time) (string, error) {
	t, err := template.New("report").Funcs(reportOrgFuncs).Parse(reportOrgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, orgReport{Window: window, Created: created, Summary: s.Rounded()}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const reportOrgTemplate = `* PERFORMANCE: {{.Window}}
:PROPERTIES:
:WINDOW:       {{.Window}}
:TRADES:       {{.TotalTrades}}
:WIN_RATE:     {{printf "%.2f" .WinRate}}
:PROFIT_FAC:   {{printf "%.2f" .ProfitFactor}}
:TOTAL_PROFIT: {{printf "%.2f" .TotalProfit}}
:TOTAL_LOSS:   {{printf "%.2f" .TotalLoss}}
:AVG_PL:       {{printf "%.2f" .AverageProfitLoss}}
:BEST:         {{printf "%.2f" .BestTrade}}
:WORST:        {{printf "%.2f" .WorstTrade}}
:MAX_WIN_RUN:  {{.ConsecutiveWins}}
:MAX_LOSS_RUN: {{.ConsecutiveLosses}}
:CREATED:      [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Streaks
| Streak | Max |
|--------+-----|
| Wins   | {{.ConsecutiveWins}} |
| Losses | {{.ConsecutiveLosses}} |
`
