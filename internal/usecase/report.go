package usecase

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// maxReportedFiles bounds the per-file section of the rendered report so a
// large batch stays readable; failures are always listed.
const maxReportedFiles = 5

// RenderBatchReport formats a batch result for the operator-facing summary
// printed at the end of a run.
func RenderBatchReport(result BatchResult) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if result.BatchID != "" {
		fmt.Fprintf(buf, "Batch %s\n", result.BatchID)
	}
	fmt.Fprintf(buf, "Batch complete: %d file(s), %d succeeded, %d failed\n",
		result.FilesFound, result.Succeeded, result.Failed)
	if result.FilesFound > 0 {
		rate := float64(result.Succeeded) / float64(result.FilesFound) * 100
		fmt.Fprintf(buf, "Success rate: %.1f%%\n", rate)
	}
	fmt.Fprintf(buf, "Deliveries ingested: %d", result.Deliveries)
	if result.DeliveryErrors > 0 {
		fmt.Fprintf(buf, " (%d skipped)", result.DeliveryErrors)
	}
	buf.WriteString("\n")

	listed := 0
	for _, file := range result.Files {
		switch {
		case file.Status == fileStatusSuccess && file.DeliveryErrors == 0:
			if listed >= maxReportedFiles {
				continue
			}
			fmt.Fprintf(buf, "  %s: %d innings, %d deliveries (%dms)\n",
				file.File, file.Innings, file.Deliveries, file.DurationMs)
			listed++
			continue
		case file.Status == fileStatusSuccess:
			// A file that skipped deliveries is always listed so its error
			// samples reach the operator.
			fmt.Fprintf(buf, "  %s: %d innings, %d deliveries, %d skipped (%dms)\n",
				file.File, file.Innings, file.Deliveries, file.DeliveryErrors, file.DurationMs)
			listed++
		default:
			fmt.Fprintf(buf, "  %s: FAILED: %s\n", file.File, file.Error)
		}

		for _, sample := range file.ErrorSamples {
			fmt.Fprintf(buf, "    delivery error: %s\n", sample)
		}
	}
	if hidden := result.Succeeded - listed; hidden > 0 {
		fmt.Fprintf(buf, "  ... and %d more file(s)\n", hidden)
	}

	if len(result.TableCounts) > 0 {
		buf.WriteString("Table counts:\n")
		for _, tc := range result.TableCounts {
			fmt.Fprintf(buf, "  %s: %d\n", tc.Table, tc.Count)
		}
	}

	if len(result.RecentMatches) > 0 {
		buf.WriteString("Recent matches:\n")
		for _, m := range result.RecentMatches {
			when := ""
			if m.StartDate != nil {
				when = " on " + m.StartDate.Format("2006-01-02")
			}
			winner := m.Winner
			if winner == "" {
				winner = "TBD"
			}
			fmt.Fprintf(buf, "  %s: %s vs %s%s - Winner: %s\n",
				m.MatchID, m.Team1, m.Team2, when, winner)
		}
	}

	if len(result.TeamStats) > 0 {
		buf.WriteString("Team records:\n")
		for _, ts := range result.TeamStats {
			fmt.Fprintf(buf, "  %s: %d played, %d won, %d lost (%s%% wins)\n",
				ts.Team, ts.MatchesPlayed, ts.Wins, ts.Losses, ts.WinPercentage.String())
		}
	}

	return buf.String()
}
