package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/breathpace/internal/config"
	"github.com/akyairhashvil/breathpace/internal/models"
	"github.com/go-pdf/fpdf"
)

// Report is the content of a history PDF.
type Report struct {
	GeneratedAt time.Time
	Stats       []models.PresetStats
	Sessions    []models.Session
	PresetName  func(id string) string
}

func reportName(t time.Time) string {
	return fmt.Sprintf("%s_report_%s.pdf", config.AppName, t.Format("2006-01-02_150405"))
}

// ExportReport writes the report into dir and returns the file path.
func ExportReport(dir string, r Report) (string, error) {
	if r.PresetName == nil {
		r.PresetName = func(id string) string { return id }
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, reportName(r.GeneratedAt))

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("%s Practice Report: %s", config.DisplayName, r.GeneratedAt.Format("2006-01-02")))
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "By preset")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 11)
	if len(r.Stats) == 0 {
		pdf.Cell(0, 8, "  - No sessions recorded.")
		pdf.Ln(8)
	}

	totalSeconds, totalSessions := 0, 0
	for _, st := range r.Stats {
		totalSeconds += st.ActiveSeconds
		totalSessions += st.Sessions
		line := fmt.Sprintf("  %s: %d sessions, %d completed, %s total, last %s",
			r.PresetName(st.PresetID), st.Sessions, st.Completed,
			formatDuration(time.Duration(st.ActiveSeconds)*time.Second),
			st.LastPracticed.Local().Format("2006-01-02"))
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %d sessions, %s", totalSessions, formatDuration(time.Duration(totalSeconds)*time.Second)))
	pdf.Ln(12)

	if len(r.Sessions) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Recent sessions")
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 11)
		for _, s := range r.Sessions {
			status := "[x]"
			if s.Status != models.SessionCompleted {
				status = "[ ]"
			}
			line := fmt.Sprintf("%s %s  %s  %d/%d cycles  %s",
				status, s.StartedAt.Local().Format("2006-01-02 15:04"), r.PresetName(s.PresetID),
				s.CompletedCycles, s.PlannedCycles,
				formatDuration(time.Duration(s.ActiveSeconds)*time.Second))
			pdf.MultiCell(0, 7, tr(line), "", "", false)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
