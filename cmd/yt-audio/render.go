package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ytget/yt-audio/internal/model"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// Non-interactive output prints one item progress line per this many percent
const progressStep = 25

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderBatchSummary renders the playlist result and any failed items
func renderBatchSummary(result model.BatchResult) string {
	if result.Total == 0 {
		return "Playlist could not be read or contains no items."
	}

	out := fmt.Sprintf("%s: %d of %d downloaded into %s", result.Title, result.Succeeded, result.Total, result.Directory)
	if len(result.Failures) == 0 {
		return out
	}

	rows := make([][]string, 0, len(result.Failures))
	for _, f := range result.Failures {
		rows = append(rows, []string{strconv.Itoa(f.Index), f.Title, firstLine(f.Diagnostic)})
	}
	return out + "\n" + renderTable([]string{"#", "Title", "Error"}, rows, []columnAlignment{alignRight})
}

// firstLine returns the text up to the first newline
func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

// progressPrinter writes progress either as a redrawn line on a terminal or
// as coarse log lines elsewhere
type progressPrinter struct {
	w           io.Writer
	interactive bool
	lastStep    int
	lastIndex   int
	dirty       bool
}

func newProgressPrinter(w io.Writer, interactive bool) *progressPrinter {
	return &progressPrinter{w: w, interactive: interactive, lastStep: -1}
}

// Item handles single-item progress
func (p *progressPrinter) Item(u model.ProgressUpdate) {
	line := fmt.Sprintf("%5.1f%%  %s  ETA %s", u.Percent, u.SpeedString(), u.ETAString())
	p.progress(int(u.Percent), line)
}

// Batch handles playlist progress
func (p *progressPrinter) Batch(b model.BatchProgress) {
	if b.Phase != model.BatchPhaseDownloading {
		p.clear()
		fmt.Fprintln(p.w, b.Status)
		return
	}
	if b.Index != p.lastIndex {
		p.clear()
		p.lastIndex = b.Index
		p.lastStep = -1
		fmt.Fprintf(p.w, "[%d/%d] %s\n", b.Index, b.Total, b.Title)
		return
	}
	p.progress(int(b.ItemPercent), fmt.Sprintf("%5.1f%%", b.ItemPercent))
}

// Done ends a redrawn line
func (p *progressPrinter) Done() {
	p.clear()
}

func (p *progressPrinter) progress(percent int, line string) {
	if p.interactive {
		fmt.Fprintf(p.w, "\r%s", line)
		p.dirty = true
		return
	}
	step := percent / progressStep
	if step <= p.lastStep {
		return
	}
	p.lastStep = step
	fmt.Fprintln(p.w, line)
}

func (p *progressPrinter) clear() {
	if p.dirty {
		fmt.Fprintln(p.w)
		p.dirty = false
	}
}
