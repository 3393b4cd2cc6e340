package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/corey/mechsize/belts"
	"github.com/corey/mechsize/internal/domain/drive"
	"github.com/corey/mechsize/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// useColor is decided once; piped output stays plain.
var useColor = isStdoutTTY()

// paint returns code when color is enabled, else "".
func paint(code string) string {
	if useColor {
		return code
	}
	return ""
}

// isStdoutTTY returns true if stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// heading renders a bold title line.
func heading(format string, args ...any) string {
	return fmt.Sprintf("%s⚙ %s%s\n", paint(colorBold), fmt.Sprintf(format, args...), paint(colorReset))
}

// row renders an indented label/value line. An empty label continues the
// previous row.
func row(label, format string, args ...any) string {
	if label != "" {
		label += ":"
	}
	return fmt.Sprintf("  %-16s %s\n", label, fmt.Sprintf(format, args...))
}

// formatReport formats an evaluation report for terminal display.
//
//	⚙ x-axis (HTD-8M)
//	  Pulleys:         ⌀45.837mm → ⌀183.346mm  (4:1)
//	  Belt:            719.997mm  wrap 130.9°  6.5 teeth in mesh
//	  Stock belt:      90T 720.000mm at C=165.501mm
//	  ...
func formatReport(r *drive.Report) string {
	var sb strings.Builder

	title := r.Name
	if r.Profile != "" {
		title += " (" + r.Profile + ")"
	}
	sb.WriteString(heading("%s", title))
	sb.WriteString(row("Pulleys", "⌀%.3fmm → ⌀%.3fmm  (%g:1)",
		r.DriverPitchDiameter, r.DrivenPitchDiameter, r.SpeedRatio))
	sb.WriteString(row("Belt", "%.3fmm  wrap %.1f°  %.1f teeth in mesh",
		r.BeltLength, r.WrapAngle, r.TeethInMesh))
	sb.WriteString(row("Stock belt", "%s%dT%s %.3fmm at C=%.3fmm",
		paint(colorCyan), r.StockBelt.Teeth, paint(colorReset), r.StockBelt.Length, r.StockBelt.CenterDistance))
	sb.WriteString(row("Speed", "%.0f rpm → %.1f rpm", r.MotorSpeed, r.OutputSpeed))
	if r.LinearSpeed != nil {
		sb.WriteString(row("Linear speed", "%.0f mm/min", *r.LinearSpeed))
	}

	in := r.Inertia
	sb.WriteString(row("Inertia", "%.4e kg·m² total", in.Total))
	for _, part := range []struct {
		name string
		v    float64
	}{
		{"motor", in.Motor},
		{"driver pulley", in.DriverPulley},
		{"driven pulley", in.DrivenPulley},
		{"load", in.Load},
		{"linear", in.Linear},
	} {
		if part.v == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s  %-14s %.4e%s\n", paint(colorGray), part.name, part.v, paint(colorReset)))
	}
	sb.WriteString(row("Inertia ratio", "%.2f:1", r.InertiaRatio))
	sb.WriteString(row("Ramp torque", "%.4f N·m over %gs", r.RampTorque, r.RampTimeSecs))
	if r.HoldTorque > 0 {
		sb.WriteString(row("Hold torque", "%.4f N·m", r.HoldTorque))
	}
	sb.WriteString(row("Peak torque", "%s%.4f N·m%s", paint(colorGreen), r.PeakTorque, paint(colorReset)))

	for _, w := range r.Warnings {
		sb.WriteString(fmt.Sprintf("  %s⚠ %s%s\n", paint(colorYellow), w, paint(colorReset)))
	}
	return sb.String()
}

// profileJSON is the JSON form of a belts.Profile.
type profileJSON struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Pitch       float64   `json:"pitch_mm"`
	Widths      []float64 `json:"widths_mm"`
	StockTeeth  []int     `json:"stock_teeth,omitempty"`
}

func toProfileJSON(all []belts.Profile) []profileJSON {
	out := make([]profileJSON, 0, len(all))
	for _, p := range all {
		pj := profileJSON{
			Name:        p.Name,
			Description: p.Description,
			Pitch:       p.Pitch.Millimeters(),
			StockTeeth:  p.StockTeeth,
		}
		for _, w := range p.Widths {
			pj.Widths = append(pj.Widths, w.Millimeters())
		}
		out = append(out, pj)
	}
	return out
}

// formatProfiles formats the profile catalog as a table.
func formatProfiles(all []belts.Profile) string {
	var sb strings.Builder
	sb.WriteString(heading("%d belt profiles", len(all)))
	for _, p := range all {
		widths := make([]string, len(p.Widths))
		for i, w := range p.Widths {
			widths[i] = fmt.Sprintf("%g", w.Millimeters())
		}
		stock := "any length"
		if n := len(p.StockTeeth); n > 0 {
			stock = fmt.Sprintf("%d stock belts %d–%dT", n, p.StockTeeth[0], p.StockTeeth[n-1])
		}
		sb.WriteString(fmt.Sprintf("  %s%-8s%s %6gmm  widths %-18s %s%s%s\n",
			paint(colorCyan), p.Name, paint(colorReset),
			p.Pitch.Millimeters(), strings.Join(widths, "/")+"mm",
			paint(colorGray), stock, paint(colorReset)))
	}
	return sb.String()
}

// formatDesigns formats stored designs in store order.
func formatDesigns(recs []ports.DesignRecord) string {
	if len(recs) == 0 {
		return "no saved designs\n"
	}
	var sb strings.Builder
	sb.WriteString(heading("%d saved designs", len(recs)))
	for _, r := range recs {
		sb.WriteString(fmt.Sprintf("  %s%-24s%s %s%s%s  %s\n",
			paint(colorCyan), r.Name, paint(colorReset),
			paint(colorGray), r.ID, paint(colorReset),
			r.SavedAt.Local().Format(time.DateTime)))
	}
	return sb.String()
}
