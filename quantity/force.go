package quantity

import (
	"fmt"
	"strconv"
)

// Force is stored in newtons.
type Force struct {
	n float64
}

// Newtons creates a Force from newtons.
func Newtons(v float64) Force { return Force{n: v} }

// Kilonewtons creates a Force from kilonewtons.
func Kilonewtons(v float64) Force { return Force{n: v * 1_000.0} }

func (f Force) Newtons() float64 { return f.n }

func (f Force) Kilonewtons() float64 { return f.n / 1_000.0 }

func (f Force) Add(o Force) Force { return Force{n: f.n + o.n} }

func (f Force) Sub(o Force) Force { return Force{n: f.n - o.n} }

func (f Force) Mul(k float64) Force { return Force{n: f.n * k} }

func (f Force) Div(k float64) Force { return Force{n: f.n / k} }

func (f Force) String() string { return fmt.Sprintf("%g N", f.n) }

// KilonewtonString formats the force in kN with a fixed number of decimals,
// independent of locale: Newtons(1500).KilonewtonString(1) == "1.5 kN".
func (f Force) KilonewtonString(decimals int) string {
	return strconv.FormatFloat(f.Kilonewtons(), 'f', decimals, 64) + " kN"
}
