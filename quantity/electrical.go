package quantity

import (
	"fmt"
	"math"
)

// Current is an AC drive current stored as RMS amperes.
//
// Datasheets quote servo currents either as RMS (rated, continuous, most
// phase currents) or as the peak of the sine. There is deliberately no
// constructor that takes "amperes" without saying which: use CurrentRMS for
// Arms values and CurrentPeak for Apeak values, which is divided by √2 before
// storage. Peak is derived on read and never stored.
type Current struct {
	rms float64
}

// CurrentRMS creates a Current from an RMS value in amperes.
func CurrentRMS(arms float64) Current { return Current{rms: arms} }

// CurrentPeak creates a Current from the peak of a sinusoid in amperes.
func CurrentPeak(apeak float64) Current { return Current{rms: apeak / math.Sqrt2} }

// RMS returns the current in Arms.
func (c Current) RMS() float64 { return c.rms }

// MilliRMS returns the current in mArms.
func (c Current) MilliRMS() float64 { return c.rms * 1_000.0 }

// Peak returns the sinusoidal peak in Apeak.
func (c Current) Peak() float64 { return c.rms * math.Sqrt2 }

func (c Current) String() string { return fmt.Sprintf("%g Arms", c.rms) }

// Power is stored in watts.
type Power struct {
	w float64
}

func Watts(v float64) Power { return Power{w: v} }

func Kilowatts(v float64) Power { return Power{w: v * 1_000.0} }

func (p Power) Watts() float64 { return p.w }

func (p Power) Kilowatts() float64 { return p.w / 1_000.0 }

func (p Power) String() string { return fmt.Sprintf("%g W", p.w) }

// Voltage is stored in volts.
type Voltage struct {
	v float64
}

func Volts(v float64) Voltage { return Voltage{v: v} }

func (v Voltage) Volts() float64 { return v.v }

func (v Voltage) String() string { return fmt.Sprintf("%g V", v.v) }
