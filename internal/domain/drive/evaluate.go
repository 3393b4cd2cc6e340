package drive

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/corey/mechsize/belts"
	"github.com/corey/mechsize/mechanics"
	"github.com/corey/mechsize/quantity"
)

// Thresholds behind report warnings.
const (
	MinTeethInMesh  = 6.0
	MaxInertiaRatio = 10.0
)

// DefaultScrewEfficiency is used when Options leaves it unset.
const DefaultScrewEfficiency = 0.9

// Options tune an evaluation.
type Options struct {
	ScrewEfficiency float64 // (0, 1]; zero means DefaultScrewEfficiency
}

// Report is the result of evaluating a design. Lengths are in millimetres,
// inertias in kg·m², torques in N·m and speeds in rpm.
type Report struct {
	Name    string `json:"name"`
	Profile string `json:"profile,omitempty"`

	DriverPitchDiameter float64 `json:"driver_pitch_diameter_mm"`
	DrivenPitchDiameter float64 `json:"driven_pitch_diameter_mm"`
	SpeedRatio          float64 `json:"speed_ratio"`
	BeltLength          float64 `json:"belt_length_mm"`
	WrapAngle           float64 `json:"wrap_angle_deg"`
	TeethInMesh         float64 `json:"teeth_in_mesh"`

	StockBelt StockBelt `json:"stock_belt"`

	Inertia      InertiaBreakdown `json:"inertia"`
	InertiaRatio float64          `json:"inertia_ratio"`

	MotorSpeed   float64  `json:"motor_speed_rpm"`
	OutputSpeed  float64  `json:"output_speed_rpm"`
	LinearSpeed  *float64 `json:"linear_speed_mm_per_min,omitempty"`
	RampTorque   float64  `json:"ramp_torque_nm"`
	HoldTorque   float64  `json:"hold_torque_nm"`
	PeakTorque   float64  `json:"peak_torque_nm"`
	RampTimeSecs float64  `json:"ramp_time_s"`

	Warnings []string `json:"warnings,omitempty"`
}

// StockBelt is the nearest catalog belt and where it puts the pulleys.
type StockBelt struct {
	Teeth          int     `json:"teeth"`
	Length         float64 `json:"length_mm"`
	CenterDistance float64 `json:"center_distance_mm"`
}

// InertiaBreakdown lists each contribution as seen by the motor shaft.
type InertiaBreakdown struct {
	Motor        float64 `json:"motor"`
	DriverPulley float64 `json:"driver_pulley"`
	DrivenPulley float64 `json:"driven_pulley"`
	Load         float64 `json:"load"`
	Linear       float64 `json:"linear"`
	Total        float64 `json:"total"`
}

// Evaluate sizes the belt stage of d and the motor torque needed to ramp
// the whole drive to its target speed.
func Evaluate(d *Design, opts Options) (*Report, error) {
	eff := opts.ScrewEfficiency
	if eff == 0 {
		eff = DefaultScrewEfficiency
	}

	r := &Report{
		Name:                d.Name,
		DriverPitchDiameter: d.Driver.PitchDiameter().Millimeters(),
		DrivenPitchDiameter: d.Driven.PitchDiameter().Millimeters(),
		MotorSpeed:          d.TargetSpeed.RPM(),
		RampTimeSecs:        d.RampSeconds,
	}
	if d.Profile != nil {
		r.Profile = d.Profile.Name
	}

	if err := r.beltStage(d); err != nil {
		return nil, err
	}

	n, err := belts.SpeedRatio(d.Driver, d.Driven)
	if err != nil {
		return nil, fmt.Errorf("speed ratio: %w", err)
	}
	r.SpeedRatio = n.Value()
	// Driven-shaft quantities reach the motor through the inverse ratio.
	toMotor := n.Inverse()

	driverJ := mechanics.CylinderInertia(d.DriverPulleyM, d.Driver)
	drivenJ := mechanics.CylinderInertia(d.DrivenPulleyM, d.Driven)
	var linearJ quantity.MomentOfInertia
	if d.HasScrew() {
		if linearJ, err = mechanics.LinearInertia(d.LoadMass, d.ScrewLead); err != nil {
			return nil, fmt.Errorf("linear inertia: %w", err)
		}
	}

	total := mechanics.TotalInertia(
		mechanics.Term(d.MotorInertia, quantity.DirectDrive),
		mechanics.Term(driverJ, quantity.DirectDrive),
		mechanics.Term(drivenJ, toMotor),
		mechanics.Term(d.LoadInertia, toMotor),
		mechanics.Term(linearJ, toMotor),
	)
	r.Inertia = InertiaBreakdown{
		Motor:        d.MotorInertia.KilogramMeters2(),
		DriverPulley: driverJ.KilogramMeters2(),
		DrivenPulley: mechanics.ReferredTo(drivenJ, toMotor).KilogramMeters2(),
		Load:         mechanics.ReferredTo(d.LoadInertia, toMotor).KilogramMeters2(),
		Linear:       mechanics.ReferredTo(linearJ, toMotor).KilogramMeters2(),
		Total:        total.KilogramMeters2(),
	}
	if m := d.MotorInertia.KilogramMeters2(); m > 0 {
		r.InertiaRatio = (total.KilogramMeters2() - m) / m
	}

	ramp, err := mechanics.RequiredTorqueForRamp(total, d.TargetSpeed, d.RampSeconds)
	if err != nil {
		return nil, fmt.Errorf("ramp torque: %w", err)
	}
	r.RampTorque = ramp.NewtonMeters()

	output := d.TargetSpeed.DivRatio(n)
	r.OutputSpeed = output.RPM()
	if d.HasScrew() {
		v := output.RadiansPerSecond() / (2 * math.Pi) * d.ScrewLead.Meters()
		mmPerMin := quantity.MetersPerSecond(v).MillimetersPerMinute()
		r.LinearSpeed = &mmPerMin

		if d.Vertical {
			weight := d.LoadMass.MulAcceleration(mechanics.EarthGravity)
			hold, err := mechanics.ForceToTorqueForScrew(weight, d.ScrewLead, eff)
			if err != nil {
				return nil, fmt.Errorf("holding torque: %w", err)
			}
			r.HoldTorque = hold.MulRatio(toMotor).NewtonMeters()
		}
	}
	r.PeakTorque = r.RampTorque + r.HoldTorque

	if r.TeethInMesh < MinTeethInMesh {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("only %.1f teeth in mesh on the smaller pulley (want >= %g)", r.TeethInMesh, MinTeethInMesh))
	}
	if r.InertiaRatio > MaxInertiaRatio {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("load to motor inertia ratio %.1f exceeds %g:1", r.InertiaRatio, MaxInertiaRatio))
	}
	return r, nil
}

// beltStage fills in the belt geometry at the design's center distance and
// picks the nearest stock belt long enough to fit the pulleys.
func (r *Report) beltStage(d *Design) error {
	length, err := belts.Length(d.Center, d.Driver, d.Driven)
	if err != nil {
		return fmt.Errorf("belt length: %w", err)
	}
	wrap, err := belts.WrapAngle(d.Center, d.Driver, d.Driven)
	if err != nil {
		return fmt.Errorf("wrap angle: %w", err)
	}
	mesh, err := belts.TeethInMesh(d.Center, d.Driver, d.Driven)
	if err != nil {
		return fmt.Errorf("teeth in mesh: %w", err)
	}
	r.BeltLength = length.Millimeters()
	r.WrapAngle = wrap * 180 / math.Pi
	r.TeethInMesh = mesh

	prof := belts.Profile{Name: "custom", Pitch: d.Driver.Pitch()}
	if d.Profile != nil {
		prof = *d.Profile
	}
	stock, err := prof.NearestFittingBelt(length, d.Width, d.Driver, d.Driven)
	if err != nil {
		return fmt.Errorf("stock belt: %w", err)
	}
	center, err := belts.CenterDistance(stock, d.Driver, d.Driven)
	if err != nil {
		return fmt.Errorf("stock belt %d teeth: %w", stock.Teeth(), err)
	}
	r.StockBelt = StockBelt{
		Teeth:          stock.Teeth(),
		Length:         stock.Length().Millimeters(),
		CenterDistance: center.Millimeters(),
	}
	return nil
}

// EncodeJSON writes r as indented JSON.
func EncodeJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteJSON writes the report as JSON to a file.
func WriteJSON(path string, r *Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}
