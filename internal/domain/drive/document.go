// Package drive evaluates a belt-driven axis design: a motor driving a load
// through a two-pulley timing belt stage. A design is written as a YAML
// document with unit-suffixed values, resolved against the belt profile
// catalog into typed quantities, and evaluated into a Report.
package drive

import (
	"bytes"
	"fmt"
	"os"

	"github.com/corey/mechsize/belts"
	"github.com/corey/mechsize/quantity"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a design. Quantities are strings such as
// "165.5mm" or "3000rpm"; optional sections may be omitted.
type Document struct {
	Name           string        `yaml:"name"`
	Profile        string        `yaml:"profile,omitempty"`
	Pitch          string        `yaml:"pitch,omitempty"`
	Width          string        `yaml:"width"`
	DriverTeeth    int           `yaml:"driver_teeth"`
	DrivenTeeth    int           `yaml:"driven_teeth"`
	CenterDistance string        `yaml:"center_distance"`
	Motor          MotorDoc      `yaml:"motor"`
	Load           LoadDoc       `yaml:"load"`
	PulleyMass     PulleyMassDoc `yaml:"pulley_mass"`
}

// MotorDoc describes the driving motor.
type MotorDoc struct {
	Inertia     string  `yaml:"inertia"`
	TargetSpeed string  `yaml:"target_speed"`
	RampTime    float64 `yaml:"ramp_time"` // seconds
}

// LoadDoc describes what the driven shaft moves.
type LoadDoc struct {
	Inertia   string `yaml:"inertia,omitempty"`
	Mass      string `yaml:"mass,omitempty"`
	ScrewLead string `yaml:"screw_lead,omitempty"`
	Vertical  bool   `yaml:"vertical,omitempty"`
}

// PulleyMassDoc gives pulley masses for their inertia contribution.
type PulleyMassDoc struct {
	Driver string `yaml:"driver,omitempty"`
	Driven string `yaml:"driven,omitempty"`
}

// ParseDocument decodes a design document. Unknown fields are rejected so
// that typos do not silently drop part of a design.
func ParseDocument(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse design: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("parse design: missing name")
	}
	return &doc, nil
}

// ReadDocument reads and decodes the design document at path.
func ReadDocument(path string) (*Document, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read design: %w", err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, data, nil
}

// Design is a resolved document: every quantity parsed and validated.
type Design struct {
	Name    string
	Profile *belts.Profile // nil when the pitch was given directly

	Driver belts.Pulley
	Driven belts.Pulley
	Width  quantity.Length
	Center quantity.Length

	MotorInertia quantity.MomentOfInertia
	TargetSpeed  quantity.AngularVelocity
	RampSeconds  float64

	LoadInertia   quantity.MomentOfInertia
	LoadMass      quantity.Mass
	ScrewLead     quantity.Length // zero when the load is rotary
	Vertical      bool
	DriverPulleyM quantity.Mass
	DrivenPulleyM quantity.Mass
}

// HasScrew reports whether the driven shaft turns a lead screw.
func (d *Design) HasScrew() bool { return d.ScrewLead.Meters() > 0 }

// Resolve parses the document's quantities, looking up the profile in
// catalog when one is named. An explicit pitch must agree with the profile.
func Resolve(doc *Document, catalog []belts.Profile) (*Design, error) {
	d := &Design{Name: doc.Name, RampSeconds: doc.Motor.RampTime, Vertical: doc.Load.Vertical}

	var pitch quantity.Length
	if doc.Pitch != "" {
		p, err := quantity.ParseLength(doc.Pitch)
		if err != nil {
			return nil, fmt.Errorf("parse pitch: %w", err)
		}
		pitch = p
	}
	if doc.Profile != "" {
		prof, ok := belts.FindProfile(catalog, doc.Profile)
		if !ok {
			return nil, fmt.Errorf("unknown belt profile %q", doc.Profile)
		}
		if doc.Pitch != "" && !belts.SamePitch(pitch, prof.Pitch) {
			return nil, fmt.Errorf("pitch %s does not match profile %s pitch %s", doc.Pitch, prof.Name, prof.Pitch)
		}
		d.Profile = &prof
		pitch = prof.Pitch
	}
	if doc.Pitch == "" && doc.Profile == "" {
		return nil, fmt.Errorf("design needs a profile or a pitch")
	}

	var err error
	if d.Width, err = quantity.ParseLength(doc.Width); err != nil {
		return nil, fmt.Errorf("parse width: %w", err)
	}
	if d.Center, err = quantity.ParseLength(doc.CenterDistance); err != nil {
		return nil, fmt.Errorf("parse center_distance: %w", err)
	}
	if d.Driver, err = belts.NewPulley(pitch, doc.DriverTeeth, d.Width); err != nil {
		return nil, fmt.Errorf("driver pulley: %w", err)
	}
	if d.Driven, err = belts.NewPulley(pitch, doc.DrivenTeeth, d.Width); err != nil {
		return nil, fmt.Errorf("driven pulley: %w", err)
	}

	if d.MotorInertia, err = quantity.ParseMomentOfInertia(doc.Motor.Inertia); err != nil {
		return nil, fmt.Errorf("parse motor.inertia: %w", err)
	}
	if d.TargetSpeed, err = quantity.ParseAngularVelocity(doc.Motor.TargetSpeed); err != nil {
		return nil, fmt.Errorf("parse motor.target_speed: %w", err)
	}

	optional := []struct {
		field string
		raw   string
		parse func(string) error
	}{
		{"load.inertia", doc.Load.Inertia, func(s string) (err error) { d.LoadInertia, err = quantity.ParseMomentOfInertia(s); return }},
		{"load.mass", doc.Load.Mass, func(s string) (err error) { d.LoadMass, err = quantity.ParseMass(s); return }},
		{"load.screw_lead", doc.Load.ScrewLead, func(s string) (err error) { d.ScrewLead, err = quantity.ParseLength(s); return }},
		{"pulley_mass.driver", doc.PulleyMass.Driver, func(s string) (err error) { d.DriverPulleyM, err = quantity.ParseMass(s); return }},
		{"pulley_mass.driven", doc.PulleyMass.Driven, func(s string) (err error) { d.DrivenPulleyM, err = quantity.ParseMass(s); return }},
	}
	for _, o := range optional {
		if o.raw == "" {
			continue
		}
		if err := o.parse(o.raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", o.field, err)
		}
	}

	if d.LoadMass.Kilograms() < 0 || d.DriverPulleyM.Kilograms() < 0 || d.DrivenPulleyM.Kilograms() < 0 {
		return nil, quantity.Invalidf("masses must not be negative")
	}
	if err := quantity.RequirePositive("motor.inertia", d.MotorInertia.KilogramMeters2()); err != nil {
		return nil, err
	}
	if d.LoadInertia.KilogramMeters2() < 0 {
		return nil, quantity.Invalidf("load.inertia must not be negative, got %s", d.LoadInertia)
	}
	if doc.Load.ScrewLead != "" {
		if err := quantity.RequirePositive("load.screw_lead", d.ScrewLead.Meters()); err != nil {
			return nil, err
		}
	}
	if d.LoadMass.Kilograms() > 0 && !d.HasScrew() {
		return nil, fmt.Errorf("load.mass needs load.screw_lead")
	}
	return d, nil
}
