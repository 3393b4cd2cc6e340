package belts

import (
	"fmt"
	"io/fs"
	"math"
	"sort"
	"strings"

	"github.com/corey/mechsize/quantity"
	"gopkg.in/yaml.v3"
)

// Profile is a standard belt tooth profile with its stock sizes.
type Profile struct {
	Name        string
	Description string
	Pitch       quantity.Length
	Widths      []quantity.Length
	StockTeeth  []int // ascending
}

// yamlProfile is the catalog file form of a Profile.
type yamlProfile struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Pitch       string   `yaml:"pitch"`
	Widths      []string `yaml:"widths"`
	StockTeeth  []int    `yaml:"stock_teeth"`
}

// LoadProfiles reads every *.yaml file in dir. Each file holds a list of
// profiles; names must be unique across files (case-insensitive). The result
// is sorted by name.
func LoadProfiles(fsys fs.FS, dir string) ([]Profile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read profiles dir %q: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var all []Profile
	seen := make(map[string]string) // upper-cased name → source file

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := dir + "/" + entry.Name()
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var yps []yamlProfile
		if err := yaml.Unmarshal(data, &yps); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		for _, yp := range yps {
			p, err := convertProfile(yp)
			if err != nil {
				return nil, fmt.Errorf("%s: profile %q: %w", entry.Name(), yp.Name, err)
			}

			key := strings.ToUpper(p.Name)
			if prev, ok := seen[key]; ok {
				return nil, fmt.Errorf("duplicate profile %q (first in %s, again in %s)", p.Name, prev, entry.Name())
			}
			seen[key] = entry.Name()

			all = append(all, p)
		}
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func convertProfile(yp yamlProfile) (Profile, error) {
	if yp.Name == "" {
		return Profile{}, fmt.Errorf("missing name")
	}

	pitch, err := quantity.ParseLength(yp.Pitch)
	if err != nil {
		return Profile{}, fmt.Errorf("pitch: %w", err)
	}
	if err := quantity.RequirePositive("pitch", pitch.Meters()); err != nil {
		return Profile{}, err
	}

	widths := make([]quantity.Length, 0, len(yp.Widths))
	for _, w := range yp.Widths {
		l, err := quantity.ParseLength(w)
		if err != nil {
			return Profile{}, fmt.Errorf("width: %w", err)
		}
		if err := quantity.RequirePositive("width", l.Meters()); err != nil {
			return Profile{}, err
		}
		widths = append(widths, l)
	}
	if len(widths) == 0 {
		return Profile{}, fmt.Errorf("no widths")
	}

	teeth := append([]int(nil), yp.StockTeeth...)
	sort.Ints(teeth)
	for i, z := range teeth {
		if z <= 0 {
			return Profile{}, fmt.Errorf("%w: stock teeth must be > 0, got %d", quantity.ErrNonPositive, z)
		}
		if i > 0 && teeth[i-1] == z {
			return Profile{}, fmt.Errorf("stock teeth %d listed twice", z)
		}
	}

	return Profile{
		Name:        yp.Name,
		Description: yp.Description,
		Pitch:       pitch,
		Widths:      widths,
		StockTeeth:  teeth,
	}, nil
}

// FindProfile returns the profile with the given name, ignoring case.
func FindProfile(all []Profile, name string) (Profile, bool) {
	for _, p := range all {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Profile{}, false
}

// Pulley builds a pulley of this profile.
func (p Profile) Pulley(teeth int, width quantity.Length) (Pulley, error) {
	return NewPulley(p.Pitch, teeth, width)
}

// NearestStockBelt returns the stock belt whose length is closest to length.
// Ties go to the shorter belt. Without a stock list the nearest whole tooth
// count is used instead.
func (p Profile) NearestStockBelt(length, width quantity.Length) (Belt, error) {
	if err := quantity.RequirePositive("length", length.Meters()); err != nil {
		return Belt{}, err
	}
	if err := quantity.RequirePositive("pitch", p.Pitch.Meters()); err != nil {
		return Belt{}, err
	}
	z, _ := p.nearestTeeth(length, func(int) bool { return true })
	return BeltFromTeeth(p.Pitch, width, z)
}

// NearestFittingBelt is NearestStockBelt limited to belts at least
// MinimumLength(a, b) long, so CenterDistance can always place the result.
// It fails with ErrInfeasibleGeometry when every stock belt is too short.
func (p Profile) NearestFittingBelt(length, width quantity.Length, a, b Pulley) (Belt, error) {
	if err := quantity.RequirePositive("length", length.Meters()); err != nil {
		return Belt{}, err
	}
	if err := quantity.RequirePositive("pitch", p.Pitch.Meters()); err != nil {
		return Belt{}, err
	}
	_, minLen, err := tightest(a, b)
	if err != nil {
		return Belt{}, err
	}
	z, ok := p.nearestTeeth(length, func(teeth int) bool {
		return fits(p.Pitch.Mul(float64(teeth)).Meters(), minLen)
	})
	if !ok {
		return Belt{}, fmt.Errorf("%w: no %s stock belt reaches the %gmm minimum wrap",
			ErrInfeasibleGeometry, p.Name, minLen*1e3)
	}
	return BeltFromTeeth(p.Pitch, width, z)
}

// nearestTeeth picks the tooth count closest to length among those accepted
// by ok. Without a stock list it rounds, then steps up until ok holds.
func (p Profile) nearestTeeth(length quantity.Length, ok func(teeth int) bool) (int, bool) {
	want := length.Meters() / p.Pitch.Meters()

	if len(p.StockTeeth) == 0 {
		z := max(1, int(math.Round(want)))
		for !ok(z) {
			z++
		}
		return z, true
	}

	best, found := 0, false
	for _, z := range p.StockTeeth {
		if !ok(z) {
			continue
		}
		if !found || math.Abs(float64(z)-want) < math.Abs(float64(best)-want) {
			best, found = z, true
		}
	}
	return best, found
}
