package belts

import (
	"testing"
	"testing/fstest"

	"github.com/corey/mechsize/profiles"
	"github.com/corey/mechsize/quantity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfiles_Embedded(t *testing.T) {
	all, err := LoadProfiles(profiles.FS, profiles.Dir)
	require.NoError(t, err)

	names := make([]string, 0, len(all))
	for _, p := range all {
		names = append(names, p.Name)
	}
	for _, want := range []string{"GT2-2M", "GT2-3M", "HTD-3M", "HTD-5M", "HTD-8M", "T5", "T10", "AT5", "AT10", "MXL", "XL"} {
		assert.Contains(t, names, want)
	}
	assert.IsIncreasing(t, names)

	htd, ok := FindProfile(all, "htd-8m")
	require.True(t, ok)
	assert.InDelta(t, 8, htd.Pitch.Millimeters(), 1e-12)
	assert.NotEmpty(t, htd.Widths)
	assert.IsIncreasing(t, htd.StockTeeth)
}

func TestLoadProfiles_StockTeethPositive(t *testing.T) {
	all, err := LoadProfiles(profiles.FS, profiles.Dir)
	require.NoError(t, err)

	for _, p := range all {
		for _, z := range p.StockTeeth {
			assert.Greater(t, z, 0, "profile %s", p.Name)
		}
	}
}

func TestLoadProfiles_RejectsDuplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"p/a.yaml": {Data: []byte("- name: HTD-8M\n  pitch: 8mm\n  widths: [20mm]\n")},
		"p/b.yaml": {Data: []byte("- name: htd-8m\n  pitch: 8mm\n  widths: [30mm]\n")},
	}
	_, err := LoadProfiles(fsys, "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate profile")
}

func TestLoadProfiles_InvalidEntries(t *testing.T) {
	tests := map[string]string{
		"missing name":   "- pitch: 8mm\n  widths: [20mm]\n",
		"bad pitch":      "- name: X\n  pitch: eight\n  widths: [20mm]\n",
		"negative pitch": "- name: X\n  pitch: -8mm\n  widths: [20mm]\n",
		"no widths":      "- name: X\n  pitch: 8mm\n",
		"zero teeth":     "- name: X\n  pitch: 8mm\n  widths: [20mm]\n  stock_teeth: [0]\n",
		"repeated teeth": "- name: X\n  pitch: 8mm\n  widths: [20mm]\n  stock_teeth: [90, 90]\n",
		"not a list":     "name: X\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			fsys := fstest.MapFS{"p/x.yaml": {Data: []byte(doc)}}
			_, err := LoadProfiles(fsys, "p")
			assert.Error(t, err)
		})
	}
}

func TestLoadProfiles_SkipsOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"p/README.md": {Data: []byte("# not yaml")},
		"p/t.yaml":    {Data: []byte("- name: T5\n  pitch: 5mm\n  widths: [10mm]\n")},
	}
	all, err := LoadProfiles(fsys, "p")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "T5", all[0].Name)
}

func TestProfile_NearestStockBelt(t *testing.T) {
	p := Profile{Name: "HTD-8M", Pitch: mm(8), Widths: []quantity.Length{mm(30)}, StockTeeth: []int{80, 90, 100}}

	b, err := p.NearestStockBelt(mm(719.997), mm(30))
	require.NoError(t, err)
	assert.Equal(t, 90, b.Teeth())

	b, err = p.NearestStockBelt(mm(760), mm(30))
	require.NoError(t, err)
	assert.Equal(t, 90, b.Teeth(), "ties go to the shorter belt")

	b, err = p.NearestStockBelt(mm(5000), mm(30))
	require.NoError(t, err)
	assert.Equal(t, 100, b.Teeth())

	_, err = p.NearestStockBelt(mm(0), mm(30))
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
}

func TestProfile_NearestStockBelt_NoStockList(t *testing.T) {
	p := Profile{Name: "custom", Pitch: mm(5)}
	b, err := p.NearestStockBelt(mm(512), mm(15))
	require.NoError(t, err)
	assert.Equal(t, 102, b.Teeth())
}

func TestProfile_NearestFittingBelt(t *testing.T) {
	p := Profile{Name: "HTD-8M", Pitch: mm(8), StockTeeth: []int{48, 60, 70, 75, 80, 90}}
	a, b := htd8(t, 18), htd8(t, 72)

	// 576.31mm at C=70mm: 70T is nearest but shorter than the 576mm
	// minimum wrap, so 75T is the nearest belt that fits.
	nearest, err := p.NearestStockBelt(mm(576.31), mm(30))
	require.NoError(t, err)
	assert.Equal(t, 70, nearest.Teeth())

	belt, err := p.NearestFittingBelt(mm(576.31), mm(30), a, b)
	require.NoError(t, err)
	assert.Equal(t, 75, belt.Teeth())

	c, err := CenterDistance(belt, a, b)
	require.NoError(t, err)
	assert.InDelta(t, 93.2518, c.Millimeters(), 1e-3)

	// Far from the minimum the result matches NearestStockBelt.
	belt, err = p.NearestFittingBelt(mm(719.997), mm(30), a, b)
	require.NoError(t, err)
	assert.Equal(t, 90, belt.Teeth())
}

func TestProfile_NearestFittingBelt_NoneFits(t *testing.T) {
	p := Profile{Name: "HTD-8M", Pitch: mm(8), StockTeeth: []int{48, 60, 70}}
	_, err := p.NearestFittingBelt(mm(576.31), mm(30), htd8(t, 18), htd8(t, 72))
	assert.ErrorIs(t, err, ErrInfeasibleGeometry)
	assert.ErrorIs(t, err, quantity.ErrInvalidArgument)
}

func TestProfile_NearestFittingBelt_NoStockList(t *testing.T) {
	p := Profile{Name: "custom", Pitch: mm(8)}
	a, b := htd8(t, 18), htd8(t, 72)

	belt, err := p.NearestFittingBelt(mm(560), mm(30), a, b)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, belt.Teeth(), 72)

	_, err = CenterDistance(belt, a, b)
	assert.NoError(t, err)
}

func TestProfile_NearestStockBelt_ZeroPitch(t *testing.T) {
	_, err := Profile{Name: "broken"}.NearestStockBelt(mm(100), mm(10))
	assert.ErrorIs(t, err, quantity.ErrNonPositive)
}

func TestProfile_Pulley(t *testing.T) {
	p := Profile{Name: "HTD-8M", Pitch: mm(8)}
	pl, err := p.Pulley(18, mm(30))
	require.NoError(t, err)
	assert.InDelta(t, 45.84, pl.PitchDiameter().Millimeters(), 0.01)
}
