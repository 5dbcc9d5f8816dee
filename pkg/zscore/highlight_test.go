package zscore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/calc"
	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

type page struct {
	name string
	uv   float64
	pv   float64
}

func pages() []page {
	return []page{
		{"Page A", 4000, 2400},
		{"Page B", 3000, 1398},
		{"Page C", 2000, 9800},
		{"Page D", 2780, 3908},
		{"Page E", 1890, 4800},
		{"Page F", 2390, 3800},
		{"Page G", 3490, 4300},
	}
}

func pvConfig() Config[page] {
	opts := DefaultOptions().WithField("pv")
	return NewConfig(opts,
		func(p page) float64 { return p.pv },
		func(p page) string { return p.name },
	)
}

func TestHighlight(t *testing.T) {
	h := Highlight(pages(), pvConfig())

	assert.InDelta(t, 1867.488, h.Bounds().Lower, 0.001)
	assert.InDelta(t, 6819.941, h.Bounds().Upper, 0.001)
	assert.Equal(t, models.ValueRange{Min: 1398, Max: 9800}, h.Range())
	assert.Equal(t, []int{1, 2}, h.Deviant())
	assert.Equal(t, "url(#zScoreLinePv)", h.LineStrokeRef())

	g := h.Gradient()
	assert.Equal(t, "zScoreLinePv", g.ID)
	assert.Equal(t, [4]float64{0, 1, 0, 0}, [4]float64{g.X1, g.Y1, g.X2, g.Y2})
	require.Len(t, g.Stops, 4)
	assert.Equal(t, []string{"red", "#82ca9d", "#82ca9d", "red"},
		[]string{g.Stops[0].Color, g.Stops[1].Color, g.Stops[2].Color, g.Stops[3].Color})
	assert.InDelta(t, 0.055878, float64(g.Stops[0].Offset), 1e-6)
	assert.Equal(t, g.Stops[0].Offset, g.Stops[1].Offset)
	assert.InDelta(t, 0.645316, float64(g.Stops[2].Offset), 1e-6)
	assert.Equal(t, g.Stops[2].Offset, g.Stops[3].Offset)
}

func TestHighlightPointColors(t *testing.T) {
	h := Highlight(pages(), pvConfig())

	tests := []struct {
		value  float64
		normal models.PointStyle
		active models.PointStyle
	}{
		{9800, models.PointStyle{Fill: "red", Stroke: "red"}, models.PointStyle{Fill: "red"}},
		{1398, models.PointStyle{Fill: "red", Stroke: "red"}, models.PointStyle{Fill: "red"}},
		{3908, models.PointStyle{Fill: "white", Stroke: "#82ca9d"}, models.PointStyle{Fill: "blue"}},
		{h.Bounds().Upper, models.PointStyle{Fill: "white", Stroke: "#82ca9d"}, models.PointStyle{Fill: "blue"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.normal, h.PointColor(tt.value), "PointColor(%v)", tt.value)
		assert.Equal(t, tt.active, h.ActivePointColor(tt.value), "ActivePointColor(%v)", tt.value)
	}
}

func TestHighlightPointColorAndActiveAgree(t *testing.T) {
	h := Highlight(pages(), pvConfig())

	for v := 0.0; v <= 12000; v += 13 {
		deviant := h.IsDeviant(v)
		assert.Equal(t, deviant, h.PointColor(v).Fill == "red", "v=%v", v)
		assert.Equal(t, deviant, h.ActivePointColor(v).Fill == "red", "v=%v", v)
	}
}

func TestHighlightNormalStrokeDefaultsToPrimary(t *testing.T) {
	opts := DefaultOptions().WithField("pv")
	opts.NormalStroke = ""
	cfg := NewConfig(opts, func(p page) float64 { return p.pv }, nil)

	h := Highlight(pages(), cfg)
	assert.Equal(t, "red", h.PointColor(3908).Stroke)
}

func TestHighlightPoints(t *testing.T) {
	points := Highlight(pages(), pvConfig()).Points()
	require.Len(t, points, 7)

	assert.Equal(t, "Page C", points[2].Label)
	assert.Equal(t, 9800.0, points[2].Value)
	assert.True(t, points[2].Deviant)
	require.NotNil(t, points[2].ZScore)
	assert.Greater(t, *points[2].ZScore, 1.0)

	assert.Equal(t, "Page D", points[3].Label)
	assert.False(t, points[3].Deviant)
	assert.Equal(t, models.PointStyle{Fill: "blue"}, points[3].ActiveStyle)
}

func TestHighlightIsIdempotent(t *testing.T) {
	records := pages()
	first := NewReport(Highlight(records, pvConfig()), "pv", calc.Population)
	second := NewReport(Highlight(records, pvConfig()), "pv", calc.Population)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestHighlightDoesNotMutateInput(t *testing.T) {
	records := pages()
	h := Highlight(records, pvConfig())

	assert.Equal(t, pages(), records)

	series := h.Series()
	series[0] = -1
	assert.Equal(t, 2400.0, h.Series()[0])

	g := h.Gradient()
	g.Stops[0].Color = "black"
	assert.Equal(t, "red", h.Gradient().Stops[0].Color)
}

func TestHighlightConstantSeries(t *testing.T) {
	records := []page{{pv: 5}, {pv: 5}, {pv: 5}}
	h := Highlight(records, pvConfig())

	assert.Empty(t, h.Deviant())
	for _, p := range h.Points() {
		assert.False(t, p.Deviant)
		assert.Nil(t, p.ZScore)
	}
}

func TestHighlightEmptySeries(t *testing.T) {
	h := Highlight([]page{}, pvConfig())

	assert.Equal(t, models.ValueRange{}, h.Range())
	assert.Empty(t, h.Deviant())
	assert.Empty(t, h.Points())
	assert.Len(t, h.Gradient().Stops, 4)
}

func TestHighlightSample(t *testing.T) {
	opts := DefaultOptions().WithField("pv")
	opts.Deviation = calc.Sample
	cfg := NewConfig(opts, func(p page) float64 { return p.pv }, nil)

	h := Highlight(pages(), cfg)
	assert.InDelta(t, 2674.631, h.Bounds().StdDev, 0.001)
	assert.Equal(t, []int{1, 2}, h.Deviant())
}
