package holdings

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/muskunits/internal/models"
)

// Line palette for stacked country series.
var chartPalette = []string{
	"2563eb", // blue-600
	"dc2626", // red-600
	"16a34a", // green-600
	"d97706", // amber-600
	"7c3aed", // violet-600
	"0891b2", // cyan-600
}

// RenderChart renders the named countries' holdings as a PNG line
// chart. Countries without at least two points are skipped; fewer than
// one plottable series is an error.
func RenderChart(data models.CountrySeries, countries []string) ([]byte, error) {
	var series []chart.Series

	for i, country := range countries {
		points := data[country]
		if len(points) < 2 {
			continue
		}

		xValues := make([]time.Time, 0, len(points))
		yValues := make([]float64, 0, len(points))
		for _, p := range points {
			date, err := time.Parse("2006-01", p.Date)
			if err != nil {
				continue
			}
			xValues = append(xValues, date)
			yValues = append(yValues, p.Value)
		}
		if len(xValues) < 2 {
			continue
		}

		series = append(series, chart.TimeSeries{
			Name: country,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(chartPalette[i%len(chartPalette)]),
				StrokeWidth: 2.0,
			},
			XValues: xValues,
			YValues: yValues,
		})
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("no plottable series among %d countries", len(countries))
	}

	graph := chart.Chart{
		Title:  "Foreign Holders of U.S. Treasuries",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fB", f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// TopHolders returns the n countries with the largest latest holding.
func TopHolders(data models.CountrySeries, n int) []string {
	type holder struct {
		name  string
		value float64
	}

	holders := make([]holder, 0, len(data))
	for name, points := range data {
		if len(points) == 0 {
			continue
		}
		holders = append(holders, holder{name: name, value: points[len(points)-1].Value})
	}

	sort.Slice(holders, func(i, j int) bool {
		if holders[i].value != holders[j].value {
			return holders[i].value > holders[j].value
		}
		return holders[i].name < holders[j].name
	})

	if n > 0 && len(holders) > n {
		holders = holders[:n]
	}

	names := make([]string, len(holders))
	for i, h := range holders {
		names[i] = h.name
	}
	return names
}
