//    BilingualCorpusJourney
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package grph

import (
	"fmt"
	"io"
	"math"

	"github.com/Margento/BilingualCorpusJourney/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// RenderOptions - how the itinerary chart looks
type RenderOptions struct {
	Title    string
	Subtitle string
	Width    string
	Height   string
	PCA      bool // place the nodes by the first two principal components of their vectors
}

// DefaultRenderOptions - a force layout at the default size
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Title:  vv.MYNAME,
		Width:  vv.DEFAULTCHRTWIDTH,
		Height: vv.DEFAULTCHRTHEIGHT,
	}
}

// RenderItinerary - write an html page holding the itinerary as a graph: one node per stop, one link per step
func RenderItinerary(w io.Writer, g *Graph, stops []int, o RenderOptions) error {
	gr, err := itinerarychart(g, stops, o)
	if err != nil {
		return err
	}
	return gr.Render(w)
}

func itinerarychart(g *Graph, stops []int, o RenderOptions) (*charts.Graph, error) {
	const (
		SERIESNAME    = "itinerary"
		LABELPOSITON  = "right"
		LINECURVINESS = 0
		LINETYPE      = "solid"
		DOTSL         = ", 45%, 45%, 1)"
		FAIL1         = "RenderItinerary(): unknown node %d"
	)

	for _, id := range stops {
		if !g.Has(id) {
			return nil, fmt.Errorf(FAIL1, id)
		}
	}

	round := func(val float64) float32 {
		ratio := math.Pow(10, float64(vv.GRAPHEDGEPRECISION))
		return float32(math.Round(val*ratio) / ratio)
	}

	// one category (and one hue) per language, in order of first appearance
	var langs []string
	cat := make(map[string]int)
	for _, id := range stops {
		l := g.lang(id)
		if _, ok := cat[l]; !ok {
			cat[l] = len(langs)
			langs = append(langs, l)
		}
	}
	hue := func(c int) *opts.ItemStyle {
		return &opts.ItemStyle{Color: fmt.Sprintf("hsla(%d%s", (236+c*140)%360, DOTSL)}
	}

	var xy [][2]float64
	if o.PCA {
		xy = project(g, stops)
	}

	var gnn []opts.GraphNode
	for i, id := range stops {
		nd := opts.GraphNode{
			Name:       nodename(i, g.label(id)),
			Value:      float32(i + 1),
			Category:   cat[g.lang(id)],
			SymbolSize: vv.GRAPHSYMBOLSIZE,
			ItemStyle:  hue(cat[g.lang(id)]),
		}
		if xy != nil {
			nd.X = float32(xy[i][0])
			nd.Y = float32(xy[i][1])
		}
		gnn = append(gnn, nd)
	}

	valuelabel := opts.EdgeLabel{Show: true, FontSize: vv.GRAPHEDGEFONTSIZE, Formatter: "{c}"}
	var gll []opts.GraphLink
	for i := 1; i < len(stops); i++ {
		gll = append(gll, opts.GraphLink{
			Source: nodename(i-1, g.label(stops[i-1])),
			Target: nodename(i, g.label(stops[i])),
			Value:  round(g.Weight(stops[i-1], stops[i])),
			Label:  &valuelabel,
		})
	}

	var cats []*opts.GraphCategory
	for _, l := range langs {
		cats = append(cats, &opts.GraphCategory{Name: l})
	}

	gc := opts.GraphChart{
		Layout:             "force",
		Roam:               true,
		FocusNodeAdjacency: true,
		Categories:         cats,
		Force: &opts.GraphForce{
			Repulsion:  vv.GRAPHREPULSION,
			Gravity:    vv.GRAPHGRAVITY,
			EdgeLength: vv.GRAPHEDGELENGTH,
		},
	}
	if xy != nil {
		gc.Layout = "none"
		gc.Force = nil
	}

	gr := charts.NewGraph()
	gr.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: o.Width, Height: o.Height}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: o.Subtitle}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)
	gr.AddSeries(SERIESNAME, gnn, gll,
		charts.WithLabelOpts(opts.Label{Show: true, Position: LABELPOSITON}),
		charts.WithLineStyleOpts(opts.LineStyle{Curveness: LINECURVINESS, Type: LINETYPE}),
		charts.WithGraphChartOpts(gc),
	)
	return gr, nil
}

// nodename - echarts joins links to nodes by name, so the step number keeps names unique
func nodename(i int, label string) string {
	return fmt.Sprintf("%d. %s", i+1, label)
}

// project - the stops' vectors on their first two principal components, scaled to a 1000 unit box;
// nil when there is nothing to project
func project(g *Graph, stops []int) [][2]float64 {
	const (
		BOX  = 1000.0
		WRN1 = "project(): SVD failed; falling back to the force layout"
	)

	n := len(stops)
	if n < 2 {
		return nil
	}
	d0, _ := g.Doc(stops[0])
	dim := len(d0.Vector)
	if dim < 2 {
		return nil
	}

	x := mat.NewDense(n, dim, nil)
	for i, id := range stops {
		d, _ := g.Doc(id)
		if len(d.Vector) != dim {
			return nil
		}
		x.SetRow(i, d.Vector)
	}
	for j := 0; j < dim; j++ {
		m := stat.Mean(mat.Col(nil, j, x), nil)
		for i := 0; i < n; i++ {
			x.Set(i, j, x.At(i, j)-m)
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		Msg.WARN(WRN1)
		return nil
	}
	var v mat.Dense
	svd.VTo(&v)
	if _, c := v.Dims(); c < 2 {
		return nil
	}

	var pr mat.Dense
	pr.Mul(x, v.Slice(0, dim, 0, 2))

	out := make([][2]float64, n)
	for k := 0; k < 2; k++ {
		col := mat.Col(nil, k, &pr)
		lo, hi := col[0], col[0]
		for _, c := range col {
			lo = math.Min(lo, c)
			hi = math.Max(hi, c)
		}
		span := hi - lo
		for i, c := range col {
			if span == 0 {
				out[i][k] = BOX / 2
				continue
			}
			out[i][k] = (c - lo) / span * BOX
		}
	}
	return out
}
