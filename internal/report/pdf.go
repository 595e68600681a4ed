package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/jonathanwong05/NLP-Library/internal/library"
)

// Options controls chart composition.
type Options struct {
	Title    string
	TopWords int // words per document in the Sankey diagram
}

// Scalar metrics drawn as one bar-chart page each, in this order when
// present. Word count and unique-word sets are covered by the Sankey page.
var barMetrics = []string{
	library.MetricNumWords,
	library.MetricWordRepetition,
	library.MetricReadingEase,
	library.MetricKincaidGrade,
	library.MetricARI,
	library.MetricRhymeDensity,
}

// RenderPDF draws every chart the registry has data for and writes a single
// PDF to outPath.
func RenderPDF(lib *library.Library, outPath string, opts Options) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(opts.Title, true)

	for _, metric := range barMetrics {
		values := lib.FloatMetric(metric)
		if len(values) == 0 {
			continue
		}
		drawBarPage(pdf, metric, lib.LabelsFor(metric), values)
	}

	if pol := lib.FloatMetric(library.MetricPolarity); len(pol) > 0 {
		drawSentimentPage(pdf, lib)
	}

	if edges := TopWordEdges(lib, opts.TopWords); len(edges) > 0 {
		drawSankeyPage(pdf, edges)
	}

	if pdf.PageCount() == 0 {
		return fmt.Errorf("render %s: registry has no chartable metrics", outPath)
	}
	return pdf.OutputFileAndClose(outPath)
}

const (
	pageW    = 297.0 // A4 landscape, mm
	pageH    = 210.0
	marginX  = 20.0
	labelW   = 70.0
	plotTop  = 35.0
	plotBotM = 15.0
	plotH    = pageH - plotTop - plotBotM
)

// nodeGap returns the inter-node padding for a Sankey column. Gaps shrink as
// node counts grow so they never consume more than 40% of the plot height,
// keeping node and ribbon heights positive however many words are drawn.
func nodeGap(n int) float64 {
	if n < 2 {
		return 0
	}
	g := 3.0
	if limit := plotH * 0.4 / float64(n-1); g > limit {
		g = limit
	}
	return g
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginX, 15)
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
}

// drawBarPage renders one horizontal bar chart: a labeled bar per document,
// scaled against the largest absolute value.
func drawBarPage(pdf *gofpdf.Fpdf, metric string, labels []string, values map[string]float64) {
	heading(pdf, chartTitle(metric))

	maxAbs := 0.0
	for _, v := range values {
		if a := abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	plotW := pageW - 2*marginX - labelW
	rowH := (pageH - plotTop - plotBotM) / float64(len(labels))
	if rowH > 14 {
		rowH = 14
	}
	barH := rowH * 0.6

	pdf.SetFillColor(70, 130, 180)
	y := plotTop
	for _, label := range labels {
		v, ok := values[label]
		if !ok {
			continue
		}
		pdf.SetXY(marginX, y+(rowH-barH)/2)
		pdf.CellFormat(labelW-2, barH, truncate(label, 38), "", 0, "R", false, 0, "")
		w := abs(v) / maxAbs * (plotW - 25)
		pdf.Rect(marginX+labelW, y+(rowH-barH)/2, w, barH, "F")
		pdf.SetXY(marginX+labelW+w+1, y+(rowH-barH)/2)
		pdf.CellFormat(24, barH, fmt.Sprintf("%.2f", v), "", 0, "L", false, 0, "")
		y += rowH
	}
}

// drawSentimentPage renders polarity and subjectivity side by side for each
// document. Polarity bars extend left or right of a zero axis.
func drawSentimentPage(pdf *gofpdf.Fpdf, lib *library.Library) {
	heading(pdf, "Sentiment: polarity and subjectivity")

	polarity := lib.FloatMetric(library.MetricPolarity)
	subjectivity := lib.FloatMetric(library.MetricSubjectivity)
	labels := lib.LabelsFor(library.MetricPolarity)

	plotW := pageW - 2*marginX - labelW
	axisX := marginX + labelW + plotW/2
	halfW := plotW/2 - 26
	rowH := (pageH - plotTop - plotBotM) / float64(len(labels))
	if rowH > 16 {
		rowH = 16
	}
	barH := rowH * 0.32

	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(axisX, plotTop-3, axisX, plotTop+float64(len(labels))*rowH)

	y := plotTop
	for _, label := range labels {
		pdf.SetXY(marginX, y)
		pdf.CellFormat(labelW-2, barH, truncate(label, 38), "", 0, "R", false, 0, "")

		p := clamp(polarity[label], -1, 1)
		pdf.SetFillColor(178, 34, 34)
		if p >= 0 {
			pdf.SetFillColor(34, 139, 34)
			pdf.Rect(axisX, y, p*halfW, barH, "F")
		} else {
			pdf.Rect(axisX+p*halfW, y, -p*halfW, barH, "F")
		}
		pdf.SetXY(axisX+halfW+2, y)
		pdf.CellFormat(24, barH, fmt.Sprintf("pol %.2f", p), "", 0, "L", false, 0, "")

		s := clamp(subjectivity[label], 0, 1)
		pdf.SetFillColor(70, 130, 180)
		pdf.Rect(axisX, y+barH+1, s*halfW, barH, "F")
		pdf.SetXY(axisX+halfW+2, y+barH+1)
		pdf.CellFormat(24, barH, fmt.Sprintf("sub %.2f", s), "", 0, "L", false, 0, "")

		y += rowH
	}
}

// drawSankeyPage renders the document -> word flow: document nodes down the
// left edge, word nodes down the right, one ribbon per edge with width
// proportional to the word's count.
func drawSankeyPage(pdf *gofpdf.Fpdf, edges []Edge) {
	heading(pdf, "Top words per document")

	sources, targets, flow := nodes(edges)

	total := 0.0
	for _, e := range edges {
		total += e.Value
	}
	if total == 0 {
		return
	}

	const nodeW = 4.0
	gapS := nodeGap(len(sources))
	gapT := nodeGap(len(targets))
	scaleS := (plotH - gapS*float64(len(sources)-1)) / total
	scaleT := (plotH - gapT*float64(len(targets)-1)) / total
	leftX := marginX + 55
	rightX := pageW - marginX - 40

	// Node positions; offsets advance as ribbons attach.
	srcY := layout(sources, "s:", flow, scaleS, gapS)
	tgtY := layout(targets, "t:", flow, scaleT, gapT)

	pdf.SetAlpha(0.35, "Normal")
	pdf.SetFillColor(100, 100, 160)
	for _, e := range edges {
		sp := srcY[e.Source]
		tp := tgtY[e.Target]
		sh := e.Value * scaleS
		th := e.Value * scaleT
		pts := []gofpdf.PointType{
			{X: leftX + nodeW, Y: sp.next},
			{X: rightX, Y: tp.next},
			{X: rightX, Y: tp.next + th},
			{X: leftX + nodeW, Y: sp.next + sh},
		}
		pdf.Polygon(pts, "F")
		sp.next += sh
		tp.next += th
	}
	pdf.SetAlpha(1, "Normal")

	pdf.SetFillColor(60, 60, 60)
	for _, name := range sources {
		p := srcY[name]
		pdf.Rect(leftX, p.top, nodeW, p.height, "F")
		pdf.SetXY(marginX, p.top+p.height/2-2)
		pdf.CellFormat(53, 4, truncate(name, 30), "", 0, "R", false, 0, "")
	}
	for _, name := range targets {
		p := tgtY[name]
		pdf.Rect(rightX, p.top, nodeW, p.height, "F")
		pdf.SetXY(rightX+nodeW+2, p.top+p.height/2-2)
		pdf.CellFormat(36, 4, truncate(name, 20), "", 0, "L", false, 0, "")
	}
}

type nodePos struct {
	top    float64
	height float64
	next   float64 // attachment offset for the next ribbon
}

func layout(names []string, prefix string, flow map[string]float64, scale, gap float64) map[string]*nodePos {
	out := make(map[string]*nodePos, len(names))
	y := plotTop
	for _, name := range names {
		h := flow[prefix+name] * scale
		out[name] = &nodePos{top: y, height: h, next: y}
		y += h + gap
	}
	return out
}

func chartTitle(metric string) string {
	titles := map[string]string{
		library.MetricNumWords:       "Total words",
		library.MetricWordRepetition: "Word repetition (%)",
		library.MetricReadingEase:    "Flesch reading ease",
		library.MetricKincaidGrade:   "Flesch-Kincaid grade level",
		library.MetricARI:            "Automated readability index",
		library.MetricRhymeDensity:   "Rhyme density",
	}
	if t, ok := titles[metric]; ok {
		return t
	}
	return metric
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
