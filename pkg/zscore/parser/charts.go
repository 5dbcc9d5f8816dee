package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"

	"github.com/Renegatto/line-chart-test-task/pkg/zscore/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":     "Line",
	"line3DChart":   "3DLine",
	"barChart":      "Bar",
	"bar3DChart":    "3DBar",
	"areaChart":     "Area",
	"area3DChart":   "3DArea",
	"pieChart":      "Pie",
	"doughnutChart": "Doughnut",
	"scatterChart":  "XYScatter",
	"radarChart":    "Radar",
}

// IsLineType reports whether a chart type draws its series as lines.
func IsLineType(chartType string) bool {
	return chartType == "Line" || chartType == "3DLine"
}

// ExtractChartSeries lists the series of every chart in an xlsx file,
// keyed by sheet name.
func ExtractChartSeries(xlsxPath string) (map[string][]models.ChartSeries, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pkg := &xlsxPackage{r: &r.Reader}
	sheetFiles, err := pkg.sheetFiles()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.ChartSeries)
	for sheetName, sheetPath := range sheetFiles {
		drawingPath := pkg.related(sheetPath, "xl/drawings", "drawing")
		if drawingPath == "" {
			continue
		}

		drawingXML, err := pkg.read(drawingPath)
		if err != nil || drawingXML == nil {
			continue
		}
		chartPaths := pkg.relationships(drawingPath, "xl/charts", "chart")

		for _, frame := range parseDrawingFrames(drawingXML) {
			chartPath, ok := chartPaths[frame.rID]
			if !ok {
				continue
			}
			chartXML, err := pkg.read(chartPath)
			if err != nil || chartXML == nil {
				continue
			}
			for _, s := range parseChartXML(chartXML) {
				s.Sheet = sheetName
				s.Chart = frame.name
				result[sheetName] = append(result[sheetName], s)
			}
		}
	}

	return result, nil
}

// xlsxPackage reads parts and relationships of an OOXML package.
type xlsxPackage struct {
	r *zip.Reader
}

func (p *xlsxPackage) read(name string) ([]byte, error) {
	for _, f := range p.r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// sheetFiles maps sheet names to worksheet part paths.
func (p *xlsxPackage) sheetFiles() (map[string]string, error) {
	result := make(map[string]string)

	workbookXML, err := p.read("xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result, err
	}

	names := make(map[string]string) // rId -> sheet name
	eachStart(workbookXML, func(se xml.StartElement) {
		if se.Name.Local == "sheet" {
			if name, rID := attr(se, "name"), attr(se, "id"); name != "" && rID != "" {
				names[rID] = name
			}
		}
	})

	for rID, target := range p.relationships("xl/workbook.xml", "xl", "worksheet") {
		if name, ok := names[rID]; ok {
			result[name] = target
		}
	}
	return result, nil
}

// relationships returns rId -> resolved target for relationships of part
// whose type ends in kind.
func (p *xlsxPackage) relationships(part, baseDir, kind string) map[string]string {
	result := make(map[string]string)

	idx := strings.LastIndex(part, "/")
	if idx < 0 {
		return result
	}
	relsPath := part[:idx] + "/_rels" + part[idx:] + ".rels"
	relsXML, err := p.read(relsPath)
	if err != nil || relsXML == nil {
		return result
	}

	eachStart(relsXML, func(se xml.StartElement) {
		if se.Name.Local != "Relationship" {
			return
		}
		if strings.HasSuffix(strings.ToLower(attr(se, "Type")), "/"+kind) {
			result[attr(se, "Id")] = resolveRelativePath(attr(se, "Target"), baseDir)
		}
	})
	return result
}

// related returns the first relationship target of part of the given kind.
func (p *xlsxPackage) related(part, baseDir, kind string) string {
	for _, target := range p.relationships(part, baseDir, kind) {
		return target
	}
	return ""
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		for strings.HasPrefix(target, "../") {
			target = strings.TrimPrefix(target, "../")
		}
		return "xl/" + target
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// drawingFrame is a graphic frame of a drawing that holds a chart.
type drawingFrame struct {
	name string
	rID  string
}

// parseDrawingFrames finds chart frames in drawing XML, in document order.
func parseDrawingFrames(data []byte) []drawingFrame {
	var frames []drawingFrame
	var current *drawingFrame

	eachToken(data, func(token xml.Token) {
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "graphicFrame":
				current = &drawingFrame{}
			case "cNvPr":
				if current != nil {
					current.name = attr(t, "name")
				}
			case "chart":
				if current != nil {
					current.rID = attr(t, "id")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "graphicFrame" && current != nil {
				if current.rID != "" {
					frames = append(frames, *current)
				}
				current = nil
			}
		}
	})

	return frames
}

// parseChartXML returns the series of every plot in a chart part.
func parseChartXML(data []byte) []models.ChartSeries {
	var (
		result    []models.ChartSeries
		title     string
		chartType string
		series    *models.ChartSeries
		path      []string
		text      strings.Builder
	)

	eachToken(data, func(token xml.Token) {
		switch t := token.(type) {
		case xml.StartElement:
			path = append(path, t.Name.Local)
			text.Reset()
			if ct, ok := ChartTypeMap[t.Name.Local]; ok {
				chartType = ct
			}
			if t.Name.Local == "ser" && chartType != "" {
				series = &models.ChartSeries{ChartType: chartType}
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			value := strings.TrimSpace(text.String())
			switch {
			case t.Name.Local == "ser" && series != nil:
				if series.Name == "" {
					series.Name = series.NameRange
				}
				result = append(result, *series)
				series = nil
			case series != nil && t.Name.Local == "f":
				switch {
				case within(path, "tx"):
					series.NameRange = value
				case within(path, "cat"), within(path, "xVal"):
					series.XRange = value
				case within(path, "val"), within(path, "yVal"):
					series.YRange = value
				}
			case series != nil && t.Name.Local == "v" && within(path, "tx"):
				series.Name = value
			case series == nil && t.Name.Local == "t" && within(path, "title") && !within(path, "valAx") && !within(path, "catAx"):
				title += value
			}
			path = path[:len(path)-1]
			text.Reset()
		}
	})

	for i := range result {
		result[i].Title = title
	}
	return result
}

// within reports whether the element path passes through name.
func within(path []string, name string) bool {
	for _, p := range path {
		if p == name {
			return true
		}
	}
	return false
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func eachToken(data []byte, fn func(xml.Token)) {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		fn(token)
	}
}

func eachStart(data []byte, fn func(xml.StartElement)) {
	eachToken(data, func(token xml.Token) {
		if se, ok := token.(xml.StartElement); ok {
			fn(se)
		}
	})
}
