package output

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/viant/gpmldiff/model"
)

const (
	balloonColumns  = 3
	balloonSpacer   = 10
	centerMargin    = 400
	balloonMargin   = 5
	balloonWidth    = centerMargin/balloonColumns - balloonMargin
	headerHeight    = 32
	headerFontSize  = 16
	hintFontSize    = 12
	hintLineHeight  = 15
	zoom            = 0.7
	boardPadding    = 20
	defaultNodeSize = 20

	insertColor = "green"
	deleteColor = "red"
	modifyColor = "yellow"
)

// SVG renders both pathways side by side, highlighting inserted, deleted and modified elements
type SVG struct {
	writer     io.Writer
	old        *model.Pathway
	new        *model.Pathway
	oldTitle   string
	newTitle   string
	highlights map[*model.Element]string
	hints      []*hint
	current    *hint
}

type hint struct {
	old, new *model.Element
	topics   []string
	x1, y1   int
	x2, y2   int
	midY     int
}

func (h *hint) add(topic string) {
	for _, candidate := range h.topics {
		if candidate == topic {
			return
		}
	}
	h.topics = append(h.topics, topic)
}

func (h *hint) text() string {
	return strings.Join(append(append([]string{}, h.topics...), "changed"), ", ")
}

type bounds struct {
	x, y, width, height float64
	line                bool
}

func (b bounds) center() (float64, float64) {
	if b.line {
		return (b.x + b.width) / 2, (b.y + b.height) / 2
	}
	return b.x + b.width/2, b.y + b.height/2
}

func (s *SVG) Insert(element *model.Element) {
	s.highlights[element] = insertColor
}

func (s *SVG) Delete(element *model.Element) {
	s.highlights[element] = deleteColor
}

func (s *SVG) ModifyStart(old, new *model.Element) {
	s.current = &hint{old: old, new: new}
}

func (s *SVG) ModifyAttr(attr, old, new string) {
	switch attr {
	case "CenterX", "CenterY", "StartX", "StartY", "EndX", "EndY", "RelX", "RelY":
		s.current.add("position")
	case "Width", "Height":
		s.current.add("size")
	default:
		s.current.add(attr)
	}
}

func (s *SVG) ModifyEnd() {
	s.highlights[s.current.old] = modifyColor
	s.highlights[s.current.new] = modifyColor
	s.hints = append(s.hints, s.current)
	s.current = nil
}

// Flush renders the canvas
func (s *SVG) Flush() error {
	oldWidth, oldHeight := s.boardSize(s.old)
	newWidth, newHeight := s.boardSize(s.new)
	deltaX := oldWidth
	buffer := &bytes.Buffer{}
	canvas := svg.New(buffer)
	canvas.Start(oldWidth+newWidth+centerMargin, max(oldHeight, newHeight)+headerHeight)
	canvas.Text(oldWidth/2, headerFontSize+4, "OLD: "+s.oldTitle, fmt.Sprintf("text-anchor:middle;font-size:%dpx", headerFontSize))
	canvas.Text(deltaX+centerMargin+newWidth/2, headerFontSize+4, "NEW: "+s.newTitle, fmt.Sprintf("text-anchor:middle;font-size:%dpx", headerFontSize))

	for _, h := range s.hints {
		x1, y1 := s.bounds(s.old, h.old).center()
		x2, y2 := s.bounds(s.new, h.new).center()
		h.x1, h.y1 = int(x1*zoom), int(y1*zoom)+headerHeight
		h.x2, h.y2 = int(x2*zoom)+deltaX+centerMargin, int(y2*zoom)+headerHeight
	}
	sort.SliceStable(s.hints, func(i, j int) bool {
		return s.hints[i].y1+s.hints[i].y2 < s.hints[j].y1+s.hints[j].y2
	})
	s.drawHints(canvas, deltaX)

	canvas.Gtransform(fmt.Sprintf("translate(0,%d)", headerHeight))
	s.drawPathway(canvas, s.old)
	canvas.Gend()
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", deltaX+centerMargin, headerHeight))
	s.drawPathway(canvas, s.new)
	canvas.Gend()
	canvas.End()
	if _, err := buffer.WriteTo(s.writer); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func (s *SVG) drawHints(canvas *svg.SVG, deltaX int) {
	var column int
	var positions [balloonColumns]int
	for i := range positions {
		positions[i] = headerHeight
	}
	charsPerLine := max(1, (balloonWidth-2*balloonMargin)*2/hintFontSize)
	for _, h := range s.hints {
		x := deltaX + (balloonMargin+balloonWidth)*column
		top := positions[column]
		for _, line := range wrap(h.text(), charsPerLine) {
			positions[column] += hintLineHeight
			canvas.Text(x+balloonMargin, positions[column], line, fmt.Sprintf("font-size:%dpx", hintFontSize))
		}
		bottom := positions[column] + balloonMargin
		h.midY = top + (bottom-top)/2
		positions[column] = bottom + balloonSpacer
		canvas.Roundrect(x, top, balloonWidth, bottom-top, balloonMargin, balloonMargin, "fill:none;stroke:black")
		column = (column + 1) % balloonColumns
	}
	for _, h := range s.hints {
		canvas.Line(h.x1, h.y1, deltaX, h.midY, "stroke:"+modifyColor)
		canvas.Line(deltaX+centerMargin, h.midY, h.x2, h.y2, "stroke:"+modifyColor)
	}
}

func (s *SVG) drawPathway(canvas *svg.SVG, pathway *model.Pathway) {
	for _, element := range pathway.Elements {
		switch element.ObjectType {
		case model.MappInfo, model.InfoBox, model.Legend:
			continue
		}
		b := s.bounds(pathway, element)
		stroke := "black"
		fill := "none"
		if highlight, ok := s.highlights[element]; ok {
			stroke, fill = highlight, highlight
		}
		if b.line {
			canvas.Line(scale(b.x), scale(b.y), scale(b.width), scale(b.height), fmt.Sprintf("stroke:%s;stroke-width:%d", stroke, 1+btoi(fill != "none")))
			continue
		}
		style := fmt.Sprintf("stroke:%s;fill:%s;fill-opacity:0.3", stroke, fill)
		x, y, w, h := scale(b.x), scale(b.y), max(1, scale(b.width)), max(1, scale(b.height))
		switch {
		case element.ObjectType == model.Group:
			canvas.Rect(x, y, w, h, style+";stroke-dasharray:4,2")
		case element.Text(model.ShapeTypeProperty) == "Oval" || element.ObjectType == model.State:
			canvas.Ellipse(x+w/2, y+h/2, w/2, h/2, style)
		default:
			canvas.Rect(x, y, w, h, style)
		}
		if label := element.Text(model.TextLabel); label != "" && element.ObjectType != model.Group {
			canvas.Text(x+w/2, y+h/2+4, label, "text-anchor:middle;font-size:10px")
		}
	}
}

// bounds returns element bounds in pathway coordinates, line bounds hold start and end points
func (s *SVG) bounds(pathway *model.Pathway, element *model.Element) bounds {
	value := func(p model.Property) float64 {
		v, _ := element.Float(p)
		return v
	}
	switch {
	case element.ObjectType.IsLine():
		return bounds{x: value(model.StartX), y: value(model.StartY), width: value(model.EndX), height: value(model.EndY), line: true}
	case element.ObjectType == model.State:
		w, h := value(model.Width), value(model.Height)
		if parent := pathway.ElementByID(element.Text(model.GraphRef)); parent != nil && parent.ObjectType != model.State {
			p := s.bounds(pathway, parent)
			cx, cy := p.center()
			cx += value(model.RelX) * p.width / 2
			cy += value(model.RelY) * p.height / 2
			return bounds{x: cx - w/2, y: cy - h/2, width: w, height: h}
		}
		return bounds{width: w, height: h}
	case element.ObjectType == model.Group:
		return s.groupBounds(pathway, element)
	}
	w, h := value(model.Width), value(model.Height)
	if w == 0 && h == 0 {
		w, h = defaultNodeSize, defaultNodeSize
	}
	return bounds{x: value(model.CenterX) - w/2, y: value(model.CenterY) - h/2, width: w, height: h}
}

func (s *SVG) groupBounds(pathway *model.Pathway, group *model.Element) bounds {
	groupID := group.Text(model.GroupID)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, member := range pathway.Elements {
		if groupID == "" || member == group || member.Text(model.GroupRef) != groupID || member.ObjectType == model.Group {
			continue
		}
		b := s.bounds(pathway, member)
		x1, y1, x2, y2 := b.x, b.y, b.x+b.width, b.y+b.height
		if b.line {
			x1, x2 = math.Min(b.x, b.width), math.Max(b.x, b.width)
			y1, y2 = math.Min(b.y, b.height), math.Max(b.y, b.height)
		}
		minX, minY = math.Min(minX, x1), math.Min(minY, y1)
		maxX, maxY = math.Max(maxX, x2), math.Max(maxY, y2)
	}
	if math.IsInf(minX, 1) {
		return bounds{}
	}
	return bounds{x: minX - 4, y: minY - 4, width: maxX - minX + 8, height: maxY - minY + 8}
}

// boardSize returns zoomed board size, falls back to element extent
func (s *SVG) boardSize(pathway *model.Pathway) (int, int) {
	var width, height float64
	if info := pathway.MappInfo(); info != nil {
		width, _ = info.Float(model.BoardWidth)
		height, _ = info.Float(model.BoardHeight)
	}
	for _, element := range pathway.Elements {
		if element.ObjectType == model.MappInfo {
			continue
		}
		b := s.bounds(pathway, element)
		right, bottom := b.x+b.width, b.y+b.height
		if b.line {
			right, bottom = math.Max(b.x, b.width), math.Max(b.y, b.height)
		}
		width, height = math.Max(width, right+boardPadding), math.Max(height, bottom+boardPadding)
	}
	return max(balloonWidth, scale(width)), max(balloonWidth, scale(height))
}

func scale(v float64) int {
	return int(math.Round(v * zoom))
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

func wrap(text string, width int) []string {
	var result []string
	line := ""
	for _, word := range strings.Fields(text) {
		if line != "" && len(line)+1+len(word) > width {
			result = append(result, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	if line != "" {
		result = append(result, line)
	}
	return result
}

// NewSVG creates svg outputter for the compared pathways, titles are usually file names
func NewSVG(writer io.Writer, old, new *model.Pathway, oldTitle, newTitle string) *SVG {
	return &SVG{
		writer:     writer,
		old:        old,
		new:        new,
		oldTitle:   oldTitle,
		newTitle:   newTitle,
		highlights: map[*model.Element]string{},
	}
}
