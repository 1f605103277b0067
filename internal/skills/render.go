package skills

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/clock"
)

const (
	DefaultSelector     = ".skill-tag"
	DefaultAnimateDelay = 200 * time.Millisecond
)

// Report summarises one render pass.
type Report struct {
	Widgets []Widget
	Skipped int
}

// Renderer replaces skill tags in a document with progress-bar widgets.
type Renderer struct {
	Table        *Table
	Selector     string
	AnimateDelay time.Duration
	Clock        clock.Clock
	Logger       *zap.Logger
}

// Render swaps every matching tag for a widget whose fill starts at zero
// width. Tags without a label span are left alone and counted as skipped.
func (r *Renderer) Render(doc *goquery.Document) Report {
	var report Report
	doc.Find(r.TagSelector()).Each(func(_ int, tag *goquery.Selection) {
		label := tag.Find("span").First()
		if label.Length() == 0 {
			report.Skipped++
			r.Logger.Warn("Skill tag has no label, leaving it unchanged",
				zap.String("text", strings.TrimSpace(tag.Text())))
			return
		}

		name := strings.TrimSpace(label.Text())
		pct, known := r.Table.Lookup(name)
		w := Widget{Label: name, Percent: pct, Known: known}

		var icon string
		if i := tag.Find("i").First(); i.Length() > 0 {
			icon, _ = goquery.OuterHtml(i)
		}

		markup, err := WidgetHTML(w, icon)
		if err != nil {
			report.Skipped++
			r.Logger.Error("Render skill widget", zap.String("skill", name), zap.Error(err))
			return
		}
		tag.ReplaceWithHtml(markup)
		report.Widgets = append(report.Widgets, w)
	})

	r.Logger.Debug("Skill tags converted",
		zap.Int("widgets", len(report.Widgets)),
		zap.Int("skipped", report.Skipped))
	return report
}

// Fill is one progress-bar fill.
type Fill interface {
	TargetWidth() (string, bool)
	SetWidth(width string)
}

// AnimateFills moves every fill that has a target to that width and returns
// how many were moved.
func AnimateFills(fills []Fill) int {
	n := 0
	for _, f := range fills {
		if width, ok := f.TargetWidth(); ok {
			f.SetWidth(width)
			n++
		}
	}
	return n
}

type docFill struct {
	s *goquery.Selection
}

func (f docFill) TargetWidth() (string, bool) { return f.s.Attr(WidthAttr) }
func (f docFill) SetWidth(width string)        { f.s.SetAttr("style", "width: "+width) }

// Animate sets every fill in doc to its target width.
func Animate(doc *goquery.Document) int {
	var fills []Fill
	doc.Find(FillSelector).Each(func(_ int, s *goquery.Selection) {
		fills = append(fills, docFill{s: s})
	})
	return AnimateFills(fills)
}

// ScheduleAnimation calls animate once AnimateDelay has passed.
func (r *Renderer) ScheduleAnimation(animate func()) clock.Timer {
	clk := r.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	delay := r.AnimateDelay
	if delay <= 0 {
		delay = DefaultAnimateDelay
	}
	return clk.AfterFunc(delay, animate)
}

// Run renders doc and animates the fills after AnimateDelay. onAnimated,
// if set, is called once the widths have been applied.
func (r *Renderer) Run(doc *goquery.Document, onAnimated func()) Report {
	report := r.Render(doc)
	r.ScheduleAnimation(func() {
		Animate(doc)
		if onAnimated != nil {
			onAnimated()
		}
	})
	return report
}

// Tag is a skill tag living in a document the renderer cannot parse
// directly, such as the browser DOM.
type Tag interface {
	OuterHTML() string
	SetOuterHTML(html string)
}

// Convert rewrites each tag through RenderFragment, then animates whatever
// fills returns once AnimateDelay has passed. fills is called at animation
// time so it sees the replaced markup.
func (r *Renderer) Convert(tags []Tag, fills func() []Fill, onAnimated func()) Report {
	var total Report
	for _, tag := range tags {
		out, report, err := r.RenderFragment(tag.OuterHTML())
		if err != nil {
			total.Skipped++
			r.Logger.Error("Render skill tag", zap.Error(err))
			continue
		}
		total.Skipped += report.Skipped
		if len(report.Widgets) == 0 {
			continue
		}
		total.Widgets = append(total.Widgets, report.Widgets...)
		tag.SetOuterHTML(out)
	}

	r.ScheduleAnimation(func() {
		AnimateFills(fills())
		if onAnimated != nil {
			onAnimated()
		}
	})
	return total
}

// RenderFragment renders a single HTML fragment, typically one tag's outer
// HTML, and returns the rewritten markup.
func (r *Renderer) RenderFragment(fragment string) (string, Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", Report{}, err
	}
	report := r.Render(doc)
	out, err := doc.Find("body").Html()
	if err != nil {
		return "", Report{}, err
	}
	return out, report, nil
}

// TagSelector is the CSS selector used to find skill tags.
func (r *Renderer) TagSelector() string {
	if r.Selector == "" {
		return DefaultSelector
	}
	return r.Selector
}
