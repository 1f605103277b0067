package skills

import (
	"html/template"
	"strconv"
	"strings"
)

const (
	FillSelector = ".progress-fill"
	WidthAttr    = "data-width"
)

var widgetTmpl = template.Must(template.New("skill-item").Parse(`<div class="skill-item">` +
	`<div class="skill-header">` +
	`<span class="skill-name">{{.Icon}}{{if .Icon}} {{end}}{{.Label}}</span>` +
	`<span class="skill-percentage">{{.Width}}</span>` +
	`</div>` +
	`<div class="progress-bar">` +
	`<div class="progress-fill" style="width: 0%" data-width="{{.Width}}"></div>` +
	`</div>` +
	`</div>`))

// Widget describes one rendered progress bar.
type Widget struct {
	Label   string `json:"label"`
	Percent int    `json:"percent"`
	Known   bool   `json:"known"`
}

func (w Widget) Width() string {
	return strconv.Itoa(w.Percent) + "%"
}

// WidgetHTML renders the markup that replaces a skill tag. iconHTML is
// trusted markup taken from the original tag.
func WidgetHTML(w Widget, iconHTML string) (string, error) {
	var b strings.Builder
	err := widgetTmpl.Execute(&b, struct {
		Icon  template.HTML
		Label string
		Width string
	}{template.HTML(iconHTML), w.Label, w.Width()})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
