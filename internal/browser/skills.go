//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/Zachkp/portfolio-widgets/internal/skills"
)

type domTag struct {
	el js.Value
}

func (t domTag) OuterHTML() string         { return t.el.Get("outerHTML").String() }
func (t domTag) SetOuterHTML(html string) { t.el.Set("outerHTML", html) }

type domFill struct {
	el js.Value
}

func (f domFill) TargetWidth() (string, bool) {
	w := f.el.Call("getAttribute", skills.WidthAttr)
	if w.Type() != js.TypeString {
		return "", false
	}
	return w.String(), true
}

func (f domFill) SetWidth(width string) { f.el.Get("style").Set("width", width) }

// ConvertSkillTags replaces every skill tag in the live document and
// animates the fills after the renderer's delay, on the renderer's clock.
func ConvertSkillTags(r *skills.Renderer) skills.Report {
	nodes := document().Call("querySelectorAll", r.TagSelector())
	tags := make([]skills.Tag, 0, nodes.Length())
	for i := 0; i < nodes.Length(); i++ {
		tags = append(tags, domTag{el: nodes.Index(i)})
	}
	return r.Convert(tags, documentFills, nil)
}

func documentFills() []skills.Fill {
	nodes := document().Call("querySelectorAll", skills.FillSelector)
	fills := make([]skills.Fill, 0, nodes.Length())
	for i := 0; i < nodes.Length(); i++ {
		fills = append(fills, domFill{el: nodes.Index(i)})
	}
	return fills
}
