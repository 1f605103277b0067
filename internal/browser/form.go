//go:build js && wasm

package browser

import (
	"html"
	"syscall/js"

	"github.com/Zachkp/portfolio-widgets/internal/contact"
)

// Form wraps the contact <form> element.
type Form struct {
	el js.Value
}

// FindForm looks the form up by id; ok is false when the page has none.
func FindForm(id string) (Form, bool) {
	el := document().Call("getElementById", id)
	return Form{el: el}, el.Truthy()
}

func (f Form) field(name string) string {
	input := f.el.Get("elements").Get(name)
	if !input.Truthy() {
		return ""
	}
	return input.Get("value").String()
}

func (f Form) Values() contact.Submission {
	return contact.Submission{
		Name:    f.field("name"),
		Email:   f.field("email"),
		Message: f.field("message"),
	}
}

func (f Form) Reset() {
	f.el.Call("reset")
}

// SubmitButton returns the form's submit control.
func (f Form) SubmitButton() Button {
	return Button{el: f.el.Call("querySelector", `button[type="submit"]`)}
}

// OnSubmit registers handler for the submit event and suppresses the native
// submission. handler runs on its own goroutine.
func (f Form) OnSubmit(handler func()) js.Func {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go handler()
		return nil
	})
	f.el.Call("addEventListener", "submit", cb)
	return cb
}

type Button struct {
	el js.Value
}

func (b Button) Disable(loadingLabel string) func() {
	if !b.el.Truthy() {
		return func() {}
	}
	original := b.el.Get("innerHTML").String()
	b.el.Set("disabled", true)
	b.el.Set("innerHTML", `<i class="fas fa-spinner fa-spin"></i> `+html.EscapeString(loadingLabel))
	return func() {
		b.el.Set("disabled", false)
		b.el.Set("innerHTML", original)
	}
}

// StatusBox is the element that shows submission results.
type StatusBox struct {
	el js.Value
}

func FindStatusBox(id string) StatusBox {
	return StatusBox{el: document().Call("getElementById", id)}
}

func (s StatusBox) Show(st contact.Status) {
	if !s.el.Truthy() {
		return
	}
	color, bg := "#4CAF50", "rgba(76, 175, 80, 0.1)"
	if st.Kind == contact.KindFailure {
		color, bg = "#f44336", "rgba(244, 67, 54, 0.1)"
	}
	style := s.el.Get("style")
	style.Set("display", "block")
	style.Set("color", color)
	style.Set("backgroundColor", bg)
	style.Set("padding", "15px")
	style.Set("borderRadius", "8px")
	style.Set("marginTop", "20px")
	style.Set("border", "1px solid "+color)
	style.Set("animation", "slideIn 0.3s ease")
	s.el.Set("textContent", st.Text)
	s.el.Get("dataset").Set("kind", st.Kind.String())
}

func (s StatusBox) FadeOut() {
	if s.el.Truthy() {
		s.el.Get("style").Set("animation", "slideOut 0.3s ease")
	}
}

func (s StatusBox) Hide() {
	if s.el.Truthy() {
		s.el.Get("style").Set("display", "none")
	}
}
