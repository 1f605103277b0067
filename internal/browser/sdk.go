//go:build js && wasm

package browser

import (
	"context"
	"errors"
	"syscall/js"

	"github.com/Zachkp/portfolio-widgets/internal/emailjs"
)

// SDKLoaded reports whether the EmailJS browser SDK has attached itself to
// window.
func SDKLoaded() bool {
	v := js.Global().Get("emailjs")
	return !v.IsUndefined() && !v.IsNull()
}

// SDK adapts the window.emailjs object to emailjs.Sender.
type SDK struct{}

func (SDK) Init(publicKey string) {
	js.Global().Get("emailjs").Call("init", publicKey)
}

func (SDK) Send(ctx context.Context, serviceID, templateID string, params emailjs.TemplateParams) (emailjs.Response, error) {
	if !SDKLoaded() {
		return emailjs.Response{}, errNoSDK
	}
	if err := ctx.Err(); err != nil {
		return emailjs.Response{}, err
	}

	obj := js.Global().Get("Object").New()
	obj.Set("from_name", params.FromName)
	obj.Set("from_email", params.FromEmail)
	obj.Set("message", params.Message)

	v, err := await(js.Global().Get("emailjs").Call("send", serviceID, templateID, obj))
	if err != nil {
		var r *rejection
		if errors.As(err, &r) {
			return emailjs.Response{}, &emailjs.Error{Status: r.status, Text: r.text}
		}
		return emailjs.Response{}, err
	}

	resp := emailjs.Response{Status: statusOf(v)}
	if t := v.Get("text"); t.Type() == js.TypeString {
		resp.Text = t.String()
	}
	return resp, nil
}
