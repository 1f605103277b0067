//go:build js && wasm

// Package browser binds the widgets to the page DOM and the EmailJS SDK when
// compiled to WebAssembly.
package browser

import (
	"errors"
	"syscall/js"
)

func document() js.Value {
	return js.Global().Get("document")
}

// OnDOMReady runs f once the document has been parsed.
func OnDOMReady(f func()) {
	if document().Get("readyState").String() != "loading" {
		f()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		f()
		return nil
	})
	document().Call("addEventListener", "DOMContentLoaded", cb)
}

// await blocks the calling goroutine until promise settles. It must not be
// called from a JS callback directly.
func await(promise js.Value) (js.Value, error) {
	type settled struct {
		val js.Value
		err error
	}
	ch := make(chan settled, 1)

	var onOK, onErr js.Func
	onOK = js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- settled{val: firstArg(args)}
		return nil
	})
	onErr = js.FuncOf(func(this js.Value, args []js.Value) any {
		ch <- settled{err: jsError(firstArg(args))}
		return nil
	})
	defer onOK.Release()
	defer onErr.Release()

	promise.Call("then", onOK, onErr)
	s := <-ch
	return s.val, s.err
}

func firstArg(args []js.Value) js.Value {
	if len(args) == 0 {
		return js.Undefined()
	}
	return args[0]
}

// jsError converts a rejection value into a Go error. EmailJS rejects with
// {status, text}; other failures are Error objects with a message.
func jsError(v js.Value) error {
	if v.Type() == js.TypeObject {
		for _, key := range []string{"text", "message"} {
			if s := v.Get(key); s.Type() == js.TypeString {
				return &rejection{text: s.String(), status: statusOf(v)}
			}
		}
	}
	if v.Type() == js.TypeString {
		return &rejection{text: v.String()}
	}
	return &rejection{}
}

func statusOf(v js.Value) int {
	if s := v.Get("status"); s.Type() == js.TypeNumber {
		return s.Int()
	}
	return 0
}

type rejection struct {
	text   string
	status int
}

func (r *rejection) Error() string { return r.text }

var errNoSDK = errors.New("emailjs global is not defined")
