// Package emailjs talks to the EmailJS transactional email service, either
// through its REST API or through the browser SDK attached to the page.
package emailjs

import (
	"context"
	"sync"
)

// TemplateParams are the variables the contact template expects.
type TemplateParams struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Message   string `json:"message"`
}

// Response is what EmailJS answers on a successful send.
type Response struct {
	Status int
	Text   string
}

// Sender delivers a templated email.
type Sender interface {
	Init(publicKey string)
	Send(ctx context.Context, serviceID, templateID string, params TemplateParams) (Response, error)
}

// Error is a rejected send. Text is whatever message the service or SDK
// supplied and may be empty.
type Error struct {
	Status int
	Text   string
}

func (e *Error) Error() string {
	return e.Text
}

// Slot is where a Sender becomes available once its library has loaded.
// It stands in for the page global the browser SDK attaches itself to.
type Slot struct {
	mu     sync.RWMutex
	sender Sender
}

func (s *Slot) Attach(sender Sender) {
	s.mu.Lock()
	s.sender = sender
	s.mu.Unlock()
}

// Get returns the attached sender, or nil.
func (s *Slot) Get() Sender {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sender
}

func (s *Slot) Loaded() bool {
	return s.Get() != nil
}
