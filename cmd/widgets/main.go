//go:build js && wasm

// Command widgets is the WebAssembly build of the portfolio scripts: it
// initialises EmailJS, wires the contact form and converts skill tags.
package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/bootstrap"
	"github.com/Zachkp/portfolio-widgets/internal/browser"
	"github.com/Zachkp/portfolio-widgets/internal/clock"
	"github.com/Zachkp/portfolio-widgets/internal/config"
	"github.com/Zachkp/portfolio-widgets/internal/contact"
	"github.com/Zachkp/portfolio-widgets/internal/emailjs"
	"github.com/Zachkp/portfolio-widgets/internal/logging"
	"github.com/Zachkp/portfolio-widgets/internal/skills"
)

const (
	contactFormID = "contactForm"
	formStatusID  = "formStatus"
)

func main() {
	cfg := config.Default()
	logger, err := logging.NewLogger(cfg.Log.Level, "")
	if err != nil {
		logger = zap.NewNop()
	}
	clk := clock.Real{}

	browser.OnDOMReady(func() {
		go startContact(cfg, clk, logger)
		go startSkills(cfg, clk, logger)
	})

	select {}
}

func startContact(cfg config.Config, clk clock.Clock, logger *zap.Logger) {
	slot := &emailjs.Slot{}
	boot := &bootstrap.Bootstrapper{
		Poller: &bootstrap.Poller{
			Interval:    cfg.Bootstrap.PollInterval,
			MaxAttempts: cfg.Bootstrap.MaxAttempts,
			Ready:       browser.SDKLoaded,
			Clock:       clk,
		},
		Init: func(publicKey string) {
			sdk := browser.SDK{}
			sdk.Init(publicKey)
			slot.Attach(sdk)
		},
		PublicKey: cfg.EmailJS.PublicKey,
		Logger:    logger,
	}
	boot.Run(context.Background())

	form, ok := browser.FindForm(contactFormID)
	if !ok {
		return
	}
	h := &contact.Handler{
		Workflow: &contact.Workflow{
			Slot:           slot,
			ServiceID:      cfg.EmailJS.ServiceID,
			TemplateID:     cfg.EmailJS.TemplateID,
			AutoResponseID: cfg.EmailJS.AutoResponseID,
			Logger:         logger,
		},
		Form:   form,
		Submit: form.SubmitButton(),
		Status: &contact.StatusDisplay{
			View:      browser.FindStatusBox(formStatusID),
			Clock:     clk,
			HideAfter: cfg.Status.HideAfter,
			FadeOut:   cfg.Status.FadeOut,
		},
	}
	form.OnSubmit(func() {
		if _, err := h.Handle(context.Background()); err != nil {
			logger.Debug("Submit ignored", zap.Error(err))
		}
	})
}

func startSkills(cfg config.Config, clk clock.Clock, logger *zap.Logger) {
	r := &skills.Renderer{
		Table:        skills.Builtin(cfg.Skills.DefaultPercent),
		Selector:     cfg.Skills.Selector,
		AnimateDelay: cfg.Skills.AnimateDelay,
		Clock:        clk,
		Logger:       logger,
	}
	report := browser.ConvertSkillTags(r)
	logger.Info("Skill tags converted", zap.Int("widgets", len(report.Widgets)), zap.Int("skipped", report.Skipped))
}
