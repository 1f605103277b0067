//go:build !js

// Command contact-send pushes one contact submission through the same
// workflow the site uses, against the EmailJS REST API. It is meant for
// checking the configured service and template ids.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio-widgets/internal/config"
	"github.com/Zachkp/portfolio-widgets/internal/contact"
	"github.com/Zachkp/portfolio-widgets/internal/emailjs"
	"github.com/Zachkp/portfolio-widgets/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	os.Exit(run(context.Background(), cfg, os.Args[1:], os.Stdout, logger))
}

// run returns the process exit code: 0 on delivery, 1 on a failed result,
// 2 on bad usage.
func run(ctx context.Context, cfg config.Config, args []string, out io.Writer, logger *zap.Logger) int {
	fs := flag.NewFlagSet("contact-send", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		sub     contact.Submission
		timeout time.Duration
	)
	fs.StringVar(&sub.Name, "name", "", "sender name")
	fs.StringVar(&sub.Email, "email", "", "sender email address")
	fs.StringVar(&sub.Message, "message", "", "message body")
	fs.DurationVar(&timeout, "timeout", 20*time.Second, "overall deadline for the send")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := emailjs.NewClient(cfg.EmailJS.Endpoint, logger)
	client.Init(cfg.EmailJS.PublicKey)
	slot := &emailjs.Slot{}
	slot.Attach(client)

	w := &contact.Workflow{
		Slot:           slot,
		ServiceID:      cfg.EmailJS.ServiceID,
		TemplateID:     cfg.EmailJS.TemplateID,
		AutoResponseID: cfg.EmailJS.AutoResponseID,
		Logger:         logger,
	}

	result := w.Submit(ctx, sub)
	fmt.Fprintln(out, result.Message)
	if !result.Success {
		return 1
	}
	return 0
}
