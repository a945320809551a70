// Command server runs the site API: blog content, contact form, sitemap.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/johanchan/website/internal/config"
	"github.com/johanchan/website/internal/handler"
	"github.com/johanchan/website/internal/translations"
	"github.com/johanchan/website/pkg/blog"
	"github.com/johanchan/website/pkg/i18n"
	"github.com/johanchan/website/pkg/logger"
	"github.com/johanchan/website/pkg/mailer"
	"github.com/johanchan/website/pkg/mailer/mock"
	"github.com/johanchan/website/pkg/mailer/resend"
	"github.com/johanchan/website/pkg/mailer/smtp"
	"github.com/johanchan/website/pkg/markdown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Absent .env files are fine; the environment may be set externally.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logger, requestIDExtractor)
	defer sentry.Flush(2 * time.Second)

	translator, err := i18n.New(
		i18n.WithYAMLCatalogs(translations.FS()),
		i18n.WithDefaultLocale(cfg.DefaultLocale),
	)
	if err != nil {
		return err
	}

	repo := blog.NewRepository(
		os.DirFS(cfg.ContentDir),
		markdown.NewRenderer(),
		blog.WithLogger(log),
	)

	mail := mailer.NewService(newSender(cfg, log), mailer.WithLogger(log))

	h := handler.New(repo, mail, translator, cfg.EmailConfig,
		handler.WithLogger(log),
		handler.WithSiteURL(cfg.SiteURL),
		handler.WithLocales(cfg.Locales...),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			slog.String("addr", cfg.Addr()),
			slog.String("env", cfg.Env),
			slog.String("mail_provider", cfg.MailProvider))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newSender picks the mail transport from configuration. Unknown providers
// fall back to the mock transport so a misconfigured development environment
// never mails anyone by accident.
func newSender(cfg *config.Config, log *slog.Logger) mailer.Sender {
	switch cfg.MailProvider {
	case "smtp":
		return smtp.NewSender()
	case "resend":
		return resend.NewSender(cfg.Resend)
	case "mock":
		return mock.NewSender()
	default:
		log.Warn("unknown mail provider, using mock",
			slog.String("provider", cfg.MailProvider))
		return mock.NewSender()
	}
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := chimw.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}
