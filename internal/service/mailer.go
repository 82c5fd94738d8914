// internal/service/mailer.go
package service

import (
	"context"
	"net/smtp"

	"go_5_level_reader/internal/config"
	"go_5_level_reader/internal/middleware"
)

// Mailer は取り込み失敗レポート等の運用メールを送る抽象です
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewMailer は設定に応じた実装を返します
func NewMailer(cfg *config.Config) Mailer {
	switch cfg.Mailer.Type {
	case "ses":
		return NewSESMailer(cfg)
	case "smtp":
		return &SmtpMailer{cfg: cfg}
	default:
		return &LogMailer{}
	}
}

// --- LogMailer ---
// メール設定のない環境（開発・テスト）ではログに出すだけ
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// --- SmtpMailer ---
type SmtpMailer struct {
	cfg *config.Config
}

func (m *SmtpMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := m.cfg.Mailer.SMTP.Host + ":" + m.cfg.Mailer.SMTP.Port

	logger.Debug("Attempting to send email via SMTP",
		"smtp_addr", addr,
		"from", m.cfg.Mailer.From,
		"to", to,
	)

	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return err
	}
	defer c.Close()

	if err = c.Mail(m.cfg.Mailer.From); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", m.cfg.Mailer.From)
		return err
	}
	if err = c.Rcpt(to); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", to)
		return err
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return err
	}
	defer wc.Close()

	msg := "To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n"
	if _, err = wc.Write([]byte(msg)); err != nil {
		logger.Error("Failed to write email data", "error", err)
		return err
	}

	logger.Info("Email sent via SMTP", "to", to, "subject", subject)
	return nil
}
