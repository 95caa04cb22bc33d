package services

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/models"
)

// SMTPConfig holds the SMTP server configuration.
type SMTPConfig struct {
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	FromAddress string `json:"from_address"`
	Encryption  string `json:"encryption"` // "none", "ssl", "starttls"
}

// MailService sends HTML email over SMTP. Settings rows (category "smtp")
// override the values loaded from the environment.
type MailService struct {
	db       *gorm.DB
	fallback config.SMTPConfig
}

// NewMailService creates a new mail service instance.
func NewMailService(db *gorm.DB, fallback config.SMTPConfig) *MailService {
	return &MailService{db: db, fallback: fallback}
}

// GetSMTPConfig merges settings rows over the environment fallback.
func (s *MailService) GetSMTPConfig() (*SMTPConfig, error) {
	var settings []models.Setting
	if err := s.db.Where("category = ?", "smtp").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to load SMTP settings: %w", err)
	}

	cfg := &SMTPConfig{
		Host:        s.fallback.Host,
		Port:        s.fallback.Port,
		Username:    s.fallback.Username,
		Password:    s.fallback.Password,
		FromAddress: s.fallback.From,
		Encryption:  s.fallback.Encryption,
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Encryption == "" {
		cfg.Encryption = "starttls"
	}

	for _, setting := range settings {
		if setting.Value == "" {
			continue
		}
		switch setting.Key {
		case "smtp_host":
			cfg.Host = setting.Value
		case "smtp_port":
			if p, err := strconv.Atoi(setting.Value); err == nil {
				cfg.Port = p
			}
		case "smtp_username":
			cfg.Username = setting.Value
		case "smtp_password":
			cfg.Password = setting.Value
		case "smtp_from_address":
			cfg.FromAddress = setting.Value
		case "smtp_encryption":
			cfg.Encryption = setting.Value
		}
	}

	return cfg, nil
}

// SaveSMTPConfig upserts the SMTP settings rows.
func (s *MailService) SaveSMTPConfig(cfg *SMTPConfig) error {
	values := map[string]string{
		"smtp_host":         cfg.Host,
		"smtp_port":         strconv.Itoa(cfg.Port),
		"smtp_username":     cfg.Username,
		"smtp_password":     cfg.Password,
		"smtp_from_address": cfg.FromAddress,
		"smtp_encryption":   cfg.Encryption,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			var existing models.Setting
			err := tx.Where("key = ?", key).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&models.Setting{Key: key, Value: value, Type: "string", Category: "smtp"}).Error; err != nil {
					return fmt.Errorf("failed to create setting %s: %w", key, err)
				}
			case err != nil:
				return err
			default:
				if err := tx.Model(&existing).Updates(map[string]interface{}{"value": value, "category": "smtp"}).Error; err != nil {
					return fmt.Errorf("failed to update setting %s: %w", key, err)
				}
			}
		}
		return nil
	})
}

// IsConfigured returns true if SMTP is properly configured.
func (s *MailService) IsConfigured() bool {
	cfg, err := s.GetSMTPConfig()
	if err != nil {
		return false
	}
	return cfg.Host != "" && cfg.FromAddress != ""
}

// SendEmail sends an email using the configured SMTP settings.
func (s *MailService) SendEmail(to, subject, htmlBody string) error {
	cfg, err := s.GetSMTPConfig()
	if err != nil {
		return err
	}

	if cfg.Host == "" {
		return errors.New("SMTP not configured")
	}

	if err := validateEmailAddress(to); err != nil {
		return err
	}

	msg := buildEmail(cfg.FromAddress, to, subject, htmlBody)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" && cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	switch cfg.Encryption {
	case "ssl":
		conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12})
		if err != nil {
			return fmt.Errorf("SSL connection failed: %w", err)
		}
		client, err := smtp.NewClient(conn, cfg.Host)
		if err != nil {
			conn.Close()
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
		return deliver(client, auth, cfg.FromAddress, to, msg)
	case "starttls":
		client, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("SMTP connection failed: %w", err)
		}
		if err := client.StartTLS(&tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			client.Close()
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
		return deliver(client, auth, cfg.FromAddress, to, msg)
	default:
		return smtp.SendMail(addr, auth, cfg.FromAddress, []string{to}, msg)
	}
}

// buildEmail constructs the RFC 5322 message. Headers are written in a fixed order.
func buildEmail(from, to, subject, htmlBody string) []byte {
	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", sanitizeEmailHeader(from))
	fmt.Fprintf(&msg, "To: %s\r\n", sanitizeEmailHeader(to))
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", sanitizeEmailHeader(subject)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return msg.Bytes()
}

// sanitizeEmailHeader drops control characters so values cannot inject headers.
func sanitizeEmailHeader(v string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, v)
}

func validateEmailAddress(addr string) error {
	if addr == "" {
		return errors.New("empty email address")
	}
	if strings.ContainsAny(addr, "\r\n") {
		return errors.New("email address contains line breaks")
	}
	if _, err := mail.ParseAddress(addr); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}
	return nil
}

// deliver runs the SMTP transaction on an established client and closes it.
func deliver(client *smtp.Client, auth smtp.Auth, from, to string, msg []byte) error {
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("authentication failed: %w", err)
		}
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return client.Quit()
}
