package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wneessen/go-mail"

	"agent-sticker-kiosk/internal/gemini"
)

// Message is the email boundary's request shape. ImageURL may be a data URL
// or a remote URL; either way the image is attached, not linked.
type Message struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl"`
}

type Options struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Mailer struct {
	client     *mail.Client
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) (*Mailer, error) {
	if opts.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if opts.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.Username),
			mail.WithPassword(opts.Password),
		)
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &Mailer{
		client:     client,
		from:       opts.From,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("recipient is required")
	}

	out := mail.NewMsg()
	if err := out.From(m.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}

	subject := msg.Subject
	if subject == "" {
		subject = "Your agent sticker"
	}
	out.Subject(subject)
	out.SetBodyString(mail.TypeTextPlain, msg.Text)

	if msg.ImageURL != "" {
		data, mime, err := m.resolveImage(ctx, msg.ImageURL)
		if err != nil {
			return fmt.Errorf("resolve image: %w", err)
		}
		name := "sticker." + extForMime(mime)
		if err := out.AttachReader(name, bytes.NewReader(data), mail.WithFileContentType(mail.ContentType(mime))); err != nil {
			return fmt.Errorf("attach image: %w", err)
		}
	}

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("email sent", "to", msg.To)
	return nil
}

// resolveImage turns a data URL or remote URL into attachment bytes.
func (m *Mailer) resolveImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	if strings.HasPrefix(imageURL, "data:") {
		idx := strings.IndexByte(imageURL, ',')
		if idx < 0 {
			return nil, "", fmt.Errorf("malformed data URL")
		}
		data, err := base64.StdEncoding.DecodeString(imageURL[idx+1:])
		if err != nil {
			return nil, "", fmt.Errorf("decode data URL: %w", err)
		}
		return data, gemini.MimeFromDataURL(imageURL, "image/png"), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", fmt.Errorf("fetch image: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 25<<20))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}

	mime := resp.Header.Get("content-type")
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	return data, mime, nil
}

func extForMime(mime string) string {
	switch {
	case strings.Contains(mime, "jpeg"):
		return "jpg"
	case strings.Contains(mime, "webp"):
		return "webp"
	default:
		return "png"
	}
}
