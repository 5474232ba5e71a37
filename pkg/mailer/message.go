package mailer

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-message/mail"

	"github.com/iWorld-y/market_narrative/pkg/model"
)

// BuildMessage 构造 multipart/mixed 邮件，HTML 正文是唯一的内容部分（无纯文本备选）
func BuildMessage(msg model.EmailMessage, now time.Time) ([]byte, error) {
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("no recipients")
	}

	to := make([]*mail.Address, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, &mail.Address{Address: addr})
	}

	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{{Address: msg.From}})
	h.SetAddressList("To", to)
	h.SetSubject(msg.Subject)
	h.Set("MIME-Version", "1.0")
	if err := h.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("generate message id: %w", err)
	}

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("create mail writer: %w", err)
	}

	var ih mail.InlineHeader
	ih.SetContentType("text/html", map[string]string{"charset": "utf-8"})
	ih.Set("Content-Transfer-Encoding", "base64")

	w, err := mw.CreateSingleInline(ih)
	if err != nil {
		return nil, fmt.Errorf("create html part: %w", err)
	}
	if _, err := io.WriteString(w, msg.HTML); err != nil {
		return nil, fmt.Errorf("write html part: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close html part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close mail writer: %w", err)
	}

	return buf.Bytes(), nil
}
