package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iWorld-y/market_narrative/internal/config"
	"github.com/iWorld-y/market_narrative/internal/logger"
	"github.com/iWorld-y/market_narrative/pkg/model"
)

// Dispatcher 把 Markdown 报告渲染为 HTML 邮件并发送
type Dispatcher struct {
	cfg    config.EmailConfig
	sender Sender
	now    func() time.Time
}

// NewDispatcher 创建邮件分发器
func NewDispatcher(cfg config.EmailConfig, sender Sender) *Dispatcher {
	return &Dispatcher{
		cfg:    cfg,
		sender: sender,
		now:    time.Now,
	}
}

// Compose 渲染报告并构造邮件，不涉及网络
func (d *Dispatcher) Compose(subject, reportMarkdown string) (model.EmailMessage, error) {
	body, err := RenderMarkdown(reportMarkdown)
	if err != nil {
		return model.EmailMessage{}, err
	}
	page, err := WrapHTML(body)
	if err != nil {
		return model.EmailMessage{}, err
	}

	recipients := ParseRecipients(d.cfg.Receiver)
	if len(recipients) == 0 {
		return model.EmailMessage{}, fmt.Errorf("no valid recipients in %q", d.cfg.Receiver)
	}

	return model.EmailMessage{
		From:    d.cfg.Sender,
		To:      recipients,
		Subject: subject,
		HTML:    page,
	}, nil
}

// Send 渲染、编码并发送；任一步骤失败都返回错误，不区分部分成功
func (d *Dispatcher) Send(ctx context.Context, subject, reportMarkdown string) error {
	msg, err := d.Compose(subject, reportMarkdown)
	if err != nil {
		return err
	}
	logger.Log.Infof("正在发送邮件至 %s...", strings.Join(msg.To, ", "))

	raw, err := BuildMessage(msg, d.now())
	if err != nil {
		return err
	}
	if err := d.sender.Send(ctx, msg.From, msg.To, raw); err != nil {
		return err
	}

	logger.Log.Info("邮件发送成功")
	return nil
}
