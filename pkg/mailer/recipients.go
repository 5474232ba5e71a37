package mailer

import "strings"

// ParseRecipients 解析收件人配置：含逗号时按逗号拆分并去除空白，否则视为单个收件人。
// 多余逗号产生的空项会被丢弃
func ParseRecipients(raw string) []string {
	if !strings.Contains(raw, ",") {
		if r := strings.TrimSpace(raw); r != "" {
			return []string{r}
		}
		return nil
	}

	var recipients []string
	for _, part := range strings.Split(raw, ",") {
		if r := strings.TrimSpace(part); r != "" {
			recipients = append(recipients, r)
		}
	}
	return recipients
}
