package model

import (
	"fmt"
	"strings"
)

// Snippet 单条搜索结果摘要
type Snippet struct {
	Title string
	Body  string
	Link  string
}

// Line 渲染为上下文中的一行: "- {title}: {body}\n"
func (s Snippet) Line() string {
	return fmt.Sprintf("- %s: %s\n", s.Title, s.Body)
}

// QueryOutcome 单个查询的执行结果，Err 非空表示该查询失败并被跳过
type QueryOutcome struct {
	Query    string
	Snippets []Snippet
	Err      error
}

// SearchContext 一次运行的全部搜索结果，按查询顺序排列
type SearchContext struct {
	Outcomes []QueryOutcome
}

// Text 按查询顺序、结果顺序拼接所有成功查询的结果
func (c SearchContext) Text() string {
	var sb strings.Builder
	for _, o := range c.Outcomes {
		if o.Err != nil {
			continue
		}
		for _, s := range o.Snippets {
			sb.WriteString(s.Line())
		}
	}
	return sb.String()
}

// Succeeded 成功完成的查询数（可能返回零条结果）
func (c SearchContext) Succeeded() int {
	n := 0
	for _, o := range c.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed 失败的查询数
func (c SearchContext) Failed() int {
	return len(c.Outcomes) - c.Succeeded()
}

// Hits 成功查询返回的结果总数
func (c SearchContext) Hits() int {
	n := 0
	for _, o := range c.Outcomes {
		if o.Err == nil {
			n += len(o.Snippets)
		}
	}
	return n
}

// EmailMessage 待发送的报告邮件
type EmailMessage struct {
	From    string
	To      []string
	Subject string
	HTML    string
}
