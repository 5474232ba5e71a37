package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// mdRenderer 启用表格扩展，原始 HTML 原样保留
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// RenderMarkdown 把报告 Markdown 渲染为 HTML 片段
func RenderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// shellTpl 固定的邮件样式外壳
const shellTpl = `<html>
<head>
<meta charset="UTF-8">
<style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    table { border-collapse: collapse; width: 100%; margin-bottom: 20px; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    th { background-color: #f2f2f2; }
    h1, h2, h3 { color: #2c3e50; }
    blockquote { border-left: 4px solid #ccc; margin: 0; padding-left: 10px; color: #666; }
</style>
</head>
<body>
{{ . }}
</body>
</html>
`

var shell = template.Must(template.New("shell").Parse(shellTpl))

// WrapHTML 把渲染后的 HTML 放入样式外壳，内容不做任何转义或修改
func WrapHTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := shell.Execute(&buf, template.HTML(body)); err != nil {
		return "", fmt.Errorf("wrap html: %w", err)
	}
	return buf.String(), nil
}
