package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const baseLayout = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.Subject}}</h2>
  {{block "content" .}}{{end}}
  <p style="color:#888; font-size:12px;">This is an automated message, please do not reply.</p>
</body>
</html>`

var defaultTemplates = map[string]string{
	"password_reset": `{{define "content"}}
  <p>We received a request to reset the password for your account.</p>
  <p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>
  <p>The link is valid for one hour and can be used once. If you did not request this, you can safely ignore this email.</p>
{{end}}`,

	"password_reset_done": `{{define "content"}}
  <p>The password for your account was just changed.</p>
  <p>If this was not you, request a new password reset immediately.</p>
{{end}}`,

	"company_submitted": `{{define "content"}}
  <p>Your company profile <strong>{{.CompanyName}}</strong> has been submitted.</p>
  <p>An administrator will review it shortly. You will be able to post jobs once it is approved.</p>
{{end}}`,
}

// TemplateManager renders the built-in HTML message bodies.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}

	for name, content := range defaultTemplates {
		t, err := template.New(name).Parse(baseLayout)
		if err != nil {
			return nil, fmt.Errorf("parse base layout: %w", err)
		}
		if _, err := t.Parse(content); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		tm.templates[name] = t
	}

	return tm, nil
}

func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", name, err)
	}
	return buf.String(), nil
}
