// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package channel

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	texttemplate "text/template"

	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/notification/internal/domain"
)

// EmailTemplate 正文按照 html/template 渲染，主题是纯文本
type EmailTemplate struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

var defaultEmailTemplates = map[domain.Template]EmailTemplate{
	domain.TemplateTaskStarted: {
		Subject: "【{{.OfferTitle}}】作业已发布：{{.StepTitle}}",
		Body: `<p>{{.Name}}，您好：</p>
<p>您投递的岗位「{{.OfferTitle}}」进入了作业环节「{{.StepTitle}}」，请在 {{.Duration}} 分钟内提交作业文件或者链接。</p>`,
	},
	domain.TemplateQuestionnaireStarted: {
		Subject: "【{{.OfferTitle}}】问卷已开放：{{.StepTitle}}",
		Body: `<p>{{.Name}}，您好：</p>
<p>您投递的岗位「{{.OfferTitle}}」进入了问卷环节「{{.StepTitle}}」，答题时间 {{.Duration}} 分钟，每个候选人只能提交一次。</p>`,
	},
	domain.TemplateInterviewInvitation: {
		Subject: "【{{.OfferTitle}}】视频面试邀请：{{.StepTitle}}",
		Body: `<p>{{.Name}}，您好：</p>
<p>诚邀您参加岗位「{{.OfferTitle}}」的视频面试「{{.StepTitle}}」，面试时长约 {{.Duration}} 分钟，面试官会另行发送会议链接。</p>`,
	},
}

type renderData struct {
	Name string
	domain.Payload
}

type emailTemplate struct {
	subject *texttemplate.Template
	body    *template.Template
}

type EmailChannel struct {
	svc       email.Service
	from      string
	templates map[domain.Template]emailTemplate
}

// NewEmailChannel overrides 为空的模板使用默认模板
func NewEmailChannel(svc email.Service, from string,
	overrides map[domain.Template]EmailTemplate) (*EmailChannel, error) {
	templates := make(map[domain.Template]emailTemplate, len(defaultEmailTemplates))
	for name, def := range defaultEmailTemplates {
		tmpl := def
		if o, ok := overrides[name]; ok && o.Subject != "" && o.Body != "" {
			tmpl = o
		}
		subject, err := texttemplate.New(name.String() + ".subject").Parse(tmpl.Subject)
		if err != nil {
			return nil, fmt.Errorf("解析邮件模板 %s 失败: %w", name, err)
		}
		body, err := template.New(name.String() + ".body").Parse(tmpl.Body)
		if err != nil {
			return nil, fmt.Errorf("解析邮件模板 %s 失败: %w", name, err)
		}
		templates[name] = emailTemplate{subject: subject, body: body}
	}
	return &EmailChannel{svc: svc, from: from, templates: templates}, nil
}

func (c *EmailChannel) Name() string {
	return "email"
}

func (c *EmailChannel) Accept(r domain.Receiver) bool {
	return r.Email != ""
}

func (c *EmailChannel) Send(ctx context.Context, n domain.Notification) error {
	tmpl, ok := c.templates[n.Template]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, n.Template)
	}
	data := renderData{Name: n.Receiver.Name, Payload: n.Payload}
	var subject, body bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return err
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return err
	}
	return c.svc.SendMail(ctx, email.Mail{
		From:    c.from,
		To:      n.Receiver.Email,
		Subject: subject.String(),
		Body:    body.Bytes(),
		Tag:     n.Template.String(),
	})
}
