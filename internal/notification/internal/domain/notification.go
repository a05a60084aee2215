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

package domain

// Template 通知模板，和步骤类型一一对应
type Template string

const (
	TemplateTaskStarted          Template = "task_started"
	TemplateQuestionnaireStarted Template = "questionnaire_started"
	TemplateInterviewInvitation  Template = "interview_invitation"
)

func (t Template) String() string {
	return string(t)
}

// TemplateOf 步骤类型对应的模板，未知类型返回 false
func TemplateOf(stepKind string) (Template, bool) {
	switch stepKind {
	case "TASK":
		return TemplateTaskStarted, true
	case "QUESTIONNAIRE":
		return TemplateQuestionnaireStarted, true
	case "VIDEO_INTERVIEW":
		return TemplateInterviewInvitation, true
	default:
		return "", false
	}
}

type Receiver struct {
	Uid   int64
	Name  string
	Email string
	Phone string
}

// Payload 渲染模板需要的数据
type Payload struct {
	OfferTitle string
	StepTitle  string
	// 分钟
	Duration int64
}

type Notification struct {
	// Key 同一个事件同一个候选人唯一，用于排查
	Key      string
	Receiver Receiver
	Template Template
	Payload  Payload
}

// Summary 一次步骤开始事件的发送结果
type Summary struct {
	OfferTitle string
	StepTitle  string
	Total      int
	// 发送失败的候选人名字
	Failed []string
}
