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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/ecodeclub/recruit/internal/notification/internal/domain"
)

// 企业微信机器人文本消息最长 2048 字节
const wechatTextLimit = 2048

type Text struct {
	Content string `json:"content"`
}

type WechatRobotMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

type HTTPPOSTFunc func(url, contentType string, body io.Reader) (resp *http.Response, err error)

// WechatRobot 把每次通知的结果汇总发到招聘群里
type WechatRobot struct {
	webhookURL string
	post       HTTPPOSTFunc
}

func NewWechatRobot(webhookURL string, post HTTPPOSTFunc) *WechatRobot {
	if post == nil {
		post = http.Post
	}
	return &WechatRobot{webhookURL: webhookURL, post: post}
}

func (w *WechatRobot) Report(ctx context.Context, s domain.Summary) error {
	data, err := json.Marshal(&WechatRobotMessage{
		MsgType: "text",
		Text:    Text{Content: truncate(w.content(s), wechatTextLimit)},
	})
	if err != nil {
		return fmt.Errorf("序列化微信Robot消息失败: %w", err)
	}
	resp, err := w.post(w.webhookURL, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("向微信发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("微信处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

func (w *WechatRobot) content(s domain.Summary) string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "岗位「%s」的步骤「%s」已开始，通知候选人 %d 名",
		s.OfferTitle, s.StepTitle, s.Total)
	if len(s.Failed) > 0 {
		_, _ = fmt.Fprintf(&sb, "，其中 %d 名发送失败：%s",
			len(s.Failed), strings.Join(s.Failed, "、"))
	}
	return sb.String()
}

// truncate 按字节截断，不会切开一个完整的字符
func truncate(content string, limit int) string {
	if limit < 0 {
		panic("limit 不能为负数")
	}
	if len(content) <= limit {
		return content
	}
	for limit > 0 && !utf8.RuneStart(content[limit]) {
		limit--
	}
	return content[:limit]
}
