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
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ecodeclub/recruit/internal/notification/internal/domain"
	smsclient "github.com/ecodeclub/recruit/internal/sms/client"
)

var ErrUnknownTemplate = errors.New("未配置的通知模板")

type SMSChannel struct {
	client smsclient.Client
	// 服务商那边审核通过的模板 ID
	templateIDs map[domain.Template]string
}

func NewSMSChannel(client smsclient.Client, templateIDs map[domain.Template]string) *SMSChannel {
	return &SMSChannel{client: client, templateIDs: templateIDs}
}

func (c *SMSChannel) Name() string {
	return "sms"
}

func (c *SMSChannel) Accept(r domain.Receiver) bool {
	return r.Phone != ""
}

func (c *SMSChannel) Send(ctx context.Context, n domain.Notification) error {
	tid, ok := c.templateIDs[n.Template]
	if !ok || tid == "" {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, n.Template)
	}
	resp, err := c.client.Send(smsclient.SendReq{
		PhoneNumbers: []string{n.Receiver.Phone},
		TemplateID:   tid,
		TemplateParam: map[string]string{
			"name":     n.Receiver.Name,
			"offer":    n.Payload.OfferTitle,
			"step":     n.Payload.StepTitle,
			"duration": strconv.FormatInt(n.Payload.Duration, 10),
		},
	})
	if err != nil {
		return err
	}
	for phone, status := range resp.PhoneNumbers {
		if status.Code != smsclient.OK {
			return fmt.Errorf("%w: %s %s %s", smsclient.ErrSendFailed, phone, status.Code, status.Message)
		}
	}
	return nil
}
