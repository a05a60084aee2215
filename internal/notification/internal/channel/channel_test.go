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
	"testing"

	"github.com/ecodeclub/recruit/internal/email"
	emailmocks "github.com/ecodeclub/recruit/internal/email/mocks"
	"github.com/ecodeclub/recruit/internal/notification/internal/domain"
	smsclient "github.com/ecodeclub/recruit/internal/sms/client"
	smsmocks "github.com/ecodeclub/recruit/internal/sms/client/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEmailChannel_Send(t *testing.T) {
	n := domain.Notification{
		Key:      "1_2",
		Receiver: domain.Receiver{Uid: 1, Name: "张三", Email: "zhangsan@example.com"},
		Template: domain.TemplateQuestionnaireStarted,
		Payload:  domain.Payload{OfferTitle: "Go 工程师", StepTitle: "基础知识 & 算法", Duration: 30},
	}
	testCases := []struct {
		name      string
		overrides map[domain.Template]EmailTemplate
		n         domain.Notification
		mock      func(ctrl *gomock.Controller) email.Service

		wantErr error
	}{
		{
			name: "默认模板",
			n:    n,
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, mail email.Mail) error {
					assert.Equal(t, "招聘团队", mail.From)
					assert.Equal(t, "zhangsan@example.com", mail.To)
					// 主题是纯文本，不转义
					assert.Equal(t, "【Go 工程师】问卷已开放：基础知识 & 算法", mail.Subject)
					assert.Contains(t, string(mail.Body), "基础知识 &amp; 算法")
					assert.Contains(t, string(mail.Body), "30 分钟")
					assert.Equal(t, "questionnaire_started", mail.Tag)
					return nil
				})
				return svc
			},
		},
		{
			name: "配置覆盖模板",
			overrides: map[domain.Template]EmailTemplate{
				domain.TemplateQuestionnaireStarted: {Subject: "问卷 {{.StepTitle}}", Body: "<p>{{.Name}}</p>"},
			},
			n: n,
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), email.Mail{
					From:    "招聘团队",
					To:      "zhangsan@example.com",
					Subject: "问卷 基础知识 & 算法",
					Body:    []byte("<p>张三</p>"),
					Tag:     "questionnaire_started",
				}).Return(nil)
				return svc
			},
		},
		{
			name: "发送失败",
			n:    n,
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return svc
			},
			wantErr: errors.New("mock error"),
		},
		{
			name: "未知模板",
			n:    domain.Notification{Template: "unknown"},
			mock: func(ctrl *gomock.Controller) email.Service {
				return emailmocks.NewMockService(ctrl)
			},
			wantErr: ErrUnknownTemplate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c, err := NewEmailChannel(tc.mock(ctrl), "招聘团队", tc.overrides)
			require.NoError(t, err)
			err = c.Send(context.Background(), tc.n)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr.Error())
		})
	}
}

func TestNewEmailChannel_BadTemplate(t *testing.T) {
	_, err := NewEmailChannel(nil, "招聘团队", map[domain.Template]EmailTemplate{
		domain.TemplateTaskStarted: {Subject: "{{.OfferTitle", Body: "body"},
	})
	assert.Error(t, err)
}

func TestSMSChannel_Send(t *testing.T) {
	n := domain.Notification{
		Receiver: domain.Receiver{Uid: 1, Name: "张三", Phone: "13800000000"},
		Template: domain.TemplateInterviewInvitation,
		Payload:  domain.Payload{OfferTitle: "Go 工程师", StepTitle: "一面", Duration: 45},
	}
	req := smsclient.SendReq{
		PhoneNumbers: []string{"13800000000"},
		TemplateID:   "SMS_3",
		TemplateParam: map[string]string{
			"name":     "张三",
			"offer":    "Go 工程师",
			"step":     "一面",
			"duration": "45",
		},
	}
	templateIDs := map[domain.Template]string{
		domain.TemplateTaskStarted:         "SMS_1",
		domain.TemplateInterviewInvitation: "SMS_3",
	}
	testCases := []struct {
		name string
		n    domain.Notification
		mock func(ctrl *gomock.Controller) smsclient.Client

		wantErr error
	}{
		{
			name: "发送成功",
			n:    n,
			mock: func(ctrl *gomock.Controller) smsclient.Client {
				client := smsmocks.NewMockClient(ctrl)
				client.EXPECT().Send(req).Return(smsclient.SendResp{
					PhoneNumbers: map[string]smsclient.SendRespStatus{"13800000000": {Code: smsclient.OK}},
				}, nil)
				return client
			},
		},
		{
			name: "号码发送失败",
			n:    n,
			mock: func(ctrl *gomock.Controller) smsclient.Client {
				client := smsmocks.NewMockClient(ctrl)
				client.EXPECT().Send(req).Return(smsclient.SendResp{
					PhoneNumbers: map[string]smsclient.SendRespStatus{
						"13800000000": {Code: "isv.MOBILE_NUMBER_ILLEGAL", Message: "非法手机号"},
					},
				}, nil)
				return client
			},
			wantErr: smsclient.ErrSendFailed,
		},
		{
			name: "没有配置模板",
			n:    domain.Notification{Receiver: n.Receiver, Template: domain.TemplateQuestionnaireStarted},
			mock: func(ctrl *gomock.Controller) smsclient.Client {
				return smsmocks.NewMockClient(ctrl)
			},
			wantErr: ErrUnknownTemplate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := NewSMSChannel(tc.mock(ctrl), templateIDs)
			err := c.Send(context.Background(), tc.n)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestChannel_Accept(t *testing.T) {
	emailCh, err := NewEmailChannel(nil, "", nil)
	require.NoError(t, err)
	smsCh := NewSMSChannel(nil, nil)

	onlyEmail := domain.Receiver{Email: "a@b.com"}
	onlyPhone := domain.Receiver{Phone: "13800000000"}
	assert.True(t, emailCh.Accept(onlyEmail))
	assert.False(t, emailCh.Accept(onlyPhone))
	assert.True(t, smsCh.Accept(onlyPhone))
	assert.False(t, smsCh.Accept(onlyEmail))
}
