package client

import (
	"encoding/json"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dysmsapi "github.com/alibabacloud-go/dysmsapi-20170525/v4/client"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/ecodeclub/ekit/slice"
)

var _ Client = (*AliyunSMS)(nil)

// AliyunSMS 阿里云短信
type AliyunSMS struct {
	client   *dysmsapi.Client
	signName string
}

func NewAliyunSMS(accessKeyID, accessKeySecret, signName string) (*AliyunSMS, error) {
	client, err := dysmsapi.NewClient(&openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
		Endpoint:        tea.String("dysmsapi.aliyuncs.com"),
	})
	if err != nil {
		return nil, err
	}
	return &AliyunSMS{client: client, signName: signName}, nil
}

func (a *AliyunSMS) Send(req SendReq) (SendResp, error) {
	if len(req.PhoneNumbers) == 0 {
		return SendResp{}, fmt.Errorf("%w: 手机号码不能为空", ErrInvalidParameter)
	}
	templateParam := ""
	if req.TemplateParam != nil {
		data, err := json.Marshal(req.TemplateParam)
		if err != nil {
			return SendResp{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
		templateParam = string(data)
	}
	response, err := a.client.SendSms(&dysmsapi.SendSmsRequest{
		PhoneNumbers:  tea.String(strings.Join(req.PhoneNumbers, ",")),
		SignName:      tea.String(a.signName),
		TemplateCode:  tea.String(req.TemplateID),
		TemplateParam: tea.String(templateParam),
	})
	if err != nil {
		return SendResp{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}
	body := response.Body
	if body == nil || !strings.EqualFold(tea.StringValue(body.Code), OK) {
		msg := "响应异常"
		if body != nil {
			msg = tea.StringValue(body.Message)
		}
		return SendResp{}, fmt.Errorf("%w: %s", ErrSendFailed, msg)
	}
	// 阿里云只返回整体的状态
	status := SendRespStatus{Code: tea.StringValue(body.Code), Message: tea.StringValue(body.Message)}
	return SendResp{
		RequestID: tea.StringValue(body.RequestId),
		PhoneNumbers: slice.ToMapV(req.PhoneNumbers, func(element string) (string, SendRespStatus) {
			return strings.TrimPrefix(element, "+86"), status
		}),
	}, nil
}
