package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/recruit/internal/email"
)

var _ email.Service = (*DirectMail)(nil)

// DirectMail 阿里云邮件推送
type DirectMail struct {
	client *dm20151123.Client
	// 控制台配置的发信地址，例如 noreply@mail.example.com
	accountName string
	runtime     *util.RuntimeOptions
}

func NewDirectMail(accessKeyID, accessKeySecret, accountName string) (*DirectMail, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭据失败: %w", err)
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String("dm.aliyuncs.com"),
	})
	if err != nil {
		return nil, fmt.Errorf("创建邮件推送客户端失败: %w", err)
	}
	return &DirectMail{
		client:      client,
		accountName: accountName,
		// 重试交给调用方
		runtime: &util.RuntimeOptions{Autoretry: tea.Bool(false)},
	}, nil
}

func (d *DirectMail) SendMail(ctx context.Context, mail email.Mail) error {
	request := &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(d.accountName),
		FromAlias:   tea.String(mail.From),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	if mail.Tag != "" {
		request.TagName = tea.String(mail.Tag)
	}
	_, err := d.client.SingleSendMailWithOptions(request, d.runtime)
	if err != nil {
		return d.handleError(err)
	}
	return nil
}

func (d *DirectMail) handleError(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	msg := fmt.Sprintf("阿里云邮件推送错误: %s", tea.StringValue(sdkErr.Message))
	if sdkErr.Data != nil {
		var data map[string]any
		if json.NewDecoder(strings.NewReader(tea.StringValue(sdkErr.Data))).Decode(&data) == nil {
			if requestID, ok := data["RequestId"]; ok {
				msg += fmt.Sprintf(" | RequestId: %v", requestID)
			}
		}
	}
	return errors.New(msg)
}
