package client

import (
	"errors"
)

const (
	OK = "OK"
)

var (
	ErrSendFailed       = errors.New("发送短信失败")
	ErrInvalidParameter = errors.New("参数无效")
)

// Client 短信客户端
//
//go:generate mockgen -source=./types.go -destination=./mocks/sms.mock.go -package=smsmocks Client
type Client interface {
	Send(req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers []string
	// 服务商审核通过的模板 ID
	TemplateID    string
	TemplateParam map[string]string
}

type SendResp struct {
	RequestID string
	// 去掉 +86 之后的手机号
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
