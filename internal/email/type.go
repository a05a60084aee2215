package email

import "context"

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	// 发信人昵称
	From    string
	To      string
	Subject string
	// HTML 格式
	Body []byte
	// 邮件标签，用于在控制台按照模板统计
	Tag string
}
