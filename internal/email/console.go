package email

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
)

// ConsoleService 只打印日志，开发环境使用
type ConsoleService struct {
	logger *elog.Component
}

func NewConsoleService() *ConsoleService {
	return &ConsoleService{logger: elog.DefaultLogger}
}

func (c *ConsoleService) SendMail(ctx context.Context, mail Mail) error {
	c.logger.Info("发送邮件",
		elog.String("to", mail.To),
		elog.String("subject", mail.Subject),
		elog.String("tag", mail.Tag))
	return nil
}
