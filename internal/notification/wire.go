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

//go:build wireinject

package notification

import (
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/email"
	"github.com/ecodeclub/recruit/internal/email/aliyun"
	"github.com/ecodeclub/recruit/internal/notification/internal/channel"
	"github.com/ecodeclub/recruit/internal/notification/internal/domain"
	"github.com/ecodeclub/recruit/internal/notification/internal/event"
	"github.com/ecodeclub/recruit/internal/notification/internal/service"
	smsclient "github.com/ecodeclub/recruit/internal/sms/client"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		initConfig,
		initNotifier,
		initReporter,
		event.NewStepStartedEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

const (
	providerConsole = "console"
	providerAliyun  = "aliyun"
)

type EmailConfig struct {
	Provider     string                           `yaml:"provider"`
	From         string                           `yaml:"from"`
	AccessID     string                           `yaml:"accessId"`
	AccessSecret string                           `yaml:"accessSecret"`
	AccountName  string                           `yaml:"accountName"`
	Templates    map[string]channel.EmailTemplate `yaml:"templates"`
}

type SMSConfig struct {
	Provider     string            `yaml:"provider"`
	AccessID     string            `yaml:"accessId"`
	AccessSecret string            `yaml:"accessSecret"`
	SignName     string            `yaml:"signName"`
	Templates    map[string]string `yaml:"templates"`
}

type Config struct {
	Email EmailConfig         `yaml:"email"`
	SMS   SMSConfig           `yaml:"sms"`
	Retry service.RetryConfig `yaml:"retry"`
	// 企业微信机器人，为空就不汇总
	WechatRobot string `yaml:"wechatRobot"`
}

func initConfig() Config {
	var cfg Config
	err := econf.UnmarshalKey("recruit.notification", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initNotifier(cfg Config) (service.Notifier, error) {
	if err := cfg.Retry.Validate(); err != nil {
		return nil, fmt.Errorf("通知重试配置错误: %w", err)
	}
	var channels []channel.Channel
	if cfg.Email.Provider != "" {
		svc, err := initEmailService(cfg.Email)
		if err != nil {
			return nil, err
		}
		overrides := make(map[domain.Template]channel.EmailTemplate, len(cfg.Email.Templates))
		for name, tmpl := range cfg.Email.Templates {
			overrides[domain.Template(name)] = tmpl
		}
		ch, err := channel.NewEmailChannel(svc, cfg.Email.From, overrides)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	if cfg.SMS.Provider != "" {
		cli, err := initSMSClient(cfg.SMS)
		if err != nil {
			return nil, err
		}
		templateIDs := make(map[domain.Template]string, len(cfg.SMS.Templates))
		for name, id := range cfg.SMS.Templates {
			templateIDs[domain.Template(name)] = id
		}
		channels = append(channels, channel.NewSMSChannel(cli, templateIDs))
	}
	return service.NewNotifier(cfg.Retry, channels...), nil
}

func initEmailService(cfg EmailConfig) (email.Service, error) {
	switch cfg.Provider {
	case providerConsole:
		return email.NewConsoleService(), nil
	case providerAliyun:
		return aliyun.NewDirectMail(cfg.AccessID, cfg.AccessSecret, cfg.AccountName)
	default:
		return nil, fmt.Errorf("未知的邮件服务 %s", cfg.Provider)
	}
}

func initSMSClient(cfg SMSConfig) (smsclient.Client, error) {
	switch cfg.Provider {
	case providerConsole:
		return smsclient.NewConsoleClient(), nil
	case providerAliyun:
		return smsclient.NewAliyunSMS(cfg.AccessID, cfg.AccessSecret, cfg.SignName)
	default:
		return nil, fmt.Errorf("未知的短信服务 %s", cfg.Provider)
	}
}

func initReporter(cfg Config) service.Reporter {
	if cfg.WechatRobot == "" {
		return nil
	}
	return channel.NewWechatRobot(cfg.WechatRobot, nil)
}
