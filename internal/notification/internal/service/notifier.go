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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/recruit/internal/notification/internal/channel"
	"github.com/ecodeclub/recruit/internal/notification/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ErrNoAvailableChannel = errors.New("候选人没有任何可用的联系方式")

var notifications = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recruit_notification_total",
		Help: "Total number of candidate notifications by channel and result",
	},
	[]string{"channel", "result"},
)

//go:generate mockgen -source=./notifier.go -package=svcmocks -destination=./mocks/notifier.mock.go Notifier,Reporter
type Notifier interface {
	// Notify 通过候选人所有可用的渠道发送，任意一个渠道成功就算送达
	Notify(ctx context.Context, n domain.Notification) error
}

// Reporter 汇总一次步骤开始的通知结果
type Reporter interface {
	Report(ctx context.Context, s domain.Summary) error
}

// RetryConfig 每个渠道单独重试
type RetryConfig struct {
	InitialInterval time.Duration `yaml:"initialInterval"`
	MaxInterval     time.Duration `yaml:"maxInterval"`
	MaxRetries      int32         `yaml:"maxRetries"`
}

var defaultRetryConfig = RetryConfig{
	InitialInterval: 100 * time.Millisecond,
	MaxInterval:     2 * time.Second,
	MaxRetries:      3,
}

// WithDefault 没有配置的字段用默认值
func (c RetryConfig) WithDefault() RetryConfig {
	if c.InitialInterval <= 0 {
		c.InitialInterval = defaultRetryConfig.InitialInterval
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = max(defaultRetryConfig.MaxInterval, c.InitialInterval)
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaultRetryConfig.MaxRetries
	}
	return c
}

// Validate 补上默认值之后，初始间隔不能超过最大间隔
func (c RetryConfig) Validate() error {
	c = c.WithDefault()
	if c.InitialInterval > c.MaxInterval {
		return fmt.Errorf("重试初始间隔 %s 大于最大间隔 %s", c.InitialInterval, c.MaxInterval)
	}
	return nil
}

type notifier struct {
	channels []channel.Channel
	retry    RetryConfig
	logger   *elog.Component
}

func NewNotifier(retry RetryConfig, channels ...channel.Channel) Notifier {
	return &notifier{
		channels: channels,
		retry:    retry.WithDefault(),
		logger:   elog.DefaultLogger,
	}
}

func (s *notifier) Notify(ctx context.Context, n domain.Notification) error {
	var errs []error
	sent := 0
	for _, c := range s.channels {
		if !c.Accept(n.Receiver) {
			continue
		}
		err := s.send(ctx, c, n)
		if err != nil {
			notifications.WithLabelValues(c.Name(), "failure").Inc()
			errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
			continue
		}
		notifications.WithLabelValues(c.Name(), "success").Inc()
		sent++
	}
	if sent > 0 {
		if len(errs) > 0 {
			s.logger.Warn("部分渠道通知失败",
				elog.FieldErr(errors.Join(errs...)),
				elog.String("key", n.Key))
		}
		return nil
	}
	if len(errs) == 0 {
		return ErrNoAvailableChannel
	}
	return errors.Join(errs...)
}

func (s *notifier) send(ctx context.Context, c channel.Channel, n domain.Notification) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.retry.InitialInterval,
		s.retry.MaxInterval, s.retry.MaxRetries)
	if err != nil {
		return err
	}
	for {
		err = c.Send(ctx, n)
		if err == nil {
			return nil
		}
		if errors.Is(err, channel.ErrUnknownTemplate) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return err
		}
		s.logger.Debug("通知发送失败，准备重试",
			elog.FieldErr(err),
			elog.String("channel", c.Name()),
			elog.String("key", n.Key),
			elog.String("after", next.String()))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}
