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

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/notification/event"
	"github.com/ecodeclub/recruit/internal/notification/internal/domain"
	"github.com/ecodeclub/recruit/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// 同时发送的候选人个数
const defaultConcurrency = 8

type StepStartedEventConsumer struct {
	consumer mq.Consumer
	notifier service.Notifier
	// 可以为 nil，表示不汇总
	reporter service.Reporter
	logger   *elog.Component
}

func NewStepStartedEventConsumer(q mq.MQ, notifier service.Notifier,
	reporter service.Reporter) (*StepStartedEventConsumer, error) {
	const groupID = "notification.recruit"
	consumer, err := q.Consumer(event.StepStartedEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &StepStartedEventConsumer{
		consumer: consumer,
		notifier: notifier,
		reporter: reporter,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.recruit.consumer")),
	}, nil
}

func (c *StepStartedEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费步骤开始事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

// Consume 单个候选人发送失败只记录，不影响其他人，也不会让消息重新投递
func (c *StepStartedEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.StepStartedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	tmpl, ok := domain.TemplateOf(evt.StepKind)
	if !ok {
		return fmt.Errorf("未知的步骤类型 %s, eventID %d", evt.StepKind, evt.EventID)
	}
	summary := c.notifyAll(ctx, evt, tmpl)
	if len(summary.Failed) > 0 {
		c.logger.Warn("部分候选人通知失败",
			elog.Int64("eventID", evt.EventID),
			elog.Int64("stepID", evt.StepID),
			elog.Int("failed", len(summary.Failed)),
			elog.Int("total", summary.Total))
	}
	if c.reporter == nil {
		return nil
	}
	if er := c.reporter.Report(ctx, summary); er != nil {
		c.logger.Warn("发送通知汇总失败", elog.FieldErr(er), elog.Int64("eventID", evt.EventID))
	}
	return nil
}

func (c *StepStartedEventConsumer) notifyAll(ctx context.Context,
	evt event.StepStartedEvent, tmpl domain.Template) domain.Summary {
	var (
		eg     errgroup.Group
		mu     sync.Mutex
		failed []string
	)
	eg.SetLimit(defaultConcurrency)
	payload := domain.Payload{
		OfferTitle: evt.OfferTitle,
		StepTitle:  evt.StepTitle,
		Duration:   evt.Duration,
	}
	for _, cand := range evt.Candidates {
		cand := cand
		eg.Go(func() error {
			n := domain.Notification{
				Key: fmt.Sprintf("%d_%d", evt.EventID, cand.ApplicationID),
				Receiver: domain.Receiver{
					Uid:   cand.Uid,
					Name:  cand.Name,
					Email: cand.Email,
					Phone: cand.Phone,
				},
				Template: tmpl,
				Payload:  payload,
			}
			if err := c.notifier.Notify(ctx, n); err != nil {
				c.logger.Warn("通知候选人失败",
					elog.FieldErr(err),
					elog.String("key", n.Key),
					elog.Int64("uid", cand.Uid))
				mu.Lock()
				failed = append(failed, cand.Name)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()
	return domain.Summary{
		OfferTitle: evt.OfferTitle,
		StepTitle:  evt.StepTitle,
		Total:      len(evt.Candidates),
		Failed:     failed,
	}
}
