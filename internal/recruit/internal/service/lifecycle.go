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

	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/event"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var stepTransitions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recruit_step_transition_total",
		Help: "Total number of recruitment step status transitions",
	},
	[]string{"to"},
)

//go:generate mockgen -source=./lifecycle.go -package=recruitmocks -destination=../../mocks/lifecycle.mock.go LifecycleService
type LifecycleService interface {
	// Start 开始一个步骤，返回需要通知的候选人。
	// 通知通过消息队列异步发送，发送失败不影响步骤的状态
	Start(ctx context.Context, id int64, scope domain.CandidateScope) (domain.StepStarted, error)
	Finish(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	// Score 人工评分，delta 累加到作答记录和投递记录上
	Score(ctx context.Context, stepID, applicationID, delta int64) (domain.Attempt, error)
}

type lifecycleService struct {
	stepRepo    repository.StepRepository
	attemptRepo repository.AttemptRepository
	producer    event.StepStartedEventProducer
	logger      *elog.Component
}

func NewLifecycleService(stepRepo repository.StepRepository,
	attemptRepo repository.AttemptRepository,
	producer event.StepStartedEventProducer) LifecycleService {
	return &lifecycleService{
		stepRepo:    stepRepo,
		attemptRepo: attemptRepo,
		producer:    producer,
		logger:      elog.DefaultLogger,
	}
}

func (s *lifecycleService) Start(ctx context.Context, id int64, scope domain.CandidateScope) (domain.StepStarted, error) {
	started, err := s.stepRepo.Start(ctx, id, scope, domain.CheckStart)
	if err != nil {
		return domain.StepStarted{}, err
	}
	stepTransitions.WithLabelValues(domain.StepStatusRunning.String()).Inc()
	if len(started.Applications) == 0 {
		return started, nil
	}
	// 事务已经提交，通知失败只记录
	if er := s.producer.Produce(ctx, started); er != nil {
		s.logger.Warn("发送步骤开始消息失败",
			elog.FieldErr(er),
			elog.Int64("stepID", id),
			elog.Int("candidates", len(started.Applications)))
	}
	return started, nil
}

func (s *lifecycleService) Finish(ctx context.Context, id int64) error {
	err := s.stepRepo.Finish(ctx, id, domain.CheckFinish)
	if err != nil {
		return err
	}
	stepTransitions.WithLabelValues(domain.StepStatusFinished.String()).Inc()
	return nil
}

func (s *lifecycleService) Cancel(ctx context.Context, id int64) error {
	err := s.stepRepo.Cancel(ctx, id, func(offer domain.Offer, step domain.Step) error {
		return domain.CheckCancel(step)
	})
	if err != nil {
		return err
	}
	stepTransitions.WithLabelValues(domain.StepStatusCancelled.String()).Inc()
	return nil
}

func (s *lifecycleService) Score(ctx context.Context, stepID, applicationID, delta int64) (domain.Attempt, error) {
	if delta < 0 {
		return domain.Attempt{}, domain.ErrNegativeScore
	}
	return s.attemptRepo.AddScore(ctx, stepID, applicationID, delta, func(step domain.Step) error {
		return domain.CheckScore(step, delta)
	})
}
