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

package repository

import (
	"context"
	"encoding/json"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

// SubmitGuard 在事务内执行，拿到的是最新的岗位、步骤和投递记录
type SubmitGuard func(offer domain.Offer, step domain.Step, app domain.Application) error

//go:generate mockgen -source=./attempt.go -package=repomocks -destination=./mocks/attempt.mock.go AttemptRepository
type AttemptRepository interface {
	// Create 记录作答，attempt.Score 会同时累加到投递记录上
	Create(ctx context.Context, attempt domain.Attempt, guard SubmitGuard) (domain.Attempt, error)
	AddScore(ctx context.Context, stepID, applicationID, delta int64,
		guard func(step domain.Step) error) (domain.Attempt, error)
	Find(ctx context.Context, stepID, applicationID int64) (domain.Attempt, error)
	FindByStepID(ctx context.Context, stepID int64) ([]domain.Attempt, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Attempt, error)
}

var _ AttemptRepository = &attemptRepository{}

type attemptRepository struct {
	dao    dao.AttemptDAO
	logger *elog.Component
}

func NewAttemptRepository(d dao.AttemptDAO) AttemptRepository {
	return &attemptRepository{dao: d, logger: elog.DefaultLogger}
}

func (r *attemptRepository) Create(ctx context.Context, attempt domain.Attempt,
	guard SubmitGuard) (domain.Attempt, error) {
	entity, err := toAttemptEntity(attempt)
	if err != nil {
		return domain.Attempt{}, err
	}
	res, err := r.dao.Create(ctx, entity, func(offer dao.Offer, step dao.Step, app dao.Application) error {
		return guard(toOfferDomain(offer), toStepDomain(step), toApplicationDomain(app))
	})
	if err != nil {
		return domain.Attempt{}, toDomainErr(err, domain.ErrStepNotFound)
	}
	return r.toDomain(res), nil
}

func (r *attemptRepository) AddScore(ctx context.Context, stepID, applicationID, delta int64,
	guard func(step domain.Step) error) (domain.Attempt, error) {
	res, err := r.dao.AddScore(ctx, stepID, applicationID, delta, func(step dao.Step) error {
		return guard(toStepDomain(step))
	})
	if err != nil {
		return domain.Attempt{}, toDomainErr(err, domain.ErrStepNotFound)
	}
	return r.toDomain(res), nil
}

func (r *attemptRepository) Find(ctx context.Context, stepID, applicationID int64) (domain.Attempt, error) {
	res, err := r.dao.Find(ctx, stepID, applicationID)
	if err != nil {
		return domain.Attempt{}, toDomainErr(err, domain.ErrAttemptNotFound)
	}
	return r.toDomain(res), nil
}

func (r *attemptRepository) FindByStepID(ctx context.Context, stepID int64) ([]domain.Attempt, error) {
	res, err := r.dao.FindByStepID(ctx, stepID)
	return slice.Map(res, func(idx int, src dao.Attempt) domain.Attempt {
		return r.toDomain(src)
	}), err
}

func (r *attemptRepository) FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Attempt, error) {
	res, err := r.dao.FindByApplicationID(ctx, applicationID)
	return slice.Map(res, func(idx int, src dao.Attempt) domain.Attempt {
		return r.toDomain(src)
	}), err
}

func (r *attemptRepository) toDomain(a dao.Attempt) domain.Attempt {
	var selections []domain.Selection
	if a.Selections != "" {
		// 写入的时候已经校验过，这里出错只可能是数据被人改过
		if err := json.Unmarshal([]byte(a.Selections), &selections); err != nil {
			r.logger.Error("作答记录的选择无法解析",
				elog.FieldErr(err), elog.Int64("attemptID", a.Id))
		}
	}
	return domain.Attempt{
		ID:            a.Id,
		StepID:        a.StepId,
		ApplicationID: a.ApplicationId,
		Status:        domain.AttemptStatus(a.Status),
		Score:         a.Score,
		Selections:    selections,
		Task: domain.TaskPayload{
			FileRef: a.FileRef,
			Link:    a.Link,
		},
		Tid:   a.Tid,
		Ctime: a.Ctime,
		Utime: a.Utime,
	}
}

func toAttemptEntity(a domain.Attempt) (dao.Attempt, error) {
	res := dao.Attempt{
		Id:            a.ID,
		StepId:        a.StepID,
		ApplicationId: a.ApplicationID,
		Status:        a.Status.String(),
		Score:         a.Score,
		FileRef:       a.Task.FileRef,
		Link:          a.Task.Link,
		Tid:           a.Tid,
	}
	if len(a.Selections) > 0 {
		b, err := json.Marshal(a.Selections)
		if err != nil {
			return dao.Attempt{}, err
		}
		res.Selections = string(b)
	}
	return res, nil
}
