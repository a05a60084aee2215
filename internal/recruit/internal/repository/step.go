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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/cache"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

// StepGuard 在事务内执行，拿到的是最新的岗位和步骤
type StepGuard func(offer domain.Offer, step domain.Step) error

//go:generate mockgen -source=./step.go -package=repomocks -destination=./mocks/step.mock.go StepRepository
type StepRepository interface {
	Create(ctx context.Context, step domain.Step, guard func(offer domain.Offer) error) (domain.Step, error)
	Update(ctx context.Context, step domain.Step, guard StepGuard) error
	Delete(ctx context.Context, id int64, guard StepGuard) error
	// FindByID 问卷类型的步骤会带上题目和答案
	FindByID(ctx context.Context, id int64) (domain.Step, error)
	// FindByOfferID 按照顺序排好，不带题目
	FindByOfferID(ctx context.Context, offerID int64) ([]domain.Step, error)
	Reorder(ctx context.Context, offerID int64,
		plan func(offer domain.Offer, steps []domain.Step) (map[int64]int, error)) error
	SaveQuestions(ctx context.Context, stepID int64, questions []domain.Question, guard StepGuard) error

	Start(ctx context.Context, id int64, scope domain.CandidateScope, guard StepGuard) (domain.StepStarted, error)
	Finish(ctx context.Context, id int64, guard func(step domain.Step, total, scored int64) error) error
	Cancel(ctx context.Context, id int64, guard StepGuard) error
}

var _ StepRepository = &CachedStepRepository{}

// CachedStepRepository 缓存岗位下排好序的步骤列表，任何修改步骤的操作都会删掉缓存
type CachedStepRepository struct {
	dao    dao.StepDAO
	cache  cache.StepCache
	logger *elog.Component
}

func NewCachedStepRepository(d dao.StepDAO, c cache.StepCache) StepRepository {
	return &CachedStepRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedStepRepository) Create(ctx context.Context, step domain.Step,
	guard func(offer domain.Offer) error) (domain.Step, error) {
	res, err := r.dao.Insert(ctx, toStepEntity(step), func(offer dao.Offer) error {
		return guard(toOfferDomain(offer))
	})
	if err != nil {
		return domain.Step{}, toDomainErr(err, domain.ErrOfferNotFound)
	}
	r.invalidate(ctx, res.OfferId)
	return toStepDomain(res), nil
}

func (r *CachedStepRepository) Update(ctx context.Context, step domain.Step, guard StepGuard) error {
	var offerID int64
	err := r.dao.Update(ctx, toStepEntity(step), r.wrap(guard, &offerID))
	if err != nil {
		return toDomainErr(err, domain.ErrStepNotFound)
	}
	r.invalidate(ctx, offerID)
	return nil
}

func (r *CachedStepRepository) Delete(ctx context.Context, id int64, guard StepGuard) error {
	var offerID int64
	err := r.dao.Delete(ctx, id, r.wrap(guard, &offerID), func(offer dao.Offer, steps []dao.Step) (map[int64]int, error) {
		return domain.Compact(slice.Map(steps, func(idx int, src dao.Step) domain.Step {
			return toStepDomain(src)
		})), nil
	})
	if err != nil {
		return toDomainErr(err, domain.ErrStepNotFound)
	}
	r.invalidate(ctx, offerID)
	return nil
}

func (r *CachedStepRepository) FindByID(ctx context.Context, id int64) (domain.Step, error) {
	step, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Step{}, toDomainErr(err, domain.ErrStepNotFound)
	}
	res := toStepDomain(step)
	if res.Kind != domain.StepKindQuestionnaire {
		return res, nil
	}
	questions, answers, err := r.dao.FindQuestions(ctx, []int64{id})
	if err != nil {
		return domain.Step{}, err
	}
	res.Questions = assembleQuestions(id, questions, answers)
	return res, nil
}

func (r *CachedStepRepository) FindByOfferID(ctx context.Context, offerID int64) ([]domain.Step, error) {
	steps, err := r.cache.GetSteps(ctx, offerID)
	if err == nil {
		return steps, nil
	}
	if !errors.Is(err, cache.ErrStepsNotFound) {
		r.logger.Warn("读取步骤缓存失败", elog.FieldErr(err), elog.Int64("offerID", offerID))
	}
	entities, err := r.dao.FindByOfferID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	steps = slice.Map(entities, func(idx int, src dao.Step) domain.Step {
		return toStepDomain(src)
	})
	if err = r.cache.SetSteps(ctx, offerID, steps); err != nil {
		r.logger.Warn("回写步骤缓存失败", elog.FieldErr(err), elog.Int64("offerID", offerID))
	}
	return steps, nil
}

func (r *CachedStepRepository) Reorder(ctx context.Context, offerID int64,
	plan func(offer domain.Offer, steps []domain.Step) (map[int64]int, error)) error {
	err := r.dao.Reorder(ctx, offerID, func(offer dao.Offer, steps []dao.Step) (map[int64]int, error) {
		return plan(toOfferDomain(offer), slice.Map(steps, func(idx int, src dao.Step) domain.Step {
			return toStepDomain(src)
		}))
	})
	if err != nil {
		return toDomainErr(err, domain.ErrOfferNotFound)
	}
	r.invalidate(ctx, offerID)
	return nil
}

func (r *CachedStepRepository) SaveQuestions(ctx context.Context, stepID int64,
	questions []domain.Question, guard StepGuard) error {
	qs := make([]dao.Question, 0, len(questions))
	as := make([][]dao.Answer, 0, len(questions))
	for _, q := range questions {
		qs = append(qs, dao.Question{Content: q.Content})
		as = append(as, slice.Map(q.Answers, func(idx int, src domain.Answer) dao.Answer {
			return dao.Answer{Content: src.Content, Correct: src.Correct}
		}))
	}
	err := r.dao.SaveQuestions(ctx, stepID, qs, as, r.wrap(guard, nil))
	return toDomainErr(err, domain.ErrStepNotFound)
}

func (r *CachedStepRepository) Start(ctx context.Context, id int64, scope domain.CandidateScope,
	guard StepGuard) (domain.StepStarted, error) {
	offer, step, apps, err := r.dao.Start(ctx, id, scope == domain.CandidateScopeAll, r.wrap(guard, nil))
	if err != nil {
		return domain.StepStarted{}, toDomainErr(err, domain.ErrStepNotFound)
	}
	r.invalidate(ctx, offer.Id)
	return domain.StepStarted{
		Offer: toOfferDomain(offer),
		Step:  toStepDomain(step),
		Applications: slice.Map(apps, func(idx int, src dao.Application) domain.Application {
			return toApplicationDomain(src)
		}),
	}, nil
}

func (r *CachedStepRepository) Finish(ctx context.Context, id int64,
	guard func(step domain.Step, total, scored int64) error) error {
	var offerID int64
	err := r.dao.Finish(ctx, id, func(step dao.Step, total, scored int64) error {
		offerID = step.OfferId
		return guard(toStepDomain(step), total, scored)
	})
	if err != nil {
		return toDomainErr(err, domain.ErrStepNotFound)
	}
	r.invalidate(ctx, offerID)
	return nil
}

func (r *CachedStepRepository) Cancel(ctx context.Context, id int64, guard StepGuard) error {
	var offerID int64
	err := r.dao.Cancel(ctx, id, r.wrap(guard, &offerID))
	if err != nil {
		return toDomainErr(err, domain.ErrStepNotFound)
	}
	r.invalidate(ctx, offerID)
	return nil
}

// wrap 把业务的 guard 转成 dao 的 guard，顺便记下步骤所属的岗位
func (r *CachedStepRepository) wrap(guard StepGuard, offerID *int64) dao.Guard {
	return func(offer dao.Offer, step dao.Step) error {
		if offerID != nil {
			*offerID = offer.Id
		}
		return guard(toOfferDomain(offer), toStepDomain(step))
	}
}

func (r *CachedStepRepository) invalidate(ctx context.Context, offerID int64) {
	if offerID == 0 {
		return
	}
	if err := r.cache.DelSteps(ctx, offerID); err != nil {
		r.logger.Warn("删除步骤缓存失败", elog.FieldErr(err), elog.Int64("offerID", offerID))
	}
}

func toStepDomain(s dao.Step) domain.Step {
	return domain.Step{
		ID:          s.Id,
		OfferID:     s.OfferId,
		Kind:        domain.StepKind(s.Kind),
		Title:       s.Title,
		Description: s.Description,
		Duration:    s.Duration,
		Status:      domain.StepStatus(s.Status),
		Order:       s.Sort,
		Ctime:       s.Ctime,
		Utime:       s.Utime,
	}
}

func toStepEntity(s domain.Step) dao.Step {
	return dao.Step{
		Id:          s.ID,
		OfferId:     s.OfferID,
		Kind:        s.Kind.String(),
		Title:       s.Title,
		Description: s.Description,
		Duration:    s.Duration,
		Status:      s.Status.String(),
		Sort:        s.Order,
	}
}

// assembleSteps 把平铺的题目和答案挂到对应的步骤上
func assembleSteps(steps []dao.Step, questions []dao.Question, answers []dao.Answer) []domain.Step {
	res := make([]domain.Step, 0, len(steps))
	for _, s := range steps {
		step := toStepDomain(s)
		if step.Kind == domain.StepKindQuestionnaire {
			step.Questions = assembleQuestions(s.Id, questions, answers)
		}
		res = append(res, step)
	}
	return res
}

func assembleQuestions(stepID int64, questions []dao.Question, answers []dao.Answer) []domain.Question {
	byQuestion := make(map[int64][]domain.Answer, len(questions))
	for _, a := range answers {
		if a.StepId != stepID {
			continue
		}
		byQuestion[a.QuestionId] = append(byQuestion[a.QuestionId], domain.Answer{
			ID:         a.Id,
			QuestionID: a.QuestionId,
			Content:    a.Content,
			Correct:    a.Correct,
		})
	}
	res := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if q.StepId != stepID {
			continue
		}
		res = append(res, domain.Question{
			ID:      q.Id,
			StepID:  q.StepId,
			Content: q.Content,
			Answers: byQuestion[q.Id],
		})
	}
	return res
}
