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
	"time"

	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./offer.go -package=recruitmocks -destination=../../mocks/offer.mock.go OfferService
type OfferService interface {
	Create(ctx context.Context, offer domain.Offer) (int64, error)
	Get(ctx context.Context, id int64) (domain.Offer, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Offer, error)
	// Detail 岗位、排好序的步骤以及按得分排好的投递记录
	Detail(ctx context.Context, id int64) (domain.Offer, []domain.Application, error)
	// CanPublish 返回全部不合格的步骤，不修改任何数据
	CanPublish(ctx context.Context, id int64) (domain.PublishVerdict, error)
	Publish(ctx context.Context, id int64) error
	Close(ctx context.Context, id int64) error
	// CloseExpired 关闭已经过了截止时间的岗位，返回关闭的个数
	CloseExpired(ctx context.Context, now int64, limit int) (int, error)

	Apply(ctx context.Context, app domain.Application) (int64, error)
	ListApplications(ctx context.Context, offerID int64) ([]domain.Application, error)
}

type offerService struct {
	repo     repository.OfferRepository
	stepRepo repository.StepRepository
	logger   *elog.Component
}

func NewOfferService(repo repository.OfferRepository, stepRepo repository.StepRepository) OfferService {
	return &offerService{
		repo:     repo,
		stepRepo: stepRepo,
		logger:   elog.DefaultLogger,
	}
}

func (s *offerService) Create(ctx context.Context, offer domain.Offer) (int64, error) {
	if !offer.IsValid() {
		return 0, domain.ErrInvalidOffer
	}
	offer.Status = domain.OfferStatusCreated
	return s.repo.Create(ctx, offer)
}

func (s *offerService) Get(ctx context.Context, id int64) (domain.Offer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *offerService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Offer, error) {
	return s.repo.FindByUid(ctx, uid, offset, limit)
}

func (s *offerService) Detail(ctx context.Context, id int64) (domain.Offer, []domain.Application, error) {
	var (
		eg    errgroup.Group
		offer domain.Offer
		steps []domain.Step
		apps  []domain.Application
	)
	eg.Go(func() error {
		var err error
		offer, err = s.repo.FindByID(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		steps, err = s.stepRepo.FindByOfferID(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		apps, err = s.repo.FindApplications(ctx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Offer{}, nil, err
	}
	offer.Steps = steps
	return offer, apps, nil
}

func (s *offerService) CanPublish(ctx context.Context, id int64) (domain.PublishVerdict, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.PublishVerdict{}, err
	}
	steps, err := s.stepRepo.FindByOfferID(ctx, id)
	if err != nil {
		return domain.PublishVerdict{}, err
	}
	// 列表里面没有题目，问卷需要单独加载
	var eg errgroup.Group
	for i := range steps {
		if steps[i].Kind != domain.StepKindQuestionnaire {
			continue
		}
		i := i
		eg.Go(func() error {
			step, er := s.stepRepo.FindByID(ctx, steps[i].ID)
			if er != nil {
				return er
			}
			steps[i].Questions = step.Questions
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return domain.PublishVerdict{}, err
	}
	return domain.CheckPublishable(steps), nil
}

func (s *offerService) Publish(ctx context.Context, id int64) error {
	return s.repo.Publish(ctx, id, func(offer domain.Offer, steps []domain.Step) error {
		if err := offer.Editable(); err != nil {
			return err
		}
		return domain.CheckPublishable(steps).Err()
	})
}

func (s *offerService) Close(ctx context.Context, id int64) error {
	return s.repo.Close(ctx, id, func(offer domain.Offer, applications int64) error {
		return offer.Closable(applications)
	})
}

func (s *offerService) CloseExpired(ctx context.Context, now int64, limit int) (int, error) {
	offers, err := s.repo.FindExpiredOpen(ctx, now, limit)
	if err != nil {
		return 0, err
	}
	cnt := 0
	for _, o := range offers {
		err = s.Close(ctx, o.ID)
		if err != nil {
			// 没有人投递的岗位保持开放，等招聘方自己处理
			s.logger.Warn("关闭过期岗位失败",
				elog.FieldErr(err),
				elog.Int64("offerID", o.ID))
			continue
		}
		cnt++
	}
	return cnt, nil
}

func (s *offerService) Apply(ctx context.Context, app domain.Application) (int64, error) {
	if !app.Candidate.IsValid() {
		return 0, domain.ErrValidation
	}
	now := time.Now().UnixMilli()
	return s.repo.Apply(ctx, app, func(offer domain.Offer) error {
		return offer.Acceptable(now)
	})
}

func (s *offerService) ListApplications(ctx context.Context, offerID int64) ([]domain.Application, error) {
	return s.repo.FindApplications(ctx, offerID)
}
