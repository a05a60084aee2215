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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/dao"
)

//go:generate mockgen -source=./offer.go -package=repomocks -destination=./mocks/offer.mock.go OfferRepository
type OfferRepository interface {
	Create(ctx context.Context, offer domain.Offer) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Offer, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Offer, error)
	// Publish guard 拿到的步骤是按顺序排好的，问卷带着题目和答案
	Publish(ctx context.Context, id int64, guard func(offer domain.Offer, steps []domain.Step) error) error
	Close(ctx context.Context, id int64, guard func(offer domain.Offer, applications int64) error) error
	FindExpiredOpen(ctx context.Context, now int64, limit int) ([]domain.Offer, error)

	Apply(ctx context.Context, app domain.Application, guard func(offer domain.Offer) error) (int64, error)
	FindApplicationByID(ctx context.Context, id int64) (domain.Application, error)
	FindApplications(ctx context.Context, offerID int64) ([]domain.Application, error)
	CountApplications(ctx context.Context, offerID int64) (int64, error)
}

var _ OfferRepository = &offerRepository{}

type offerRepository struct {
	dao dao.OfferDAO
}

func NewOfferRepository(d dao.OfferDAO) OfferRepository {
	return &offerRepository{dao: d}
}

func (r *offerRepository) Create(ctx context.Context, offer domain.Offer) (int64, error) {
	return r.dao.Create(ctx, toOfferEntity(offer))
}

func (r *offerRepository) FindByID(ctx context.Context, id int64) (domain.Offer, error) {
	offer, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Offer{}, toDomainErr(err, domain.ErrOfferNotFound)
	}
	return toOfferDomain(offer), nil
}

func (r *offerRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Offer, error) {
	offers, err := r.dao.FindByUid(ctx, uid, offset, limit)
	return slice.Map(offers, func(idx int, src dao.Offer) domain.Offer {
		return toOfferDomain(src)
	}), err
}

func (r *offerRepository) Publish(ctx context.Context, id int64,
	guard func(offer domain.Offer, steps []domain.Step) error) error {
	err := r.dao.Publish(ctx, id, func(offer dao.Offer, steps []dao.Step, questions []dao.Question, answers []dao.Answer) error {
		return guard(toOfferDomain(offer), assembleSteps(steps, questions, answers))
	})
	return toDomainErr(err, domain.ErrOfferNotFound)
}

func (r *offerRepository) Close(ctx context.Context, id int64,
	guard func(offer domain.Offer, applications int64) error) error {
	err := r.dao.Close(ctx, id, func(offer dao.Offer, applications int64) error {
		return guard(toOfferDomain(offer), applications)
	})
	return toDomainErr(err, domain.ErrOfferNotFound)
}

func (r *offerRepository) FindExpiredOpen(ctx context.Context, now int64, limit int) ([]domain.Offer, error) {
	offers, err := r.dao.FindExpiredOpen(ctx, now, limit)
	return slice.Map(offers, func(idx int, src dao.Offer) domain.Offer {
		return toOfferDomain(src)
	}), err
}

func (r *offerRepository) Apply(ctx context.Context, app domain.Application,
	guard func(offer domain.Offer) error) (int64, error) {
	id, err := r.dao.CreateApplication(ctx, toApplicationEntity(app), func(offer dao.Offer) error {
		return guard(toOfferDomain(offer))
	})
	return id, toDomainErr(err, domain.ErrOfferNotFound)
}

func (r *offerRepository) FindApplicationByID(ctx context.Context, id int64) (domain.Application, error) {
	app, err := r.dao.FindApplicationByID(ctx, id)
	if err != nil {
		return domain.Application{}, toDomainErr(err, domain.ErrApplicationNotFound)
	}
	return toApplicationDomain(app), nil
}

func (r *offerRepository) FindApplications(ctx context.Context, offerID int64) ([]domain.Application, error) {
	apps, err := r.dao.FindApplicationsByOfferID(ctx, offerID)
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return toApplicationDomain(src)
	}), err
}

func (r *offerRepository) CountApplications(ctx context.Context, offerID int64) (int64, error) {
	return r.dao.CountApplications(ctx, offerID)
}

func toOfferDomain(o dao.Offer) domain.Offer {
	return domain.Offer{
		ID:            o.Id,
		Uid:           o.Uid,
		Title:         o.Title,
		Description:   o.Description,
		Headcount:     o.Headcount,
		Deadline:      o.Deadline,
		Status:        domain.OfferStatus(o.Status),
		RunningStepID: o.RunningStepId,
		Ctime:         o.Ctime,
		Utime:         o.Utime,
	}
}

func toOfferEntity(o domain.Offer) dao.Offer {
	return dao.Offer{
		Id:          o.ID,
		Uid:         o.Uid,
		Title:       o.Title,
		Description: o.Description,
		Headcount:   o.Headcount,
		Deadline:    o.Deadline,
		Status:      o.Status.String(),
	}
}

func toApplicationDomain(a dao.Application) domain.Application {
	return domain.Application{
		ID:      a.Id,
		OfferID: a.OfferId,
		Candidate: domain.Candidate{
			Uid:   a.Uid,
			Name:  a.Name,
			Email: a.Email,
			Phone: a.Phone,
		},
		Note:  a.Note,
		Ctime: a.Ctime,
		Utime: a.Utime,
	}
}

func toApplicationEntity(a domain.Application) dao.Application {
	return dao.Application{
		Id:      a.ID,
		OfferId: a.OfferID,
		Uid:     a.Candidate.Uid,
		Name:    a.Candidate.Name,
		Email:   a.Candidate.Email,
		Phone:   a.Candidate.Phone,
	}
}
