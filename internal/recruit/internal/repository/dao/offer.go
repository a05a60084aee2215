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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	offerStatusCreated = "CREE"
	offerStatusOpen    = "OUVERT"
	offerStatusClosed  = "FERME"
)

// PublishGuard 拿到岗位下全部的步骤、题目和答案，决定能不能发布
type PublishGuard func(offer Offer, steps []Step, questions []Question, answers []Answer) error

type OfferDAO interface {
	Create(ctx context.Context, offer Offer) (int64, error)
	FindByID(ctx context.Context, id int64) (Offer, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Offer, error)
	Publish(ctx context.Context, id int64, guard PublishGuard) error
	Close(ctx context.Context, id int64, guard func(offer Offer, applications int64) error) error
	// FindExpiredOpen 已经过了截止时间，但是还在接收投递，并且至少有一份投递的岗位。
	// 没有投递的岗位关不掉，放进结果里会把一整批占满
	FindExpiredOpen(ctx context.Context, now int64, limit int) ([]Offer, error)

	CreateApplication(ctx context.Context, app Application, guard func(offer Offer) error) (int64, error)
	FindApplicationByID(ctx context.Context, id int64) (Application, error)
	// FindApplicationsByOfferID 按照累计得分从高到低
	FindApplicationsByOfferID(ctx context.Context, offerID int64) ([]Application, error)
	CountApplications(ctx context.Context, offerID int64) (int64, error)
}

var _ OfferDAO = &GORMOfferDAO{}

type GORMOfferDAO struct {
	db *egorm.Component
}

func NewGORMOfferDAO(db *egorm.Component) OfferDAO {
	return &GORMOfferDAO{db: db}
}

func (dao *GORMOfferDAO) Create(ctx context.Context, offer Offer) (int64, error) {
	now := time.Now().UnixMilli()
	offer.Id = 0
	offer.Status = offerStatusCreated
	offer.RunningStepId = 0
	offer.Ctime, offer.Utime = now, now
	err := dao.db.WithContext(ctx).Create(&offer).Error
	return offer.Id, err
}

func (dao *GORMOfferDAO) FindByID(ctx context.Context, id int64) (Offer, error) {
	var res Offer
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMOfferDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Offer, error) {
	var res []Offer
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMOfferDAO) Publish(ctx context.Context, id int64, guard PublishGuard) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, id, now)
		if err != nil {
			return err
		}
		var (
			steps     []Step
			questions []Question
			answers   []Answer
		)
		err = tx.Where("offer_id = ?", id).Order("sort ASC").Find(&steps).Error
		if err != nil {
			return err
		}
		if len(steps) > 0 {
			stepIDs := make([]int64, 0, len(steps))
			for _, s := range steps {
				stepIDs = append(stepIDs, s.Id)
			}
			err = tx.Where("step_id IN ?", stepIDs).Order("sort ASC").Find(&questions).Error
			if err != nil {
				return err
			}
			err = tx.Where("step_id IN ?", stepIDs).Order("id ASC").Find(&answers).Error
			if err != nil {
				return err
			}
		}
		if err = guard(offer, steps, questions, answers); err != nil {
			return err
		}
		return casOfferStatus(tx, id, offerStatusCreated, offerStatusOpen, now)
	})
}

func (dao *GORMOfferDAO) Close(ctx context.Context, id int64, guard func(offer Offer, applications int64) error) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, id, now)
		if err != nil {
			return err
		}
		var cnt int64
		err = tx.Model(&Application{}).Where("offer_id = ?", id).Count(&cnt).Error
		if err != nil {
			return err
		}
		if err = guard(offer, cnt); err != nil {
			return err
		}
		return casOfferStatus(tx, id, offerStatusOpen, offerStatusClosed, now)
	})
}

func (dao *GORMOfferDAO) FindExpiredOpen(ctx context.Context, now int64, limit int) ([]Offer, error) {
	var res []Offer
	err := dao.db.WithContext(ctx).
		Where("status = ? AND deadline > ? AND deadline < ?", offerStatusOpen, 0, now).
		Where("EXISTS (SELECT 1 FROM recruit_applications WHERE recruit_applications.offer_id = recruit_offers.id)").
		Order("deadline ASC").Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMOfferDAO) CreateApplication(ctx context.Context, app Application, guard func(offer Offer) error) (int64, error) {
	now := time.Now().UnixMilli()
	app.Id = 0
	app.Note = 0
	app.Ctime, app.Utime = now, now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 和 Close 在岗位这一行上排队，关闭之后不会再有新的投递
		offer, err := lockOffer(tx, app.OfferId, now)
		if err != nil {
			return err
		}
		if err = guard(offer); err != nil {
			return err
		}
		var cnt int64
		err = tx.Model(&Application{}).
			Where("offer_id = ? AND uid = ?", app.OfferId, app.Uid).Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDuplicateApplication
		}
		return tx.Create(&app).Error
	})
	if isDuplicateKey(err) {
		return 0, ErrDuplicateApplication
	}
	return app.Id, err
}

func (dao *GORMOfferDAO) FindApplicationByID(ctx context.Context, id int64) (Application, error) {
	var res Application
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMOfferDAO) FindApplicationsByOfferID(ctx context.Context, offerID int64) ([]Application, error) {
	var res []Application
	err := dao.db.WithContext(ctx).Where("offer_id = ?", offerID).
		Order("note DESC, id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMOfferDAO) CountApplications(ctx context.Context, offerID int64) (int64, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Application{}).
		Where("offer_id = ?", offerID).Count(&cnt).Error
	return cnt, err
}

func casOfferStatus(tx *gorm.DB, id int64, from, to string, now int64) error {
	res := tx.Model(&Offer{}).Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "utime": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const duplicateErr uint16 = 1062
		return me.Number == duplicateErr
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
