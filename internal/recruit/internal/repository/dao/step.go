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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

const (
	stepStatusUpcoming = "UPCOMING"
	stepStatusRunning  = "RUNNING"
	stepStatusFinished = "FINISHED"
	stepStatusCanceled = "CANCELLED"
)

// Guard 在事务内、任何写操作之前执行，返回 error 则整个事务回滚，并把 error 原样返回
type Guard func(offer Offer, step Step) error

// FinishGuard total 是该步骤的作答记录数，scored 是分数大于 0 的作答记录数
type FinishGuard func(step Step, total, scored int64) error

// OrderPlan 根据岗位和全部步骤，算出每个步骤新的顺序
type OrderPlan func(offer Offer, steps []Step) (map[int64]int, error)

type StepDAO interface {
	// Insert 追加到最后，顺序是 N+1
	Insert(ctx context.Context, step Step, guard func(offer Offer) error) (Step, error)
	Update(ctx context.Context, step Step, guard Guard) error
	// Delete 删除步骤以及它的题目，剩下的步骤按照 plan 重新编号
	Delete(ctx context.Context, id int64, guard Guard, plan OrderPlan) error
	FindByID(ctx context.Context, id int64) (Step, error)
	FindByOfferID(ctx context.Context, offerID int64) ([]Step, error)
	// Reorder 在一个事务里面重新编号
	Reorder(ctx context.Context, offerID int64, plan OrderPlan) error

	SaveQuestions(ctx context.Context, stepID int64, questions []Question, answers [][]Answer, guard Guard) error
	FindQuestions(ctx context.Context, stepIDs []int64) ([]Question, []Answer, error)

	// Start 抢占岗位的进行中位置，并返回需要通知的投递记录
	Start(ctx context.Context, id int64, all bool, guard Guard) (Offer, Step, []Application, error)
	Finish(ctx context.Context, id int64, guard FinishGuard) error
	Cancel(ctx context.Context, id int64, guard Guard) error
}

var _ StepDAO = &GORMStepDAO{}

type GORMStepDAO struct {
	db *egorm.Component
}

func NewGORMStepDAO(db *egorm.Component) StepDAO {
	return &GORMStepDAO{db: db}
}

func (dao *GORMStepDAO) Insert(ctx context.Context, step Step, guard func(offer Offer) error) (Step, error) {
	now := time.Now().UnixMilli()
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, step.OfferId, now)
		if err != nil {
			return err
		}
		if err = guard(offer); err != nil {
			return err
		}
		var cnt int64
		err = tx.Model(&Step{}).Where("offer_id = ?", step.OfferId).Count(&cnt).Error
		if err != nil {
			return err
		}
		step.Sort = int(cnt) + 1
		step.Status = stepStatusUpcoming
		step.Ctime, step.Utime = now, now
		return tx.Create(&step).Error
	})
	return step, err
}

func (dao *GORMStepDAO) Update(ctx context.Context, step Step, guard Guard) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, old, err := lockStep(tx, step.Id, now)
		if err != nil {
			return err
		}
		if err = guard(offer, old); err != nil {
			return err
		}
		return tx.Model(&Step{}).Where("id = ?", step.Id).Updates(map[string]any{
			"title":       step.Title,
			"description": step.Description,
			"duration":    step.Duration,
			"utime":       now,
		}).Error
	})
}

func (dao *GORMStepDAO) Delete(ctx context.Context, id int64, guard Guard, plan OrderPlan) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, step, err := lockStep(tx, id, now)
		if err != nil {
			return err
		}
		if err = guard(offer, step); err != nil {
			return err
		}
		if err = tx.Where("step_id = ?", id).Delete(&Answer{}).Error; err != nil {
			return err
		}
		if err = tx.Where("step_id = ?", id).Delete(&Question{}).Error; err != nil {
			return err
		}
		if err = tx.Where("id = ?", id).Delete(&Step{}).Error; err != nil {
			return err
		}
		return reorder(tx, offer, plan, now)
	})
}

func (dao *GORMStepDAO) FindByID(ctx context.Context, id int64) (Step, error) {
	var res Step
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMStepDAO) FindByOfferID(ctx context.Context, offerID int64) ([]Step, error) {
	var res []Step
	err := dao.db.WithContext(ctx).Where("offer_id = ?", offerID).
		Order("sort ASC").Find(&res).Error
	return res, err
}

func (dao *GORMStepDAO) Reorder(ctx context.Context, offerID int64, plan OrderPlan) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, err := lockOffer(tx, offerID, now)
		if err != nil {
			return err
		}
		return reorder(tx, offer, plan, now)
	})
}

// reorder 只写回顺序发生变化的步骤
func reorder(tx *gorm.DB, offer Offer, plan OrderPlan, now int64) error {
	var steps []Step
	err := tx.Where("offer_id = ?", offer.Id).Order("sort ASC").Find(&steps).Error
	if err != nil {
		return err
	}
	orders, err := plan(offer, steps)
	if err != nil {
		return err
	}
	for _, s := range steps {
		sort, ok := orders[s.Id]
		if !ok || sort == s.Sort {
			continue
		}
		err = tx.Model(&Step{}).Where("id = ?", s.Id).
			Updates(map[string]any{"sort": sort, "utime": now}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (dao *GORMStepDAO) SaveQuestions(ctx context.Context, stepID int64,
	questions []Question, answers [][]Answer, guard Guard) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, step, err := lockStep(tx, stepID, now)
		if err != nil {
			return err
		}
		if err = guard(offer, step); err != nil {
			return err
		}
		// 整体替换
		if err = tx.Where("step_id = ?", stepID).Delete(&Answer{}).Error; err != nil {
			return err
		}
		if err = tx.Where("step_id = ?", stepID).Delete(&Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			q := questions[i]
			q.Id = 0
			q.StepId = stepID
			q.Sort = i + 1
			q.Ctime, q.Utime = now, now
			if err = tx.Create(&q).Error; err != nil {
				return err
			}
			if i >= len(answers) || len(answers[i]) == 0 {
				continue
			}
			as := make([]Answer, 0, len(answers[i]))
			for _, a := range answers[i] {
				a.Id = 0
				a.StepId = stepID
				a.QuestionId = q.Id
				a.Ctime, a.Utime = now, now
				as = append(as, a)
			}
			if err = tx.Create(&as).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (dao *GORMStepDAO) FindQuestions(ctx context.Context, stepIDs []int64) ([]Question, []Answer, error) {
	if len(stepIDs) == 0 {
		return nil, nil, nil
	}
	var (
		questions []Question
		answers   []Answer
	)
	db := dao.db.WithContext(ctx)
	err := db.Where("step_id IN ?", stepIDs).Order("step_id ASC, sort ASC").Find(&questions).Error
	if err != nil {
		return nil, nil, err
	}
	err = db.Where("step_id IN ?", stepIDs).Order("id ASC").Find(&answers).Error
	return questions, answers, err
}

func (dao *GORMStepDAO) Start(ctx context.Context, id int64, all bool, guard Guard) (Offer, Step, []Application, error) {
	now := time.Now().UnixMilli()
	var (
		offer Offer
		step  Step
		apps  []Application
	)
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		offer, step, err = lockStep(tx, id, now)
		if err != nil {
			return err
		}
		if err = guard(offer, step); err != nil {
			return err
		}
		// 抢占岗位的进行中位置，这一步是并发开始时真正的裁决
		res := tx.Model(&Offer{}).
			Where("id = ? AND running_step_id = ?", offer.Id, 0).
			Updates(map[string]any{"running_step_id": id, "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSlotOccupied
		}
		res = tx.Model(&Step{}).
			Where("id = ? AND status = ?", id, stepStatusUpcoming).
			Updates(map[string]any{"status": stepStatusRunning, "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}
		offer.RunningStepId = id
		step.Status = stepStatusRunning
		step.Utime = now

		query := tx.Where("offer_id = ?", offer.Id)
		if !all {
			query = query.Where("id NOT IN (?)",
				tx.Model(&Attempt{}).Select("application_id").Where("step_id = ?", id))
		}
		return query.Order("id ASC").Find(&apps).Error
	})
	return offer, step, apps, err
}

func (dao *GORMStepDAO) Finish(ctx context.Context, id int64, guard FinishGuard) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, step, err := lockStep(tx, id, now)
		if err != nil {
			return err
		}
		var total, scored int64
		err = tx.Model(&Attempt{}).Where("step_id = ?", id).Count(&total).Error
		if err != nil {
			return err
		}
		err = tx.Model(&Attempt{}).Where("step_id = ? AND score > ?", id, 0).Count(&scored).Error
		if err != nil {
			return err
		}
		if err = guard(step, total, scored); err != nil {
			return err
		}
		res := tx.Model(&Step{}).
			Where("id = ? AND status = ?", id, stepStatusRunning).
			Updates(map[string]any{"status": stepStatusFinished, "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}
		// 释放进行中的位置
		return tx.Model(&Offer{}).
			Where("id = ? AND running_step_id = ?", offer.Id, id).
			Updates(map[string]any{"running_step_id": 0, "utime": now}).Error
	})
}

func (dao *GORMStepDAO) Cancel(ctx context.Context, id int64, guard Guard) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, step, err := lockStep(tx, id, now)
		if err != nil {
			return err
		}
		if err = guard(offer, step); err != nil {
			return err
		}
		res := tx.Model(&Step{}).
			Where("id = ? AND status = ?", id, stepStatusUpcoming).
			Updates(map[string]any{"status": stepStatusCanceled, "utime": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusChanged
		}
		return nil
	})
}

// lockStep 先锁住步骤所属的岗位，再读步骤。
// 所有修改同一个岗位下步骤的事务都会在岗位这一行上排队
func lockStep(tx *gorm.DB, id int64, now int64) (Offer, Step, error) {
	var step Step
	if err := tx.Where("id = ?", id).First(&step).Error; err != nil {
		return Offer{}, Step{}, err
	}
	offer, err := lockOffer(tx, step.OfferId, now)
	if err != nil {
		return Offer{}, Step{}, err
	}
	// 拿到锁之后重新读一次，避免读到排队之前的旧数据
	if err = tx.Where("id = ?", id).First(&step).Error; err != nil {
		return Offer{}, Step{}, err
	}
	return offer, step, nil
}

// lockOffer 通过更新 utime 拿到岗位这一行的写锁，然后读出最新的岗位
func lockOffer(tx *gorm.DB, id int64, now int64) (Offer, error) {
	// utime 可能和上一次更新相同，所以不看 RowsAffected，岗位不存在由下面的查询发现
	err := tx.Model(&Offer{}).Where("id = ?", id).Update("utime", now).Error
	if err != nil {
		return Offer{}, err
	}
	var offer Offer
	err = tx.Where("id = ?", id).First(&offer).Error
	return offer, err
}
