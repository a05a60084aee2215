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
	"gorm.io/gorm"
)

const attemptStatusCompleted = "COMPLETED"

// SubmitGuard 在写入作答记录之前执行
type SubmitGuard func(offer Offer, step Step, app Application) error

type AttemptDAO interface {
	// Create 插入作答记录，并且把分数累加到投递记录上。
	// 同一个步骤同一份投递只能有一条记录，重复的返回 ErrDuplicateAttempt
	Create(ctx context.Context, attempt Attempt, guard SubmitGuard) (Attempt, error)
	// AddScore 人工评分，分数同时累加到作答记录和投递记录
	AddScore(ctx context.Context, stepID, applicationID, delta int64, guard func(step Step) error) (Attempt, error)
	Find(ctx context.Context, stepID, applicationID int64) (Attempt, error)
	FindByStepID(ctx context.Context, stepID int64) ([]Attempt, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]Attempt, error)
}

var _ AttemptDAO = &GORMAttemptDAO{}

type GORMAttemptDAO struct {
	db *egorm.Component
}

func NewGORMAttemptDAO(db *egorm.Component) AttemptDAO {
	return &GORMAttemptDAO{db: db}
}

func (dao *GORMAttemptDAO) Create(ctx context.Context, attempt Attempt, guard SubmitGuard) (Attempt, error) {
	now := time.Now().UnixMilli()
	attempt.Id = 0
	attempt.Ctime, attempt.Utime = now, now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		offer, step, err := lockStep(tx, attempt.StepId, now)
		if err != nil {
			return err
		}
		var app Application
		err = tx.Where("id = ?", attempt.ApplicationId).First(&app).Error
		if errors.Is(err, ErrRecordNotFound) {
			return ErrApplicationNotFound
		}
		if err != nil {
			return err
		}
		if err = guard(offer, step, app); err != nil {
			return err
		}
		var cnt int64
		err = tx.Model(&Attempt{}).
			Where("step_id = ? AND application_id = ?", attempt.StepId, attempt.ApplicationId).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDuplicateAttempt
		}
		if err = tx.Create(&attempt).Error; err != nil {
			return err
		}
		if attempt.Score == 0 {
			return nil
		}
		return tx.Model(&Application{}).Where("id = ?", app.Id).Updates(map[string]any{
			"note":  gorm.Expr("note + ?", attempt.Score),
			"utime": now,
		}).Error
	})
	if isDuplicateKey(err) {
		return Attempt{}, ErrDuplicateAttempt
	}
	return attempt, err
}

func (dao *GORMAttemptDAO) AddScore(ctx context.Context, stepID, applicationID, delta int64,
	guard func(step Step) error) (Attempt, error) {
	now := time.Now().UnixMilli()
	var res Attempt
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, step, err := lockStep(tx, stepID, now)
		if err != nil {
			return err
		}
		if err = guard(step); err != nil {
			return err
		}
		err = tx.Where("step_id = ? AND application_id = ?", stepID, applicationID).First(&res).Error
		if errors.Is(err, ErrRecordNotFound) {
			return ErrAttemptNotFound
		}
		if err != nil {
			return err
		}
		err = tx.Model(&Attempt{}).Where("id = ?", res.Id).Updates(map[string]any{
			"score":  gorm.Expr("score + ?", delta),
			"status": attemptStatusCompleted,
			"utime":  now,
		}).Error
		if err != nil {
			return err
		}
		err = tx.Model(&Application{}).Where("id = ?", applicationID).Updates(map[string]any{
			"note":  gorm.Expr("note + ?", delta),
			"utime": now,
		}).Error
		if err != nil {
			return err
		}
		res.Score += delta
		res.Status = attemptStatusCompleted
		res.Utime = now
		return nil
	})
	return res, err
}

func (dao *GORMAttemptDAO) Find(ctx context.Context, stepID, applicationID int64) (Attempt, error) {
	var res Attempt
	err := dao.db.WithContext(ctx).
		Where("step_id = ? AND application_id = ?", stepID, applicationID).First(&res).Error
	return res, err
}

func (dao *GORMAttemptDAO) FindByStepID(ctx context.Context, stepID int64) ([]Attempt, error) {
	var res []Attempt
	err := dao.db.WithContext(ctx).Where("step_id = ?", stepID).Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMAttemptDAO) FindByApplicationID(ctx context.Context, applicationID int64) ([]Attempt, error) {
	var res []Attempt
	err := dao.db.WithContext(ctx).Where("application_id = ?", applicationID).Order("id ASC").Find(&res).Error
	return res, err
}
