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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/pkg/errors"
)

var ErrStepsNotFound = errors.New("岗位的步骤没有缓存")

const expiration = 30 * time.Minute

//go:generate mockgen -source=./step.go -package=cachemocks -destination=./mocks/step.mock.go StepCache
type StepCache interface {
	// GetSteps 按顺序排好的步骤，没有缓存时返回 ErrStepsNotFound
	GetSteps(ctx context.Context, offerID int64) ([]domain.Step, error)
	SetSteps(ctx context.Context, offerID int64, steps []domain.Step) error
	DelSteps(ctx context.Context, offerID int64) error
}

type StepECache struct {
	ec ecache.Cache
}

func NewStepECache(ec ecache.Cache) StepCache {
	return &StepECache{
		ec: &ecache.NamespaceCache{
			Namespace: "recruit:",
			C:         ec,
		},
	}
}

func (c *StepECache) GetSteps(ctx context.Context, offerID int64) ([]domain.Step, error) {
	val := c.ec.Get(ctx, c.stepsKey(offerID))
	if val.KeyNotFound() {
		return nil, ErrStepsNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return nil, errors.Wrap(err, "缓存的数据类型不对")
	}
	var steps []domain.Step
	err = json.Unmarshal([]byte(str), &steps)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化步骤失败")
	}
	return steps, nil
}

func (c *StepECache) SetSteps(ctx context.Context, offerID int64, steps []domain.Step) error {
	b, err := json.Marshal(steps)
	if err != nil {
		return errors.Wrap(err, "序列化步骤失败")
	}
	return c.ec.Set(ctx, c.stepsKey(offerID), string(b), expiration)
}

func (c *StepECache) DelSteps(ctx context.Context, offerID int64) error {
	_, err := c.ec.Delete(ctx, c.stepsKey(offerID))
	return err
}

// 注意 Namespace 设置
func (c *StepECache) stepsKey(offerID int64) string {
	return fmt.Sprintf("offer:%d:steps", offerID)
}
