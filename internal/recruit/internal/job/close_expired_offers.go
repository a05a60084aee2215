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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/recruit/internal/recruit/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseExpiredOffersJob)(nil)

// CloseExpiredOffersJob 过了截止时间的岗位停止接收投递
type CloseExpiredOffersJob struct {
	svc     service.OfferService
	limit   int
	timeout time.Duration
	logger  *elog.Component
}

func NewCloseExpiredOffersJob(svc service.OfferService, limit int, timeout time.Duration) *CloseExpiredOffersJob {
	return &CloseExpiredOffersJob{
		svc:     svc,
		limit:   limit,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (j *CloseExpiredOffersJob) Name() string {
	return "CloseExpiredOffersJob"
}

func (j *CloseExpiredOffersJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	now := time.Now().UnixMilli()
	total := 0
	for {
		// 查询只返回有投递的岗位，这一批没有全部关掉说明剩下的是并发下的冲突，下个周期再处理
		cnt, err := j.svc.CloseExpired(ctx, now, j.limit)
		if err != nil {
			return fmt.Errorf("关闭过期岗位失败: %w", err)
		}
		total += cnt
		if cnt < j.limit {
			break
		}
	}
	j.logger.Debug("关闭过期岗位", elog.Int("total", total))
	return nil
}
