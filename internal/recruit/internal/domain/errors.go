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

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// 业务错误的种类，具体错误都通过 %w 包装这几个哨兵错误，调用方用 errors.Is 判断。
// 除此之外的错误（数据库不可用等）都属于基础设施错误。
var (
	ErrNotFound       = errors.New("记录不存在")
	ErrInvalidState   = errors.New("状态不允许该操作")
	ErrConflict       = errors.New("操作冲突")
	ErrValidation     = errors.New("数据校验失败")
	ErrNoApplications = errors.New("没有任何候选人投递")
)

var (
	ErrOfferNotFound       = fmt.Errorf("%w: 招聘岗位", ErrNotFound)
	ErrStepNotFound        = fmt.Errorf("%w: 招聘步骤", ErrNotFound)
	ErrAttemptNotFound     = fmt.Errorf("%w: 候选人作答记录", ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("%w: 投递记录", ErrNotFound)
	// ErrNotApplicant 投递记录不是当前候选人的，对外表现为不存在
	ErrNotApplicant        = fmt.Errorf("%w: 当前用户没有该投递记录", ErrNotFound)

	ErrOfferNotEditable  = fmt.Errorf("%w: 岗位已发布，步骤不可再修改", ErrInvalidState)
	ErrStepNotEditable   = fmt.Errorf("%w: 步骤已不是待开始状态", ErrInvalidState)
	ErrStepRunning       = fmt.Errorf("%w: 步骤正在进行中", ErrInvalidState)
	ErrOfferNotPublished = fmt.Errorf("%w: 岗位尚未发布", ErrInvalidState)
	ErrOfferStillOpen    = fmt.Errorf("%w: 岗位仍在接收投递，需先关闭投递", ErrInvalidState)
	ErrOfferNotOpen      = fmt.Errorf("%w: 岗位未处于开放投递状态", ErrInvalidState)
	ErrOfferExpired      = fmt.Errorf("%w: 岗位已过截止时间", ErrInvalidState)
	ErrStepNotRunning    = fmt.Errorf("%w: 步骤未在进行中", ErrInvalidState)
	ErrStepNotScorable   = fmt.Errorf("%w: 步骤未开始或已取消，不可评分", ErrInvalidState)
	ErrNoAttempts        = fmt.Errorf("%w: 还没有候选人作答", ErrInvalidState)
	ErrNoScoredAttempts  = fmt.Errorf("%w: 还没有任何候选人被评分", ErrInvalidState)

	ErrSiblingRunning       = fmt.Errorf("%w: 同一岗位下已有步骤在进行中", ErrConflict)
	ErrCrossOffer           = fmt.Errorf("%w: 两个步骤不属于同一个岗位", ErrConflict)
	ErrAlreadySubmitted     = fmt.Errorf("%w: 候选人已经提交过该步骤", ErrConflict)
	ErrDuplicateApplication = fmt.Errorf("%w: 候选人已经投递过该岗位", ErrConflict)

	ErrKindMismatch       = fmt.Errorf("%w: 步骤类型不匹配", ErrValidation)
	ErrEmptyTaskPayload   = fmt.Errorf("%w: 作业提交必须包含文件或者链接", ErrValidation)
	ErrNegativeScore      = fmt.Errorf("%w: 评分增量不能为负数", ErrValidation)
	ErrForeignApplication = fmt.Errorf("%w: 投递记录不属于该岗位", ErrValidation)
	ErrInvalidStep        = fmt.Errorf("%w: 步骤信息不完整", ErrValidation)
	ErrInvalidOffer       = fmt.Errorf("%w: 岗位信息不完整", ErrValidation)
)

// PublishError 岗位不满足发布条件
// StepID 是 order 最小的那个不合格步骤
type PublishError struct {
	StepID  int64
	Reasons []string
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("%s: 步骤 %d 不满足发布条件: %s",
		ErrValidation.Error(), e.StepID, strings.Join(e.Reasons, "; "))
}

func (e *PublishError) Unwrap() error {
	return ErrValidation
}
