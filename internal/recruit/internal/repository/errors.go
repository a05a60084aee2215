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
	"errors"
	"fmt"

	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/dao"
)

// toDomainErr 把 dao 层的错误翻译成业务错误，notFound 是该操作语境下"记录不存在"对应的错误。
// 其余的错误都是基础设施的错误，原样往上传
func toDomainErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dao.ErrApplicationNotFound):
		return domain.ErrApplicationNotFound
	case errors.Is(err, dao.ErrAttemptNotFound):
		return domain.ErrAttemptNotFound
	case errors.Is(err, dao.ErrRecordNotFound):
		return notFound
	case errors.Is(err, dao.ErrSlotOccupied):
		return domain.ErrSiblingRunning
	case errors.Is(err, dao.ErrDuplicateAttempt):
		return domain.ErrAlreadySubmitted
	case errors.Is(err, dao.ErrDuplicateApplication):
		return domain.ErrDuplicateApplication
	case errors.Is(err, dao.ErrStatusChanged):
		return fmt.Errorf("%w: %w", domain.ErrConflict, err)
	default:
		return err
	}
}
