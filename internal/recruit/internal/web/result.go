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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/errs"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

// errorResult 业务错误直接返回给前端，不当作系统错误记录
func errorResult(err error) (ginx.Result, error) {
	var pe *domain.PublishError
	switch {
	case errors.As(err, &pe):
		return ginx.Result{Code: errs.Validation.Code, Msg: pe.Error(), Data: pe.StepID}, nil
	case errors.Is(err, domain.ErrNotFound):
		return ginx.Result{Code: errs.NotFound.Code, Msg: err.Error()}, nil
	case errors.Is(err, domain.ErrInvalidState):
		return ginx.Result{Code: errs.InvalidState.Code, Msg: err.Error()}, nil
	case errors.Is(err, domain.ErrConflict):
		return ginx.Result{Code: errs.Conflict.Code, Msg: err.Error()}, nil
	case errors.Is(err, domain.ErrValidation):
		return ginx.Result{Code: errs.Validation.Code, Msg: err.Error()}, nil
	case errors.Is(err, domain.ErrNoApplications):
		return ginx.Result{Code: errs.NoApplications.Code, Msg: errs.NoApplications.Msg}, nil
	default:
		return systemErrorResult, err
	}
}
