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

package errs

var (
	SystemError = ErrorCode{Code: 520001, Msg: "系统错误"}
	// NotFound 岗位、步骤、投递或者作答记录不存在
	NotFound       = ErrorCode{Code: 420001, Msg: "记录不存在"}
	InvalidState   = ErrorCode{Code: 420002, Msg: "当前状态不允许该操作"}
	Conflict       = ErrorCode{Code: 420003, Msg: "操作冲突"}
	Validation     = ErrorCode{Code: 420004, Msg: "参数错误"}
	NoApplications = ErrorCode{Code: 420005, Msg: "还没有候选人投递"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
