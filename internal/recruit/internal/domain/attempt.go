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

type AttemptStatus string

const (
	// AttemptStatusPending 已经有记录，但还没有任何评分，例如刚出席的面试
	AttemptStatusPending   AttemptStatus = "PENDING"
	AttemptStatusCompleted AttemptStatus = "COMPLETED"
)

func (s AttemptStatus) String() string {
	return string(s)
}

// Attempt 候选人在某个步骤上的作答记录。
// 每个 (StepID, ApplicationID) 最多一条，不会被删除
type Attempt struct {
	ID            int64
	StepID        int64
	ApplicationID int64
	Status        AttemptStatus
	Score         int64

	// QUESTIONNAIRE 的选择
	Selections []Selection
	// TASK 的提交物
	Task TaskPayload
	// 提交凭证
	Tid string

	Ctime int64
	Utime int64
}

type TaskPayload struct {
	FileRef string
	Link    string
}

func (p TaskPayload) IsValid() bool {
	return p.FileRef != "" || p.Link != ""
}
