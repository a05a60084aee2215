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
	"fmt"
)

// PublishVerdict 岗位能否发布的检查结果
type PublishVerdict struct {
	// 所有不合格的步骤，按照 order 从小到大
	Violations []StepViolation
}

type StepViolation struct {
	StepID  int64
	Order   int
	Reasons []string
}

func (v PublishVerdict) OK() bool {
	return len(v.Violations) == 0
}

// Err 只报告 order 最小的那个不合格步骤
func (v PublishVerdict) Err() error {
	if v.OK() {
		return nil
	}
	first := v.Violations[0]
	return &PublishError{StepID: first.StepID, Reasons: first.Reasons}
}

// CheckPublishable 检查所有步骤，steps 里面的问卷需要带上题目和答案。
// 问卷至少一道题，每道题至少一个正确答案。
func CheckPublishable(steps []Step) PublishVerdict {
	var verdict PublishVerdict
	for _, s := range sortByOrder(steps) {
		if s.Kind != StepKindQuestionnaire {
			continue
		}
		var reasons []string
		if len(s.Questions) == 0 {
			reasons = append(reasons, "问卷没有任何题目")
		}
		for _, q := range s.Questions {
			if !q.HasCorrectAnswer() {
				reasons = append(reasons, fmt.Sprintf("题目 %d 没有正确答案", q.ID))
			}
		}
		if len(reasons) > 0 {
			verdict.Violations = append(verdict.Violations, StepViolation{
				StepID:  s.ID,
				Order:   s.Order,
				Reasons: reasons,
			})
		}
	}
	return verdict
}
