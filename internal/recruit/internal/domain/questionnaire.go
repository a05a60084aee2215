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

type Question struct {
	ID      int64
	StepID  int64
	Content string
	Answers []Answer
}

func (q Question) HasCorrectAnswer() bool {
	for _, a := range q.Answers {
		if a.Correct {
			return true
		}
	}
	return false
}

type Answer struct {
	ID         int64
	QuestionID int64
	Content    string
	Correct    bool
}

// Selection 候选人对某道题的选择
type Selection struct {
	QuestionID int64
	AnswerID   int64
}

// Score 计算问卷得分。
// 每道题最多得 1 分：同一道题重复提交时只看第一次的选择，
// 不存在的题目、不属于该题的答案都直接忽略，不扣分。
func Score(questions []Question, selections []Selection) int64 {
	correct := make(map[int64]map[int64]bool, len(questions))
	for _, q := range questions {
		answers := make(map[int64]bool, len(q.Answers))
		for _, a := range q.Answers {
			answers[a.ID] = a.Correct
		}
		correct[q.ID] = answers
	}
	seen := make(map[int64]struct{}, len(selections))
	var score int64
	for _, sel := range selections {
		answers, ok := correct[sel.QuestionID]
		if !ok {
			continue
		}
		if _, ok = seen[sel.QuestionID]; ok {
			continue
		}
		seen[sel.QuestionID] = struct{}{}
		if answers[sel.AnswerID] {
			score++
		}
	}
	return score
}
