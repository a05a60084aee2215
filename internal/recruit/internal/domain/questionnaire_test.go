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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	questions := []Question{
		{
			ID: 1,
			Answers: []Answer{
				{ID: 11, QuestionID: 1, Correct: true},
				{ID: 12, QuestionID: 1},
			},
		},
		{
			ID: 2,
			Answers: []Answer{
				{ID: 21, QuestionID: 2},
				{ID: 22, QuestionID: 2, Correct: true},
				{ID: 23, QuestionID: 2, Correct: true},
			},
		},
	}
	testCases := []struct {
		name       string
		selections []Selection
		want       int64
	}{
		{
			name:       "全对",
			selections: []Selection{{1, 11}, {2, 23}},
			want:       2,
		},
		{
			name:       "一对一错",
			selections: []Selection{{1, 12}, {2, 22}},
			want:       1,
		},
		{
			name: "没有作答",
			want: 0,
		},
		{
			name:       "重复提交同一个答案不重复计分",
			selections: []Selection{{1, 11}, {1, 11}, {1, 11}},
			want:       1,
		},
		{
			name:       "同一道题以第一次选择为准",
			selections: []Selection{{1, 12}, {1, 11}},
			want:       0,
		},
		{
			name:       "不存在的题目忽略",
			selections: []Selection{{99, 11}, {2, 22}},
			want:       1,
		},
		{
			name:       "答案不属于该题",
			selections: []Selection{{1, 22}},
			want:       0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(questions, tc.selections)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
			assert.LessOrEqual(t, got, int64(len(tc.selections)))
		})
	}
}
