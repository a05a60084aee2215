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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPublishable(t *testing.T) {
	good := []Question{
		{ID: 1, Answers: []Answer{{ID: 11, Correct: true}, {ID: 12}}},
	}
	noCorrect := []Question{
		{ID: 2, Answers: []Answer{{ID: 21}, {ID: 22}}},
	}
	testCases := []struct {
		name       string
		steps      []Step
		wantOK     bool
		wantStepID int64
	}{
		{
			name:   "没有步骤",
			wantOK: true,
		},
		{
			name: "作业和面试不需要题目",
			steps: []Step{
				{ID: 1, Kind: StepKindTask, Order: 1},
				{ID: 2, Kind: StepKindVideoInterview, Order: 2},
			},
			wantOK: true,
		},
		{
			name: "问卷合格",
			steps: []Step{
				{ID: 1, Kind: StepKindQuestionnaire, Order: 1, Questions: good},
			},
			wantOK: true,
		},
		{
			name: "问卷没有题目",
			steps: []Step{
				{ID: 1, Kind: StepKindTask, Order: 1},
				{ID: 2, Kind: StepKindQuestionnaire, Order: 2},
			},
			wantStepID: 2,
		},
		{
			name: "报告 order 最小的不合格步骤",
			steps: []Step{
				{ID: 7, Kind: StepKindQuestionnaire, Order: 3, Questions: noCorrect},
				{ID: 8, Kind: StepKindQuestionnaire, Order: 1, Questions: good},
				{ID: 9, Kind: StepKindQuestionnaire, Order: 2, Questions: noCorrect},
			},
			wantStepID: 9,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := CheckPublishable(tc.steps)
			assert.Equal(t, tc.wantOK, verdict.OK())
			if tc.wantOK {
				assert.NoError(t, verdict.Err())
				return
			}
			err := verdict.Err()
			require.ErrorIs(t, err, ErrValidation)
			var pe *PublishError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.wantStepID, pe.StepID)
			assert.NotEmpty(t, pe.Reasons)
		})
	}
}
