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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSteps(n int) []Step {
	steps := make([]Step, 0, n)
	for i := 1; i <= n; i++ {
		steps = append(steps, Step{ID: int64(i * 10), OfferID: 1, Order: i})
	}
	return steps
}

func TestMoveToTop(t *testing.T) {
	testCases := []struct {
		name    string
		steps   []Step
		id      int64
		want    map[int64]int
		wantErr error
	}{
		{
			name:  "中间的步骤移到第一个",
			steps: newSteps(4),
			id:    30,
			want:  map[int64]int{30: 1, 10: 2, 20: 3, 40: 4},
		},
		{
			name:  "已经是第一个",
			steps: newSteps(3),
			id:    10,
			want:  map[int64]int{10: 1, 20: 2, 30: 3},
		},
		{
			name:  "最后一个移到第一个",
			steps: newSteps(3),
			id:    30,
			want:  map[int64]int{30: 1, 10: 2, 20: 3},
		},
		{
			name:    "步骤不存在",
			steps:   newSteps(3),
			id:      99,
			wantErr: ErrStepNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := MoveToTop(tc.steps, tc.id)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestMoveToBottom(t *testing.T) {
	testCases := []struct {
		name  string
		steps []Step
		id    int64
		want  map[int64]int
	}{
		{
			name:  "第一个移到最后",
			steps: newSteps(4),
			id:    10,
			want:  map[int64]int{20: 1, 30: 2, 40: 3, 10: 4},
		},
		{
			name:  "已经是最后一个",
			steps: newSteps(2),
			id:    20,
			want:  map[int64]int{10: 1, 20: 2},
		},
		{
			name:  "只有一个步骤",
			steps: newSteps(1),
			id:    10,
			want:  map[int64]int{10: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := MoveToBottom(tc.steps, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestSwap(t *testing.T) {
	res, err := Swap(newSteps(4), 20, 40)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{10: 1, 40: 2, 30: 3, 20: 4}, res)

	_, err = Swap(newSteps(4), 20, 99)
	assert.ErrorIs(t, err, ErrCrossOffer)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCompact(t *testing.T) {
	steps := []Step{
		{ID: 1, Order: 1},
		{ID: 3, Order: 3},
		{ID: 4, Order: 7},
	}
	assert.Equal(t, map[int64]int{1: 1, 3: 2, 4: 3}, Compact(steps))
}

// 任意次数的移动之后，顺序都必须正好是 1..N
func TestOrdering_AlwaysDense(t *testing.T) {
	r := rand.New(rand.NewSource(20231001))
	for round := 0; round < 200; round++ {
		n := r.Intn(8) + 1
		steps := newSteps(n)
		for op := 0; op < 30; op++ {
			a := steps[r.Intn(n)].ID
			b := steps[r.Intn(n)].ID
			var (
				orders map[int64]int
				err    error
			)
			switch r.Intn(3) {
			case 0:
				orders, err = MoveToTop(steps, a)
			case 1:
				orders, err = MoveToBottom(steps, a)
			default:
				orders, err = Swap(steps, a, b)
			}
			require.NoError(t, err)
			for i := range steps {
				steps[i].Order = orders[steps[i].ID]
			}
			assertDense(t, steps)
		}
	}
}

func assertDense(t *testing.T, steps []Step) {
	t.Helper()
	seen := make(map[int]bool, len(steps))
	for _, s := range steps {
		require.GreaterOrEqual(t, s.Order, 1)
		require.LessOrEqual(t, s.Order, len(steps))
		require.False(t, seen[s.Order], "重复的顺序 %d", s.Order)
		seen[s.Order] = true
	}
}
