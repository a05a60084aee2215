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
	"sort"
)

// 下面几个方法都是纯计算：输入同一个岗位下的全部步骤，输出每个步骤新的顺序。
// 输出永远是 1..N 的一个排列，调用方在同一个事务里把变化的部分写回去。

// MoveToTop 目标步骤变成第一个，其余步骤保持原来的相对顺序
func MoveToTop(steps []Step, id int64) (map[int64]int, error) {
	sorted := sortByOrder(steps)
	idx := indexOf(sorted, id)
	if idx < 0 {
		return nil, ErrStepNotFound
	}
	target := sorted[idx]
	res := make([]Step, 0, len(sorted))
	res = append(res, target)
	res = append(res, sorted[:idx]...)
	res = append(res, sorted[idx+1:]...)
	return renumber(res), nil
}

// MoveToBottom 目标步骤变成最后一个，其余步骤保持原来的相对顺序
func MoveToBottom(steps []Step, id int64) (map[int64]int, error) {
	sorted := sortByOrder(steps)
	idx := indexOf(sorted, id)
	if idx < 0 {
		return nil, ErrStepNotFound
	}
	target := sorted[idx]
	res := make([]Step, 0, len(sorted))
	res = append(res, sorted[:idx]...)
	res = append(res, sorted[idx+1:]...)
	res = append(res, target)
	return renumber(res), nil
}

// Swap 交换两个步骤的位置
func Swap(steps []Step, a, b int64) (map[int64]int, error) {
	sorted := sortByOrder(steps)
	i, j := indexOf(sorted, a), indexOf(sorted, b)
	if i < 0 || j < 0 {
		return nil, ErrCrossOffer
	}
	sorted[i], sorted[j] = sorted[j], sorted[i]
	return renumber(sorted), nil
}

// Compact 去掉空洞，用于删除步骤之后
func Compact(steps []Step) map[int64]int {
	return renumber(sortByOrder(steps))
}

func sortByOrder(steps []Step) []Step {
	res := make([]Step, len(steps))
	copy(res, steps)
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Order == res[j].Order {
			return res[i].ID < res[j].ID
		}
		return res[i].Order < res[j].Order
	})
	return res
}

func indexOf(steps []Step, id int64) int {
	for i := range steps {
		if steps[i].ID == id {
			return i
		}
	}
	return -1
}

func renumber(steps []Step) map[int64]int {
	res := make(map[int64]int, len(steps))
	for i := range steps {
		res[steps[i].ID] = i + 1
	}
	return res
}
