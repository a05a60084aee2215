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

// Application 候选人的一次投递
type Application struct {
	ID        int64
	OfferID   int64
	Candidate Candidate
	// 累计得分，等于该岗位下所有作答记录的分数之和
	Note  int64
	Ctime int64
	Utime int64
}

type Candidate struct {
	Uid   int64
	Name  string
	Email string
	Phone string
}

func (c Candidate) IsValid() bool {
	return c.Uid > 0 && c.Name != "" && (c.Email != "" || c.Phone != "")
}

// StepStarted 步骤开始之后需要被通知的候选人
type StepStarted struct {
	Offer        Offer
	Step         Step
	Applications []Application
}
