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

package event

const StepStartedEventName = "recruit_step_started_events"

// StepStartedEvent 招聘步骤开始之后发出，每个候选人一条通知
type StepStartedEvent struct {
	// EventID 全局唯一，用于消费者去重和排查
	EventID    int64       `json:"eventId"`
	OfferID    int64       `json:"offerId"`
	OfferTitle string      `json:"offerTitle"`
	StepID     int64       `json:"stepId"`
	StepKind   string      `json:"stepKind"`
	StepTitle  string      `json:"stepTitle"`
	Duration   int64       `json:"duration"`
	Candidates []Candidate `json:"candidates"`
	Ctime      int64       `json:"ctime"`
}

type Candidate struct {
	ApplicationID int64  `json:"applicationId"`
	Uid           int64  `json:"uid"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}
