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

// StepKind 招聘步骤的类型
type StepKind string

const (
	StepKindTask           StepKind = "TASK"
	StepKindQuestionnaire  StepKind = "QUESTIONNAIRE"
	StepKindVideoInterview StepKind = "VIDEO_INTERVIEW"
)

func (k StepKind) IsValid() bool {
	switch k {
	case StepKindTask, StepKindQuestionnaire, StepKindVideoInterview:
		return true
	default:
		return false
	}
}

func (k StepKind) String() string {
	return string(k)
}

// StepStatus 步骤状态
//
//	UPCOMING ──► RUNNING ──► FINISHED
//	    │
//	    └──────► CANCELLED
type StepStatus string

const (
	StepStatusUpcoming  StepStatus = "UPCOMING"
	StepStatusRunning   StepStatus = "RUNNING"
	StepStatusFinished  StepStatus = "FINISHED"
	StepStatusCancelled StepStatus = "CANCELLED"
)

func (s StepStatus) String() string {
	return string(s)
}

func (s StepStatus) IsValid() bool {
	switch s {
	case StepStatusUpcoming, StepStatusRunning, StepStatusFinished, StepStatusCancelled:
		return true
	default:
		return false
	}
}

// CandidateScope 开始步骤时，需要通知哪些候选人
type CandidateScope uint8

const (
	// CandidateScopePending 还没有在该步骤留下作答记录的候选人
	CandidateScopePending CandidateScope = iota
	// CandidateScopeAll 岗位下的全部候选人，用于重新发起
	CandidateScopeAll
)

// Step 招聘流程中的一个步骤
type Step struct {
	ID          int64
	OfferID     int64
	Kind        StepKind
	Title       string
	Description string
	// 时长，分钟
	Duration int64
	Status   StepStatus
	// 在岗位内的顺序，从 1 开始连续
	Order int
	Ctime int64
	Utime int64

	// 只有 QUESTIONNAIRE 类型的步骤才有
	Questions []Question
}

func (s Step) IsValid() bool {
	return s.OfferID > 0 && s.Kind.IsValid() && s.Title != "" && s.Duration >= 0
}

// StepChanges 可以被修改的字段，nil 表示不修改
type StepChanges struct {
	Title       *string
	Description *string
	Duration    *int64
}

func (c StepChanges) Apply(s Step) Step {
	if c.Title != nil {
		s.Title = *c.Title
	}
	if c.Description != nil {
		s.Description = *c.Description
	}
	if c.Duration != nil {
		s.Duration = *c.Duration
	}
	return s
}

// CheckEditable 修改、调整顺序、编辑题目都要求岗位没发布，步骤还没开始
func CheckEditable(offer Offer, step Step) error {
	if err := offer.Editable(); err != nil {
		return err
	}
	if step.Status != StepStatusUpcoming {
		return ErrStepNotEditable
	}
	return nil
}

// CheckDeletable 删除只要求岗位没发布，并且步骤不在进行中
func CheckDeletable(offer Offer, step Step) error {
	if err := offer.Editable(); err != nil {
		return err
	}
	if step.Status == StepStatusRunning {
		return ErrStepRunning
	}
	return nil
}

// CheckStart 开始步骤。
// 注意岗位必须已经关闭投递（FERME），CREE 和 OUVERT 都不行。
func CheckStart(offer Offer, step Step) error {
	switch offer.Status {
	case OfferStatusCreated:
		return ErrOfferNotPublished
	case OfferStatusOpen:
		return ErrOfferStillOpen
	}
	if offer.RunningStepID != 0 && offer.RunningStepID != step.ID {
		return ErrSiblingRunning
	}
	if step.Status != StepStatusUpcoming {
		return ErrStepNotEditable
	}
	return nil
}

// CheckFinish total 是作答记录数，scored 是分数大于 0 的作答记录数
func CheckFinish(step Step, total, scored int64) error {
	if step.Status != StepStatusRunning {
		return ErrStepNotRunning
	}
	if total == 0 {
		return ErrNoAttempts
	}
	if scored == 0 {
		return ErrNoScoredAttempts
	}
	return nil
}

func CheckCancel(step Step) error {
	if step.Status != StepStatusUpcoming {
		return ErrStepNotEditable
	}
	return nil
}

func CheckScore(step Step, delta int64) error {
	if delta < 0 {
		return ErrNegativeScore
	}
	if step.Status != StepStatusRunning && step.Status != StepStatusFinished {
		return ErrStepNotScorable
	}
	return nil
}

// CheckSubmission 候选人只能在步骤进行中提交，并且只能提交自己投递的岗位
func CheckSubmission(step Step, app Application, kind StepKind) error {
	if step.Kind != kind {
		return ErrKindMismatch
	}
	if app.OfferID != step.OfferID {
		return ErrForeignApplication
	}
	if step.Status != StepStatusRunning {
		return ErrStepNotRunning
	}
	return nil
}
