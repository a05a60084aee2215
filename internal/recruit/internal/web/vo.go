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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type OfferID struct {
	ID int64 `json:"id"`
}

type StepID struct {
	ID int64 `json:"id"`
}

type CreateOfferReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Headcount   int    `json:"headcount"`
	// 毫秒，0 表示不设置截止时间
	Deadline int64 `json:"deadline"`
}

type CreateStepReq struct {
	OfferID     int64  `json:"offerId"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
}

// UpdateStepReq 没有传的字段不修改
type UpdateStepReq struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Duration    *int64  `json:"duration,omitempty"`
}

type SwapStepReq struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

type SaveQuestionsReq struct {
	StepID    int64      `json:"stepId"`
	Questions []Question `json:"questions"`
}

const scopeAll = "ALL"

type StartStepReq struct {
	ID int64 `json:"id"`
	// PENDING 或者 ALL，默认 PENDING
	Scope string `json:"scope,omitempty"`
}

func (r StartStepReq) scope() domain.CandidateScope {
	if r.Scope == scopeAll {
		return domain.CandidateScopeAll
	}
	return domain.CandidateScopePending
}

type ScoreReq struct {
	StepID        int64 `json:"stepId"`
	ApplicationID int64 `json:"applicationId"`
	Delta         int64 `json:"delta"`
}

type AttendanceReq struct {
	StepID        int64 `json:"stepId"`
	ApplicationID int64 `json:"applicationId"`
}

type ApplyReq struct {
	OfferID int64  `json:"offerId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type SubmitQuestionnaireReq struct {
	StepID        int64       `json:"stepId"`
	ApplicationID int64       `json:"applicationId"`
	Selections    []Selection `json:"selections"`
}

type SubmitTaskReq struct {
	StepID        int64  `json:"stepId"`
	ApplicationID int64  `json:"applicationId"`
	FileRef       string `json:"fileRef"`
	Link          string `json:"link"`
}

type Offer struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Headcount     int    `json:"headcount"`
	Deadline      int64  `json:"deadline"`
	Status        string `json:"status"`
	RunningStepID int64  `json:"runningStepId"`
	Steps         []Step `json:"steps,omitempty"`
	Ctime         int64  `json:"ctime"`
	Utime         int64  `json:"utime"`
}

func newOffer(o domain.Offer) Offer {
	return Offer{
		ID:            o.ID,
		Title:         o.Title,
		Description:   o.Description,
		Headcount:     o.Headcount,
		Deadline:      o.Deadline,
		Status:        o.Status.String(),
		RunningStepID: o.RunningStepID,
		Steps:         slice.Map(o.Steps, func(idx int, src domain.Step) Step { return newStep(src) }),
		Ctime:         o.Ctime,
		Utime:         o.Utime,
	}
}

type OfferList struct {
	Offers []Offer `json:"offers"`
}

type OfferDetail struct {
	Offer        Offer         `json:"offer"`
	Applications []Application `json:"applications"`
}

type Step struct {
	ID          int64      `json:"id"`
	OfferID     int64      `json:"offerId"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    int64      `json:"duration"`
	Status      string     `json:"status"`
	Order       int        `json:"order"`
	Questions   []Question `json:"questions,omitempty"`
	Utime       int64      `json:"utime"`
}

func newStep(s domain.Step) Step {
	return Step{
		ID:          s.ID,
		OfferID:     s.OfferID,
		Kind:        s.Kind.String(),
		Title:       s.Title,
		Description: s.Description,
		Duration:    s.Duration,
		Status:      s.Status.String(),
		Order:       s.Order,
		Questions:   slice.Map(s.Questions, func(idx int, src domain.Question) Question { return newQuestion(src) }),
		Utime:       s.Utime,
	}
}

type Question struct {
	ID      int64    `json:"id,omitempty"`
	Content string   `json:"content"`
	Answers []Answer `json:"answers"`
}

func newQuestion(q domain.Question) Question {
	return Question{
		ID:      q.ID,
		Content: q.Content,
		Answers: slice.Map(q.Answers, func(idx int, src domain.Answer) Answer {
			return Answer{ID: src.ID, Content: src.Content, Correct: src.Correct}
		}),
	}
}

func (q Question) toDomain() domain.Question {
	return domain.Question{
		Content: q.Content,
		Answers: slice.Map(q.Answers, func(idx int, src Answer) domain.Answer {
			return domain.Answer{Content: src.Content, Correct: src.Correct}
		}),
	}
}

type Answer struct {
	ID      int64  `json:"id,omitempty"`
	Content string `json:"content"`
	// 候选人看到的问卷里面永远是 false
	Correct bool `json:"correct,omitempty"`
}

type Selection struct {
	QuestionID int64 `json:"questionId"`
	AnswerID   int64 `json:"answerId"`
}

type PublishVerdict struct {
	OK         bool            `json:"ok"`
	Violations []StepViolation `json:"violations,omitempty"`
}

type StepViolation struct {
	StepID  int64    `json:"stepId"`
	Order   int      `json:"order"`
	Reasons []string `json:"reasons"`
}

func newPublishVerdict(v domain.PublishVerdict) PublishVerdict {
	return PublishVerdict{
		OK: v.OK(),
		Violations: slice.Map(v.Violations, func(idx int, src domain.StepViolation) StepViolation {
			return StepViolation{StepID: src.StepID, Order: src.Order, Reasons: src.Reasons}
		}),
	}
}

type Application struct {
	ID      int64  `json:"id"`
	OfferID int64  `json:"offerId"`
	Uid     int64  `json:"uid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Note    int64  `json:"note"`
	Ctime   int64  `json:"ctime"`
}

func newApplication(a domain.Application) Application {
	return Application{
		ID:      a.ID,
		OfferID: a.OfferID,
		Uid:     a.Candidate.Uid,
		Name:    a.Candidate.Name,
		Email:   a.Candidate.Email,
		Phone:   a.Candidate.Phone,
		Note:    a.Note,
		Ctime:   a.Ctime,
	}
}

func newApplications(apps []domain.Application) []Application {
	return slice.Map(apps, func(idx int, src domain.Application) Application {
		return newApplication(src)
	})
}

type StepStarted struct {
	Step       Step          `json:"step"`
	Candidates []Application `json:"candidates"`
}

type Attempt struct {
	ID            int64       `json:"id"`
	StepID        int64       `json:"stepId"`
	ApplicationID int64       `json:"applicationId"`
	Status        string      `json:"status"`
	Score         int64       `json:"score"`
	Selections    []Selection `json:"selections,omitempty"`
	FileRef       string      `json:"fileRef,omitempty"`
	Link          string      `json:"link,omitempty"`
	Tid           string      `json:"tid,omitempty"`
	Ctime         int64       `json:"ctime"`
	Utime         int64       `json:"utime"`
}

func newAttempt(a domain.Attempt) Attempt {
	return Attempt{
		ID:            a.ID,
		StepID:        a.StepID,
		ApplicationID: a.ApplicationID,
		Status:        a.Status.String(),
		Score:         a.Score,
		Selections: slice.Map(a.Selections, func(idx int, src domain.Selection) Selection {
			return Selection{QuestionID: src.QuestionID, AnswerID: src.AnswerID}
		}),
		FileRef: a.Task.FileRef,
		Link:    a.Task.Link,
		Tid:     a.Tid,
		Ctime:   a.Ctime,
		Utime:   a.Utime,
	}
}

func newAttempts(attempts []domain.Attempt) []Attempt {
	return slice.Map(attempts, func(idx int, src domain.Attempt) Attempt {
		return newAttempt(src)
	})
}
