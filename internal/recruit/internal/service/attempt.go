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

package service

import (
	"context"

	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository"
	"github.com/lithammer/shortuuid/v4"
)

//go:generate mockgen -source=./attempt.go -package=recruitmocks -destination=../../mocks/attempt.mock.go AttemptService
type AttemptService interface {
	// SubmitQuestionnaire 候选人提交问卷，立刻计分
	SubmitQuestionnaire(ctx context.Context, uid, stepID, applicationID int64,
		selections []domain.Selection) (domain.Attempt, error)
	// SubmitTask 候选人提交作业，分数由招聘方后续人工评定
	SubmitTask(ctx context.Context, uid, stepID, applicationID int64,
		payload domain.TaskPayload) (domain.Attempt, error)
	// RecordAttendance 招聘方记录候选人参加了视频面试
	RecordAttendance(ctx context.Context, stepID, applicationID int64) (domain.Attempt, error)
	ListByStep(ctx context.Context, stepID int64) ([]domain.Attempt, error)
	ListByApplication(ctx context.Context, applicationID int64) ([]domain.Attempt, error)
}

type attemptService struct {
	stepRepo    repository.StepRepository
	attemptRepo repository.AttemptRepository
}

func NewAttemptService(stepRepo repository.StepRepository, attemptRepo repository.AttemptRepository) AttemptService {
	return &attemptService{
		stepRepo:    stepRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *attemptService) SubmitQuestionnaire(ctx context.Context, uid, stepID, applicationID int64,
	selections []domain.Selection) (domain.Attempt, error) {
	// 题目在岗位发布之后就不能再改了，所以可以在事务外计分
	step, err := s.stepRepo.FindByID(ctx, stepID)
	if err != nil {
		return domain.Attempt{}, err
	}
	if step.Kind != domain.StepKindQuestionnaire {
		return domain.Attempt{}, domain.ErrKindMismatch
	}
	return s.attemptRepo.Create(ctx, domain.Attempt{
		StepID:        stepID,
		ApplicationID: applicationID,
		Status:        domain.AttemptStatusCompleted,
		Score:         domain.Score(step.Questions, selections),
		Selections:    selections,
		Tid:           shortuuid.New(),
	}, s.guard(uid, domain.StepKindQuestionnaire))
}

func (s *attemptService) SubmitTask(ctx context.Context, uid, stepID, applicationID int64,
	payload domain.TaskPayload) (domain.Attempt, error) {
	if !payload.IsValid() {
		return domain.Attempt{}, domain.ErrEmptyTaskPayload
	}
	return s.attemptRepo.Create(ctx, domain.Attempt{
		StepID:        stepID,
		ApplicationID: applicationID,
		Status:        domain.AttemptStatusPending,
		Task:          payload,
		Tid:           shortuuid.New(),
	}, s.guard(uid, domain.StepKindTask))
}

func (s *attemptService) RecordAttendance(ctx context.Context, stepID, applicationID int64) (domain.Attempt, error) {
	return s.attemptRepo.Create(ctx, domain.Attempt{
		StepID:        stepID,
		ApplicationID: applicationID,
		Status:        domain.AttemptStatusPending,
	}, s.guard(0, domain.StepKindVideoInterview))
}

func (s *attemptService) ListByStep(ctx context.Context, stepID int64) ([]domain.Attempt, error) {
	return s.attemptRepo.FindByStepID(ctx, stepID)
}

func (s *attemptService) ListByApplication(ctx context.Context, applicationID int64) ([]domain.Attempt, error) {
	return s.attemptRepo.FindByApplicationID(ctx, applicationID)
}

// guard uid 为 0 表示招聘方代为记录，不校验投递人
func (s *attemptService) guard(uid int64, kind domain.StepKind) repository.SubmitGuard {
	return func(offer domain.Offer, step domain.Step, app domain.Application) error {
		if uid != 0 && app.Candidate.Uid != uid {
			return domain.ErrNotApplicant
		}
		return domain.CheckSubmission(step, app, kind)
	}
}
