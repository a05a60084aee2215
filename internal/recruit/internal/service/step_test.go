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
	"errors"
	"testing"

	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository"
	repomocks "github.com/ecodeclub/recruit/internal/recruit/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStepService_Create(t *testing.T) {
	testCases := []struct {
		name  string
		step  domain.Step
		offer domain.Offer
		mock  func(ctrl *gomock.Controller, offer domain.Offer) repository.StepRepository

		wantErr error
	}{
		{
			name:  "创建成功",
			step:  domain.Step{OfferID: 1, Kind: domain.StepKindTask, Title: "作业", Duration: 60},
			offer: domain.Offer{ID: 1, Status: domain.OfferStatusCreated},
			mock: func(ctrl *gomock.Controller, offer domain.Offer) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, step domain.Step,
						guard func(domain.Offer) error) (domain.Step, error) {
						assert.Equal(t, domain.StepStatusUpcoming, step.Status)
						step.ID = 2
						step.Order = 1
						return step, guard(offer)
					})
				return repo
			},
		},
		{
			name:  "步骤类型非法",
			step:  domain.Step{OfferID: 1, Kind: "EXAM", Title: "作业"},
			offer: domain.Offer{ID: 1, Status: domain.OfferStatusCreated},
			mock: func(ctrl *gomock.Controller, offer domain.Offer) repository.StepRepository {
				return repomocks.NewMockStepRepository(ctrl)
			},
			wantErr: domain.ErrInvalidStep,
		},
		{
			name:  "岗位已经发布",
			step:  domain.Step{OfferID: 1, Kind: domain.StepKindTask, Title: "作业"},
			offer: domain.Offer{ID: 1, Status: domain.OfferStatusOpen},
			mock: func(ctrl *gomock.Controller, offer domain.Offer) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, step domain.Step,
						guard func(domain.Offer) error) (domain.Step, error) {
						return domain.Step{}, guard(offer)
					})
				return repo
			},
			wantErr: domain.ErrOfferNotEditable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewStepService(tc.mock(ctrl, tc.offer))
			_, err := svc.Create(context.Background(), tc.step)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestStepService_Update(t *testing.T) {
	title := "新的标题"
	empty := ""
	origin := domain.Step{ID: 2, OfferID: 1, Kind: domain.StepKindTask, Title: "作业",
		Status: domain.StepStatusUpcoming, Order: 1}
	testCases := []struct {
		name    string
		changes domain.StepChanges
		mock    func(ctrl *gomock.Controller) repository.StepRepository

		wantErr error
	}{
		{
			name:    "修改成功",
			changes: domain.StepChanges{Title: &title},
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(origin, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, step domain.Step, guard repository.StepGuard) error {
						assert.Equal(t, title, step.Title)
						return guard(domain.Offer{ID: 1, Status: domain.OfferStatusCreated}, origin)
					})
				return repo
			},
		},
		{
			name:    "标题不能为空",
			changes: domain.StepChanges{Title: &empty},
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(origin, nil)
				return repo
			},
			wantErr: domain.ErrInvalidStep,
		},
		{
			name:    "步骤不存在",
			changes: domain.StepChanges{Title: &title},
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(domain.Step{}, domain.ErrStepNotFound)
				return repo
			},
			wantErr: domain.ErrStepNotFound,
		},
		{
			name:    "步骤已经开始",
			changes: domain.StepChanges{Title: &title},
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(origin, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, step domain.Step, guard repository.StepGuard) error {
						running := origin
						running.Status = domain.StepStatusRunning
						return guard(domain.Offer{ID: 1, Status: domain.OfferStatusCreated}, running)
					})
				return repo
			},
			wantErr: domain.ErrStepNotEditable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewStepService(tc.mock(ctrl))
			err := svc.Update(context.Background(), 2, tc.changes)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestStepService_SaveQuestions(t *testing.T) {
	questions := []domain.Question{
		{Content: "1+1", Answers: []domain.Answer{{Content: "2", Correct: true}, {Content: "3"}}},
	}
	offer := domain.Offer{ID: 1, Status: domain.OfferStatusCreated}
	testCases := []struct {
		name      string
		questions []domain.Question
		step      domain.Step

		wantErr error
	}{
		{
			name:      "保存成功",
			questions: questions,
			step:      domain.Step{ID: 2, Kind: domain.StepKindQuestionnaire, Status: domain.StepStatusUpcoming},
		},
		{
			name:      "不是问卷",
			questions: questions,
			step:      domain.Step{ID: 2, Kind: domain.StepKindTask, Status: domain.StepStatusUpcoming},
			wantErr:   domain.ErrKindMismatch,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockStepRepository(ctrl)
			repo.EXPECT().SaveQuestions(gomock.Any(), int64(2), tc.questions, gomock.Any()).
				DoAndReturn(func(ctx context.Context, stepID int64, questions []domain.Question,
					guard repository.StepGuard) error {
					return guard(offer, tc.step)
				})
			err := NewStepService(repo).SaveQuestions(context.Background(), 2, tc.questions)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("题目内容为空", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		err := NewStepService(repomocks.NewMockStepRepository(ctrl)).
			SaveQuestions(context.Background(), 2, []domain.Question{{}})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestStepService_Questionnaire(t *testing.T) {
	step := domain.Step{
		ID:     2,
		Kind:   domain.StepKindQuestionnaire,
		Status: domain.StepStatusRunning,
		Questions: []domain.Question{
			{ID: 1, Content: "1+1", Answers: []domain.Answer{
				{ID: 1, QuestionID: 1, Content: "2", Correct: true},
				{ID: 2, QuestionID: 1, Content: "3"},
			}},
		},
	}
	testCases := []struct {
		name string
		step domain.Step

		wantRes domain.Step
		wantErr error
	}{
		{
			name: "隐藏正确答案",
			step: step,
			wantRes: domain.Step{
				ID:     2,
				Kind:   domain.StepKindQuestionnaire,
				Status: domain.StepStatusRunning,
				Questions: []domain.Question{
					{ID: 1, Content: "1+1", Answers: []domain.Answer{
						{ID: 1, QuestionID: 1, Content: "2"},
						{ID: 2, QuestionID: 1, Content: "3"},
					}},
				},
			},
		},
		{
			name:    "步骤没有开始",
			step:    domain.Step{ID: 2, Kind: domain.StepKindQuestionnaire, Status: domain.StepStatusUpcoming},
			wantErr: domain.ErrStepNotRunning,
		},
		{
			name:    "不是问卷",
			step:    domain.Step{ID: 2, Kind: domain.StepKindVideoInterview, Status: domain.StepStatusRunning},
			wantErr: domain.ErrKindMismatch,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockStepRepository(ctrl)
			repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(tc.step, nil)
			res, err := NewStepService(repo).Questionnaire(context.Background(), 2)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRes, res)
		})
	}
	// 原始数据不能被修改
	assert.True(t, step.Questions[0].Answers[0].Correct)
}

func TestStepService_Reorder(t *testing.T) {
	offer := domain.Offer{ID: 1, Status: domain.OfferStatusCreated}
	steps := []domain.Step{
		{ID: 1, OfferID: 1, Status: domain.StepStatusUpcoming, Order: 1},
		{ID: 2, OfferID: 1, Status: domain.StepStatusUpcoming, Order: 2},
		{ID: 3, OfferID: 1, Status: domain.StepStatusUpcoming, Order: 3},
	}
	reorder := func(repo *repomocks.MockStepRepository, offer domain.Offer,
		want map[int64]int, wantErr error) {
		repo.EXPECT().Reorder(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(ctx context.Context, offerID int64,
				plan func(domain.Offer, []domain.Step) (map[int64]int, error)) error {
				res, err := plan(offer, steps)
				assert.ErrorIs(t, err, wantErr)
				assert.Equal(t, want, res)
				return err
			})
	}
	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) repository.StepRepository
		op   func(svc StepService) error

		wantErr error
	}{
		{
			name: "置顶",
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(steps[2], nil)
				reorder(repo, offer, map[int64]int{3: 1, 1: 2, 2: 3}, nil)
				return repo
			},
			op: func(svc StepService) error {
				return svc.MoveToTop(context.Background(), 3)
			},
		},
		{
			name: "置底",
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(steps[0], nil)
				reorder(repo, offer, map[int64]int{2: 1, 3: 2, 1: 3}, nil)
				return repo
			},
			op: func(svc StepService) error {
				return svc.MoveToBottom(context.Background(), 1)
			},
		},
		{
			name: "交换",
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(steps[0], nil)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(steps[2], nil)
				reorder(repo, offer, map[int64]int{3: 1, 2: 2, 1: 3}, nil)
				return repo
			},
			op: func(svc StepService) error {
				return svc.Swap(context.Background(), 1, 3)
			},
		},
		{
			name: "交换不同岗位的步骤",
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(steps[0], nil)
				repo.EXPECT().FindByID(gomock.Any(), int64(9)).
					Return(domain.Step{ID: 9, OfferID: 2, Order: 1}, nil)
				return repo
			},
			op: func(svc StepService) error {
				return svc.Swap(context.Background(), 1, 9)
			},
			wantErr: domain.ErrCrossOffer,
		},
		{
			name: "岗位已经发布",
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(steps[2], nil)
				reorder(repo, domain.Offer{ID: 1, Status: domain.OfferStatusOpen}, nil, domain.ErrOfferNotEditable)
				return repo
			},
			op: func(svc StepService) error {
				return svc.MoveToTop(context.Background(), 3)
			},
			wantErr: domain.ErrOfferNotEditable,
		},
		{
			name: "步骤查询失败",
			mock: func(ctrl *gomock.Controller) repository.StepRepository {
				repo := repomocks.NewMockStepRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(domain.Step{}, errors.New("db error"))
				return repo
			},
			op: func(svc StepService) error {
				return svc.MoveToTop(context.Background(), 3)
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			err := tc.op(NewStepService(tc.mock(ctrl)))
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tc.wantErr.Error(), err.Error())
		})
	}
}
