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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository"
)

//go:generate mockgen -source=./step.go -package=recruitmocks -destination=../../mocks/step.mock.go StepService
type StepService interface {
	Create(ctx context.Context, step domain.Step) (domain.Step, error)
	Update(ctx context.Context, id int64, changes domain.StepChanges) error
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.Step, error)
	List(ctx context.Context, offerID int64) ([]domain.Step, error)
	// SaveQuestions 整体替换问卷的题目
	SaveQuestions(ctx context.Context, stepID int64, questions []domain.Question) error
	// Questionnaire 给候选人看的问卷，不包含正确答案的标记
	Questionnaire(ctx context.Context, stepID int64) (domain.Step, error)

	MoveToTop(ctx context.Context, id int64) error
	MoveToBottom(ctx context.Context, id int64) error
	Swap(ctx context.Context, a, b int64) error
}

type stepService struct {
	repo repository.StepRepository
}

func NewStepService(repo repository.StepRepository) StepService {
	return &stepService{repo: repo}
}

func (s *stepService) Create(ctx context.Context, step domain.Step) (domain.Step, error) {
	if !step.IsValid() {
		return domain.Step{}, domain.ErrInvalidStep
	}
	step.Status = domain.StepStatusUpcoming
	return s.repo.Create(ctx, step, func(offer domain.Offer) error {
		return offer.Editable()
	})
}

func (s *stepService) Update(ctx context.Context, id int64, changes domain.StepChanges) error {
	step, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	step = changes.Apply(step)
	if !step.IsValid() {
		return domain.ErrInvalidStep
	}
	return s.repo.Update(ctx, step, domain.CheckEditable)
}

func (s *stepService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id, domain.CheckDeletable)
}

func (s *stepService) Get(ctx context.Context, id int64) (domain.Step, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *stepService) List(ctx context.Context, offerID int64) ([]domain.Step, error) {
	return s.repo.FindByOfferID(ctx, offerID)
}

func (s *stepService) SaveQuestions(ctx context.Context, stepID int64, questions []domain.Question) error {
	for _, q := range questions {
		if q.Content == "" {
			return domain.ErrValidation
		}
	}
	return s.repo.SaveQuestions(ctx, stepID, questions, func(offer domain.Offer, step domain.Step) error {
		if step.Kind != domain.StepKindQuestionnaire {
			return domain.ErrKindMismatch
		}
		return domain.CheckEditable(offer, step)
	})
}

func (s *stepService) Questionnaire(ctx context.Context, stepID int64) (domain.Step, error) {
	step, err := s.repo.FindByID(ctx, stepID)
	if err != nil {
		return domain.Step{}, err
	}
	if step.Kind != domain.StepKindQuestionnaire {
		return domain.Step{}, domain.ErrKindMismatch
	}
	if step.Status != domain.StepStatusRunning {
		return domain.Step{}, domain.ErrStepNotRunning
	}
	step.Questions = slice.Map(step.Questions, func(idx int, src domain.Question) domain.Question {
		src.Answers = slice.Map(src.Answers, func(idx int, a domain.Answer) domain.Answer {
			a.Correct = false
			return a
		})
		return src
	})
	return step, nil
}

func (s *stepService) MoveToTop(ctx context.Context, id int64) error {
	return s.move(ctx, id, domain.MoveToTop)
}

func (s *stepService) MoveToBottom(ctx context.Context, id int64) error {
	return s.move(ctx, id, domain.MoveToBottom)
}

func (s *stepService) Swap(ctx context.Context, a, b int64) error {
	sa, err := s.repo.FindByID(ctx, a)
	if err != nil {
		return err
	}
	sb, err := s.repo.FindByID(ctx, b)
	if err != nil {
		return err
	}
	// 步骤不会换岗位，所以在事务外判断就够了
	if sa.OfferID != sb.OfferID {
		return domain.ErrCrossOffer
	}
	return s.repo.Reorder(ctx, sa.OfferID, func(offer domain.Offer, steps []domain.Step) (map[int64]int, error) {
		if err := checkEditable(offer, steps, a, b); err != nil {
			return nil, err
		}
		return domain.Swap(steps, a, b)
	})
}

func (s *stepService) move(ctx context.Context, id int64,
	plan func(steps []domain.Step, id int64) (map[int64]int, error)) error {
	step, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Reorder(ctx, step.OfferID, func(offer domain.Offer, steps []domain.Step) (map[int64]int, error) {
		if err := checkEditable(offer, steps, id); err != nil {
			return nil, err
		}
		return plan(steps, id)
	})
}

// checkEditable 在事务内读到的步骤上检查，被移动的步骤都必须可以编辑
func checkEditable(offer domain.Offer, steps []domain.Step, ids ...int64) error {
	for _, id := range ids {
		step, ok := slice.Find(steps, func(src domain.Step) bool {
			return src.ID == id
		})
		if !ok {
			return domain.ErrStepNotFound
		}
		if err := domain.CheckEditable(offer, step); err != nil {
			return err
		}
	}
	return nil
}
