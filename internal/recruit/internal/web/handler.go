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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 候选人使用的接口
type Handler struct {
	offerSvc   service.OfferService
	stepSvc    service.StepService
	attemptSvc service.AttemptService
}

func NewHandler(offerSvc service.OfferService,
	stepSvc service.StepService,
	attemptSvc service.AttemptService) *Handler {
	return &Handler{
		offerSvc:   offerSvc,
		stepSvc:    stepSvc,
		attemptSvc: attemptSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/recruit/offers/view", ginx.B[OfferID](h.ViewOffer))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/recruit")
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/questionnaire", ginx.B[StepID](h.Questionnaire))
	g.POST("/questionnaire/submit", ginx.BS[SubmitQuestionnaireReq](h.SubmitQuestionnaire))
	g.POST("/task/submit", ginx.BS[SubmitTaskReq](h.SubmitTask))
}

// ViewOffer 还没发布的岗位对候选人不可见
func (h *Handler) ViewOffer(ctx *ginx.Context, req OfferID) (ginx.Result, error) {
	offer, err := h.offerSvc.Get(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	if offer.Status == domain.OfferStatusCreated {
		return errorResult(domain.ErrOfferNotFound)
	}
	steps, err := h.stepSvc.List(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	offer.Steps = slice.Map(steps, func(idx int, src domain.Step) domain.Step {
		src.Questions = nil
		return src
	})
	return ginx.Result{Data: newOffer(offer)}, nil
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	id, err := h.offerSvc.Apply(ctx, domain.Application{
		OfferID: req.OfferID,
		Candidate: domain.Candidate{
			Uid:   sess.Claims().Uid,
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Questionnaire(ctx *ginx.Context, req StepID) (ginx.Result, error) {
	step, err := h.stepSvc.Questionnaire(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newStep(step)}, nil
}

func (h *Handler) SubmitQuestionnaire(ctx *ginx.Context, req SubmitQuestionnaireReq, sess session.Session) (ginx.Result, error) {
	selections := slice.Map(req.Selections, func(idx int, src Selection) domain.Selection {
		return domain.Selection{QuestionID: src.QuestionID, AnswerID: src.AnswerID}
	})
	attempt, err := h.attemptSvc.SubmitQuestionnaire(ctx, sess.Claims().Uid, req.StepID, req.ApplicationID, selections)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newAttempt(attempt)}, nil
}

func (h *Handler) SubmitTask(ctx *ginx.Context, req SubmitTaskReq, sess session.Session) (ginx.Result, error) {
	attempt, err := h.attemptSvc.SubmitTask(ctx, sess.Claims().Uid, req.StepID, req.ApplicationID, domain.TaskPayload{
		FileRef: req.FileRef,
		Link:    req.Link,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newAttempt(attempt)}, nil
}
