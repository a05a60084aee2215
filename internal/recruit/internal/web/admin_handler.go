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

const defaultPageLimit = 20

// AdminHandler 招聘方使用的接口
type AdminHandler struct {
	offerSvc     service.OfferService
	stepSvc      service.StepService
	lifecycleSvc service.LifecycleService
	attemptSvc   service.AttemptService
}

func NewAdminHandler(offerSvc service.OfferService,
	stepSvc service.StepService,
	lifecycleSvc service.LifecycleService,
	attemptSvc service.AttemptService) *AdminHandler {
	return &AdminHandler{
		offerSvc:     offerSvc,
		stepSvc:      stepSvc,
		lifecycleSvc: lifecycleSvc,
		attemptSvc:   attemptSvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	o := server.Group("/recruit/offers")
	o.POST("/create", ginx.BS[CreateOfferReq](h.CreateOffer))
	o.POST("/list", ginx.BS[Page](h.ListOffers))
	o.POST("/detail", ginx.B[OfferID](h.OfferDetail))
	o.POST("/canPublish", ginx.B[OfferID](h.CanPublish))
	o.POST("/publish", ginx.B[OfferID](h.Publish))
	o.POST("/close", ginx.B[OfferID](h.Close))
	o.POST("/applications", ginx.B[OfferID](h.ListApplications))

	s := server.Group("/recruit/steps")
	s.POST("/create", ginx.B[CreateStepReq](h.CreateStep))
	s.POST("/update", ginx.B[UpdateStepReq](h.UpdateStep))
	s.POST("/delete", ginx.B[StepID](h.DeleteStep))
	s.POST("/detail", ginx.B[StepID](h.StepDetail))
	s.POST("/moveToTop", ginx.B[StepID](h.MoveToTop))
	s.POST("/moveToBottom", ginx.B[StepID](h.MoveToBottom))
	s.POST("/swap", ginx.B[SwapStepReq](h.Swap))
	s.POST("/questions/save", ginx.B[SaveQuestionsReq](h.SaveQuestions))
	s.POST("/start", ginx.B[StartStepReq](h.Start))
	s.POST("/finish", ginx.B[StepID](h.Finish))
	s.POST("/cancel", ginx.B[StepID](h.Cancel))
	s.POST("/attempts", ginx.B[StepID](h.ListAttempts))

	a := server.Group("/recruit/attempts")
	a.POST("/score", ginx.B[ScoreReq](h.Score))
	a.POST("/attendance", ginx.B[AttendanceReq](h.RecordAttendance))
}

func (h *AdminHandler) CreateOffer(ctx *ginx.Context, req CreateOfferReq, sess session.Session) (ginx.Result, error) {
	id, err := h.offerSvc.Create(ctx, domain.Offer{
		Uid:         sess.Claims().Uid,
		Title:       req.Title,
		Description: req.Description,
		Headcount:   req.Headcount,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) ListOffers(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = defaultPageLimit
	}
	offers, err := h.offerSvc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: OfferList{
			Offers: slice.Map(offers, func(idx int, src domain.Offer) Offer {
				return newOffer(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) OfferDetail(ctx *ginx.Context, req OfferID) (ginx.Result, error) {
	offer, apps, err := h.offerSvc.Detail(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: OfferDetail{
			Offer:        newOffer(offer),
			Applications: newApplications(apps),
		},
	}, nil
}

func (h *AdminHandler) CanPublish(ctx *ginx.Context, req OfferID) (ginx.Result, error) {
	verdict, err := h.offerSvc.CanPublish(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPublishVerdict(verdict)}, nil
}

func (h *AdminHandler) Publish(ctx *ginx.Context, req OfferID) (ginx.Result, error) {
	if err := h.offerSvc.Publish(ctx, req.ID); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Close(ctx *ginx.Context, req OfferID) (ginx.Result, error) {
	if err := h.offerSvc.Close(ctx, req.ID); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) ListApplications(ctx *ginx.Context, req OfferID) (ginx.Result, error) {
	apps, err := h.offerSvc.ListApplications(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newApplications(apps)}, nil
}

func (h *AdminHandler) CreateStep(ctx *ginx.Context, req CreateStepReq) (ginx.Result, error) {
	step, err := h.stepSvc.Create(ctx, domain.Step{
		OfferID:     req.OfferID,
		Kind:        domain.StepKind(req.Kind),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newStep(step)}, nil
}

func (h *AdminHandler) UpdateStep(ctx *ginx.Context, req UpdateStepReq) (ginx.Result, error) {
	err := h.stepSvc.Update(ctx, req.ID, domain.StepChanges{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) DeleteStep(ctx *ginx.Context, req StepID) (ginx.Result, error) {
	if err := h.stepSvc.Delete(ctx, req.ID); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) StepDetail(ctx *ginx.Context, req StepID) (ginx.Result, error) {
	step, err := h.stepSvc.Get(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newStep(step)}, nil
}

func (h *AdminHandler) MoveToTop(ctx *ginx.Context, req StepID) (ginx.Result, error) {
	if err := h.stepSvc.MoveToTop(ctx, req.ID); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) MoveToBottom(ctx *ginx.Context, req StepID) (ginx.Result, error) {
	if err := h.stepSvc.MoveToBottom(ctx, req.ID); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Swap(ctx *ginx.Context, req SwapStepReq) (ginx.Result, error) {
	if err := h.stepSvc.Swap(ctx, req.A, req.B); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) SaveQuestions(ctx *ginx.Context, req SaveQuestionsReq) (ginx.Result, error) {
	questions := slice.Map(req.Questions, func(idx int, src Question) domain.Question {
		return src.toDomain()
	})
	if err := h.stepSvc.SaveQuestions(ctx, req.StepID, questions); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Start(ctx *ginx.Context, req StartStepReq) (ginx.Result, error) {
	started, err := h.lifecycleSvc.Start(ctx, req.ID, req.scope())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: StepStarted{
			Step:       newStep(started.Step),
			Candidates: newApplications(started.Applications),
		},
	}, nil
}

func (h *AdminHandler) Finish(ctx *ginx.Context, req StepID) (ginx.Result, error) {
	if err := h.lifecycleSvc.Finish(ctx, req.ID); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req StepID) (ginx.Result, error) {
	if err := h.lifecycleSvc.Cancel(ctx, req.ID); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) ListAttempts(ctx *ginx.Context, req StepID) (ginx.Result, error) {
	attempts, err := h.attemptSvc.ListByStep(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newAttempts(attempts)}, nil
}

func (h *AdminHandler) Score(ctx *ginx.Context, req ScoreReq) (ginx.Result, error) {
	attempt, err := h.lifecycleSvc.Score(ctx, req.StepID, req.ApplicationID, req.Delta)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newAttempt(attempt)}, nil
}

func (h *AdminHandler) RecordAttendance(ctx *ginx.Context, req AttendanceReq) (ginx.Result, error) {
	attempt, err := h.attemptSvc.RecordAttendance(ctx, req.StepID, req.ApplicationID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newAttempt(attempt)}, nil
}
