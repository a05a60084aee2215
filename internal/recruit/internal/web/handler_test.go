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
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/errs"
	"github.com/ecodeclub/recruit/internal/recruit/internal/service"
	recruitmocks "github.com/ecodeclub/recruit/internal/recruit/mocks"
	"github.com/ecodeclub/recruit/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = 123

type services struct {
	offerSvc     service.OfferService
	stepSvc      service.StepService
	lifecycleSvc service.LifecycleService
	attemptSvc   service.AttemptService
}

func newServer(t *testing.T, svcs services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	NewAdminHandler(svcs.offerSvc, svcs.stepSvc, svcs.lifecycleSvc, svcs.attemptSvc).PrivateRoutes(server)
	hdl := NewHandler(svcs.offerSvc, svcs.stepSvc, svcs.attemptSvc)
	hdl.PublicRoutes(server)
	hdl.PrivateRoutes(server)
	return server
}

func TestAdminHandler_Publish(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) services
		wantCode int
		wantResp test.Result[int64]
	}{
		{
			name: "发布成功",
			mock: func(ctrl *gomock.Controller) services {
				offerSvc := recruitmocks.NewMockOfferService(ctrl)
				offerSvc.EXPECT().Publish(gomock.Any(), int64(1)).Return(nil)
				return services{offerSvc: offerSvc}
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{Msg: "OK"},
		},
		{
			name: "问卷不满足条件，返回不合格的步骤",
			mock: func(ctrl *gomock.Controller) services {
				offerSvc := recruitmocks.NewMockOfferService(ctrl)
				offerSvc.EXPECT().Publish(gomock.Any(), int64(1)).
					Return(&domain.PublishError{StepID: 3, Reasons: []string{"问卷没有任何题目"}})
				return services{offerSvc: offerSvc}
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{
				Code: errs.Validation.Code,
				Msg:  (&domain.PublishError{StepID: 3, Reasons: []string{"问卷没有任何题目"}}).Error(),
				Data: 3,
			},
		},
		{
			name: "岗位已经发布",
			mock: func(ctrl *gomock.Controller) services {
				offerSvc := recruitmocks.NewMockOfferService(ctrl)
				offerSvc.EXPECT().Publish(gomock.Any(), int64(1)).Return(domain.ErrOfferNotEditable)
				return services{offerSvc: offerSvc}
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{
				Code: errs.InvalidState.Code,
				Msg:  domain.ErrOfferNotEditable.Error(),
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) services {
				offerSvc := recruitmocks.NewMockOfferService(ctrl)
				offerSvc.EXPECT().Publish(gomock.Any(), int64(1)).Return(errors.New("mock db error"))
				return services{offerSvc: offerSvc}
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[int64]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost,
				"/recruit/offers/publish", iox.NewJSONReader(OfferID{ID: 1}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestAdminHandler_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	offerSvc := recruitmocks.NewMockOfferService(ctrl)
	offerSvc.EXPECT().Close(gomock.Any(), int64(1)).Return(domain.ErrNoApplications)
	server := newServer(t, services{offerSvc: offerSvc})

	req, err := http.NewRequest(http.MethodPost,
		"/recruit/offers/close", iox.NewJSONReader(OfferID{ID: 1}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, test.Result[any]{
		Code: errs.NoApplications.Code,
		Msg:  errs.NoApplications.Msg,
	}, recorder.MustScan())
}

func TestAdminHandler_Start(t *testing.T) {
	testCases := []struct {
		name     string
		req      StartStepReq
		mock     func(ctrl *gomock.Controller) services
		wantResp test.Result[StepStarted]
	}{
		{
			name: "默认只通知还没有作答的候选人",
			req:  StartStepReq{ID: 2},
			mock: func(ctrl *gomock.Controller) services {
				lifecycleSvc := recruitmocks.NewMockLifecycleService(ctrl)
				lifecycleSvc.EXPECT().Start(gomock.Any(), int64(2), domain.CandidateScopePending).
					Return(domain.StepStarted{
						Step: domain.Step{ID: 2, OfferID: 1, Kind: domain.StepKindTask,
							Title: "作业", Status: domain.StepStatusRunning, Order: 1},
						Applications: []domain.Application{
							{ID: 7, OfferID: 1, Candidate: domain.Candidate{Uid: 9, Name: "候选人", Email: "a@b.com"}},
						},
					}, nil)
				return services{lifecycleSvc: lifecycleSvc}
			},
			wantResp: test.Result[StepStarted]{
				Data: StepStarted{
					Step: Step{ID: 2, OfferID: 1, Kind: "TASK", Title: "作业", Status: "RUNNING", Order: 1},
					Candidates: []Application{
						{ID: 7, OfferID: 1, Uid: 9, Name: "候选人", Email: "a@b.com"},
					},
				},
			},
		},
		{
			name: "重新发起通知全部候选人",
			req:  StartStepReq{ID: 2, Scope: "ALL"},
			mock: func(ctrl *gomock.Controller) services {
				lifecycleSvc := recruitmocks.NewMockLifecycleService(ctrl)
				lifecycleSvc.EXPECT().Start(gomock.Any(), int64(2), domain.CandidateScopeAll).
					Return(domain.StepStarted{}, domain.ErrSiblingRunning)
				return services{lifecycleSvc: lifecycleSvc}
			},
			wantResp: test.Result[StepStarted]{
				Code: errs.Conflict.Code,
				Msg:  domain.ErrSiblingRunning.Error(),
			},
		},
		{
			name: "岗位还在接收投递",
			req:  StartStepReq{ID: 2},
			mock: func(ctrl *gomock.Controller) services {
				lifecycleSvc := recruitmocks.NewMockLifecycleService(ctrl)
				lifecycleSvc.EXPECT().Start(gomock.Any(), int64(2), domain.CandidateScopePending).
					Return(domain.StepStarted{}, domain.ErrOfferStillOpen)
				return services{lifecycleSvc: lifecycleSvc}
			},
			wantResp: test.Result[StepStarted]{
				Code: errs.InvalidState.Code,
				Msg:  domain.ErrOfferStillOpen.Error(),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost,
				"/recruit/steps/start", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[StepStarted]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Apply(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) services
		wantResp test.Result[int64]
	}{
		{
			name: "投递成功，候选人是当前用户",
			mock: func(ctrl *gomock.Controller) services {
				offerSvc := recruitmocks.NewMockOfferService(ctrl)
				offerSvc.EXPECT().Apply(gomock.Any(), domain.Application{
					OfferID:   1,
					Candidate: domain.Candidate{Uid: uid, Name: "候选人", Email: "a@b.com"},
				}).Return(int64(5), nil)
				return services{offerSvc: offerSvc}
			},
			wantResp: test.Result[int64]{Data: 5},
		},
		{
			name: "重复投递",
			mock: func(ctrl *gomock.Controller) services {
				offerSvc := recruitmocks.NewMockOfferService(ctrl)
				offerSvc.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrDuplicateApplication)
				return services{offerSvc: offerSvc}
			},
			wantResp: test.Result[int64]{
				Code: errs.Conflict.Code,
				Msg:  domain.ErrDuplicateApplication.Error(),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost, "/recruit/apply",
				iox.NewJSONReader(ApplyReq{OfferID: 1, Name: "候选人", Email: "a@b.com"}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_ViewOffer(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) services
		wantResp test.Result[Offer]
	}{
		{
			name: "未发布的岗位不可见",
			mock: func(ctrl *gomock.Controller) services {
				offerSvc := recruitmocks.NewMockOfferService(ctrl)
				offerSvc.EXPECT().Get(gomock.Any(), int64(1)).
					Return(domain.Offer{ID: 1, Status: domain.OfferStatusCreated}, nil)
				return services{offerSvc: offerSvc}
			},
			wantResp: test.Result[Offer]{
				Code: errs.NotFound.Code,
				Msg:  domain.ErrOfferNotFound.Error(),
			},
		},
		{
			name: "已发布的岗位，步骤不带题目",
			mock: func(ctrl *gomock.Controller) services {
				offerSvc := recruitmocks.NewMockOfferService(ctrl)
				offerSvc.EXPECT().Get(gomock.Any(), int64(1)).
					Return(domain.Offer{ID: 1, Title: "后端", Headcount: 1, Status: domain.OfferStatusOpen}, nil)
				stepSvc := recruitmocks.NewMockStepService(ctrl)
				stepSvc.EXPECT().List(gomock.Any(), int64(1)).Return([]domain.Step{
					{ID: 2, OfferID: 1, Kind: domain.StepKindQuestionnaire, Title: "问卷",
						Status: domain.StepStatusUpcoming, Order: 1,
						Questions: []domain.Question{{ID: 1, Content: "1+1"}}},
				}, nil)
				return services{offerSvc: offerSvc, stepSvc: stepSvc}
			},
			wantResp: test.Result[Offer]{
				Data: Offer{
					ID: 1, Title: "后端", Headcount: 1, Status: "OUVERT",
					Steps: []Step{
						{ID: 2, OfferID: 1, Kind: "QUESTIONNAIRE", Title: "问卷", Status: "UPCOMING", Order: 1},
					},
				},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl))
			req, err := http.NewRequest(http.MethodPost, "/recruit/offers/view",
				iox.NewJSONReader(OfferID{ID: 1}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Offer]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
