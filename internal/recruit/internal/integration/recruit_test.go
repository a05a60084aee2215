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

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	notificationevt "github.com/ecodeclub/recruit/internal/notification/event"
	"github.com/ecodeclub/recruit/internal/recruit/internal/errs"
	"github.com/ecodeclub/recruit/internal/recruit/internal/event"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/cache"
	cachemocks "github.com/ecodeclub/recruit/internal/recruit/internal/repository/cache/mocks"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/dao"
	"github.com/ecodeclub/recruit/internal/recruit/internal/service"
	"github.com/ecodeclub/recruit/internal/recruit/internal/web"
	"github.com/ecodeclub/recruit/internal/test"
	testioc "github.com/ecodeclub/recruit/internal/test/ioc"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	recruiterUid = 1
	candidateUid = 2
)

type RecruitTestSuite struct {
	suite.Suite
	admin    *gin.Engine
	web      *gin.Engine
	consumer mq.Consumer
}

func TestRecruit(t *testing.T) {
	suite.Run(t, new(RecruitTestSuite))
}

func (s *RecruitTestSuite) SetupSuite() {
	db := testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(db))
	q := testioc.InitMQ()
	// 先订阅，才能收到后面发出的消息
	consumer, err := q.Consumer(notificationevt.StepStartedEventName, "recruit.integration")
	require.NoError(s.T(), err)
	s.consumer = consumer

	ctrl := gomock.NewController(s.T())
	stepCache := cachemocks.NewMockStepCache(ctrl)
	stepCache.EXPECT().GetSteps(gomock.Any(), gomock.Any()).Return(nil, cache.ErrStepsNotFound).AnyTimes()
	stepCache.EXPECT().SetSteps(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	stepCache.EXPECT().DelSteps(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	node, err := snowflake.NewNode(1)
	require.NoError(s.T(), err)
	producer, err := event.NewStepStartedEventProducer(q, node)
	require.NoError(s.T(), err)

	offerRepo := repository.NewOfferRepository(dao.NewGORMOfferDAO(db))
	stepRepo := repository.NewCachedStepRepository(dao.NewGORMStepDAO(db), stepCache)
	attemptRepo := repository.NewAttemptRepository(dao.NewGORMAttemptDAO(db))
	offerSvc := service.NewOfferService(offerRepo, stepRepo)
	stepSvc := service.NewStepService(stepRepo)
	lifecycleSvc := service.NewLifecycleService(stepRepo, attemptRepo, producer)
	attemptSvc := service.NewAttemptService(stepRepo, attemptRepo)

	gin.SetMode(gin.TestMode)
	s.admin = gin.New()
	s.admin.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: recruiterUid}))
	})
	web.NewAdminHandler(offerSvc, stepSvc, lifecycleSvc, attemptSvc).PrivateRoutes(s.admin)

	s.web = gin.New()
	s.web.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: candidateUid}))
	})
	hdl := web.NewHandler(offerSvc, stepSvc, attemptSvc)
	hdl.PublicRoutes(s.web)
	hdl.PrivateRoutes(s.web)
}

// TestRecruitmentFlow 作业、问卷两个步骤，问卷调到最前面，发布、投递、关闭之后依次进行
func (s *RecruitTestSuite) TestRecruitmentFlow() {
	t := s.T()

	offerID := post[int64](t, s.admin, "/recruit/offers/create", web.CreateOfferReq{
		Title:     "Go 后端工程师",
		Headcount: 1,
	}).Data
	require.True(t, offerID > 0)

	task := post[web.Step](t, s.admin, "/recruit/steps/create", web.CreateStepReq{
		OfferID: offerID, Kind: "TASK", Title: "实现一个缓存", Duration: 60,
	}).Data
	questionnaire := post[web.Step](t, s.admin, "/recruit/steps/create", web.CreateStepReq{
		OfferID: offerID, Kind: "QUESTIONNAIRE", Title: "基础知识", Duration: 30,
	}).Data
	assert.Equal(t, 1, task.Order)
	assert.Equal(t, 2, questionnaire.Order)

	res := post[any](t, s.admin, "/recruit/steps/moveToTop", web.StepID{ID: questionnaire.ID})
	require.Equal(t, 0, res.Code)
	detail := post[web.OfferDetail](t, s.admin, "/recruit/offers/detail", web.OfferID{ID: offerID}).Data
	require.Len(t, detail.Offer.Steps, 2)
	assert.Equal(t, questionnaire.ID, detail.Offer.Steps[0].ID)
	assert.Equal(t, 1, detail.Offer.Steps[0].Order)
	assert.Equal(t, task.ID, detail.Offer.Steps[1].ID)
	assert.Equal(t, 2, detail.Offer.Steps[1].Order)

	// 问卷还没有题目
	publishRes := post[int64](t, s.admin, "/recruit/offers/publish", web.OfferID{ID: offerID})
	assert.Equal(t, errs.Validation.Code, publishRes.Code)
	assert.Equal(t, questionnaire.ID, publishRes.Data)

	res = post[any](t, s.admin, "/recruit/steps/questions/save", web.SaveQuestionsReq{
		StepID: questionnaire.ID,
		Questions: []web.Question{
			{
				Content: "Go 的 map 是并发安全的吗",
				Answers: []web.Answer{
					{Content: "不是", Correct: true},
					{Content: "是"},
				},
			},
		},
	})
	require.Equal(t, 0, res.Code)
	verdict := post[web.PublishVerdict](t, s.admin, "/recruit/offers/canPublish", web.OfferID{ID: offerID}).Data
	assert.True(t, verdict.OK)
	res = post[any](t, s.admin, "/recruit/offers/publish", web.OfferID{ID: offerID})
	require.Equal(t, 0, res.Code)

	// 发布之后就不能再调整步骤
	res = post[any](t, s.admin, "/recruit/steps/swap", web.SwapStepReq{A: questionnaire.ID, B: task.ID})
	assert.Equal(t, errs.InvalidState.Code, res.Code)

	appID := post[int64](t, s.web, "/recruit/apply", web.ApplyReq{
		OfferID: offerID, Name: "候选人", Email: "candidate@example.com",
	}).Data
	require.True(t, appID > 0)

	// 还在接收投递，步骤不能开始
	res = post[any](t, s.admin, "/recruit/steps/start", web.StartStepReq{ID: questionnaire.ID})
	assert.Equal(t, errs.InvalidState.Code, res.Code)
	res = post[any](t, s.admin, "/recruit/offers/close", web.OfferID{ID: offerID})
	require.Equal(t, 0, res.Code)

	started := post[web.StepStarted](t, s.admin, "/recruit/steps/start", web.StartStepReq{ID: questionnaire.ID})
	require.Equal(t, 0, started.Code)
	require.Len(t, started.Data.Candidates, 1)
	assert.Equal(t, appID, started.Data.Candidates[0].ID)
	evt := s.consumeStepStarted(t)
	assert.Equal(t, questionnaire.ID, evt.StepID)
	assert.Equal(t, "QUESTIONNAIRE", evt.StepKind)
	assert.Equal(t, "Go 后端工程师", evt.OfferTitle)
	require.Len(t, evt.Candidates, 1)
	assert.Equal(t, notificationevt.Candidate{
		ApplicationID: appID,
		Uid:           candidateUid,
		Name:          "候选人",
		Email:         "candidate@example.com",
	}, evt.Candidates[0])

	// 同一个岗位同时只能有一个步骤在进行
	res = post[any](t, s.admin, "/recruit/steps/start", web.StartStepReq{ID: task.ID})
	assert.Equal(t, errs.Conflict.Code, res.Code)

	paper := post[web.Step](t, s.web, "/recruit/questionnaire", web.StepID{ID: questionnaire.ID}).Data
	require.Len(t, paper.Questions, 1)
	require.Len(t, paper.Questions[0].Answers, 2)
	var correctID int64
	for _, a := range paper.Questions[0].Answers {
		assert.False(t, a.Correct)
		if a.Content == "不是" {
			correctID = a.ID
		}
	}
	selections := []web.Selection{{QuestionID: paper.Questions[0].ID, AnswerID: correctID}}
	attempt := post[web.Attempt](t, s.web, "/recruit/questionnaire/submit", web.SubmitQuestionnaireReq{
		StepID: questionnaire.ID, ApplicationID: appID, Selections: selections,
	})
	require.Equal(t, 0, attempt.Code)
	assert.Equal(t, int64(1), attempt.Data.Score)
	assert.Equal(t, "COMPLETED", attempt.Data.Status)

	res = post[any](t, s.web, "/recruit/questionnaire/submit", web.SubmitQuestionnaireReq{
		StepID: questionnaire.ID, ApplicationID: appID, Selections: selections,
	})
	assert.Equal(t, errs.Conflict.Code, res.Code)

	apps := post[[]web.Application](t, s.admin, "/recruit/offers/applications", web.OfferID{ID: offerID}).Data
	require.Len(t, apps, 1)
	assert.Equal(t, int64(1), apps[0].Note)

	res = post[any](t, s.admin, "/recruit/steps/finish", web.StepID{ID: questionnaire.ID})
	require.Equal(t, 0, res.Code)
	// 结束之后不能再取消
	res = post[any](t, s.admin, "/recruit/steps/cancel", web.StepID{ID: questionnaire.ID})
	assert.Equal(t, errs.InvalidState.Code, res.Code)

	started = post[web.StepStarted](t, s.admin, "/recruit/steps/start", web.StartStepReq{ID: task.ID})
	require.Equal(t, 0, started.Code)
	assert.Equal(t, "RUNNING", started.Data.Step.Status)
	require.Len(t, started.Data.Candidates, 1)
	evt = s.consumeStepStarted(t)
	assert.Equal(t, task.ID, evt.StepID)
	assert.Equal(t, "TASK", evt.StepKind)

	attempt = post[web.Attempt](t, s.web, "/recruit/task/submit", web.SubmitTaskReq{
		StepID: task.ID, ApplicationID: appID, Link: "https://github.com/candidate/cache",
	})
	require.Equal(t, 0, attempt.Code)
	assert.Equal(t, int64(0), attempt.Data.Score)
	assert.NotEmpty(t, attempt.Data.Tid)

	scored := post[web.Attempt](t, s.admin, "/recruit/attempts/score", web.ScoreReq{
		StepID: task.ID, ApplicationID: appID, Delta: 3,
	})
	require.Equal(t, 0, scored.Code)
	assert.Equal(t, int64(3), scored.Data.Score)
	apps = post[[]web.Application](t, s.admin, "/recruit/offers/applications", web.OfferID{ID: offerID}).Data
	require.Len(t, apps, 1)
	assert.Equal(t, int64(4), apps[0].Note)
}

func (s *RecruitTestSuite) consumeStepStarted(t *testing.T) notificationevt.StepStartedEvent {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := s.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt notificationevt.StepStartedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	return evt
}

func post[T any](t *testing.T, server *gin.Engine, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}
