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

//go:build wireinject

package recruit

import (
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/recruit/internal/recruit/internal/event"
	"github.com/ecodeclub/recruit/internal/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/cache"
	"github.com/ecodeclub/recruit/internal/recruit/internal/repository/dao"
	"github.com/ecodeclub/recruit/internal/recruit/internal/service"
	"github.com/ecodeclub/recruit/internal/recruit/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache) (*Module, error) {
	wire.Build(
		initOfferDAO,
		initStepDAO,
		initAttemptDAO,
		cache.NewStepECache,
		repository.NewOfferRepository,
		repository.NewCachedStepRepository,
		repository.NewAttemptRepository,
		initSnowflakeNode,
		event.NewStepStartedEventProducer,
		service.NewOfferService,
		service.NewStepService,
		service.NewLifecycleService,
		service.NewAttemptService,
		web.NewHandler,
		web.NewAdminHandler,
		initCloseExpiredOffersJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var initTablesOnce sync.Once

func initTables(db *egorm.Component) {
	initTablesOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initOfferDAO(db *egorm.Component) dao.OfferDAO {
	initTables(db)
	return dao.NewGORMOfferDAO(db)
}

func initStepDAO(db *egorm.Component) dao.StepDAO {
	initTables(db)
	return dao.NewGORMStepDAO(db)
}

func initAttemptDAO(db *egorm.Component) dao.AttemptDAO {
	initTables(db)
	return dao.NewGORMAttemptDAO(db)
}

func initSnowflakeNode() (*snowflake.Node, error) {
	type Cfg struct {
		// 多个实例部署时每个实例配置不同的节点
		Node int64 `yaml:"node"`
	}
	var cfg Cfg
	// 没有配置就用 0 号节点
	_ = econf.UnmarshalKey("recruit.snowflake", &cfg)
	return snowflake.NewNode(cfg.Node)
}

func initCloseExpiredOffersJob(svc service.OfferService) *job.CloseExpiredOffersJob {
	type Cfg struct {
		Limit   int           `yaml:"limit"`
		Timeout time.Duration `yaml:"timeout"`
	}
	cfg := Cfg{Limit: 100, Timeout: time.Minute}
	_ = econf.UnmarshalKey("recruit.job.closeExpiredOffers", &cfg)
	return job.NewCloseExpiredOffersJob(svc, cfg.Limit, cfg.Timeout)
}
