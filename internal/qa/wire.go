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

package qa

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobmate/internal/qa/internal/aqs"
	"github.com/ecodeclub/jobmate/internal/qa/internal/event"
	"github.com/ecodeclub/jobmate/internal/qa/internal/job"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository/cache"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository/dao"
	"github.com/ecodeclub/jobmate/internal/qa/internal/service"
	"github.com/ecodeclub/jobmate/internal/qa/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var daoSet = wire.NewSet(
	initQuestionDAO,
	initAnswerDAO,
	initInteractionDAO,
	initExpertiseDAO,
	initQualityDAO,
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache) *Module {
	wire.Build(
		daoSet,
		cache.NewQualityECache,
		repository.NewQuestionRepository,
		repository.NewAnswerRepository,
		repository.NewExpertiseRepository,
		repository.NewCachedQualityRepository,
		initScorer,
		initQualityProducer,
		service.NewQualityService,
		service.NewService,
		service.NewExpertiseService,
		web.NewHandler,
		web.NewAdminHandler,
		initExpertiseJob,
		initProfileConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var tablesOnce = &sync.Once{}

func initTables(db *egorm.Component) {
	tablesOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initQuestionDAO(db *egorm.Component) dao.QuestionDAO {
	initTables(db)
	return dao.NewGORMQuestionDAO(db)
}

func initAnswerDAO(db *egorm.Component) dao.AnswerDAO {
	initTables(db)
	return dao.NewGORMAnswerDAO(db)
}

func initInteractionDAO(db *egorm.Component) dao.InteractionDAO {
	initTables(db)
	return dao.NewGORMInteractionDAO(db)
}

func initExpertiseDAO(db *egorm.Component) dao.ExpertiseDAO {
	initTables(db)
	return dao.NewGORMExpertiseDAO(db)
}

func initQualityDAO(db *egorm.Component) dao.QualityDAO {
	initTables(db)
	return dao.NewGORMQualityDAO(db)
}

func initScorer() *aqs.Scorer {
	s, err := aqs.NewScorer(aqs.DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

func initQualityProducer(q mq.MQ) event.QualityEventProducer {
	p, err := event.NewQualityEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initExpertiseJob(svc service.ExpertiseService) *job.RefreshExpertiseProfileJob {
	return job.NewRefreshExpertiseProfileJob(svc, econf.GetInt("cron.expertise.batchSize"))
}

func initProfileConsumer(svc service.ExpertiseService, q mq.MQ) *event.ProfileStrengthConsumer {
	c, err := event.NewProfileStrengthConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
