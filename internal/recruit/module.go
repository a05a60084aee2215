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

package recruit

import (
	"github.com/ecodeclub/recruit/internal/recruit/internal/domain"
	"github.com/ecodeclub/recruit/internal/recruit/internal/job"
	"github.com/ecodeclub/recruit/internal/recruit/internal/service"
	"github.com/ecodeclub/recruit/internal/recruit/internal/web"
)

type Module struct {
	OfferSvc              OfferService
	StepSvc               StepService
	LifecycleSvc          LifecycleService
	AttemptSvc            AttemptService
	Hdl                   *Handler
	AdminHdl              *AdminHandler
	CloseExpiredOffersJob *CloseExpiredOffersJob
}

type OfferService = service.OfferService
type StepService = service.StepService
type LifecycleService = service.LifecycleService
type AttemptService = service.AttemptService
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type CloseExpiredOffersJob = job.CloseExpiredOffersJob

type Offer = domain.Offer
type Step = domain.Step
type StepKind = domain.StepKind
type Application = domain.Application
type Attempt = domain.Attempt
