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

package qa

import (
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/event"
	"github.com/ecodeclub/jobmate/internal/qa/internal/job"
	"github.com/ecodeclub/jobmate/internal/qa/internal/service"
	"github.com/ecodeclub/jobmate/internal/qa/internal/web"
)

type Module struct {
	Svc             Service
	QualitySvc      QualityService
	ExpertiseSvc    ExpertiseService
	Hdl             *Handler
	AdminHdl        *AdminHandler
	ExpertiseJob    *RefreshExpertiseProfileJob
	ProfileConsumer *ProfileStrengthConsumer
}

type Service = service.Service
type QualityService = service.QualityService
type ExpertiseService = service.ExpertiseService
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type RefreshExpertiseProfileJob = job.RefreshExpertiseProfileJob
type ProfileStrengthConsumer = event.ProfileStrengthConsumer

type QualityMetrics = domain.QualityMetrics
type Label = domain.Label
type Trigger = domain.Trigger
type QualityEvent = event.QualityEvent
type ProfileStrengthEvent = event.ProfileStrengthEvent

const (
	QualityTopic         = event.QualityTopic
	ProfileStrengthTopic = event.ProfileStrengthTopic
)
