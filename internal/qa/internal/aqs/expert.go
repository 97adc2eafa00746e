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

package aqs

import (
	"math"

	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
)

func (s *Scorer) extractExpert(profile *domain.ExpertiseProfile) domain.ExpertSignals {
	if profile == nil {
		return domain.ExpertSignals{}
	}
	return domain.ExpertSignals{
		HasProfile:           true,
		ProfileStrength:      clamp(profile.ProfileStrength, 0, 100),
		AuthorAcceptanceRate: clamp(profile.AcceptanceRate, 0, 1),
		AuthorTotalAnswers:   profile.TotalAnswers,
		AuthorExpertLevel:    profile.ExpertLevel,
	}
}

// expertScore 依赖 behavior 里面的举报数量，所以必须在 behavior 之后计算。
// 返回的专家系数不计入子分，而是作用在最终的加权分上
func (s *Scorer) expertScore(sig domain.ExpertSignals,
	behavior domain.BehaviorSignals) (float64, float64, domain.ExpertBreakdown) {
	rules := s.cfg.Expert
	bd := domain.ExpertBreakdown{
		Base:                rules.Base,
		AcceptanceRateBonus: sig.AuthorAcceptanceRate * rules.AcceptanceRateMax,
		FlagPenalty:         math.Min(float64(behavior.TotalFlags)*rules.FlagStep, rules.FlagPenaltyMax),
		ProfileMultiplier:   rules.NeutralMultiplier,
	}
	if sig.HasProfile {
		strength := sig.ProfileStrength / 100
		bd.ProfileMultiplier = rules.MultiplierMin + (rules.MultiplierMax-rules.MultiplierMin)*strength
	}
	score := bd.Base + bd.AcceptanceRateBonus - bd.FlagPenalty
	return clamp(score, 0, 100), bd.ProfileMultiplier, bd
}
