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

const unknownResponseTime = -1

func (s *Scorer) extractTrust(in Input) domain.TrustSignals {
	res := domain.TrustSignals{
		ResponseTimeMinutes: unknownResponseTime,
		EditCount:           in.Answer.EditCnt,
		HasBeenEdited:       in.Answer.EditCnt > 0,
	}
	if in.Question == nil || in.Question.Ctime.IsZero() || in.Answer.Ctime.IsZero() {
		return res
	}
	minutes := int64(in.Answer.Ctime.Sub(in.Question.Ctime).Minutes())
	// 时钟偏差导致回答早于问题，按照立刻回答处理
	res.ResponseTimeMinutes = max(minutes, 0)
	return res
}

func (s *Scorer) trustScore(sig domain.TrustSignals) (float64, domain.TrustBreakdown) {
	rules := s.cfg.Trust
	bd := domain.TrustBreakdown{
		Base:              rules.Base,
		ResponseTimeBonus: s.responseBonus(sig.ResponseTimeMinutes),
		EditPenalty:       math.Min(float64(sig.EditCount)*rules.EditStep, rules.EditPenaltyMax),
	}
	score := bd.Base + bd.ResponseTimeBonus - bd.EditPenalty
	return clamp(score, 0, 100), bd
}

func (s *Scorer) responseBonus(minutes int64) float64 {
	if minutes < 0 {
		return 0
	}
	for _, band := range s.cfg.Trust.Bands {
		if minutes <= band.UpToMinutes {
			return band.Bonus
		}
	}
	return 0
}
