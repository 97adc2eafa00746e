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

// extractBehavior 提问者的反馈单独统计。askerUid 为 0 表示找不到问题
func (s *Scorer) extractBehavior(askerUid int64, in Input) domain.BehaviorSignals {
	res := domain.BehaviorSignals{
		IsAccepted:    in.Answer.Accepted,
		TotalFlags:    len(in.Flags),
		FollowupCount: int(in.FollowupCount),
	}
	for _, r := range in.Reactions {
		isAsker := askerUid > 0 && r.Uid == askerUid
		switch r.Type {
		case domain.ReactionHelpful:
			res.TotalHelpful++
			if isAsker {
				res.AskerHelpful = true
			}
		case domain.ReactionNotHelpful:
			res.TotalNotHelpful++
			if isAsker {
				res.AskerNotHelpful = true
			}
		}
	}
	return res
}

// engagementScore 只有提问者的认可、采纳以及追问会计入，
// 其余人的点赞点踩太容易刷，只作为原始信号记录
func (s *Scorer) engagementScore(sig domain.BehaviorSignals) (float64, domain.EngagementBreakdown) {
	rules := s.cfg.Engagement
	var bd domain.EngagementBreakdown
	if sig.AskerHelpful {
		bd.AskerHelpfulBonus = rules.AskerHelpfulBonus
	}
	if sig.IsAccepted {
		bd.AcceptedBonus = rules.AcceptedBonus
	}
	bd.FollowupBonus = math.Min(float64(sig.FollowupCount)*rules.FollowupStep, rules.FollowupMax)
	score := bd.AskerHelpfulBonus + bd.AcceptedBonus + bd.FollowupBonus
	return clamp(score, 0, 100), bd
}
