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

// Input 计算一个回答质量分需要的全部输入
// Question 和 Profile 为 nil 表示找不到，会使用中性的默认值
type Input struct {
	Answer        domain.Answer
	Question      *domain.Question
	Reactions     []domain.Reaction
	Flags         []domain.Flag
	FollowupCount int64
	Profile       *domain.ExpertiseProfile
}

// Scorer 无状态，可以并发使用
type Scorer struct {
	cfg Config
}

func NewScorer(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{cfg: cfg.clone()}, nil
}

// Score 对于同样的输入，永远返回同样的结果
// 返回值里面没有 Trigger 和 ComputedAt，由调用者填充
func (s *Scorer) Score(in Input) domain.QualityMetrics {
	var askerUid int64
	if in.Question != nil {
		askerUid = in.Question.Uid
	}
	content := s.extractContent(in.Answer.Content)
	behavior := s.extractBehavior(askerUid, in)
	// expert 要用到 behavior 的举报数
	expert := s.extractExpert(in.Profile)
	trust := s.extractTrust(in)

	var details domain.Breakdown
	contentScore, cbd := s.contentScore(content)
	engagementScore, ebd := s.engagementScore(behavior)
	expertScore, multiplier, xbd := s.expertScore(expert, behavior)
	trustScore, tbd := s.trustScore(trust)

	composite, aqs := s.Combine(contentScore, engagementScore, expertScore, trustScore, multiplier)
	details.Content = cbd
	details.Engagement = ebd
	details.Expert = xbd
	details.Trust = tbd
	details.Composite = composite
	details.RawSignals = domain.RawSignals{
		Content:  content,
		Behavior: behavior,
		Expert:   expert,
		Trust:    trust,
	}
	return domain.QualityMetrics{
		Aid:              in.Answer.Id,
		ContentScore:     contentScore,
		EngagementScore:  engagementScore,
		ExpertScore:      expertScore,
		TrustScore:       trustScore,
		ExpertMultiplier: multiplier,
		AQS:              aqs,
		Label:            s.Classify(aqs),
		Details:          details,
	}
}

// Combine 返回加权分（乘系数之前）以及最终的 AQS
// 系数作用在整个加权分上，而不是某一个子分
func (s *Scorer) Combine(content, engagement, expert, trust, multiplier float64) (float64, int) {
	w := s.cfg.Weights
	composite := clamp(content*w.Content+engagement*w.Engagement+expert*w.Expert+trust*w.Trust, 0, 100)
	aqs := int(math.Round(composite * multiplier))
	return composite, int(clamp(float64(aqs), 0, 100))
}

// Classify 阈值从高到低匹配，保证分数越高标签不会越低
func (s *Scorer) Classify(aqs int) domain.Label {
	t := s.cfg.Thresholds
	switch {
	case aqs >= t.Star:
		return domain.LabelStar
	case aqs >= t.Pro:
		return domain.LabelPro
	case aqs >= t.Useful:
		return domain.LabelUseful
	default:
		return domain.LabelNormal
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
