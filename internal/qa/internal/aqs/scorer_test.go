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
	"testing"
	"time"

	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_Combine(t *testing.T) {
	testCases := []struct {
		name          string
		content       float64
		engagement    float64
		expert        float64
		trust         float64
		multiplier    float64
		wantComposite float64
		wantAQS       int
	}{
		{
			name:          "全部为 0",
			multiplier:    1,
			wantComposite: 0,
			wantAQS:       0,
		},
		{
			name:    "全部满分",
			content: 100, engagement: 100, expert: 100, trust: 100,
			multiplier:    1,
			wantComposite: 100,
			wantAQS:       100,
		},
		{
			name:    "系数放大之后封顶 100",
			content: 100, engagement: 100, expert: 100, trust: 100,
			multiplier:    1.2,
			wantComposite: 100,
			wantAQS:       100,
		},
		{
			name:    "加权求和",
			content: 90, engagement: 0, expert: 50, trust: 100,
			multiplier:    1,
			wantComposite: 61,
			wantAQS:       61,
		},
		{
			name:    "系数作用在加权分上并四舍五入",
			content: 90, engagement: 0, expert: 50, trust: 100,
			multiplier:    0.8,
			wantComposite: 61,
			wantAQS:       49,
		},
	}
	s := newTestScorer(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			composite, aqs := s.Combine(tc.content, tc.engagement, tc.expert, tc.trust, tc.multiplier)
			assert.InDelta(t, tc.wantComposite, composite, 1e-9)
			assert.Equal(t, tc.wantAQS, aqs)
		})
	}
}

func TestScorer_Classify(t *testing.T) {
	testCases := []struct {
		aqs  int
		want domain.Label
	}{
		{aqs: 100, want: domain.LabelStar},
		{aqs: 85, want: domain.LabelStar},
		{aqs: 84, want: domain.LabelPro},
		{aqs: 70, want: domain.LabelPro},
		{aqs: 69, want: domain.LabelUseful},
		{aqs: 50, want: domain.LabelUseful},
		{aqs: 49, want: domain.LabelNormal},
		{aqs: 0, want: domain.LabelNormal},
	}
	s := newTestScorer(t)
	for _, tc := range testCases {
		assert.Equal(t, tc.want, s.Classify(tc.aqs), "aqs=%d", tc.aqs)
	}

	// 分数越高，标签不会越低
	prev := s.Classify(0)
	for i := 1; i <= 100; i++ {
		cur := s.Classify(i)
		require.GreaterOrEqual(t, cur.Rank(), prev.Rank(), "aqs=%d", i)
		prev = cur
	}
}

func TestScorer_Score(t *testing.T) {
	qtime := time.UnixMilli(1700000000000)
	question := &domain.Question{Id: 1, Uid: askerUid, Ctime: qtime}
	answer := domain.Answer{
		Id:      11,
		Qid:     1,
		Uid:     2001,
		Content: structuredBody,
		Ctime:   qtime.Add(30 * time.Minute),
	}
	s := newTestScorer(t)

	t.Run("同样的输入结果一致", func(t *testing.T) {
		in := Input{
			Answer:   answer,
			Question: question,
			Reactions: []domain.Reaction{
				{Aid: 11, Uid: askerUid, Type: domain.ReactionHelpful},
				{Aid: 11, Uid: 3, Type: domain.ReactionNotHelpful},
			},
			Flags:         []domain.Flag{{Aid: 11, Uid: 4}},
			FollowupCount: 1,
			Profile:       &domain.ExpertiseProfile{Uid: 2001, ProfileStrength: 70, AcceptanceRate: 0.3},
		}
		first := s.Score(in)
		second := s.Score(in)
		assert.Equal(t, first, second)
		assert.Equal(t, int64(11), first.Aid)
		assert.Equal(t, s.Classify(first.AQS), first.Label)
		assert.Empty(t, first.Trigger)
		assert.True(t, first.ComputedAt.IsZero())
	})

	t.Run("没有画像系数为 1", func(t *testing.T) {
		res := s.Score(Input{Answer: answer, Question: question})
		assert.Equal(t, 1.0, res.ExpertMultiplier)
		assert.Equal(t, 50.0, res.ExpertScore)
		assert.False(t, res.Details.RawSignals.Expert.HasProfile)
		assert.Equal(t, int(math.Round(res.Details.Composite)), res.AQS)
	})

	t.Run("互动只会提高分数", func(t *testing.T) {
		base := Input{Answer: answer, Question: question}
		before := s.Score(base)
		assert.Equal(t, 0.0, before.EngagementScore)

		helpful := base
		helpful.Reactions = []domain.Reaction{{Aid: 11, Uid: askerUid, Type: domain.ReactionHelpful}}
		afterHelpful := s.Score(helpful)
		assert.Equal(t, 40.0, afterHelpful.EngagementScore)
		assert.Greater(t, afterHelpful.AQS, before.AQS)
		assert.GreaterOrEqual(t, afterHelpful.Label.Rank(), before.Label.Rank())

		accepted := helpful
		accepted.Answer.Accepted = true
		afterAccept := s.Score(accepted)
		assert.Equal(t, 80.0, afterAccept.EngagementScore)
		assert.Greater(t, afterAccept.AQS, afterHelpful.AQS)
		assert.GreaterOrEqual(t, afterAccept.Label.Rank(), afterHelpful.Label.Rank())
	})

	t.Run("所有分数都在区间内", func(t *testing.T) {
		inputs := []Input{
			{},
			{Answer: domain.Answer{Content: "Just apply.", EditCnt: 1000}},
			{
				Answer:        answer,
				Question:      question,
				Flags:         make([]domain.Flag, 50),
				FollowupCount: 1000,
				Profile:       &domain.ExpertiseProfile{ProfileStrength: -20, AcceptanceRate: -1},
			},
			{
				Answer:   domain.Answer{Content: structuredBody, Accepted: true, Ctime: qtime.Add(time.Minute * 10)},
				Question: question,
				Reactions: []domain.Reaction{
					{Uid: askerUid, Type: domain.ReactionHelpful},
				},
				FollowupCount: 10,
				Profile:       &domain.ExpertiseProfile{ProfileStrength: 100, AcceptanceRate: 1},
			},
		}
		for _, in := range inputs {
			res := s.Score(in)
			for _, sub := range []float64{res.ContentScore, res.EngagementScore, res.ExpertScore, res.TrustScore} {
				assert.GreaterOrEqual(t, sub, 0.0)
				assert.LessOrEqual(t, sub, 100.0)
			}
			assert.GreaterOrEqual(t, res.ExpertMultiplier, 0.8)
			assert.LessOrEqual(t, res.ExpertMultiplier, 1.2)
			assert.GreaterOrEqual(t, res.AQS, 0)
			assert.LessOrEqual(t, res.AQS, 100)
			assert.Equal(t, s.Classify(res.AQS), res.Label)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(cfg *Config)
		wantErr error
	}{
		{
			name:   "默认配置",
			modify: func(cfg *Config) {},
		},
		{
			name: "权重之和不为 1",
			modify: func(cfg *Config) {
				cfg.Weights.Content = 0.5
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "权重为负数",
			modify: func(cfg *Config) {
				cfg.Weights = Weights{Content: 1.2, Engagement: -0.2}
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "阈值不是严格递减",
			modify: func(cfg *Config) {
				cfg.Thresholds.Pro = cfg.Thresholds.Star
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "阈值超过 100",
			modify: func(cfg *Config) {
				cfg.Thresholds.Star = 101
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "长度上限为 0",
			modify: func(cfg *Config) {
				cfg.Content.LengthCap = 0
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "中性系数不在区间内",
			modify: func(cfg *Config) {
				cfg.Expert.NeutralMultiplier = 1.5
			},
			wantErr: ErrInvalidConfig,
		},
		{
			name: "响应时间档位不是升序",
			modify: func(cfg *Config) {
				cfg.Trust.Bands[1].UpToMinutes = 0
			},
			wantErr: ErrInvalidConfig,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, tc.wantErr)
			_, err = NewScorer(cfg)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewScorer_CopyConfig(t *testing.T) {
	cfg := DefaultConfig()
	s, err := NewScorer(cfg)
	require.NoError(t, err)
	cfg.Trust.Bands[1].Bonus = 0
	bonus := s.responseBonus(30)
	assert.Equal(t, 40.0, bonus)
}
