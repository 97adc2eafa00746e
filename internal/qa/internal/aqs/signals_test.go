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
	"testing"
	"time"

	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/stretchr/testify/assert"
)

const askerUid = 1001

func TestScorer_Behavior(t *testing.T) {
	testCases := []struct {
		name      string
		askerUid  int64
		in        Input
		wantSig   domain.BehaviorSignals
		wantScore float64
	}{
		{
			name:      "没有任何互动",
			askerUid:  askerUid,
			wantSig:   domain.BehaviorSignals{},
			wantScore: 0,
		},
		{
			name:     "提问者认为有用",
			askerUid: askerUid,
			in: Input{
				Reactions: []domain.Reaction{
					{Uid: askerUid, Type: domain.ReactionHelpful},
				},
			},
			wantSig:   domain.BehaviorSignals{AskerHelpful: true, TotalHelpful: 1},
			wantScore: 40,
		},
		{
			name:     "其他人的点赞不计分",
			askerUid: askerUid,
			in: Input{
				Reactions: []domain.Reaction{
					{Uid: 1, Type: domain.ReactionHelpful},
					{Uid: 2, Type: domain.ReactionHelpful},
					{Uid: 3, Type: domain.ReactionNotHelpful},
					{Uid: askerUid, Type: domain.ReactionNotHelpful},
				},
			},
			wantSig: domain.BehaviorSignals{
				AskerNotHelpful: true,
				TotalHelpful:    2,
				TotalNotHelpful: 2,
			},
			wantScore: 0,
		},
		{
			name:     "找不到问题的时候没有提问者",
			askerUid: 0,
			in: Input{
				Reactions: []domain.Reaction{
					{Uid: 0, Type: domain.ReactionHelpful},
				},
			},
			wantSig:   domain.BehaviorSignals{TotalHelpful: 1},
			wantScore: 0,
		},
		{
			name:     "采纳加追问，追问封顶",
			askerUid: askerUid,
			in: Input{
				Answer:        domain.Answer{Accepted: true},
				Flags:         []domain.Flag{{Uid: 1}, {Uid: 2}},
				FollowupCount: 10,
			},
			wantSig: domain.BehaviorSignals{
				IsAccepted:    true,
				TotalFlags:    2,
				FollowupCount: 10,
			},
			wantScore: 60,
		},
		{
			name:     "全部拿满",
			askerUid: askerUid,
			in: Input{
				Answer: domain.Answer{Accepted: true},
				Reactions: []domain.Reaction{
					{Uid: askerUid, Type: domain.ReactionHelpful},
				},
				FollowupCount: 2,
			},
			wantSig: domain.BehaviorSignals{
				AskerHelpful:  true,
				TotalHelpful:  1,
				IsAccepted:    true,
				FollowupCount: 2,
			},
			wantScore: 90,
		},
	}
	s := newTestScorer(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sig := s.extractBehavior(tc.askerUid, tc.in)
			assert.Equal(t, tc.wantSig, sig)
			score, _ := s.engagementScore(sig)
			assert.Equal(t, tc.wantScore, score)
		})
	}
}

func TestScorer_Expert(t *testing.T) {
	testCases := []struct {
		name           string
		profile        *domain.ExpertiseProfile
		flags          int
		wantScore      float64
		wantMultiplier float64
	}{
		{
			name:           "没有画像使用中性值",
			wantScore:      50,
			wantMultiplier: 1,
		},
		{
			name: "画像满分",
			profile: &domain.ExpertiseProfile{
				Uid:             1,
				ProfileStrength: 100,
				AcceptanceRate:  1,
				TotalAnswers:    30,
				ExpertLevel:     domain.ExpertLevelExpert,
			},
			wantScore:      90,
			wantMultiplier: 1.2,
		},
		{
			name:           "画像为空",
			profile:        &domain.ExpertiseProfile{Uid: 1},
			wantScore:      50,
			wantMultiplier: 0.8,
		},
		{
			name:           "画像强度越界按照区间截断",
			profile:        &domain.ExpertiseProfile{Uid: 1, ProfileStrength: 300, AcceptanceRate: 2},
			wantScore:      90,
			wantMultiplier: 1.2,
		},
		{
			name:           "被举报扣分",
			profile:        &domain.ExpertiseProfile{Uid: 1, ProfileStrength: 50, AcceptanceRate: 0.5},
			flags:          2,
			wantScore:      40,
			wantMultiplier: 1,
		},
		{
			name:           "举报扣分封顶，不低于 0",
			flags:          100,
			wantScore:      0,
			wantMultiplier: 1,
		},
	}
	s := newTestScorer(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sig := s.extractExpert(tc.profile)
			assert.Equal(t, tc.profile != nil, sig.HasProfile)
			score, multiplier, bd := s.expertScore(sig, domain.BehaviorSignals{TotalFlags: tc.flags})
			assert.InDelta(t, tc.wantScore, score, 1e-9)
			assert.InDelta(t, tc.wantMultiplier, multiplier, 1e-9)
			assert.Equal(t, multiplier, bd.ProfileMultiplier)
		})
	}
}

func TestScorer_Trust(t *testing.T) {
	qtime := time.UnixMilli(1700000000000)
	testCases := []struct {
		name        string
		question    *domain.Question
		answer      domain.Answer
		wantMinutes int64
		wantScore   float64
	}{
		{
			name:        "找不到问题",
			answer:      domain.Answer{Ctime: qtime.Add(time.Hour)},
			wantMinutes: -1,
			wantScore:   60,
		},
		{
			name:        "秒回",
			question:    &domain.Question{Ctime: qtime},
			answer:      domain.Answer{Ctime: qtime.Add(30 * time.Second)},
			wantMinutes: 0,
			wantScore:   70,
		},
		{
			name:        "一小时以内",
			question:    &domain.Question{Ctime: qtime},
			answer:      domain.Answer{Ctime: qtime.Add(30 * time.Minute)},
			wantMinutes: 30,
			wantScore:   100,
		},
		{
			name:        "一天以内",
			question:    &domain.Question{Ctime: qtime},
			answer:      domain.Answer{Ctime: qtime.Add(5 * time.Hour)},
			wantMinutes: 300,
			wantScore:   85,
		},
		{
			name:        "一周以内，编辑过两次",
			question:    &domain.Question{Ctime: qtime},
			answer:      domain.Answer{Ctime: qtime.Add(48 * time.Hour), EditCnt: 2},
			wantMinutes: 48 * 60,
			wantScore:   60,
		},
		{
			name:        "超过一周，编辑扣分封顶",
			question:    &domain.Question{Ctime: qtime},
			answer:      domain.Answer{Ctime: qtime.Add(30 * 24 * time.Hour), EditCnt: 100},
			wantMinutes: 30 * 24 * 60,
			wantScore:   30,
		},
		{
			name:        "时钟偏差，回答早于问题",
			question:    &domain.Question{Ctime: qtime},
			answer:      domain.Answer{Ctime: qtime.Add(-time.Minute)},
			wantMinutes: 0,
			wantScore:   70,
		},
	}
	s := newTestScorer(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sig := s.extractTrust(Input{Answer: tc.answer, Question: tc.question})
			assert.Equal(t, tc.wantMinutes, sig.ResponseTimeMinutes)
			assert.Equal(t, tc.answer.EditCnt, sig.EditCount)
			assert.Equal(t, tc.answer.EditCnt > 0, sig.HasBeenEdited)
			score, _ := s.trustScore(sig)
			assert.Equal(t, tc.wantScore, score)
		})
	}
}
