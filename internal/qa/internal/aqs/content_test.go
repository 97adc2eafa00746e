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
	"strings"
	"testing"

	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredBody = `When you negotiate an offer, anchor on data rather than feelings.

1. Research the market salary for the role on two or three sites.
2. Ask the recruiter for the full salary band before you name a number.
3. Counter with a specific figure slightly above your target.

For example, if the band is 30k to 36k per month, a 12 * 36 = 432k annual ask leaves room for the manager to meet you at 400k.

- Keep the tone friendly
- Get the final offer in writing`

func newTestScorer(t *testing.T) *Scorer {
	s, err := NewScorer(DefaultConfig())
	require.NoError(t, err)
	return s
}

func TestScorer_extractContent(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantRes func(t *testing.T, sig domain.ContentSignals)
	}{
		{
			name: "敷衍的短回答",
			body: "Just apply.",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.Equal(t, domain.ContentSignals{
					CharCount: 11,
					WordCount: 2,
					IsGeneric: true,
				}, sig)
			},
		},
		{
			name: "短但是有领域关键词",
			body: "Update your resume.",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.Equal(t, 3, sig.WordCount)
				assert.InDelta(t, 1.0/3, sig.DomainKeywordDensity, 1e-9)
				assert.True(t, sig.HasDomainKeywords)
				assert.False(t, sig.IsGeneric)
			},
		},
		{
			name: "首尾空白不计入长度",
			body: "  \n\n  Just apply.  \n ",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.Equal(t, 11, sig.CharCount)
				assert.False(t, sig.HasParagraphs)
			},
		},
		{
			name: "结构完整的回答",
			body: structuredBody,
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.True(t, sig.HasBullets)
				assert.True(t, sig.HasParagraphs)
				assert.True(t, sig.HasExample)
				assert.True(t, sig.HasSteps)
				assert.True(t, sig.HasDomainKeywords)
				assert.False(t, sig.IsGeneric)
			},
		},
		{
			name: "只有一个序号不算步骤",
			body: "1. Apply to the company directly and wait.",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.False(t, sig.HasSteps)
			},
		},
		{
			name: "step 提示也算步骤",
			body: "Step 1 polish the CV, step 2 send it out.",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.True(t, sig.HasSteps)
			},
		},
		{
			name: "中文步骤和举例",
			body: "第一步先改简历，第二步再找内推。比如找前同事。",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.True(t, sig.HasSteps)
				assert.True(t, sig.HasExample)
				assert.True(t, sig.HasDomainKeywords)
			},
		},
		{
			name: "数字演算算作举例",
			body: "Monthly 20k means 20 * 13 = 260k per year before tax",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.True(t, sig.HasExample)
			},
		},
		{
			name: "单词边界，syntax 不算 tax",
			body: "The syntax of the language matters most here",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.Equal(t, float64(0), sig.DomainKeywordDensity)
				assert.False(t, sig.HasDomainKeywords)
			},
		},
		{
			name: "空回答",
			body: "",
			wantRes: func(t *testing.T, sig domain.ContentSignals) {
				assert.Equal(t, 0, sig.WordCount)
				assert.Equal(t, float64(0), sig.DomainKeywordDensity)
				assert.True(t, sig.IsGeneric)
			},
		},
	}
	s := newTestScorer(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.wantRes(t, s.extractContent(tc.body))
		})
	}
}

func TestScorer_contentScore(t *testing.T) {
	testCases := []struct {
		name      string
		sig       domain.ContentSignals
		wantScore float64
		wantBd    domain.ContentBreakdown
	}{
		{
			name:      "通用回答扣分之后不低于 0",
			sig:       domain.ContentSignals{CharCount: 11, WordCount: 2, IsGeneric: true},
			wantScore: 0,
			wantBd: domain.ContentBreakdown{
				LengthScore:    11.0 / 600 * 40,
				GenericPenalty: 30,
			},
		},
		{
			name:      "长度封顶",
			sig:       domain.ContentSignals{CharCount: 1200, WordCount: 1},
			wantScore: 40,
			wantBd:    domain.ContentBreakdown{LengthScore: 40},
		},
		{
			name:      "一半长度",
			sig:       domain.ContentSignals{CharCount: 300, WordCount: 1},
			wantScore: 20,
			wantBd:    domain.ContentBreakdown{LengthScore: 20},
		},
		{
			name: "所有加分项拿满",
			sig: domain.ContentSignals{
				CharCount:            600,
				WordCount:            100,
				HasBullets:           true,
				HasParagraphs:        true,
				HasExample:           true,
				HasSteps:             true,
				DomainKeywordDensity: 0.2,
				HasDomainKeywords:    true,
			},
			wantScore: 100,
			wantBd: domain.ContentBreakdown{
				LengthScore:        40,
				StructureBonus:     15,
				ExampleBonus:       15,
				StepsBonus:         10,
				DomainKeywordBonus: 20,
			},
		},
		{
			name: "关键词密度没有饱和按比例加分",
			sig: domain.ContentSignals{
				CharCount:            600,
				WordCount:            100,
				DomainKeywordDensity: 0.025,
				HasDomainKeywords:    true,
			},
			wantScore: 50,
			wantBd: domain.ContentBreakdown{
				LengthScore:        40,
				DomainKeywordBonus: 10,
			},
		},
	}
	s := newTestScorer(t)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, bd := s.contentScore(tc.sig)
			assert.InDelta(t, tc.wantScore, score, 1e-9)
			assert.InDelta(t, tc.wantBd.LengthScore, bd.LengthScore, 1e-9)
			assert.InDelta(t, tc.wantBd.DomainKeywordBonus, bd.DomainKeywordBonus, 1e-9)
			assert.Equal(t, tc.wantBd.StructureBonus, bd.StructureBonus)
			assert.Equal(t, tc.wantBd.ExampleBonus, bd.ExampleBonus)
			assert.Equal(t, tc.wantBd.StepsBonus, bd.StepsBonus)
			assert.Equal(t, tc.wantBd.GenericPenalty, bd.GenericPenalty)
		})
	}
}

func TestScorer_GenericPenalty(t *testing.T) {
	s := newTestScorer(t)
	short := "Just apply."
	sig := s.extractContent(short)
	require.True(t, sig.IsGeneric)
	shortScore, _ := s.contentScore(sig)

	longer := short + "\n\n" + strings.Repeat("Tailor each resume to the job description. ", 3) +
		"\n- list impact\n- list numbers"
	longSig := s.extractContent(longer)
	require.False(t, longSig.IsGeneric)
	longScore, _ := s.contentScore(longSig)
	assert.Less(t, shortScore, longScore)
}
