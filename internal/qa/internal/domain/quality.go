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

package domain

import "time"

// Trigger 触发重新计算的事件，只作为来源记录，不影响计算结果
type Trigger string

const (
	TriggerSubmit   Trigger = "SUBMIT"
	TriggerReaction Trigger = "REACTION"
	TriggerAccept   Trigger = "ACCEPT"
	TriggerEdit     Trigger = "EDIT"
	TriggerFlag     Trigger = "FLAG"
	TriggerFollowup Trigger = "FOLLOWUP"
	TriggerManual   Trigger = "MANUAL"
)

func (t Trigger) String() string {
	return string(t)
}

type Label string

const (
	LabelNormal Label = "NORMAL"
	LabelUseful Label = "USEFUL"
	LabelPro    Label = "PRO"
	LabelStar   Label = "STAR"
)

// Rank 标签的高低，NORMAL < USEFUL < PRO < STAR
// 未知标签返回 -1
func (l Label) Rank() int {
	switch l {
	case LabelNormal:
		return 0
	case LabelUseful:
		return 1
	case LabelPro:
		return 2
	case LabelStar:
		return 3
	default:
		return -1
	}
}

func (l Label) String() string {
	return string(l)
}

type ContentSignals struct {
	CharCount            int     `json:"charCount"`
	WordCount            int     `json:"wordCount"`
	HasBullets           bool    `json:"hasBullets"`
	HasParagraphs        bool    `json:"hasParagraphs"`
	HasExample           bool    `json:"hasExample"`
	HasSteps             bool    `json:"hasSteps"`
	DomainKeywordDensity float64 `json:"domainKeywordDensity"`
	HasDomainKeywords    bool    `json:"hasDomainKeywords"`
	IsGeneric            bool    `json:"isGeneric"`
}

type BehaviorSignals struct {
	AskerHelpful    bool `json:"askerHelpful"`
	AskerNotHelpful bool `json:"askerNotHelpful"`
	TotalHelpful    int  `json:"totalHelpful"`
	TotalNotHelpful int  `json:"totalNotHelpful"`
	IsAccepted      bool `json:"isAccepted"`
	TotalFlags      int  `json:"totalFlags"`
	FollowupCount   int  `json:"followupCount"`
}

type ExpertSignals struct {
	// 没有画像的时候，其余字段都是中性默认值
	HasProfile           bool        `json:"hasProfile"`
	ProfileStrength      float64     `json:"profileStrength"`
	AuthorAcceptanceRate float64     `json:"authorAcceptanceRate"`
	AuthorTotalAnswers   int64       `json:"authorTotalAnswers"`
	AuthorExpertLevel    ExpertLevel `json:"authorExpertLevel"`
}

type TrustSignals struct {
	// -1 表示找不到问题，无法计算
	ResponseTimeMinutes int64 `json:"responseTimeMinutes"`
	EditCount           int   `json:"editCount"`
	HasBeenEdited       bool  `json:"hasBeenEdited"`
}

type RawSignals struct {
	Content  ContentSignals  `json:"content"`
	Behavior BehaviorSignals `json:"behavior"`
	Expert   ExpertSignals   `json:"expert"`
	Trust    TrustSignals    `json:"trust"`
}

type ContentBreakdown struct {
	LengthScore        float64 `json:"lengthScore"`
	StructureBonus     float64 `json:"structureBonus"`
	ExampleBonus       float64 `json:"exampleBonus"`
	StepsBonus         float64 `json:"stepsBonus"`
	DomainKeywordBonus float64 `json:"domainKeywordBonus"`
	GenericPenalty     float64 `json:"genericPenalty"`
}

type EngagementBreakdown struct {
	AskerHelpfulBonus float64 `json:"askerHelpfulBonus"`
	AcceptedBonus     float64 `json:"acceptedBonus"`
	FollowupBonus     float64 `json:"followupBonus"`
}

type ExpertBreakdown struct {
	Base                float64 `json:"base"`
	AcceptanceRateBonus float64 `json:"acceptanceRateBonus"`
	FlagPenalty         float64 `json:"flagPenalty"`
	ProfileMultiplier   float64 `json:"profileMultiplier"`
}

type TrustBreakdown struct {
	Base              float64 `json:"base"`
	ResponseTimeBonus float64 `json:"responseTimeBonus"`
	EditPenalty       float64 `json:"editPenalty"`
}

// Breakdown 计算过程中所有的加分、扣分项以及原始信号
type Breakdown struct {
	Content    ContentBreakdown    `json:"content"`
	Engagement EngagementBreakdown `json:"engagement"`
	Expert     ExpertBreakdown     `json:"expert"`
	Trust      TrustBreakdown      `json:"trust"`
	// 乘以专家系数之前的加权分
	Composite  float64    `json:"composite"`
	RawSignals RawSignals `json:"rawSignals"`
}

// QualityMetrics 回答质量分，每个回答最多一条，每次重算整体覆盖
type QualityMetrics struct {
	Aid              int64
	ContentScore     float64
	EngagementScore  float64
	ExpertScore      float64
	TrustScore       float64
	ExpertMultiplier float64
	AQS              int
	Label            Label
	Details          Breakdown
	Trigger          Trigger
	ComputedAt       time.Time
}

// QualityDebug 给管理后台排查问题用的视图
// Metrics 为 nil 说明还没算过
type QualityDebug struct {
	Answer    Answer
	Metrics   *QualityMetrics
	Reactions []Reaction
	Flags     []Flag
}
