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

type Question struct {
	Id int64
	// 提问者
	Uid     int64
	Title   string
	Content string
	Ctime   time.Time
	Utime   time.Time
}

type Answer struct {
	Id  int64
	Qid int64
	// 回答者
	Uid     int64
	Content string
	// 是否被提问者采纳
	Accepted     bool
	AcceptedTime time.Time
	// 编辑次数，创建不算
	EditCnt int
	Ctime   time.Time
	Utime   time.Time
}

type ReactionType uint8

const (
	ReactionUnknown ReactionType = iota
	ReactionHelpful
	ReactionNotHelpful
)

func (r ReactionType) ToUint8() uint8 {
	return uint8(r)
}

func (r ReactionType) Valid() bool {
	return r == ReactionHelpful || r == ReactionNotHelpful
}

// Reaction 同一个用户对同一个回答只会有一条，后来的覆盖前面的
type Reaction struct {
	Aid   int64
	Uid   int64
	Type  ReactionType
	Utime time.Time
}

type Flag struct {
	Aid    int64
	Uid    int64
	Reason string
	Ctime  time.Time
}

// Followup 回答下面的追问、回复
type Followup struct {
	Id      int64
	Aid     int64
	Uid     int64
	Content string
	Ctime   time.Time
}

type ExpertLevel string

const (
	ExpertLevelUnknown      ExpertLevel = ""
	ExpertLevelNovice       ExpertLevel = "novice"
	ExpertLevelIntermediate ExpertLevel = "intermediate"
	ExpertLevelExpert       ExpertLevel = "expert"
)

// ExpertiseProfile 作者的专业度画像
// TotalAnswers, AcceptanceRate, ExpertLevel 由定时任务汇总
// ProfileStrength 来自简历完整度计算，取值 [0, 100]
type ExpertiseProfile struct {
	Uid             int64
	TotalAnswers    int64
	AcceptanceRate  float64
	ExpertLevel     ExpertLevel
	ProfileStrength float64
	Utime           time.Time
}

// AuthorStat 按作者聚合的回答统计
type AuthorStat struct {
	Uid           int64
	TotalAnswers  int64
	AcceptedCount int64
}

// RankedAnswer 回答以及它的质量分，Metrics 为 nil 说明还没算过
type RankedAnswer struct {
	Answer  Answer
	Metrics *QualityMetrics
}
