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

package dao

import (
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type Question struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 提问者
	Uid     int64  `gorm:"index"`
	Title   string `gorm:"type:varchar(512)"`
	Content string
	Ctime   int64
	Utime   int64
}

func (Question) TableName() string {
	return "qa_questions"
}

type Answer struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	Qid     int64 `gorm:"index"`
	Uid     int64 `gorm:"index"`
	Content string
	// 是否被采纳，一个问题理论上只有一个采纳的回答，但是这里不做限制
	Accepted     bool
	AcceptedTime int64
	EditCnt      int
	Ctime        int64
	Utime        int64
}

func (Answer) TableName() string {
	return "qa_answers"
}

// Reaction 有用/没用，同一个人对同一个回答只保留最后一次
type Reaction struct {
	Id    int64 `gorm:"primaryKey,autoIncrement"`
	Aid   int64 `gorm:"uniqueIndex:aid_uid"`
	Uid   int64 `gorm:"uniqueIndex:aid_uid"`
	Typ   uint8 `gorm:"type:tinyint(3);comment:1-有用 2-没用"`
	Ctime int64
	Utime int64
}

func (Reaction) TableName() string {
	return "qa_reactions"
}

// Flag 举报，同一个人对同一个回答只能举报一次
type Flag struct {
	Id     int64  `gorm:"primaryKey,autoIncrement"`
	Aid    int64  `gorm:"uniqueIndex:aid_uid"`
	Uid    int64  `gorm:"uniqueIndex:aid_uid"`
	Reason string `gorm:"type:varchar(512)"`
	Ctime  int64
	Utime  int64
}

func (Flag) TableName() string {
	return "qa_flags"
}

type Followup struct {
	Id      int64 `gorm:"primaryKey,autoIncrement"`
	Aid     int64 `gorm:"index"`
	Uid     int64
	Content string
	Ctime   int64
	Utime   int64
}

func (Followup) TableName() string {
	return "qa_followups"
}

type ExpertiseProfile struct {
	Id             int64 `gorm:"primaryKey,autoIncrement"`
	Uid            int64 `gorm:"uniqueIndex"`
	TotalAnswers   int64
	AcceptanceRate float64
	ExpertLevel    string `gorm:"type:varchar(32)"`
	// 取值 [0, 100]
	ProfileStrength float64
	Ctime           int64
	Utime           int64
}

func (ExpertiseProfile) TableName() string {
	return "author_expertise_profiles"
}

// QualityMetrics 每个回答一条，重新计算的时候整体覆盖
type QualityMetrics struct {
	Id               int64 `gorm:"primaryKey,autoIncrement"`
	Aid              int64 `gorm:"uniqueIndex"`
	ContentScore     float64
	EngagementScore  float64
	ExpertScore      float64
	TrustScore       float64
	ExpertMultiplier float64
	Aqs              int    `gorm:"index"`
	Label            string `gorm:"type:varchar(16)"`
	Details          sqlx.JsonColumn[domain.Breakdown] `gorm:"type:json"`
	// trigger 是 MySQL 的关键字
	TriggerReason string `gorm:"column:trigger_reason;type:varchar(16)"`
	ComputedAt    int64
	Ctime         int64
	Utime         int64
}

func (QualityMetrics) TableName() string {
	return "answer_quality_metrics"
}

// AuthorStat 聚合查询的结果
type AuthorStat struct {
	Uid           int64
	TotalAnswers  int64
	AcceptedCount int64
}
