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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
)

type SaveQuestionReq struct {
	Title   string
	Content string
}

type QidReq struct {
	Qid int64
}

type AidReq struct {
	Aid int64
}

type SubmitReq struct {
	Qid     int64
	Content string
}

type EditReq struct {
	Aid     int64
	Content string
}

type ReactReq struct {
	Aid int64
	// 1 有用 2 没用
	Type uint8
}

type FlagReq struct {
	Aid    int64
	Reason string
}

type FollowupReq struct {
	Aid     int64
	Content string
}

type AcceptResp struct {
	Accepted bool
}

type Answer struct {
	Id       int64
	Qid      int64
	Uid      int64
	Content  string
	Accepted bool
	EditCnt  int
	Ctime    int64
	Utime    int64
}

func newAnswer(a domain.Answer) Answer {
	return Answer{
		Id:       a.Id,
		Qid:      a.Qid,
		Uid:      a.Uid,
		Content:  a.Content,
		Accepted: a.Accepted,
		EditCnt:  a.EditCnt,
		Ctime:    a.Ctime.UnixMilli(),
		Utime:    a.Utime.UnixMilli(),
	}
}

// Quality 对外只暴露分数和标签
type Quality struct {
	AQS   int
	Label string
}

type RankedAnswer struct {
	Answer  Answer
	Quality *Quality
}

func newRankedAnswer(ra domain.RankedAnswer) RankedAnswer {
	res := RankedAnswer{Answer: newAnswer(ra.Answer)}
	if ra.Metrics != nil {
		res.Quality = &Quality{
			AQS:   ra.Metrics.AQS,
			Label: ra.Metrics.Label.String(),
		}
	}
	return res
}

type RankedAnswerList struct {
	Answers []RankedAnswer
}

func newRankedAnswerList(ras []domain.RankedAnswer) RankedAnswerList {
	return RankedAnswerList{
		Answers: slice.Map(ras, func(idx int, src domain.RankedAnswer) RankedAnswer {
			return newRankedAnswer(src)
		}),
	}
}

// 下面是管理后台排查用的

type DebugAnswer struct {
	Id         int64  `json:"id"`
	Qid        int64  `json:"qid"`
	Body       string `json:"body"`
	AuthorId   int64  `json:"authorId"`
	IsAccepted bool   `json:"isAccepted"`
	EditCnt    int    `json:"editCnt"`
	CreatedAt  int64  `json:"createdAt"`
}

type DebugMetrics struct {
	ContentScore     float64          `json:"contentScore"`
	EngagementScore  float64          `json:"engagementScore"`
	ExpertScore      float64          `json:"expertScore"`
	TrustScore       float64          `json:"trustScore"`
	ExpertMultiplier float64          `json:"expertMultiplier"`
	AQS              int              `json:"aqs"`
	Label            string           `json:"label"`
	Details          domain.Breakdown `json:"details"`
	Trigger          string           `json:"trigger"`
	ComputedAt       int64            `json:"computedAt"`
}

type DebugReaction struct {
	Uid   int64 `json:"uid"`
	Type  uint8 `json:"type"`
	Utime int64 `json:"utime"`
}

type DebugFlag struct {
	Uid    int64  `json:"uid"`
	Reason string `json:"reason"`
	Ctime  int64  `json:"ctime"`
}

type QualityDebug struct {
	Answer DebugAnswer `json:"answer"`
	// 没有计算过的时候是 null
	Metrics   *DebugMetrics   `json:"metrics"`
	Reactions []DebugReaction `json:"reactions"`
	Flags     []DebugFlag     `json:"flags"`
}

func newQualityDebug(d domain.QualityDebug) QualityDebug {
	res := QualityDebug{
		Answer: DebugAnswer{
			Id:         d.Answer.Id,
			Qid:        d.Answer.Qid,
			Body:       d.Answer.Content,
			AuthorId:   d.Answer.Uid,
			IsAccepted: d.Answer.Accepted,
			EditCnt:    d.Answer.EditCnt,
			CreatedAt:  d.Answer.Ctime.UnixMilli(),
		},
		Reactions: slice.Map(d.Reactions, func(idx int, src domain.Reaction) DebugReaction {
			return DebugReaction{
				Uid:   src.Uid,
				Type:  src.Type.ToUint8(),
				Utime: src.Utime.UnixMilli(),
			}
		}),
		Flags: slice.Map(d.Flags, func(idx int, src domain.Flag) DebugFlag {
			return DebugFlag{
				Uid:    src.Uid,
				Reason: src.Reason,
				Ctime:  src.Ctime.UnixMilli(),
			}
		}),
	}
	if d.Metrics != nil {
		m := d.Metrics
		res.Metrics = &DebugMetrics{
			ContentScore:     m.ContentScore,
			EngagementScore:  m.EngagementScore,
			ExpertScore:      m.ExpertScore,
			TrustScore:       m.TrustScore,
			ExpertMultiplier: m.ExpertMultiplier,
			AQS:              m.AQS,
			Label:            m.Label.String(),
			Details:          m.Details,
			Trigger:          m.Trigger.String(),
			ComputedAt:       m.ComputedAt.UnixMilli(),
		}
	}
	return res
}
