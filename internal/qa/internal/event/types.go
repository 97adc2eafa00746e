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

package event

const (
	QualityTopic         = "answer_quality_events"
	ProfileStrengthTopic = "profile_strength_events"
)

// QualityEvent 每次重新计算质量分之后发出，给排序、搜索之类的下游使用
type QualityEvent struct {
	Aid     int64  `json:"aid"`
	Qid     int64  `json:"qid"`
	Uid     int64  `json:"uid"`
	AQS     int    `json:"aqs"`
	Label   string `json:"label"`
	Trigger string `json:"trigger"`
	// 毫秒
	ComputedAt int64 `json:"computedAt"`
}

// ProfileStrengthEvent 简历完整度计算完成之后发过来的
type ProfileStrengthEvent struct {
	Uid      int64   `json:"uid"`
	Strength float64 `json:"strength"`
}
