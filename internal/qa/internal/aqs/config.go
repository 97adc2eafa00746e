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
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("aqs 配置非法")

// Weights 四个子分的权重，和必须为 1
type Weights struct {
	Content    float64
	Engagement float64
	Expert     float64
	Trust      float64
}

func (w Weights) sum() float64 {
	return w.Content + w.Engagement + w.Expert + w.Trust
}

// Thresholds 标签的下限，必须严格递减
type Thresholds struct {
	Star   int
	Pro    int
	Useful int
}

type ContentRules struct {
	// 长度分在 LengthCap 个字符时封顶
	LengthCap      int
	LengthMax      float64
	BulletBonus    float64
	ParagraphBonus float64
	ExampleBonus   float64
	StepsBonus     float64
	// 领域关键词密度达到 KeywordFloor 才算有关键词，
	// 达到 KeywordSaturation 拿满 DomainKeywordMax
	DomainKeywordMax  float64
	KeywordFloor      float64
	KeywordSaturation float64
	GenericMinChars   int
	GenericPenalty    float64
}

type EngagementRules struct {
	AskerHelpfulBonus float64
	AcceptedBonus     float64
	FollowupStep      float64
	FollowupMax       float64
}

type ExpertRules struct {
	Base              float64
	AcceptanceRateMax float64
	FlagStep          float64
	FlagPenaltyMax    float64
	MultiplierMin     float64
	MultiplierMax     float64
	// 没有画像的时候使用的系数
	NeutralMultiplier float64
}

// ResponseBand 响应时间不超过 UpToMinutes 分钟时获得 Bonus
type ResponseBand struct {
	UpToMinutes int64
	Bonus       float64
}

type TrustRules struct {
	Base float64
	// 按照 UpToMinutes 升序，超过最后一档没有加分
	Bands          []ResponseBand
	EditStep       float64
	EditPenaltyMax float64
}

// Config 计算质量分用到的全部常量
// 构造之后不应该再修改，需要不同的权重就重新构造一个
type Config struct {
	Weights    Weights
	Thresholds Thresholds
	Content    ContentRules
	Engagement EngagementRules
	Expert     ExpertRules
	Trust      TrustRules
}

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Content:    0.40,
			Engagement: 0.25,
			Expert:     0.20,
			Trust:      0.15,
		},
		Thresholds: Thresholds{
			Star:   85,
			Pro:    70,
			Useful: 50,
		},
		Content: ContentRules{
			LengthCap:         600,
			LengthMax:         40,
			BulletBonus:       8,
			ParagraphBonus:    7,
			ExampleBonus:      15,
			StepsBonus:        10,
			DomainKeywordMax:  20,
			KeywordFloor:      0.01,
			KeywordSaturation: 0.05,
			GenericMinChars:   80,
			GenericPenalty:    30,
		},
		Engagement: EngagementRules{
			AskerHelpfulBonus: 40,
			AcceptedBonus:     40,
			FollowupStep:      5,
			FollowupMax:       20,
		},
		Expert: ExpertRules{
			Base:              50,
			AcceptanceRateMax: 40,
			FlagStep:          15,
			FlagPenaltyMax:    60,
			MultiplierMin:     0.8,
			MultiplierMax:     1.2,
			NeutralMultiplier: 1.0,
		},
		Trust: TrustRules{
			Base: 60,
			Bands: []ResponseBand{
				// 一分钟以内就回答，大概率是敷衍
				{UpToMinutes: 1, Bonus: 10},
				{UpToMinutes: 60, Bonus: 40},
				{UpToMinutes: 24 * 60, Bonus: 25},
				{UpToMinutes: 7 * 24 * 60, Bonus: 10},
			},
			EditStep:       5,
			EditPenaltyMax: 30,
		},
	}
}

func (c Config) Validate() error {
	w := c.Weights
	if w.Content < 0 || w.Engagement < 0 || w.Expert < 0 || w.Trust < 0 {
		return fmt.Errorf("%w: 权重不能为负数", ErrInvalidConfig)
	}
	if math.Abs(w.sum()-1) > 1e-9 {
		return fmt.Errorf("%w: 权重之和必须为 1，当前 %f", ErrInvalidConfig, w.sum())
	}
	t := c.Thresholds
	if !(t.Star > t.Pro && t.Pro > t.Useful && t.Useful > 0 && t.Star <= 100) {
		return fmt.Errorf("%w: 标签阈值必须满足 100 >= STAR > PRO > USEFUL > 0", ErrInvalidConfig)
	}
	if c.Content.LengthCap <= 0 {
		return fmt.Errorf("%w: LengthCap 必须大于 0", ErrInvalidConfig)
	}
	if c.Content.KeywordSaturation <= 0 {
		return fmt.Errorf("%w: KeywordSaturation 必须大于 0", ErrInvalidConfig)
	}
	e := c.Expert
	if e.MultiplierMin <= 0 || e.MultiplierMin > e.MultiplierMax {
		return fmt.Errorf("%w: 专家系数区间非法 [%f, %f]", ErrInvalidConfig, e.MultiplierMin, e.MultiplierMax)
	}
	if e.NeutralMultiplier < e.MultiplierMin || e.NeutralMultiplier > e.MultiplierMax {
		return fmt.Errorf("%w: 中性系数 %f 不在区间内", ErrInvalidConfig, e.NeutralMultiplier)
	}
	for i := 1; i < len(c.Trust.Bands); i++ {
		if c.Trust.Bands[i].UpToMinutes <= c.Trust.Bands[i-1].UpToMinutes {
			return fmt.Errorf("%w: 响应时间档位必须升序", ErrInvalidConfig)
		}
	}
	return nil
}

// clone 复制一份，避免调用者持有的切片修改影响到计算
func (c Config) clone() Config {
	bands := make([]ResponseBand, len(c.Trust.Bands))
	copy(bands, c.Trust.Bands)
	c.Trust.Bands = bands
	return c
}
