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

package service

import (
	"context"
	"math"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository"
)

const (
	defaultBatchSize       = 100
	expertMinAnswers       = 20
	expertMinAcceptRate    = 0.4
	intermediateMinAnswers = 5
)

type ExpertiseService interface {
	// RefreshStats 重新汇总所有作者的回答数据，返回处理的作者数量
	RefreshStats(ctx context.Context, batchSize int) (int, error)
	SaveStrength(ctx context.Context, uid int64, strength float64) error
}

type expertiseService struct {
	answerRepo    repository.AnswerRepository
	expertiseRepo repository.ExpertiseRepository
}

func NewExpertiseService(answerRepo repository.AnswerRepository,
	expertiseRepo repository.ExpertiseRepository) ExpertiseService {
	return &expertiseService{
		answerRepo:    answerRepo,
		expertiseRepo: expertiseRepo,
	}
}

func (s *expertiseService) RefreshStats(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	var (
		minUid int64
		total  int
	)
	for {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}
		stats, err := s.answerRepo.AuthorStats(ctx, minUid, batchSize)
		if err != nil {
			return total, err
		}
		if len(stats) == 0 {
			return total, nil
		}
		err = s.expertiseRepo.SaveStats(ctx, slice.Map(stats, func(idx int, src domain.AuthorStat) domain.ExpertiseProfile {
			return statToProfile(src)
		}))
		if err != nil {
			return total, err
		}
		total += len(stats)
		minUid = stats[len(stats)-1].Uid
		if len(stats) < batchSize {
			return total, nil
		}
	}
}

func (s *expertiseService) SaveStrength(ctx context.Context, uid int64, strength float64) error {
	if math.IsNaN(strength) {
		strength = 0
	}
	return s.expertiseRepo.SaveStrength(ctx, uid, math.Max(0, math.Min(100, strength)))
}

func statToProfile(stat domain.AuthorStat) domain.ExpertiseProfile {
	var rate float64
	if stat.TotalAnswers > 0 {
		rate = float64(stat.AcceptedCount) / float64(stat.TotalAnswers)
	}
	return domain.ExpertiseProfile{
		Uid:            stat.Uid,
		TotalAnswers:   stat.TotalAnswers,
		AcceptanceRate: rate,
		ExpertLevel:    expertLevel(stat.TotalAnswers, rate),
	}
}

func expertLevel(total int64, rate float64) domain.ExpertLevel {
	switch {
	case total >= expertMinAnswers && rate >= expertMinAcceptRate:
		return domain.ExpertLevelExpert
	case total >= intermediateMinAnswers:
		return domain.ExpertLevelIntermediate
	default:
		return domain.ExpertLevelNovice
	}
}
