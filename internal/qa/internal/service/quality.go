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
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ecodeclub/ekit/syncx"
	"github.com/ecodeclub/jobmate/internal/qa/internal/aqs"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/event"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

var ErrAnswerNotFound = errors.New("回答不存在")

// 锁的分段数量，不同回答落在同一段只会影响吞吐
const lockSegments = 256

var recomputeDuration = promauto.NewSummaryVec(
	prometheus.SummaryOpts{
		Name: "aqs_recompute_duration_seconds",
		Help: "answer quality recompute duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	},
	[]string{"trigger", "result"},
)

//go:generate mockgen -source=./quality.go -package=qamocks -destination=../../mocks/quality.mock.go QualityService
type QualityService interface {
	// Recompute 重新计算并且保存质量分，同一个回答的计算是串行的
	Recompute(ctx context.Context, aid int64, trigger domain.Trigger) (domain.QualityMetrics, error)
	Debug(ctx context.Context, aid int64) (domain.QualityDebug, error)
	// Purge 删除回答以及它的质量分，和 Recompute 使用同一把锁
	Purge(ctx context.Context, aid int64) error
	// GetByAids 没有算过的回答不在结果里面
	GetByAids(ctx context.Context, aids []int64) (map[int64]domain.QualityMetrics, error)
}

type qualityService struct {
	answerRepo    repository.AnswerRepository
	questionRepo  repository.QuestionRepository
	expertiseRepo repository.ExpertiseRepository
	qualityRepo   repository.QualityRepository
	producer      event.QualityEventProducer
	scorer        *aqs.Scorer
	lock          *syncx.SegmentKeysLock
	now           func() time.Time
	logger        *elog.Component
}

func NewQualityService(answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	expertiseRepo repository.ExpertiseRepository,
	qualityRepo repository.QualityRepository,
	producer event.QualityEventProducer,
	scorer *aqs.Scorer) QualityService {
	return &qualityService{
		answerRepo:    answerRepo,
		questionRepo:  questionRepo,
		expertiseRepo: expertiseRepo,
		qualityRepo:   qualityRepo,
		producer:      producer,
		scorer:        scorer,
		lock:          syncx.NewSegmentKeysLock(lockSegments),
		now:           time.Now,
		logger:        elog.DefaultLogger,
	}
}

func (s *qualityService) Recompute(ctx context.Context, aid int64, trigger domain.Trigger) (res domain.QualityMetrics, err error) {
	start := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "fail"
		}
		recomputeDuration.WithLabelValues(trigger.String(), result).
			Observe(time.Since(start).Seconds())
	}()

	key := strconv.FormatInt(aid, 10)
	s.lock.Lock(key)
	defer s.lock.Unlock(key)

	in, err := s.loadInput(ctx, aid)
	if err != nil {
		return domain.QualityMetrics{}, err
	}
	res = s.scorer.Score(in)
	res.Trigger = trigger
	res.ComputedAt = s.now()
	err = s.qualityRepo.Save(ctx, res)
	if err != nil {
		return domain.QualityMetrics{}, fmt.Errorf("保存质量分失败: %w", err)
	}
	s.publish(ctx, in.Answer, res)
	return res, nil
}

// loadInput 回答找不到是错误，其余的数据找不到就使用默认值
func (s *qualityService) loadInput(ctx context.Context, aid int64) (aqs.Input, error) {
	answer, err := s.findAnswer(ctx, aid)
	if err != nil {
		return aqs.Input{}, err
	}
	in := aqs.Input{Answer: answer}
	var eg errgroup.Group
	eg.Go(func() error {
		q, err := s.questionRepo.FindByID(ctx, answer.Qid)
		switch {
		case err == nil:
			in.Question = &q
			return nil
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil
		default:
			return fmt.Errorf("查询问题失败: %w", err)
		}
	})
	eg.Go(func() error {
		reactions, err := s.answerRepo.FindReactions(ctx, aid)
		if err != nil {
			return fmt.Errorf("查询评价失败: %w", err)
		}
		in.Reactions = reactions
		return nil
	})
	eg.Go(func() error {
		flags, err := s.answerRepo.FindFlags(ctx, aid)
		if err != nil {
			return fmt.Errorf("查询举报失败: %w", err)
		}
		in.Flags = flags
		return nil
	})
	eg.Go(func() error {
		cnt, err := s.answerRepo.CountFollowups(ctx, aid)
		if err != nil {
			return fmt.Errorf("查询追问数量失败: %w", err)
		}
		in.FollowupCount = cnt
		return nil
	})
	eg.Go(func() error {
		profile, err := s.expertiseRepo.FindByUid(ctx, answer.Uid)
		switch {
		case err == nil:
			in.Profile = &profile
			return nil
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil
		default:
			return fmt.Errorf("查询作者画像失败: %w", err)
		}
	})
	return in, eg.Wait()
}

func (s *qualityService) findAnswer(ctx context.Context, aid int64) (domain.Answer, error) {
	answer, err := s.answerRepo.FindByID(ctx, aid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Answer{}, fmt.Errorf("%w, aid %d", ErrAnswerNotFound, aid)
	}
	if err != nil {
		return domain.Answer{}, fmt.Errorf("查询回答失败: %w", err)
	}
	return answer, nil
}

func (s *qualityService) publish(ctx context.Context, answer domain.Answer, m domain.QualityMetrics) {
	err := s.producer.Produce(ctx, event.QualityEvent{
		Aid:        m.Aid,
		Qid:        answer.Qid,
		Uid:        answer.Uid,
		AQS:        m.AQS,
		Label:      m.Label.String(),
		Trigger:    m.Trigger.String(),
		ComputedAt: m.ComputedAt.UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送质量分事件失败",
			elog.FieldErr(err),
			elog.Int64("aid", m.Aid))
	}
}

func (s *qualityService) Purge(ctx context.Context, aid int64) error {
	key := strconv.FormatInt(aid, 10)
	s.lock.Lock(key)
	defer s.lock.Unlock(key)

	err := s.answerRepo.Delete(ctx, aid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return fmt.Errorf("%w, aid %d", ErrAnswerNotFound, aid)
	}
	if err != nil {
		return fmt.Errorf("删除回答失败: %w", err)
	}
	err = s.qualityRepo.Evict(ctx, aid)
	if err != nil {
		s.logger.Error("清理质量分缓存失败",
			elog.FieldErr(err),
			elog.Int64("aid", aid))
	}
	return nil
}

func (s *qualityService) Debug(ctx context.Context, aid int64) (domain.QualityDebug, error) {
	answer, err := s.findAnswer(ctx, aid)
	if err != nil {
		return domain.QualityDebug{}, err
	}
	res := domain.QualityDebug{Answer: answer}
	var eg errgroup.Group
	eg.Go(func() error {
		m, err := s.qualityRepo.Get(ctx, aid)
		switch {
		case err == nil:
			res.Metrics = &m
			return nil
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil
		default:
			return fmt.Errorf("查询质量分失败: %w", err)
		}
	})
	eg.Go(func() error {
		var err error
		res.Reactions, err = s.answerRepo.FindReactions(ctx, aid)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Flags, err = s.answerRepo.FindFlags(ctx, aid)
		return err
	})
	return res, eg.Wait()
}

func (s *qualityService) GetByAids(ctx context.Context, aids []int64) (map[int64]domain.QualityMetrics, error) {
	ms, err := s.qualityRepo.GetByAids(ctx, aids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.QualityMetrics, len(ms))
	for _, m := range ms {
		res[m.Aid] = m
	}
	return res, nil
}
