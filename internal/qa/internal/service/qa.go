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
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrScoringFailed 数据已经写入成功，但是质量分没能更新
	ErrScoringFailed    = errors.New("质量分计算失败")
	ErrQuestionNotFound = errors.New("问题不存在")
	ErrPermissionDenied = errors.New("没有权限")
	ErrInvalidReaction  = errors.New("非法的评价")
)

//go:generate mockgen -source=./qa.go -package=qamocks -destination=../../mocks/qa.mock.go Service

// Service 所有的修改操作都是先写数据，再同步重新计算质量分。
// 重新计算失败不会回滚已经写入的数据，而是返回包装了 ErrScoringFailed 的错误
type Service interface {
	SaveQuestion(ctx context.Context, q domain.Question) (int64, error)
	Submit(ctx context.Context, a domain.Answer) (int64, error)
	Edit(ctx context.Context, uid, aid int64, content string) error
	// Accept 只有提问者能采纳，重复调用会取消采纳。返回操作之后的状态
	Accept(ctx context.Context, uid, aid int64) (bool, error)
	React(ctx context.Context, r domain.Reaction) error
	Flag(ctx context.Context, f domain.Flag) error
	Followup(ctx context.Context, f domain.Followup) (int64, error)
	Delete(ctx context.Context, uid, aid int64) error
	Detail(ctx context.Context, aid int64) (domain.RankedAnswer, error)
	// ListByQuestion 按照质量分从高到低，没有算过的排在最后
	ListByQuestion(ctx context.Context, qid int64) ([]domain.RankedAnswer, error)
}

type qaService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	qualityRepo  repository.QualityRepository
	qualitySvc   QualityService
	logger       *elog.Component
}

func NewService(questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	qualityRepo repository.QualityRepository,
	qualitySvc QualityService) Service {
	return &qaService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		qualityRepo:  qualityRepo,
		qualitySvc:   qualitySvc,
		logger:       elog.DefaultLogger,
	}
}

func (s *qaService) SaveQuestion(ctx context.Context, q domain.Question) (int64, error) {
	return s.questionRepo.Create(ctx, q)
}

func (s *qaService) Submit(ctx context.Context, a domain.Answer) (int64, error) {
	_, err := s.questionRepo.FindByID(ctx, a.Qid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w, qid %d", ErrQuestionNotFound, a.Qid)
	}
	if err != nil {
		return 0, err
	}
	id, err := s.answerRepo.Create(ctx, a)
	if err != nil {
		return 0, err
	}
	return id, s.recompute(ctx, id, domain.TriggerSubmit)
}

func (s *qaService) Edit(ctx context.Context, uid, aid int64, content string) error {
	answer, err := s.findAnswer(ctx, aid)
	if err != nil {
		return err
	}
	if answer.Uid != uid {
		return fmt.Errorf("%w, 只能编辑自己的回答 uid %d, aid %d", ErrPermissionDenied, uid, aid)
	}
	err = s.answerRepo.UpdateContent(ctx, aid, content)
	if err != nil {
		return err
	}
	return s.recompute(ctx, aid, domain.TriggerEdit)
}

func (s *qaService) Accept(ctx context.Context, uid, aid int64) (bool, error) {
	answer, err := s.findAnswer(ctx, aid)
	if err != nil {
		return false, err
	}
	q, err := s.questionRepo.FindByID(ctx, answer.Qid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return false, fmt.Errorf("%w, qid %d", ErrQuestionNotFound, answer.Qid)
	}
	if err != nil {
		return false, err
	}
	if q.Uid != uid {
		return false, fmt.Errorf("%w, 只有提问者可以采纳 uid %d, aid %d", ErrPermissionDenied, uid, aid)
	}
	accepted, err := s.answerRepo.ToggleAccepted(ctx, aid)
	if err != nil {
		return false, err
	}
	return accepted, s.recompute(ctx, aid, domain.TriggerAccept)
}

func (s *qaService) React(ctx context.Context, r domain.Reaction) error {
	if !r.Type.Valid() {
		return fmt.Errorf("%w, type %d", ErrInvalidReaction, r.Type)
	}
	answer, err := s.findAnswer(ctx, r.Aid)
	if err != nil {
		return err
	}
	if answer.Uid == r.Uid {
		return fmt.Errorf("%w, 不能评价自己的回答", ErrInvalidReaction)
	}
	err = s.answerRepo.SaveReaction(ctx, r)
	if err != nil {
		return err
	}
	return s.recompute(ctx, r.Aid, domain.TriggerReaction)
}

func (s *qaService) Flag(ctx context.Context, f domain.Flag) error {
	_, err := s.findAnswer(ctx, f.Aid)
	if err != nil {
		return err
	}
	err = s.answerRepo.SaveFlag(ctx, f)
	if err != nil {
		return err
	}
	return s.recompute(ctx, f.Aid, domain.TriggerFlag)
}

func (s *qaService) Followup(ctx context.Context, f domain.Followup) (int64, error) {
	_, err := s.findAnswer(ctx, f.Aid)
	if err != nil {
		return 0, err
	}
	id, err := s.answerRepo.CreateFollowup(ctx, f)
	if err != nil {
		return 0, err
	}
	return id, s.recompute(ctx, f.Aid, domain.TriggerFollowup)
}

func (s *qaService) Delete(ctx context.Context, uid, aid int64) error {
	answer, err := s.findAnswer(ctx, aid)
	if err != nil {
		return err
	}
	if answer.Uid != uid {
		return fmt.Errorf("%w, 只能删除自己的回答 uid %d, aid %d", ErrPermissionDenied, uid, aid)
	}
	return s.qualitySvc.Purge(ctx, aid)
}

func (s *qaService) Detail(ctx context.Context, aid int64) (domain.RankedAnswer, error) {
	answer, err := s.findAnswer(ctx, aid)
	if err != nil {
		return domain.RankedAnswer{}, err
	}
	res := domain.RankedAnswer{Answer: answer}
	m, err := s.qualityRepo.Get(ctx, aid)
	switch {
	case err == nil:
		res.Metrics = &m
	case errors.Is(err, repository.ErrRecordNotFound):
	default:
		return domain.RankedAnswer{}, err
	}
	return res, nil
}

func (s *qaService) ListByQuestion(ctx context.Context, qid int64) ([]domain.RankedAnswer, error) {
	answers, err := s.answerRepo.ListByQid(ctx, qid)
	if err != nil {
		return nil, err
	}
	metrics, err := s.qualitySvc.GetByAids(ctx, slice.Map(answers, func(idx int, src domain.Answer) int64 {
		return src.Id
	}))
	if err != nil {
		return nil, err
	}
	res := slice.Map(answers, func(idx int, src domain.Answer) domain.RankedAnswer {
		ra := domain.RankedAnswer{Answer: src}
		if m, ok := metrics[src.Id]; ok {
			ra.Metrics = &m
		}
		return ra
	})
	sort.SliceStable(res, func(i, j int) bool {
		ai, aj := rankScore(res[i]), rankScore(res[j])
		if ai != aj {
			return ai > aj
		}
		return res[i].Answer.Id < res[j].Answer.Id
	})
	return res, nil
}

func rankScore(ra domain.RankedAnswer) int {
	if ra.Metrics == nil {
		return -1
	}
	return ra.Metrics.AQS
}

func (s *qaService) findAnswer(ctx context.Context, aid int64) (domain.Answer, error) {
	answer, err := s.answerRepo.FindByID(ctx, aid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Answer{}, fmt.Errorf("%w, aid %d", ErrAnswerNotFound, aid)
	}
	return answer, err
}

// recompute 失败只记录，数据已经写进去了
func (s *qaService) recompute(ctx context.Context, aid int64, trigger domain.Trigger) error {
	_, err := s.qualitySvc.Recompute(ctx, aid, trigger)
	if err != nil {
		s.logger.Error("重新计算质量分失败",
			elog.FieldErr(err),
			elog.Int64("aid", aid),
			elog.String("trigger", trigger.String()))
		return fmt.Errorf("%w: %w", ErrScoringFailed, err)
	}
	return nil
}
