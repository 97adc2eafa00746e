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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository/dao"
)

//go:generate mockgen -source=./answer.go -package=repomocks -destination=./mocks/answer.mock.go AnswerRepository
// AnswerRepository 回答以及回答下面的互动数据
type AnswerRepository interface {
	Create(ctx context.Context, a domain.Answer) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Answer, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	// ToggleAccepted 返回翻转之后的采纳状态
	ToggleAccepted(ctx context.Context, id int64) (bool, error)
	ListByQid(ctx context.Context, qid int64) ([]domain.Answer, error)
	Delete(ctx context.Context, id int64) error
	AuthorStats(ctx context.Context, minUid int64, limit int) ([]domain.AuthorStat, error)

	SaveReaction(ctx context.Context, r domain.Reaction) error
	FindReactions(ctx context.Context, aid int64) ([]domain.Reaction, error)
	SaveFlag(ctx context.Context, f domain.Flag) error
	FindFlags(ctx context.Context, aid int64) ([]domain.Flag, error)
	CreateFollowup(ctx context.Context, f domain.Followup) (int64, error)
	CountFollowups(ctx context.Context, aid int64) (int64, error)
}

type answerRepository struct {
	answerDAO      dao.AnswerDAO
	interactionDAO dao.InteractionDAO
}

func NewAnswerRepository(answerDAO dao.AnswerDAO, interactionDAO dao.InteractionDAO) AnswerRepository {
	return &answerRepository{
		answerDAO:      answerDAO,
		interactionDAO: interactionDAO,
	}
}

func (r *answerRepository) Create(ctx context.Context, a domain.Answer) (int64, error) {
	return r.answerDAO.Create(ctx, dao.Answer{
		Qid:     a.Qid,
		Uid:     a.Uid,
		Content: a.Content,
	})
}

func (r *answerRepository) FindByID(ctx context.Context, id int64) (domain.Answer, error) {
	a, err := r.answerDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Answer{}, err
	}
	return r.toDomain(a), nil
}

func (r *answerRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	return r.answerDAO.UpdateContent(ctx, id, content)
}

func (r *answerRepository) ToggleAccepted(ctx context.Context, id int64) (bool, error) {
	return r.answerDAO.ToggleAccepted(ctx, id)
}

func (r *answerRepository) ListByQid(ctx context.Context, qid int64) ([]domain.Answer, error) {
	answers, err := r.answerDAO.ListByQid(ctx, qid)
	if err != nil {
		return nil, err
	}
	return slice.Map(answers, func(idx int, src dao.Answer) domain.Answer {
		return r.toDomain(src)
	}), nil
}

func (r *answerRepository) Delete(ctx context.Context, id int64) error {
	return r.answerDAO.Delete(ctx, id)
}

func (r *answerRepository) AuthorStats(ctx context.Context, minUid int64, limit int) ([]domain.AuthorStat, error) {
	stats, err := r.answerDAO.AuthorStats(ctx, minUid, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(stats, func(idx int, src dao.AuthorStat) domain.AuthorStat {
		return domain.AuthorStat{
			Uid:           src.Uid,
			TotalAnswers:  src.TotalAnswers,
			AcceptedCount: src.AcceptedCount,
		}
	}), nil
}

func (r *answerRepository) SaveReaction(ctx context.Context, re domain.Reaction) error {
	return r.interactionDAO.UpsertReaction(ctx, dao.Reaction{
		Aid: re.Aid,
		Uid: re.Uid,
		Typ: re.Type.ToUint8(),
	})
}

func (r *answerRepository) FindReactions(ctx context.Context, aid int64) ([]domain.Reaction, error) {
	reactions, err := r.interactionDAO.FindReactions(ctx, aid)
	if err != nil {
		return nil, err
	}
	return slice.Map(reactions, func(idx int, src dao.Reaction) domain.Reaction {
		return domain.Reaction{
			Aid:   src.Aid,
			Uid:   src.Uid,
			Type:  domain.ReactionType(src.Typ),
			Utime: toTime(src.Utime),
		}
	}), nil
}

func (r *answerRepository) SaveFlag(ctx context.Context, f domain.Flag) error {
	return r.interactionDAO.CreateFlag(ctx, dao.Flag{
		Aid:    f.Aid,
		Uid:    f.Uid,
		Reason: f.Reason,
	})
}

func (r *answerRepository) FindFlags(ctx context.Context, aid int64) ([]domain.Flag, error) {
	flags, err := r.interactionDAO.FindFlags(ctx, aid)
	if err != nil {
		return nil, err
	}
	return slice.Map(flags, func(idx int, src dao.Flag) domain.Flag {
		return domain.Flag{
			Aid:    src.Aid,
			Uid:    src.Uid,
			Reason: src.Reason,
			Ctime:  toTime(src.Ctime),
		}
	}), nil
}

func (r *answerRepository) CreateFollowup(ctx context.Context, f domain.Followup) (int64, error) {
	return r.interactionDAO.CreateFollowup(ctx, dao.Followup{
		Aid:     f.Aid,
		Uid:     f.Uid,
		Content: f.Content,
	})
}

func (r *answerRepository) CountFollowups(ctx context.Context, aid int64) (int64, error) {
	return r.interactionDAO.CountFollowups(ctx, aid)
}

func (r *answerRepository) toDomain(a dao.Answer) domain.Answer {
	return domain.Answer{
		Id:           a.Id,
		Qid:          a.Qid,
		Uid:          a.Uid,
		Content:      a.Content,
		Accepted:     a.Accepted,
		AcceptedTime: toTime(a.AcceptedTime),
		EditCnt:      a.EditCnt,
		Ctime:        toTime(a.Ctime),
		Utime:        toTime(a.Utime),
	}
}
