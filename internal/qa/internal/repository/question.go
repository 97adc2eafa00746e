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
	"time"

	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/ecodeclub/jobmate/internal/qa/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./question.go -package=repomocks -destination=./mocks/question.mock.go QuestionRepository
type QuestionRepository interface {
	Create(ctx context.Context, q domain.Question) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Question, error)
}

type questionRepository struct {
	dao dao.QuestionDAO
}

func NewQuestionRepository(d dao.QuestionDAO) QuestionRepository {
	return &questionRepository{dao: d}
}

func (r *questionRepository) Create(ctx context.Context, q domain.Question) (int64, error) {
	return r.dao.Create(ctx, dao.Question{
		Uid:     q.Uid,
		Title:   q.Title,
		Content: q.Content,
	})
}

func (r *questionRepository) FindByID(ctx context.Context, id int64) (domain.Question, error) {
	q, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	return domain.Question{
		Id:      q.Id,
		Uid:     q.Uid,
		Title:   q.Title,
		Content: q.Content,
		Ctime:   toTime(q.Ctime),
		Utime:   toTime(q.Utime),
	}, nil
}

// toTime 0 表示没有设置，转成零值，而不是 1970 年
func toTime(millis int64) time.Time {
	if millis == 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}
