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
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type QuestionDAO interface {
	Create(ctx context.Context, q Question) (int64, error)
	FindByID(ctx context.Context, id int64) (Question, error)
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) Create(ctx context.Context, q Question) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := g.db.WithContext(ctx).Create(&q).Error
	return q.Id, err
}

func (g *GORMQuestionDAO) FindByID(ctx context.Context, id int64) (Question, error) {
	var res Question
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}
