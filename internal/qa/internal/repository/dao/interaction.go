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
	"gorm.io/gorm/clause"
)

// InteractionDAO 回答下面的点评、举报以及追问
type InteractionDAO interface {
	UpsertReaction(ctx context.Context, r Reaction) error
	FindReactions(ctx context.Context, aid int64) ([]Reaction, error)
	// CreateFlag 重复举报会被忽略
	CreateFlag(ctx context.Context, f Flag) error
	FindFlags(ctx context.Context, aid int64) ([]Flag, error)
	CreateFollowup(ctx context.Context, f Followup) (int64, error)
	CountFollowups(ctx context.Context, aid int64) (int64, error)
}

type GORMInteractionDAO struct {
	db *egorm.Component
}

func NewGORMInteractionDAO(db *egorm.Component) InteractionDAO {
	return &GORMInteractionDAO{db: db}
}

func (g *GORMInteractionDAO) UpsertReaction(ctx context.Context, r Reaction) error {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "aid"}, {Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]any{
			"typ":   r.Typ,
			"utime": now,
		}),
	}).Create(&r).Error
}

func (g *GORMInteractionDAO) FindReactions(ctx context.Context, aid int64) ([]Reaction, error) {
	var res []Reaction
	err := g.db.WithContext(ctx).
		Where("aid = ?", aid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMInteractionDAO) CreateFlag(ctx context.Context, f Flag) error {
	now := time.Now().UnixMilli()
	f.Ctime = now
	f.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "aid"}, {Name: "uid"}},
		DoNothing: true,
	}).Create(&f).Error
}

func (g *GORMInteractionDAO) FindFlags(ctx context.Context, aid int64) ([]Flag, error) {
	var res []Flag
	err := g.db.WithContext(ctx).
		Where("aid = ?", aid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMInteractionDAO) CreateFollowup(ctx context.Context, f Followup) (int64, error) {
	now := time.Now().UnixMilli()
	f.Ctime = now
	f.Utime = now
	err := g.db.WithContext(ctx).Create(&f).Error
	return f.Id, err
}

func (g *GORMInteractionDAO) CountFollowups(ctx context.Context, aid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Followup{}).
		Where("aid = ?", aid).
		Count(&res).Error
	return res, err
}
