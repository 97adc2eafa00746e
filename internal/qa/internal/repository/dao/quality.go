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

//go:generate mockgen -source=./quality.go -package=daomocks -destination=mocks/quality.mock.go QualityDAO
type QualityDAO interface {
	// Upsert 单条语句覆盖全部字段，失败的时候旧数据保持不变
	Upsert(ctx context.Context, m QualityMetrics) error
	FindByAid(ctx context.Context, aid int64) (QualityMetrics, error)
	FindByAids(ctx context.Context, aids []int64) ([]QualityMetrics, error)
}

type GORMQualityDAO struct {
	db *egorm.Component
}

func NewGORMQualityDAO(db *egorm.Component) QualityDAO {
	return &GORMQualityDAO{db: db}
}

func (g *GORMQualityDAO) Upsert(ctx context.Context, m QualityMetrics) error {
	now := time.Now().UnixMilli()
	m.Ctime = now
	m.Utime = now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "aid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"content_score",
			"engagement_score",
			"expert_score",
			"trust_score",
			"expert_multiplier",
			"aqs",
			"label",
			"details",
			"trigger_reason",
			"computed_at",
			"utime",
		}),
	}).Create(&m).Error
}

func (g *GORMQualityDAO) FindByAid(ctx context.Context, aid int64) (QualityMetrics, error) {
	var res QualityMetrics
	err := g.db.WithContext(ctx).Where("aid = ?", aid).First(&res).Error
	return res, err
}

func (g *GORMQualityDAO) FindByAids(ctx context.Context, aids []int64) ([]QualityMetrics, error) {
	var res []QualityMetrics
	if len(aids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("aid IN ?", aids).Find(&res).Error
	return res, err
}
