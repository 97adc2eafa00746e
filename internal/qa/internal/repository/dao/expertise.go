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

type ExpertiseDAO interface {
	FindByUid(ctx context.Context, uid int64) (ExpertiseProfile, error)
	// UpsertStats 只更新统计字段，不会覆盖 profile_strength
	UpsertStats(ctx context.Context, profiles []ExpertiseProfile) error
	UpsertStrength(ctx context.Context, uid int64, strength float64) error
}

type GORMExpertiseDAO struct {
	db *egorm.Component
}

func NewGORMExpertiseDAO(db *egorm.Component) ExpertiseDAO {
	return &GORMExpertiseDAO{db: db}
}

func (g *GORMExpertiseDAO) FindByUid(ctx context.Context, uid int64) (ExpertiseProfile, error) {
	var res ExpertiseProfile
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (g *GORMExpertiseDAO) UpsertStats(ctx context.Context, profiles []ExpertiseProfile) error {
	if len(profiles) == 0 {
		return nil
	}
	now := time.Now().UnixMilli()
	for i := range profiles {
		profiles[i].Ctime = now
		profiles[i].Utime = now
	}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_answers", "acceptance_rate", "expert_level", "utime",
		}),
	}).Create(&profiles).Error
}

func (g *GORMExpertiseDAO) UpsertStrength(ctx context.Context, uid int64, strength float64) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]any{
			"profile_strength": strength,
			"utime":            now,
		}),
	}).Create(&ExpertiseProfile{
		Uid:             uid,
		ProfileStrength: strength,
		Ctime:           now,
		Utime:           now,
	}).Error
}
