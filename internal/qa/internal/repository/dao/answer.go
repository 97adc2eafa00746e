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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerDAO interface {
	Create(ctx context.Context, a Answer) (int64, error)
	FindByID(ctx context.Context, id int64) (Answer, error)
	// UpdateContent 修改内容，同时编辑次数 +1
	UpdateContent(ctx context.Context, id int64, content string) error
	// ToggleAccepted 在同一个事务里面翻转采纳状态，返回翻转之后的值
	ToggleAccepted(ctx context.Context, id int64) (bool, error)
	ListByQid(ctx context.Context, qid int64) ([]Answer, error)
	// Delete 连带删除点评、举报、追问以及质量分
	Delete(ctx context.Context, id int64) error
	// AuthorStats 按照 uid 升序，返回 uid 大于 minUid 的 limit 个作者的统计
	AuthorStats(ctx context.Context, minUid int64, limit int) ([]AuthorStat, error)
}

type GORMAnswerDAO struct {
	db *egorm.Component
}

func NewGORMAnswerDAO(db *egorm.Component) AnswerDAO {
	return &GORMAnswerDAO{db: db}
}

func (g *GORMAnswerDAO) Create(ctx context.Context, a Answer) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := g.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (g *GORMAnswerDAO) FindByID(ctx context.Context, id int64) (Answer, error) {
	var res Answer
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMAnswerDAO) UpdateContent(ctx context.Context, id int64, content string) error {
	res := g.db.WithContext(ctx).Model(&Answer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"content":  content,
			"edit_cnt": gorm.Expr("`edit_cnt` + 1"),
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrRecordNotFound
	}
	return nil
}

func (g *GORMAnswerDAO) ToggleAccepted(ctx context.Context, id int64) (bool, error) {
	var accepted bool
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a Answer
		// 行锁，并发的采纳请求依次翻转
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&a).Error
		if err != nil {
			return err
		}
		accepted = !a.Accepted
		now := time.Now().UnixMilli()
		acceptedTime := int64(0)
		if accepted {
			acceptedTime = now
		}
		return tx.Model(&Answer{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"accepted":      accepted,
				"accepted_time": acceptedTime,
				"utime":         now,
			}).Error
	})
	return accepted, err
}

func (g *GORMAnswerDAO) ListByQid(ctx context.Context, qid int64) ([]Answer, error) {
	var res []Answer
	err := g.db.WithContext(ctx).
		Where("qid = ?", qid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMAnswerDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&Answer{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrRecordNotFound
		}
		if err := tx.Where("aid = ?", id).Delete(&Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("aid = ?", id).Delete(&Flag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("aid = ?", id).Delete(&Followup{}).Error; err != nil {
			return err
		}
		return tx.Where("aid = ?", id).Delete(&QualityMetrics{}).Error
	})
}

func (g *GORMAnswerDAO) AuthorStats(ctx context.Context, minUid int64, limit int) ([]AuthorStat, error) {
	var res []AuthorStat
	err := g.db.WithContext(ctx).Model(&Answer{}).
		Select("uid, COUNT(id) AS total_answers, SUM(CASE WHEN accepted = true THEN 1 ELSE 0 END) AS accepted_count").
		Where("uid > ?", minUid).
		Group("uid").
		Order("uid ASC").
		Limit(limit).
		Scan(&res).Error
	return res, err
}
