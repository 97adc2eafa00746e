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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobmate/internal/qa/internal/domain"
	"github.com/pkg/errors"
)

var ErrQualityNotFound = errors.New("质量分缓存不存在")

const expiration = 24 * time.Hour

type QualityECache struct {
	ec ecache.Cache
}

func NewQualityECache(ec ecache.Cache) QualityCache {
	return &QualityECache{
		ec: &ecache.NamespaceCache{
			Namespace: "aqs:",
			C:         ec,
		},
	}
}

func (q *QualityECache) Get(ctx context.Context, aid int64) (domain.QualityMetrics, error) {
	val := q.ec.Get(ctx, q.key(aid))
	if val.KeyNotFound() {
		return domain.QualityMetrics{}, ErrQualityNotFound
	}
	if val.Err != nil {
		return domain.QualityMetrics{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return domain.QualityMetrics{}, errors.Wrap(err, "缓存数据类型不对")
	}
	var res domain.QualityMetrics
	err = json.Unmarshal([]byte(str), &res)
	if err != nil {
		return domain.QualityMetrics{}, errors.Wrap(err, "反序列化质量分失败")
	}
	return res, nil
}

func (q *QualityECache) Set(ctx context.Context, m domain.QualityMetrics) error {
	data, err := json.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "序列化质量分失败")
	}
	return q.ec.Set(ctx, q.key(m.Aid), string(data), expiration)
}

func (q *QualityECache) Delete(ctx context.Context, aid int64) error {
	_, err := q.ec.Delete(ctx, q.key(aid))
	return err
}

// 注意 Namespace 设置
func (q *QualityECache) key(aid int64) string {
	return fmt.Sprintf("metrics:%d", aid)
}
