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

package database

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "internal/pkg/database/tracing"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每一条 SQL 打一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

type register func(name string, fn func(*gorm.DB)) error

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	ops := []struct {
		op     string
		before register
		after  register
	}{
		{op: "SELECT", before: cb.Query().Before("gorm:query").Register, after: cb.Query().After("gorm:query").Register},
		{op: "INSERT", before: cb.Create().Before("gorm:create").Register, after: cb.Create().After("gorm:create").Register},
		{op: "UPDATE", before: cb.Update().Before("gorm:update").Register, after: cb.Update().After("gorm:update").Register},
		{op: "DELETE", before: cb.Delete().Before("gorm:delete").Register, after: cb.Delete().After("gorm:delete").Register},
		{op: "RAW", before: cb.Raw().Before("gorm:raw").Register, after: cb.Raw().After("gorm:raw").Register},
		{op: "ROW", before: cb.Row().Before("gorm:row").Register, after: cb.Row().After("gorm:row").Register},
	}
	for _, o := range ops {
		if err := o.before("tracing:before_"+o.op, p.before(o.op)); err != nil {
			return err
		}
		if err := o.after("tracing:after_"+o.op, p.after(o.op)); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := context.Background()
		if db.Statement.Context != nil {
			ctx = db.Statement.Context
		}
		name := "SQL " + op
		if db.Statement.Table != "" {
			name = fmt.Sprintf("%s %s", db.Statement.Table, op)
		}
		ctx, span := p.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
			attribute.String("db.table", db.Statement.Table),
			attribute.String("db.statement", db.Statement.SQL.String()),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		span.SetAttributes(attrs...)
		// 查不到数据是业务上的正常情况
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.RecordError(db.Error)
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
