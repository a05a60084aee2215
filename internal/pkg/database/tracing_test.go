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
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gorm.io/gorm"
)

type tracingUser struct {
	Id   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

func TestGormTracingPlugin(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&tracingUser{}))
	require.NoError(t, db.Use(NewGormTracingPlugin("sqlite")))

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&tracingUser{Name: "Tom"}).Error)
	var u tracingUser
	err = db.WithContext(ctx).Where("id = ?", 100).First(&u).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, db.WithContext(ctx).Model(&tracingUser{}).
		Where("name = ?", "Tom").Update("name", "Jerry").Error)
	require.NoError(t, db.WithContext(ctx).Where("name = ?", "Jerry").Delete(&tracingUser{}).Error)
	require.NoError(t, db.WithContext(ctx).Exec("DELETE FROM tracing_users WHERE id > ?", 100).Error)
	var cnt int64
	err = db.WithContext(ctx).Raw("SELECT COUNT(*) FROM not_exist_table").Scan(&cnt).Error
	assert.Error(t, err)

	spans := make(map[string]sdktrace.ReadOnlySpan)
	for _, s := range sr.Ended() {
		spans[s.Name()] = s
	}

	create, ok := spans["tracing_users CREATE"]
	require.True(t, ok)
	assert.Equal(t, codes.Ok, create.Status().Code)

	// 找不到记录不算错误
	query, ok := spans["tracing_users QUERY"]
	require.True(t, ok)
	assert.Equal(t, codes.Ok, query.Status().Code)

	for _, name := range []string{"tracing_users UPDATE", "tracing_users DELETE", "RAW"} {
		sp, ok := spans[name]
		require.True(t, ok, name)
		assert.Equal(t, codes.Ok, sp.Status().Code, name)
	}

	row, ok := spans["ROW"]
	require.True(t, ok)
	assert.Equal(t, codes.Error, row.Status().Code)
	assert.NotEmpty(t, row.Events())
}
