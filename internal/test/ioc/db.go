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

package testioc

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
)

// InitDB 内存里面的 SQLite，整个测试进程共用一个库
func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		var err error
		db, err = gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
		if err != nil {
			panic(err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			panic(err)
		}
		// 每个连接都是一个独立的内存库
		sqlDB.SetMaxOpenConns(1)
	})
	return db
}
