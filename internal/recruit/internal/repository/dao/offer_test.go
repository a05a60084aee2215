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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMOfferDAO_CreateApplication(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "唯一索引冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `recruit_offers` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT \\* FROM `recruit_offers` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, offerStatusOpen))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `recruit_applications` .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("INSERT INTO `recruit_applications` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrDuplicateApplication,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `recruit_offers` .*").
					WillReturnError(errors.New("数据库错误"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: errors.New("数据库错误"),
		},
		{
			name: "插入成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `recruit_offers` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT \\* FROM `recruit_offers` .*").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, offerStatusOpen))
				mock.ExpectQuery("SELECT count\\(\\*\\) FROM `recruit_applications` .*").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
				mock.ExpectExec("INSERT INTO `recruit_applications` .*").
					WillReturnResult(sqlmock.NewResult(9, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      tc.mock(t),
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)
			dao := NewGORMOfferDAO(db)
			id, err := dao.CreateApplication(context.Background(), Application{
				OfferId: 1,
				Uid:     2,
				Name:    "候选人",
			}, func(offer Offer) error { return nil })
			assert.Equal(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, int64(9), id)
			}
		})
	}
}
