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
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound

	// 一个操作会读多张表的时候，用下面两个区分是哪一条记录不存在
	ErrApplicationNotFound = fmt.Errorf("%w: 投递记录", ErrRecordNotFound)
	ErrAttemptNotFound     = fmt.Errorf("%w: 作答记录", ErrRecordNotFound)

	// ErrSlotOccupied 岗位下已经有步骤在进行中
	ErrSlotOccupied = errors.New("岗位已有进行中的步骤")
	// ErrStatusChanged 更新的时候状态已经不是读到的那个了
	ErrStatusChanged = errors.New("状态已被并发修改")

	ErrDuplicateAttempt     = errors.New("作答记录重复")
	ErrDuplicateApplication = errors.New("投递记录重复")
)

// Offer 招聘岗位
type Offer struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:岗位ID"`
	Uid         int64  `gorm:"not null;index:idx_offer_uid;comment:创建人ID"`
	Title       string `gorm:"type:varchar(255);not null;comment:岗位名称"`
	Description string `gorm:"type:text;comment:岗位描述"`
	Headcount   int    `gorm:"not null;default:1;comment:计划招聘人数"`
	Deadline    int64  `gorm:"not null;default:0;index:idx_offer_status_deadline,priority:2;comment:截止投递时间"`
	Status      string `gorm:"type:varchar(16);not null;index:idx_offer_status_deadline,priority:1;comment:CREE/OUVERT/FERME"`
	// 岗位下唯一一个可以处于进行中的步骤，0 表示空闲。
	// 开始步骤的时候用 running_step_id = 0 作为条件抢占，结束的时候释放
	RunningStepId int64 `gorm:"not null;default:0;comment:进行中的步骤ID"`
	Ctime         int64
	Utime         int64
}

func (Offer) TableName() string {
	return "recruit_offers"
}

// Step 招聘步骤
type Step struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:步骤ID"`
	OfferId     int64  `gorm:"not null;index:idx_step_offer_sort,priority:1;comment:所属岗位ID"`
	Kind        string `gorm:"type:varchar(32);not null;comment:TASK/QUESTIONNAIRE/VIDEO_INTERVIEW"`
	Title       string `gorm:"type:varchar(255);not null;comment:步骤名称"`
	Description string `gorm:"type:text;comment:步骤说明"`
	Duration    int64  `gorm:"not null;default:0;comment:时长，分钟"`
	Status      string `gorm:"type:varchar(16);not null;comment:UPCOMING/RUNNING/FINISHED/CANCELLED"`
	// 重新编号的过程中同一个事务里会短暂出现重复，所以这里不用唯一索引
	Sort  int `gorm:"not null;index:idx_step_offer_sort,priority:2;comment:岗位内的顺序，从1开始"`
	Ctime int64
	Utime int64
}

func (Step) TableName() string {
	return "recruit_steps"
}

type Question struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	StepId  int64  `gorm:"not null;index:idx_question_step_id;comment:所属问卷步骤ID"`
	Content string `gorm:"type:text;not null;comment:题干"`
	Sort    int    `gorm:"not null;default:0"`
	Ctime   int64
	Utime   int64
}

func (Question) TableName() string {
	return "recruit_questions"
}

type Answer struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	StepId     int64  `gorm:"not null;index:idx_answer_step_id;comment:冗余的步骤ID，方便整体删除"`
	QuestionId int64  `gorm:"not null;index:idx_answer_question_id"`
	Content    string `gorm:"type:text;not null"`
	Correct    bool   `gorm:"not null;default:false;comment:是否正确答案"`
	Ctime      int64
	Utime      int64
}

func (Answer) TableName() string {
	return "recruit_answers"
}

// Application 投递记录
type Application struct {
	Id      int64  `gorm:"primaryKey;autoIncrement"`
	OfferId int64  `gorm:"not null;uniqueIndex:uk_application_offer_uid,priority:1"`
	Uid     int64  `gorm:"not null;uniqueIndex:uk_application_offer_uid,priority:2;comment:候选人ID"`
	Name    string `gorm:"type:varchar(128);not null"`
	Email   string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(32)"`
	// 累计得分
	Note  int64 `gorm:"not null;default:0"`
	Ctime int64
	Utime int64
}

func (Application) TableName() string {
	return "recruit_applications"
}

// Attempt 候选人在某个步骤上的作答记录
type Attempt struct {
	Id            int64  `gorm:"primaryKey;autoIncrement"`
	StepId        int64  `gorm:"not null;uniqueIndex:uk_attempt_step_application,priority:1"`
	ApplicationId int64  `gorm:"not null;uniqueIndex:uk_attempt_step_application,priority:2;index:idx_attempt_application_id"`
	Status        string `gorm:"type:varchar(16);not null"`
	Score         int64  `gorm:"not null;default:0"`
	FileRef       string `gorm:"type:varchar(1024);comment:作业文件引用"`
	Link          string `gorm:"type:varchar(1024);comment:作业链接"`
	// 问卷的选择，JSON
	Selections string `gorm:"type:text"`
	Tid        string `gorm:"type:varchar(64);comment:提交凭证"`
	Ctime      int64
	Utime      int64
}

func (Attempt) TableName() string {
	return "recruit_attempts"
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Offer{},
		&Step{},
		&Question{},
		&Answer{},
		&Application{},
		&Attempt{},
	)
}
