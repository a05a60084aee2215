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

package domain

// OfferStatus 招聘岗位的生命周期，只能 CREE -> OUVERT -> FERME 单向推进
type OfferStatus string

const (
	// OfferStatusCreated 刚创建，可以编辑招聘步骤
	OfferStatusCreated OfferStatus = "CREE"
	// OfferStatusOpen 已发布，接收投递
	OfferStatusOpen OfferStatus = "OUVERT"
	// OfferStatusClosed 停止投递，招聘步骤可以开始
	OfferStatusClosed OfferStatus = "FERME"
)

func (s OfferStatus) String() string {
	return string(s)
}

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusCreated, OfferStatusOpen, OfferStatusClosed:
		return true
	default:
		return false
	}
}

// Offer 招聘岗位，也是招聘步骤的聚合根
type Offer struct {
	ID          int64
	Uid         int64
	Title       string
	Description string
	// 计划招聘人数
	Headcount int
	// 截止投递时间，毫秒
	Deadline int64
	Status   OfferStatus
	// 当前正在进行的步骤，0 表示没有
	RunningStepID int64
	Ctime         int64
	Utime         int64

	Steps []Step
}

func (o Offer) IsValid() bool {
	return o.Uid > 0 && o.Title != "" && o.Headcount > 0
}

// Editable 只有还没发布的岗位，才可以调整招聘步骤
func (o Offer) Editable() error {
	if o.Status != OfferStatusCreated {
		return ErrOfferNotEditable
	}
	return nil
}

// Acceptable 岗位能否接收新的投递
func (o Offer) Acceptable(now int64) error {
	if o.Status != OfferStatusOpen {
		return ErrOfferNotOpen
	}
	if o.Deadline > 0 && now > o.Deadline {
		return ErrOfferExpired
	}
	return nil
}

// Closable 关闭投递需要岗位处于开放状态，并且至少有一份投递
func (o Offer) Closable(applications int64) error {
	if o.Status != OfferStatusOpen {
		return ErrOfferNotOpen
	}
	if applications == 0 {
		return ErrNoApplications
	}
	return nil
}
