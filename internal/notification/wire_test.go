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


package notification

import (
	"testing"
	"time"

	"github.com/ecodeclub/recruit/internal/notification/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestInitNotifier(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "没有重试配置",
			cfg:  Config{Email: EmailConfig{Provider: providerConsole, From: "hr@example.com"}},
		},
		{
			name: "重试配置不一致",
			cfg: Config{Retry: service.RetryConfig{
				InitialInterval: time.Second,
				MaxInterval:     time.Millisecond,
			}},
			wantErr: true,
		},
		{
			name:    "未知的邮件服务",
			cfg:     Config{Email: EmailConfig{Provider: "unknown"}},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := initNotifier(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, n)
		})
	}
}
