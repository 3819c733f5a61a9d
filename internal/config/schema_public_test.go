// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openscribe-io/openscribe/internal/config"
)

type ConfigPublicTestSuite struct {
	suite.Suite
}

func validConfig() config.Config {
	return config.Config{
		Audit: config.Audit{
			RetentionDays: 180,
			StorageDir:    "/home/user/.openscribe/data",
		},
	}
}

func (s *ConfigPublicTestSuite) TestValidate() {
	tests := []struct {
		name        string
		mutate      func(c *config.Config)
		expectError bool
		errContains string
	}{
		{
			name:   "valid config",
			mutate: func(*config.Config) {},
		},
		{
			name: "valid config with key and schedule",
			mutate: func(c *config.Config) {
				c.Security.EncryptionKey = strings.Repeat("ab", 32)
				c.Audit.CleanupSchedule = "0 3 * * *"
			},
		},
		{
			name: "zero retention days",
			mutate: func(c *config.Config) {
				c.Audit.RetentionDays = 0
			},
			expectError: true,
			errContains: "RetentionDays",
		},
		{
			name: "negative retention days",
			mutate: func(c *config.Config) {
				c.Audit.RetentionDays = -1
			},
			expectError: true,
			errContains: "RetentionDays",
		},
		{
			name: "missing storage dir",
			mutate: func(c *config.Config) {
				c.Audit.StorageDir = ""
			},
			expectError: true,
			errContains: "StorageDir",
		},
		{
			name: "short encryption key",
			mutate: func(c *config.Config) {
				c.Security.EncryptionKey = "abcd"
			},
			expectError: true,
			errContains: "EncryptionKey",
		},
		{
			name: "non-hex encryption key",
			mutate: func(c *config.Config) {
				c.Security.EncryptionKey = strings.Repeat("zz", 32)
			},
			expectError: true,
			errContains: "EncryptionKey",
		},
		{
			name: "malformed cleanup schedule",
			mutate: func(c *config.Config) {
				c.Audit.CleanupSchedule = "every day at 3am"
			},
			expectError: true,
			errContains: "cron",
		},
		{
			name: "descriptor cleanup schedule",
			mutate: func(c *config.Config) {
				c.Audit.CleanupSchedule = "@daily"
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := config.Validate(&cfg)

			if tt.expectError {
				s.Error(err)
				if tt.errContains != "" {
					s.Contains(err.Error(), tt.errContains)
				}
			} else {
				s.NoError(err)
			}
		})
	}
}

func TestConfigPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigPublicTestSuite))
}
