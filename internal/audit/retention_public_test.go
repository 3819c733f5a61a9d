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

package audit_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openscribe-io/openscribe/internal/audit"
)

type RetentionPublicTestSuite struct {
	suite.Suite
}

func (s *RetentionPublicTestSuite) TestDefault() {
	policy := audit.NewPolicy()

	s.Equal(audit.DefaultRetentionDays, policy.Days())
}

func (s *RetentionPublicTestSuite) TestSetDays() {
	tests := []struct {
		name    string
		days    int
		wantErr bool
	}{
		{name: "when days is positive", days: 30},
		{name: "when days is one", days: 1},
		{name: "when days is zero", days: 0, wantErr: true},
		{name: "when days is negative", days: -5, wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			policy := audit.NewPolicy()

			err := policy.SetDays(tt.days)

			if tt.wantErr {
				s.ErrorIs(err, audit.ErrInvalidRetention)
				s.Equal(
					audit.DefaultRetentionDays,
					policy.Days(),
					"a rejected value never mutates the policy",
				)
			} else {
				s.NoError(err)
				s.Equal(tt.days, policy.Days())
			}
		})
	}
}

func TestRetentionPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RetentionPublicTestSuite))
}
