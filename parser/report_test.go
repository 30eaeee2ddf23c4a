// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportErrorsResolvesLineAndColumn(t *testing.T) {
	src := "hello = Hi\n-brand =\n"
	_, errs := Parse(src)
	require.Len(t, errs, 1)
	assert.Equal(t, ExpectedTermField, errs[0].Kind)

	reported := ReportErrors(src, errs)
	require.Len(t, reported, 1)
	assert.Equal(t, 2, reported[0].Position().Line)
	assert.Equal(t, "2:1", reported[0].Position().String())
	assert.ErrorIs(t, reported[0].Unwrap(), errs[0])
	assert.Contains(t, reported[0].Error(), "expected a term field")
}

func TestReportErrorsEmptyIsNil(t *testing.T) {
	_, errs := Parse("hello = Hi\n")
	require.Empty(t, errs)
	assert.Nil(t, ReportErrors("hello = Hi\n", errs))
}
