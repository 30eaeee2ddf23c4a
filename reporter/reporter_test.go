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

package reporter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceMapResolveFirstLine(t *testing.T) {
	sm := NewSourceMap("hello = world\n-term = value\n")
	pos := sm.Resolve(0)
	require.Equal(t, Pos{Line: 1, Column: 1}, pos)
}

func TestSourceMapResolveSecondLine(t *testing.T) {
	source := "hello = world\n-term = value\n"
	sm := NewSourceMap(source)
	pos := sm.Resolve(14) // start of "-term"
	require.Equal(t, Pos{Line: 2, Column: 1}, pos)
}

func TestSourceMapResolveMidLine(t *testing.T) {
	source := "hello = world\n-term = value\n"
	sm := NewSourceMap(source)
	pos := sm.Resolve(20) // inside "-term = value"
	require.Equal(t, 2, pos.Line)
	require.Greater(t, pos.Column, 1)
}

func TestSourceMapSnippet(t *testing.T) {
	source := "hello = world\n-term = value\n"
	sm := NewSourceMap(source)
	require.Equal(t, "-term = value", sm.Snippet(source, 20))
}

func TestErrorWithPosFormatting(t *testing.T) {
	sm := NewSourceMap("a = b\n")
	err := Error(sm, 0, errors.New("boom"))
	require.Equal(t, "1:1: boom", err.Error())
	require.Equal(t, Pos{Line: 1, Column: 1}, err.Position())
	require.ErrorIs(t, err.Unwrap(), err.Unwrap())
}

func TestErrorfBuildsUnderlyingError(t *testing.T) {
	sm := NewSourceMap("a = b\n")
	err := Errorf(sm, 2, "unexpected %q", "=")
	require.Equal(t, `1:3: unexpected "="`, err.Error())
}
