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

import "github.com/go-fluent/ftl/reporter"

// ReportErrors resolves each parse error's byte offset against source,
// for a caller building a "file:line:col: message" style report instead of
// working with raw byte offsets. The SourceMap is built once and reused
// across every error, since a Parse call typically produces several.
func ReportErrors(source string, errs []*Error) []reporter.ErrorWithPos {
	if len(errs) == 0 {
		return nil
	}
	sm := reporter.NewSourceMap(source)
	out := make([]reporter.ErrorWithPos, len(errs))
	for i, e := range errs {
		out[i] = reporter.Error(sm, e.Pos, e)
	}
	return out
}
