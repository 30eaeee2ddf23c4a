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

package ast

// Identifier is a bare name: a message id, term id (without its leading
// "-"), attribute id, or the name half of a variable or named argument.
type Identifier struct {
	Name string
	Span Span
}

func (n *Identifier) Pos() Span        { return n.Span }
func (n *Identifier) variantKeyNode()  {}
