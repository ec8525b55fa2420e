// This file is part of nadia - https://github.com/db47h/nadia
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lang

// Bindings maps user chosen aliases to commands. Once bound, an alias never
// changes: later bindings for the same alias are ignored.
type Bindings map[string]Command

// NewBindings builds a binding table from an alias to command name map. Every
// target must name a command.
func NewBindings(seed map[string]string) (Bindings, error) {
	b := make(Bindings, len(seed))
	for alias, target := range seed {
		c, ok := LookupCommand(target)
		if !ok {
			return nil, &BindingError{alias, target}
		}
		b[alias] = c
	}
	return b, nil
}

// Bind binds alias to c and reports whether the binding took place.
func (b Bindings) Bind(alias string, c Command) bool {
	if _, ok := b[alias]; ok {
		return false
	}
	b[alias] = c
	return true
}

// Lookup returns the command bound to alias.
func (b Bindings) Lookup(alias string) (Command, bool) {
	c, ok := b[alias]
	return c, ok
}

// Clone returns a copy of b. Cloning a nil table returns an empty one.
func (b Bindings) Clone() Bindings {
	c := make(Bindings, len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}
