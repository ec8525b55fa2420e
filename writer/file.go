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

package writer

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// File is a Writer bound to a file path. Nothing is written to disk until
// Close is called.
type File struct {
	Writer
	path   string
	closed bool
	err    error
}

// Create returns a new File that will be saved to path.
func Create(path string) *File {
	return &File{path: path}
}

// Path returns the path the File will be saved to.
func (f *File) Path() string { return f.path }

// Close saves the recorded source to the file path. The file is truncated
// first. If writing fails, the partially written file is removed.
//
// Only the first call writes anything. Subsequent calls return the result of
// the first one.
func (f *File) Close() error {
	if f.closed {
		return f.err
	}
	f.closed = true
	f.err = f.save()
	return f.err
}

func (f *File) save() (err error) {
	out, err := os.Create(f.path)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(f.path)
		}
	}()
	w := bufio.NewWriter(out)
	if _, err = f.WriteTo(w); err != nil {
		return err
	}
	return errors.Wrap(w.Flush(), "write failed")
}

// WithFile creates a File for path, passes it to fn and closes it, whatever
// the outcome of fn. If fn panics, the file is saved before the panic
// resumes.
//
// The error returned by fn takes precedence over the one returned by Close.
func WithFile(path string, fn func(f *File) error) (err error) {
	f := Create(path)
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	return fn(f)
}
