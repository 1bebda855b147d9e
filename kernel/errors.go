// Copyright 2025 go-highway Authors
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

package kernel

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-elementwise/hwy"
)

// Sentinel errors. The typed errors below match them with errors.Is.
var (
	// ErrDuplicateKernel reports a second registration under a taken name.
	ErrDuplicateKernel = errors.New("kernel: duplicate kernel")

	// ErrUnknownKernel reports a lookup of a name that was never registered.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")

	// ErrShapeMismatch reports a buffer whose element shape or length
	// disagrees with what the kernel or the call requires.
	ErrShapeMismatch = errors.New("kernel: shape mismatch")

	// ErrInvalidKernel reports a kernel that cannot be constructed.
	ErrInvalidKernel = errors.New("kernel: invalid kernel")
)

// DuplicateKernelError is returned by Register when Name is already bound.
type DuplicateKernelError struct {
	Name string
}

func (e *DuplicateKernelError) Error() string {
	return fmt.Sprintf("kernel %q already registered", e.Name)
}

// Is reports whether target is ErrDuplicateKernel.
func (e *DuplicateKernelError) Is(target error) bool {
	return target == ErrDuplicateKernel
}

// UnknownKernelError is returned by Resolve when Name is not bound.
type UnknownKernelError struct {
	Name string
}

func (e *UnknownKernelError) Error() string {
	return fmt.Sprintf("kernel %q not registered", e.Name)
}

// Is reports whether target is ErrUnknownKernel.
func (e *UnknownKernelError) Is(target error) bool {
	return target == ErrUnknownKernel
}

// ShapeMismatchError is returned when a buffer does not fit a kernel.
// Got/Want describe element shapes; GotLen/WantLen are only set when the
// shapes agree but an output buffer has the wrong element count.
type ShapeMismatchError struct {
	Kernel  string
	Want    hwy.Shape
	Got     hwy.Shape
	WantLen int
	GotLen  int
}

func (e *ShapeMismatchError) Error() string {
	if e.Want == e.Got {
		return fmt.Sprintf("kernel %q: buffer has %d elements, want %d", e.Kernel, e.GotLen, e.WantLen)
	}
	return fmt.Sprintf("kernel %q: buffer shape %s, want %s", e.Kernel, e.Got, e.Want)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}
