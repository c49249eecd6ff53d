// Copyright 2025 go-sortlab Authors
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

package sorts

import "github.com/pkg/errors"

var (
	// ErrInvalidBucketCount is returned when bucket sort is asked for fewer than one bucket.
	ErrInvalidBucketCount = errors.New("bucket count must be at least 1")

	// ErrUnknownAlgorithm is returned by Lookup for names that are not registered.
	ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")
)
