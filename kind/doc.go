/*
   Copyright 2026 The BLKit Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package kind provides parsing, normalization and validation for blerrors
// error kinds.
//
// A "kind" is the top-level, machine-readable classification of a device
// protocol error, such as "device_offline", "authentication" or
// "data_validation". Kinds are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON/proto payloads and for lookup in registries.
//
// The taxonomy is closed: the classifier only ever produces the kinds
// declared in this package, with Unknown as the fallback for codes outside
// the classification table. Known reports membership in that closed set.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every error MUST have a
// non-empty kind.
package kind
