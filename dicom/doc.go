// Copyright 2018 Google LLC
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

// Package dicom provides functions and data structures for reading, inspecting, and
// re-serializing files in the DICOM Part 10 file format, as specified in
// [http://dicom.nema.org/medical/dicom/current/output/pdf/part10.pdf].
//
// A File is opened from a seekable source with Open. Opening parses the file-meta
// group and the main data set up to (but not including) the value of PixelData
// (7FE0,0010), leaving a cursor positioned over the remainder of the stream so that
// pixel data and any trailing elements can be streamed through to Save without ever
// being buffered in memory. Element values are read by tag path with the typed
// accessors in accessors.go; a File can be re-serialized with Save, optionally
// forcing Implicit VR Little Endian and performing the necessary byte swap.
package dicom
