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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yaorongge/CTP/dicom"
	"github.com/yaorongge/CTP/pixel"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	in := fs.String("in", "", "path to a DICOM file")
	out := fs.String("out", "", "path to write the rendered JPEG")
	frame := fs.Int("frame", 0, "zero-based frame index")
	width := fs.Int("width", 0, "output width in pixels (0: source width)")
	height := fs.Int("height", 0, "output height in pixels (0: source height)")
	window := fs.Float64("window", 0, "window width override, in rescaled units")
	level := fs.Float64("level", 0, "window center override, in rescaled units")
	override := fs.Bool("override-window", false, "use -window/-level instead of the file's own values")
	quality := fs.Int("quality", -1, "JPEG quality 1-100 (default: encoder default)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		fs.PrintDefaults()
		return fmt.Errorf("-in and -out are required")
	}

	f, err := os.Open(*in)
	if err != nil {
		return err
	}
	defer f.Close()

	obj, err := dicom.Open(f)
	if err != nil {
		return err
	}
	defer obj.Close()

	opts := pixel.Options{
		FrameIndex:          *frame,
		Width:               *width,
		Height:              *height,
		WindowCenter:        *level,
		WindowWidth:         *window,
		OverrideWindowLevel: *override,
		Quality:             *quality,
	}

	jpegBytes, err := pixel.Render(obj, opts, pixel.NativeFrameDecoder{}, pixel.DefaultScaler{}, pixel.DefaultJPEGEncoder{})
	if err != nil {
		return err
	}

	return os.WriteFile(*out, jpegBytes, 0644)
}
