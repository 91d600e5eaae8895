// Copyright 2025 The ocp-visualizer Authors.
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

package log

import (
	"fmt"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// Verbosity values selected by the -d, -v and -e shorthand flags
const (
	Debug   = "debug"
	Verbose = "verbose"
	Error   = "error"
)

func init() {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(Formatter())
	logrus.SetLevel(logrus.ErrorLevel)
}

// Formatter returns the text formatter shared by every command
func Formatter() *logrus.TextFormatter {
	return &logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
		DisableColors:   true,
		CallerPrettyfier: func(f *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(f.File), f.Line)
		},
	}
}

// LevelFor maps a verbosity name to a logrus level. Anything unknown, including
// the empty string, keeps the quiet default of error.
func LevelFor(verbosity string) logrus.Level {
	switch verbosity {
	case Debug:
		return logrus.DebugLevel
	case Verbose:
		return logrus.InfoLevel
	default:
		return logrus.ErrorLevel
	}
}
