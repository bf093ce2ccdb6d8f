/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package querykit

import (
	"io"

	"github.com/rulego/querykit/logger"
)

// Option configures a QueryKit instance.
type Option func(*QueryKit)

// WithLogger installs a custom logger as the package default.
//
// Example:
//
//	customLogger := logger.NewLogger(logger.DEBUG, os.Stderr)
//	qk := querykit.New(querykit.WithLogger(customLogger))
func WithLogger(log logger.Logger) Option {
	return func(k *QueryKit) {
		logger.SetDefault(log)
	}
}

// WithLogLevel sets the level on the default logger.
//
// Example:
//
//	qk := querykit.New(querykit.WithLogLevel(logger.DEBUG))
func WithLogLevel(level logger.Level) Option {
	return func(k *QueryKit) {
		logger.GetDefault().SetLevel(level)
	}
}

// WithLogOutput redirects the default logger to the given writer at the
// given level.
//
// Example:
//
//	logFile, _ := os.OpenFile("querykit.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
//	qk := querykit.New(querykit.WithLogOutput(logFile, logger.INFO))
func WithLogOutput(output io.Writer, level logger.Level) Option {
	return func(k *QueryKit) {
		logger.SetDefault(logger.NewLogger(level, output))
	}
}

// WithDiscardLog disables all logging.
//
// Example:
//
//	qk := querykit.New(querykit.WithDiscardLog())
func WithDiscardLog() Option {
	return func(k *QueryKit) {
		logger.SetDefault(logger.NewDiscardLogger())
	}
}

// WithEnhancerFactory replaces the dialect dispatch with a custom
// factory. The factory receives every declared query handed to ForQuery,
// so embedders can wrap the built-in analyzers or substitute their own.
func WithEnhancerFactory(factory EnhancerFactory) Option {
	return func(k *QueryKit) {
		k.factory = factory
	}
}
