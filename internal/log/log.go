/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Entry returns a logrus entry tagged with the emitting component.
func Entry(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

// Configure sets the process-wide log level and destination. An unknown
// level leaves the current level in place and returns the parse error.
func Configure(level string, out io.Writer) error {
	if out != nil {
		logrus.SetOutput(out)
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}
