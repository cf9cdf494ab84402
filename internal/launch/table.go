// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/gantrylabs/gantry/pkg/settings"
)

// WriteTable renders the provenance table: one line per setting, in policy
// declaration order. Each line is "CODE  KEY  VALUE" with the tier code in
// the first column (d, rc, e, a). The format is a stable output contract;
// scripts parse it, so the table goes to stdout and everything else
// (warnings, rc discovery) goes to stderr.
func WriteTable(w io.Writer, session *settings.Session) error {
	for st := range session.All() {
		if _, err := fmt.Fprintf(w, "%-2s  %s  %s\n", st.Source.Code(), st.Key, st.Value); err != nil {
			return err
		}
	}
	return nil
}

// LogDiagnostics reports the session's non-table output on the logger:
// which resource file fed the rc tier (or that none was found) and every
// warning collected during resolution.
func LogDiagnostics(logger *log.Logger, session *settings.Session) {
	if path, ok := session.ResourceFilePath(); ok {
		logger.Debug("resource file loaded", "path", path)
	} else {
		logger.Debug("no resource file found")
	}

	for _, w := range session.Warnings() {
		logger.Warn(w.String())
	}
}
