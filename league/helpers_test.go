package league

import "github.com/sirupsen/logrus"

// logrusQuiet drops per-game log lines so full-season tests stay readable.
func logrusQuiet() {
	logrus.SetLevel(logrus.ErrorLevel)
}
