package utils

import (
	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Bootstrap replaces the output/level once config
// is loaded; until then it writes to stderr with defaults.
var Log = logrus.New()
