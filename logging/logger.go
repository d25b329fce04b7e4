package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func BoostrapLogger() {
	Log = &logrus.Logger{
		Out: os.Stdout,
		Formatter: &logrus.TextFormatter{
			DisableColors: false,
			FullTimestamp: false,
		},
		Level: logrus.DebugLevel,
	}

	Log.SetReportCaller(true)
}
