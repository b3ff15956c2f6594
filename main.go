package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/dicegame/internal/dicegame/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := dicegame(); err != nil {
		logrus.Fatal(err)
	}
}

func dicegame() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
