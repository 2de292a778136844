package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/burrow/logger"
	"github.com/milk9111/burrow/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	levelName := flag.String("level", "meadow", "level name in levels/ (basename, .yaml optional)")
	logLevel := flag.String("log-level", "", "log level (default $LOG_LEVEL or info)")
	logFormat := flag.String("log-format", "", "log format: text or json (default $LOG_FORMAT or text)")
	watch := flag.Bool("watch", false, "reload prefabs/ when files change on disk")
	flag.Parse()

	logger.Init(*logLevel, *logFormat)

	var watcher *prefabs.Watcher
	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			logger.Log.WithError(err).Warn("prefab watcher disabled")
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	game, err := NewGame(*levelName, *debug, watcher)
	if err != nil {
		logger.Log.WithError(err).Fatal("start game")
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth*2, baseHeight*2)
	ebiten.SetWindowTitle("burrow")

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("run game")
	}
}
